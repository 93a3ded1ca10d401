package adaptor

import (
	"encoding/json"
	"net/http"

	"todo-app/internal/dto/request"
	"todo-app/internal/usecase"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

type VerificationHandler struct {
	service usecase.VerificationService
	log     *zap.Logger
}

func NewVerificationHandler(service usecase.VerificationService, log *zap.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: service,
		log:     log,
	}
}

// SendVerificationEmail handles POST /api/send-verification-email
func (h *VerificationHandler) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to send verification email")
		return
	}

	if err := h.service.SendVerificationEmail(r.Context(), p.ID); err != nil {
		h.log.Warn("Send verification email failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Verification email sent", nil)
}

// VerifyEmail handles GET /api/verify-email?token=
func (h *VerificationHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.ResponseBadRequest(w, "token: This field is required", nil)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), token); err != nil {
		h.log.Warn("Email verification failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

// SendPasswordResetEmail handles POST /api/send-password-reset-email.
// Responds 201 whether or not the email belongs to an account.
func (h *VerificationHandler) SendPasswordResetEmail(w http.ResponseWriter, r *http.Request) {
	var req request.PasswordResetEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.log.Error("Password reset request failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "If the email is registered, a reset link has been sent", nil)
}

// ResetPassword handles PUT /api/reset-password?token=
func (h *VerificationHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.ResponseBadRequest(w, "token: This field is required", nil)
		return
	}

	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), token, req.Password); err != nil {
		h.log.Warn("Password reset failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

// RequestEmailChange handles POST /api/request-email-change
func (h *VerificationHandler) RequestEmailChange(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to change email")
		return
	}

	var req request.EmailChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	if err := h.service.RequestEmailChange(r.Context(), p.ID, req.Email); err != nil {
		h.log.Warn("Email change request failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Confirmation email sent to the new address", nil)
}

// UpdateEmail handles GET /api/update-email?token=
func (h *VerificationHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.ResponseBadRequest(w, "token: This field is required", nil)
		return
	}

	if err := h.service.UpdateEmail(r.Context(), token); err != nil {
		h.log.Warn("Email update failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Email updated successfully", nil)
}
