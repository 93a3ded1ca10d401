package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/internal/usecase"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service    usecase.AuthService
	cookieName string
	log        *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookieName string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: cookieName,
		log:        log,
	}
}

// Register handles POST /api/users
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.log.Warn("Registration failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful. Check your inbox for a verification link.", resp)
}

// Login handles POST /api/login. Accepts JSON or form-encoded credentials
// and sets the session cookie on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			utils.ResponseBadRequest(w, "Invalid form body", nil)
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		h.log.Warn("Login failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok || token == "" {
		utils.ResponseUnauthorized(w, "Authentication required to logout")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Warn("Logout failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// SessionCheck handles GET /api/session-check. Public: reports whether the
// presented session token is still active.
func (h *AuthHandler) SessionCheck(w http.ResponseWriter, r *http.Request) {
	token := utils.SessionTokenFromRequest(r, h.cookieName)

	active, err := h.service.SessionCheck(r.Context(), token)
	if err != nil {
		h.log.Error("Session check failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Session status", response.SessionCheckResponse{SessionActive: active})
}
