package wire

import (
	"todo-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireVerification configures the email verification, password reset and
// email change token flows. Redemption endpoints are public because they
// are reached from links in emails; issuance endpoints that act on the
// current account require a session.
func wireVerification(r chi.Router, h *adaptor.VerificationHandler, auth authMiddleware) {
	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/send-verification-email", h.SendVerificationEmail)
	r.With(auth).Post("/api/request-email-change", h.RequestEmailChange)

	// ==================== PUBLIC ROUTES ====================
	// Verify and update-email redemptions are GETs because they are clicked
	// from email links.
	r.Get("/api/verify-email", h.VerifyEmail)
	r.Post("/api/send-password-reset-email", h.SendPasswordResetEmail)
	r.Put("/api/reset-password", h.ResetPassword)
	r.Get("/api/update-email", h.UpdateEmail)
}
