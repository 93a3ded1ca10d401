package request

type PasswordResetEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=255,nohtml"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,max=255,nohtml"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type EmailChangeRequest struct {
	Email string `json:"email" validate:"required,email,max=255,nohtml"`
}
