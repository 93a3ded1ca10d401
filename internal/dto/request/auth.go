package request

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255,nohtml"`
	Password        string `json:"password" validate:"required,min=6,max=255,nohtml"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	// Username carries the account email; the field name matches the login
	// form convention.
	Username string `json:"username" validate:"required,max=255,nohtml"`
	Password string `json:"password" validate:"required,max=255"`
}
