package request

// UpdateUserRequest carries the mutable user fields. Empty string means the
// field was not provided. Role and IsVerified are applied only for admin
// callers.
type UpdateUserRequest struct {
	Email           string `json:"email" validate:"omitempty,email,max=255,nohtml"`
	Password        string `json:"password" validate:"omitempty,min=6,max=255,nohtml"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=user admin"`
	IsVerified      *bool  `json:"isVerified"`
}
