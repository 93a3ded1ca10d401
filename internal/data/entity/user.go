package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	IsVerified   bool     `db:"is_verified"`
	Role         UserRole `db:"role"`
	// PendingEmail is set while an email change awaits confirmation and
	// cleared when the change is applied.
	PendingEmail *string `db:"pending_email"`

	EmailVerification TokenRecord `db:"email_verification"`
	PasswordReset     TokenRecord `db:"password_reset"`
	EmailUpdate       TokenRecord `db:"email_update"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
