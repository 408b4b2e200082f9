package accounts

import (
	"github.com/eventrave/eventrave-backend/internal/users"
)

// RegisterRequest carries the signup payload. Role decides the validation
// path: students land pending with an OTP email, judges are active at once.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Gender    string `json:"gender" validate:"omitempty"`
	Branch    string `json:"branch" validate:"omitempty"`
	Mobile    string `json:"mobile" validate:"omitempty,max=10"`
	BatchYear *int   `json:"batch_year"`
	Image     string `json:"image"`
}

// RegisterResult reports the created profile and whether an OTP email went
// out.
type RegisterResult struct {
	User    *users.ProfileDTO
	OTPSent bool
}

// ActivateRequest confirms email ownership for a pending account.
type ActivateRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   *int   `json:"otp" validate:"required"`
}

// LoginRequest carries the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is a partial update of the mutable profile fields.
// Email, role and password are not editable here.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Mobile    *string `json:"mobile" validate:"omitempty,max=10"`
	BatchYear *int    `json:"batch_year"`
	Branch    *string `json:"branch"`
	Gender    *string `json:"gender"`
	Image     *string `json:"image"`
}

// AuthenticatedProfile is the profile payload returned alongside a session
// token.
type AuthenticatedProfile struct {
	users.ProfileDTO
	Token string `json:"token"`
}
