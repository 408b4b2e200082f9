package models

import (
	"time"

	"github.com/eventrave/eventrave-backend/pkg/enums"
)

// DefaultProfileImage is the placeholder assigned until a user uploads
// their own picture.
const DefaultProfileImage = "user.png"

// User represents the canonical account entity.
//
// OTP is only populated while the account is pending email confirmation;
// the activation flow clears it. IsStaff/IsSuperuser are derived from the
// role at creation time and never toggled independently.
type User struct {
	ID           uint64       `gorm:"primaryKey;autoIncrement"`
	Email        string       `gorm:"type:text;not null;uniqueIndex"`
	Username     string       `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string       `gorm:"column:password_hash;not null"`
	FirstName    string       `gorm:"column:first_name;not null"`
	LastName     string       `gorm:"column:last_name"`
	Role         enums.Role   `gorm:"type:text;not null;default:student"`
	Gender       enums.Gender `gorm:"type:text;not null;default:male"`
	Branch       enums.Branch `gorm:"type:text;not null;default:cse"`
	Mobile       string       `gorm:"type:varchar(10)"`
	BatchYear    *int         `gorm:"column:batch_year"`
	Image        string       `gorm:"type:text;not null;default:'user.png'"`
	IsActive     bool         `gorm:"column:is_active;not null;default:false"`
	IsStaff      bool         `gorm:"column:is_staff;not null;default:false"`
	IsSuperuser  bool         `gorm:"column:is_superuser;not null;default:false"`
	OTP          *int         `gorm:"column:otp"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}
