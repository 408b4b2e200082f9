package users

import (
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	"github.com/eventrave/eventrave-backend/pkg/enums"
)

// CreateUserDTO carries the fields needed to persist a new account. The
// caller is expected to have hashed the password and resolved the username
// before handing it over.
type CreateUserDTO struct {
	Email        string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         enums.Role
	Gender       enums.Gender
	Branch       enums.Branch
	Mobile       string
	BatchYear    *int
	Image        string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
}

// ToModel maps the DTO onto a fresh persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	image := d.Image
	if image == "" {
		image = models.DefaultProfileImage
	}
	return &models.User{
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         d.Role,
		Gender:       d.Gender,
		Branch:       d.Branch,
		Mobile:       d.Mobile,
		BatchYear:    d.BatchYear,
		Image:        image,
		IsActive:     d.IsActive,
		IsStaff:      d.IsStaff,
		IsSuperuser:  d.IsSuperuser,
	}
}

// ProfileDTO is the public shape of a user account.
type ProfileDTO struct {
	ID        uint64       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Role      enums.Role   `json:"role"`
	Mobile    string       `json:"mobile"`
	BatchYear *int         `json:"batch_year"`
	Branch    enums.Branch `json:"branch"`
	Gender    enums.Gender `json:"gender"`
	Image     string       `json:"image"`
}

// ProfileFromModel maps a persisted user onto its public profile shape.
func ProfileFromModel(user *models.User) *ProfileDTO {
	if user == nil {
		return nil
	}
	return &ProfileDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Mobile:    user.Mobile,
		BatchYear: user.BatchYear,
		Branch:    user.Branch,
		Gender:    user.Gender,
		Image:     user.Image,
	}
}
