package accounts

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/db"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	"github.com/eventrave/eventrave-backend/pkg/enums"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/security"
)

// Register validates the role-specific constraints, persists the account
// and, for students, dispatches the activation OTP. Students land pending;
// judges are active immediately.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fieldError("email", "This field is required.")
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, fieldError("role", "This field is required.")
	}

	// Duplicate emails are reported before any role validation.
	exists, err := users.NewRepository(s.db.DB()).EmailExists(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}
	if exists {
		return nil, fieldError("email", "Email already exists.")
	}

	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return nil, fieldError("role", "Invalid role.")
	}
	if role == enums.RoleAdmin {
		return nil, fieldError("role", "Admin accounts cannot self-register.")
	}

	gender := enums.GenderMale
	if req.Gender != "" {
		if gender, err = enums.ParseGender(req.Gender); err != nil {
			return nil, fieldError("gender", "Invalid gender.")
		}
	}

	branch := enums.BranchCSE
	if req.Branch != "" {
		if branch, err = enums.ParseBranch(req.Branch); err != nil {
			return nil, fieldError("branch", "Invalid branch.")
		}
	}

	batchYear := req.BatchYear
	if role == enums.RoleStudent {
		parsed, err := s.studentBatchYear(email)
		if err != nil {
			return nil, err
		}
		batchYear = parsed
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	flags := enums.AuthzFlagsFor(role)

	var created *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		exists, err := repo.EmailExists(ctx, email)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
		}
		if exists {
			return fieldError("email", "Email already exists.")
		}

		username, err := resolveUsername(ctx, repo, emailLocalPart(email))
		if err != nil {
			return err
		}

		created, err = repo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			Username:     username,
			PasswordHash: passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         role,
			Gender:       gender,
			Branch:       branch,
			Mobile:       req.Mobile,
			BatchYear:    batchYear,
			Image:        req.Image,
			IsActive:     role == enums.RoleJudge,
			IsStaff:      flags.Staff,
			IsSuperuser:  flags.Superuser,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "users_email_key") {
				return fieldError("email", "Email already exists.")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	otpSent := false
	if role == enums.RoleStudent {
		if err := s.dispatchOTP(ctx, created); err != nil {
			return nil, err
		}
		otpSent = true
	}

	s.metrics.IncRegistration(role.String())
	return &RegisterResult{User: users.ProfileFromModel(created), OTPSent: otpSent}, nil
}

// studentBatchYear enforces the institutional email domain and derives the
// batch year from the first two characters of the local-part.
func (s *service) studentBatchYear(email string) (*int, error) {
	domain := s.regCfg.StudentEmailDomain
	if !strings.HasSuffix(email, "@"+domain) {
		return nil, fieldError("email", "Email must belong to the "+domain+" domain.")
	}

	local := emailLocalPart(email)
	if len(local) < 2 {
		return nil, fieldError("email", "Invalid email.")
	}
	year, err := strconv.Atoi(local[:2])
	if err != nil {
		return nil, fieldError("email", "Invalid email.")
	}
	return &year, nil
}
