package accounts

import (
	"context"
	goerrors "errors"
	"strings"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/internal/tokens"
	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

// Activate verifies the submitted OTP and flips a pending account to
// active. The stored code survives a mismatch so the caller can retry.
func (s *service) Activate(ctx context.Context, req ActivateRequest) (*AuthenticatedProfile, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fieldError("email", "This field is required.")
	}
	if req.OTP == nil {
		return nil, fieldError("otp", "This field is required.")
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.IsActive {
		s.metrics.IncActivation("already_active")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user is already active")
	}
	if user.OTP == nil || *user.OTP != *req.OTP {
		s.metrics.IncActivation("invalid_otp")
		return nil, fieldError("otp", "Invalid OTP.")
	}

	var token *models.AuthToken
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := users.NewRepository(tx).Activate(ctx, user.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "activate user")
		}
		token, _, err = tokens.NewRepository(tx).GetOrCreate(ctx, user.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue token")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.IsActive = true
	user.OTP = nil
	s.metrics.IncActivation("ok")
	return s.authenticated(user, token), nil
}

func (s *service) findByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := users.NewRepository(s.db.DB()).FindByEmail(ctx, email)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}
