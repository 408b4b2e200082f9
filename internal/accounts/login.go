package accounts

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/internal/tokens"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Login verifies credentials against an active account and rotates the
// session token, invalidating any prior session. Inactive accounts get a
// fresh OTP instead; the password is not checked on that path.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthenticatedProfile, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fieldError("email", "This field is required.")
	}
	if req.Password == "" {
		return nil, fieldError("password", "This field is required.")
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		if err := s.dispatchOTP(ctx, user); err != nil {
			return nil, err
		}
		s.metrics.IncLogin("inactive")
		return nil, pkgerrors.New(pkgerrors.CodeAccountInactive,
			"account is not active, check your email for a fresh otp")
	}

	match, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		s.metrics.IncLogin("invalid_credentials")
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	var (
		token  *models.AuthToken
		oldKey string
	)
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		token, oldKey, err = tokens.NewRepository(tx).Rotate(ctx, user.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate token")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The old session must stop authenticating immediately, cache entry
	// included.
	if oldKey != "" {
		s.tokenCache.Forget(ctx, oldKey)
	}

	s.metrics.IncLogin("ok")
	return s.authenticated(user, token), nil
}
