package accounts

import (
	"context"
	goerrors "errors"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/internal/tokens"
	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	"github.com/eventrave/eventrave-backend/pkg/enums"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

// Profile returns the authenticated user's record with their current
// session token. Reads never rotate the token.
func (s *service) Profile(ctx context.Context, userID uint64) (*AuthenticatedProfile, error) {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := s.currentToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.authenticated(user, token), nil
}

// UpdateProfile applies a partial update of the mutable profile fields.
// Email, role and credentials stay untouched.
func (s *service) UpdateProfile(ctx context.Context, userID uint64, req UpdateProfileRequest) (*AuthenticatedProfile, error) {
	updates, err := profileUpdates(req)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		user, err = users.NewRepository(tx).UpdateProfile(ctx, userID, updates)
		if err != nil {
			if goerrors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown account")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.currentToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.authenticated(user, token), nil
}

func profileUpdates(req UpdateProfileRequest) (map[string]any, error) {
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Mobile != nil {
		if len(*req.Mobile) > 10 {
			return nil, fieldError("mobile", "Must be at most 10 characters.")
		}
		updates["mobile"] = *req.Mobile
	}
	if req.BatchYear != nil {
		updates["batch_year"] = *req.BatchYear
	}
	if req.Branch != nil {
		branch, err := enums.ParseBranch(*req.Branch)
		if err != nil {
			return nil, fieldError("branch", "Invalid branch.")
		}
		updates["branch"] = branch
	}
	if req.Gender != nil {
		gender, err := enums.ParseGender(*req.Gender)
		if err != nil {
			return nil, fieldError("gender", "Invalid gender.")
		}
		updates["gender"] = gender
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	return updates, nil
}

func (s *service) findByID(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := users.NewRepository(s.db.DB()).FindByID(ctx, userID)
	if err != nil {
		// A valid token pointing at a missing record means the session is
		// stale, not that the server broke.
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown account")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) currentToken(ctx context.Context, userID uint64) (*models.AuthToken, error) {
	var token *models.AuthToken
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		var err error
		token, _, err = tokens.NewRepository(tx).GetOrCreate(ctx, userID)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue token")
	}
	return token, nil
}
