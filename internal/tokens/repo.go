package tokens

import (
	"context"
	goerrors "errors"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/pkg/db/models"
)

// Repository manages opaque session tokens. The unique index on user_id
// keeps at most one live token per account.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a tokens repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the user's current token, minting one when none
// exists. The second return reports whether a new token was created.
func (r *Repository) GetOrCreate(ctx context.Context, userID uint64) (*models.AuthToken, bool, error) {
	var token models.AuthToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, false, nil
	}
	if !goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created, err := r.create(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Rotate discards the user's existing token and mints a fresh one. The
// previous key, when any, is returned so cache entries can be dropped.
func (r *Repository) Rotate(ctx context.Context, userID uint64) (token *models.AuthToken, oldKey string, err error) {
	var existing models.AuthToken
	err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		oldKey = existing.Key
		if err = r.db.WithContext(ctx).Delete(&models.AuthToken{}, "user_id = ?", userID).Error; err != nil {
			return nil, "", err
		}
	case goerrors.Is(err, gorm.ErrRecordNotFound):
		// First login after activation, nothing to discard.
	default:
		return nil, "", err
	}

	token, err = r.create(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return token, oldKey, nil
}

// FindByKey resolves a token by its key.
func (r *Repository) FindByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *Repository) create(ctx context.Context, userID uint64) (*models.AuthToken, error) {
	key, err := NewKey()
	if err != nil {
		return nil, err
	}
	token := &models.AuthToken{Key: key, UserID: userID}
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}
