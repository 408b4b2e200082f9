package tokens

import (
	"context"
	goerrors "errors"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/pkg/errors"
)

// Verifier resolves session keys to user ids, consulting the cache before
// the database and back-filling it on a hit.
type Verifier struct {
	repo  *Repository
	cache Cache
}

// NewVerifier wires a verifier over the tokens repo and an optional cache.
func NewVerifier(repo *Repository, cache Cache) *Verifier {
	if cache == nil {
		cache = NopCache{}
	}
	return &Verifier{repo: repo, cache: cache}
}

// Lookup returns the user id owning the provided key. Unknown keys come
// back as unauthorized.
func (v *Verifier) Lookup(ctx context.Context, key string) (uint64, error) {
	if key == "" {
		return 0, errors.New(errors.CodeUnauthorized, "missing token")
	}
	if userID, ok := v.cache.Get(ctx, key); ok {
		return userID, nil
	}

	token, err := v.repo.FindByKey(ctx, key)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New(errors.CodeUnauthorized, "invalid token")
		}
		return 0, errors.Wrap(errors.CodeInternal, err, "token lookup")
	}

	v.cache.Set(ctx, key, token.UserID)
	return token.UserID, nil
}
