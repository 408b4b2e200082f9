package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/eventrave/eventrave-backend/api/responses"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/logger"
)

// TokenVerifier resolves an opaque session key to its owning user id.
type TokenVerifier interface {
	Lookup(ctx context.Context, key string) (uint64, error)
}

// Auth validates the Authorization header and seeds the request context
// with the authenticated user id. Both "Token <key>" and "Bearer <key>"
// schemes are accepted.
func Auth(verifier TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			key := raw
			lower := strings.ToLower(key)
			switch {
			case strings.HasPrefix(lower, "token "):
				key = strings.TrimSpace(key[6:])
			case strings.HasPrefix(lower, "bearer "):
				key = strings.TrimSpace(key[7:])
			}
			if key == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			userID, err := verifier.Lookup(r.Context(), key)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, strconv.FormatUint(userID, 10))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
