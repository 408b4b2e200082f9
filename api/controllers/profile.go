package controllers

import (
	"net/http"

	"github.com/eventrave/eventrave-backend/api/middleware"
	"github.com/eventrave/eventrave-backend/api/responses"
	"github.com/eventrave/eventrave-backend/api/validators"
	"github.com/eventrave/eventrave-backend/internal/accounts"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/logger"
)

// ProfileShow returns the authenticated user's profile with their session
// token.
func ProfileShow(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		profile, err := svc.Profile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// ProfileUpdate applies a partial update to the authenticated user's
// profile.
func ProfileUpdate(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body accounts.UpdateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
