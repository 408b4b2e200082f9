package controllers

import (
	"net/http"

	"github.com/eventrave/eventrave-backend/api/responses"
	"github.com/eventrave/eventrave-backend/api/validators"
	"github.com/eventrave/eventrave-backend/internal/accounts"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/logger"
)

const (
	registeredMessage        = "User registered successfully."
	registeredWithOTPMessage = "User registered successfully. Check your email for otp."
)

// AccountRegister handles new account signups.
func AccountRegister(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body accounts.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := registeredMessage
		if result.OTPSent {
			message = registeredWithOTPMessage
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": message})
	}
}

// AccountActivate confirms a pending account with the emailed OTP.
func AccountActivate(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body accounts.ActivateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Activate(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// AccountLogin authenticates credentials and rotates the session token.
func AccountLogin(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body accounts.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
