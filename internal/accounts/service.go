package accounts

import (
	"context"

	"github.com/eventrave/eventrave-backend/internal/tokens"
	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/config"
	"github.com/eventrave/eventrave-backend/pkg/db"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/mailer"
	"github.com/eventrave/eventrave-backend/pkg/metrics"
	"github.com/eventrave/eventrave-backend/pkg/otp"
)

// Service defines the behavior needed by the account controllers.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Activate(ctx context.Context, req ActivateRequest) (*AuthenticatedProfile, error)
	Login(ctx context.Context, req LoginRequest) (*AuthenticatedProfile, error)
	Profile(ctx context.Context, userID uint64) (*AuthenticatedProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req UpdateProfileRequest) (*AuthenticatedProfile, error)
}

type service struct {
	db          *db.Client
	notifier    mailer.Notifier
	otpGen      otp.Generator
	tokenCache  tokens.Cache
	metrics     *metrics.AccountMetrics
	passwordCfg config.PasswordConfig
	regCfg      config.RegistrationConfig
}

// ServiceParams bundles the dependencies required to build the accounts
// service.
type ServiceParams struct {
	DB                 *db.Client
	Notifier           mailer.Notifier
	OTPGenerator       otp.Generator
	TokenCache         tokens.Cache
	Metrics            *metrics.AccountMetrics
	PasswordConfig     config.PasswordConfig
	RegistrationConfig config.RegistrationConfig
}

// NewService constructs the accounts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notifier required")
	}
	if params.OTPGenerator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "otp generator required")
	}
	cache := params.TokenCache
	if cache == nil {
		cache = tokens.NopCache{}
	}
	return &service{
		db:          params.DB,
		notifier:    params.Notifier,
		otpGen:      params.OTPGenerator,
		tokenCache:  cache,
		metrics:     params.Metrics,
		passwordCfg: params.PasswordConfig,
		regCfg:      params.RegistrationConfig,
	}, nil
}

func (s *service) authenticated(user *models.User, token *models.AuthToken) *AuthenticatedProfile {
	return &AuthenticatedProfile{
		ProfileDTO: *users.ProfileFromModel(user),
		Token:      token.Key,
	}
}

func fieldError(field, message string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithField(field, message)
}
