package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eventrave/eventrave-backend/api/controllers"
	"github.com/eventrave/eventrave-backend/api/middleware"
	"github.com/eventrave/eventrave-backend/internal/accounts"
	"github.com/eventrave/eventrave-backend/pkg/config"
	"github.com/eventrave/eventrave-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	cachePinger controllers.Pinger,
	accountsService accounts.Service,
	tokenVerifier middleware.TokenVerifier,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbPinger, cachePinger, logg))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Post("/register", controllers.AccountRegister(accountsService, logg))
	r.Post("/activate", controllers.AccountActivate(accountsService, logg))
	r.Post("/login", controllers.AccountLogin(accountsService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokenVerifier, logg))
		r.Get("/profile", controllers.ProfileShow(accountsService, logg))
		r.Patch("/profile", controllers.ProfileUpdate(accountsService, logg))
	})

	return r
}
