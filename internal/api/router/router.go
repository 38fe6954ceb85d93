package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pratik-mahalle/gigmarket/internal/api/handlers"
	"github.com/pratik-mahalle/gigmarket/internal/api/middleware"
	"github.com/pratik-mahalle/gigmarket/internal/config"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/metrics"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Offer    *handlers.OfferHandler
	Order    *handlers.OrderHandler
	Review   *handlers.ReviewHandler
	BaseInfo *handlers.BaseInfoHandler
	Health   *handlers.HealthHandler
}

// New assembles the HTTP router with the full middleware stack
func New(cfg *config.Config, log *logger.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(metrics.Middleware)
	// Clients built against the original frontend send trailing slashes.
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.NewRateLimiter(50, 100).Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.Live)
	r.Get("/readyz", h.Health.Ready)
	r.Handle("/metrics", metrics.Handler())

	authRequired := middleware.Auth(cfg.Auth.JWTSecret)

	r.Route("/api", func(r chi.Router) {
		r.Post("/registration", h.Auth.Register)
		r.Post("/login", h.Auth.Login)

		r.Get("/base-info", h.BaseInfo.Get)

		r.Get("/offers", h.Offer.List)
		r.Get("/offers/{id}", h.Offer.Get)
		r.Get("/offerdetails/{id}", h.Offer.GetDetail)
		r.Get("/reviews", h.Review.List)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)

			r.Get("/profile/{pk}", h.Profile.Get)
			r.Patch("/profile/{pk}", h.Profile.Update)
			r.Get("/profiles/business", h.Profile.ListBusiness)
			r.Get("/profiles/customer", h.Profile.ListCustomer)
			r.Post("/upload", h.Profile.Upload)

			r.Post("/offers", h.Offer.Create)
			// PUT is a partial update too, same as PATCH.
			r.Patch("/offers/{id}", h.Offer.Update)
			r.Put("/offers/{id}", h.Offer.Update)
			r.Delete("/offers/{id}", h.Offer.Delete)

			r.Post("/orders", h.Order.Create)
			r.Get("/orders", h.Order.List)
			r.Get("/orders/{id}", h.Order.Get)
			r.Patch("/orders/{id}", h.Order.UpdateStatus)
			r.Delete("/orders/{id}", h.Order.Delete)

			r.Get("/order-count/{id}", h.Order.Count)
			r.Get("/completed-order-count/{id}", h.Order.CompletedCount)

			r.Post("/reviews", h.Review.Create)
			r.Patch("/reviews/{id}", h.Review.Update)
			r.Delete("/reviews/{id}", h.Review.Delete)
		})
	})

	return r
}
