package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avastudio/avatar-api/internal/api/handler"
	customMiddleware "github.com/avastudio/avatar-api/internal/api/middleware"
	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/avastudio/avatar-api/internal/repository/postgres"
	"github.com/avastudio/avatar-api/internal/repository/redis"
	"github.com/avastudio/avatar-api/internal/security"
	"github.com/avastudio/avatar-api/internal/service"
)

// Deps carries the wired application components the router exposes.
// db and redisClient may be nil; the affected surfaces degrade.
type Deps struct {
	Providers       *provider.Registry
	GenerateService *service.GenerateService
	GalleryService  *service.GalleryService
	VoteService     *service.VoteService
	DB              *postgres.DB
	RedisClient     *redis.Client
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, 24*time.Hour)
	adminGate := security.NewAdminGate(cfg.Auth.AdminUser, cfg.Auth.AdminPasswordHash)
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager, adminGate)

	generateHandler := handler.NewGenerateHandler(deps.GenerateService)
	avatarHandler := handler.NewAvatarHandler(deps.GalleryService)
	voteHandler := handler.NewVoteHandler(deps.VoteService)

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.DB))
		r.Get("/providers", handler.ListProviders(deps.Providers))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Optional)

			if deps.RedisClient != nil {
				rateLimiter := redis.NewRateLimiter(
					deps.RedisClient,
					cfg.RateLimit.RequestsPerMinute,
					cfg.RateLimit.Burst,
				)
				r.Use(customMiddleware.NewRateLimitMiddleware(rateLimiter).Limit)
			}

			r.Post("/generate", generateHandler.Generate)

			r.Route("/avatars", func(r chi.Router) {
				r.Get("/", avatarHandler.List)

				r.Route("/{avatarID}", func(r chi.Router) {
					r.Get("/", avatarHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(authMiddleware.RequireAuth)
						r.Post("/like", voteHandler.ToggleLike)
						r.Post("/vote", voteHandler.CastVote)
					})

					r.Group(func(r chi.Router) {
						r.Use(authMiddleware.RequireAdmin)
						r.Delete("/", avatarHandler.Delete)
					})
				})
			})
		})
	})

	return r
}
