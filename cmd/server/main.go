package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avastudio/avatar-api/internal/api"
	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/avastudio/avatar-api/internal/provider/gemini"
	"github.com/avastudio/avatar-api/internal/provider/pollinations"
	"github.com/avastudio/avatar-api/internal/repository/null"
	"github.com/avastudio/avatar-api/internal/repository/postgres"
	"github.com/avastudio/avatar-api/internal/repository/redis"
	"github.com/avastudio/avatar-api/internal/service"
	"github.com/avastudio/avatar-api/internal/storage"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil && cfg.Logging.Level != "" {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting avatar API server")

	ctx := context.Background()

	// Persistence is optional: without a database the service runs on
	// the null store and avatars are returned unsaved
	var db *postgres.DB
	var avatarRepo domain.AvatarRepository = null.AvatarStore{}
	var likeRepo domain.LikeRepository = null.LikeStore{}
	var voteRepo domain.VoteRepository = null.VoteStore{}
	if cfg.Database.Configured() {
		db, err = postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		avatarRepo = postgres.NewAvatarRepository(db)
		likeRepo = postgres.NewLikeRepository(db)
		voteRepo = postgres.NewVoteRepository(db)
	} else {
		log.Warn().Msg("Database not configured, running with null store")
	}

	// Redis is optional: no rate limiting or gallery cache without it
	var redisClient *redis.Client
	var galleryCache *redis.GalleryCache
	if cfg.Redis.Configured() {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()

		galleryCache = redis.NewGalleryCache(redisClient)
	} else {
		log.Warn().Msg("Redis not configured, rate limiting and caching disabled")
	}

	// Blob storage is optional: raster avatars keep provider URLs without it
	var blobs storage.BlobStore = storage.NullStore{}
	if cfg.Storage.Configured() {
		s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize blob storage")
		}
		blobs = s3Store
	}

	// Register generation providers
	registry := provider.NewRegistry(cfg.Provider.Default)
	registry.Register(gemini.NewProvider(cfg.Provider.Gemini))
	registry.Register(pollinations.NewProvider(cfg.Provider.Pollinations))
	if cfg.Provider.Gemini.APIKey == "" {
		log.Warn().Msg("Gemini API key is empty, provider registered but unusable")
	}

	// Initialize services
	generateService := service.NewGenerateService(registry, avatarRepo, blobs, galleryCache, cfg.Pipeline)
	galleryService := service.NewGalleryService(avatarRepo, blobs, galleryCache)
	voteService := service.NewVoteService(avatarRepo, likeRepo, voteRepo)

	// Initialize router
	router := api.NewRouter(cfg, api.Deps{
		Providers:       registry,
		GenerateService: generateService,
		GalleryService:  galleryService,
		VoteService:     voteService,
		DB:              db,
		RedisClient:     redisClient,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
