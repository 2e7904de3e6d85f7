package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/brandlink/brandlink-api/internal/config"
	"github.com/brandlink/brandlink-api/internal/domain/campaign"
	"github.com/brandlink/brandlink-api/internal/domain/catalog"
	"github.com/brandlink/brandlink-api/internal/domain/coupon"
	"github.com/brandlink/brandlink-api/internal/domain/store"
	"github.com/brandlink/brandlink-api/internal/domain/upload"
	"github.com/brandlink/brandlink-api/internal/middleware"
	"github.com/brandlink/brandlink-api/internal/pkg/database"
	"github.com/brandlink/brandlink-api/internal/pkg/imaging"
	"github.com/brandlink/brandlink-api/internal/pkg/jwt"
	"github.com/brandlink/brandlink-api/internal/pkg/logger"
	pkgresponse "github.com/brandlink/brandlink-api/internal/pkg/response"
	"github.com/brandlink/brandlink-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting BrandLink API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Storage ----------
	// Local storage always backs staging; S3 takes over permanent
	// storage when credentials are configured.
	localStorage, err := storage.NewLocalStorage(cfg.LocalStoragePath, cfg.BackendURL+"/files")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create local storage")
	}

	var cloudStorage storage.Storage
	if cfg.UseS3() {
		s3Storage, err := storage.NewS3Storage(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
		cloudStorage = s3Storage
		log.Info().Str("bucket", cfg.S3Bucket).Msg("S3 storage configured")
	} else {
		log.Warn().Msg("S3 not configured, assets stay on local storage")
	}

	imageProcessor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Repositories ----------
	storeRepo := store.NewRepository(db)
	campaignRepo := campaign.NewRepository(db)
	couponRepo := coupon.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	assetRepo := upload.NewRepository(db)

	// ---------- Services ----------
	storeService := store.NewService(storeRepo)
	couponService := coupon.NewService(couponRepo)
	catalogService := catalog.NewService(catalogRepo)
	campaignService := campaign.NewService(campaignRepo, couponService, catalogService)
	uploadService := upload.NewService(assetRepo, localStorage, cloudStorage, imageProcessor, cfg.BackendURL+"/files")

	// ---------- Handlers ----------
	storeHandler := store.NewHandler(storeService)
	campaignHandler := campaign.NewHandler(campaignService)
	couponHandler := coupon.NewHandler(couponService)
	catalogHandler := catalog.NewHandler(catalogService)
	uploadHandler := upload.NewHandler(uploadService, cfg.BackendURL+"/files")

	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	rateLimit := middleware.RateLimit(redis, cfg.RateLimitPerMinute, time.Minute)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(rateLimit)
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/campaigns", campaignHandler.Routes(authMiddleware, optionalAuth))
		r.Mount("/stores", storeHandler.Routes(authMiddleware))
		r.Mount("/coupons", couponHandler.Routes(authMiddleware))
		r.Mount("/catalog", catalogHandler.Routes(authMiddleware))
		r.Mount("/uploads", uploadHandler.Routes(authMiddleware))
	})

	// Serve locally stored files in development
	if !cfg.UseS3() {
		fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.LocalStoragePath)))
		r.Get("/files/*", fileServer.ServeHTTP)
	}

	// Staged assets past their TTL get swept in the background
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if n, err := uploadService.CleanupExpired(ctx); err != nil {
				log.Error().Err(err).Msg("asset cleanup failed")
			} else if n > 0 {
				log.Info().Int("removed", n).Msg("expired staged assets removed")
			}
			cancel()
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
