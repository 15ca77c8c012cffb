package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"platerate/database"
	"platerate/internal/cache"
	"platerate/internal/config"
	"platerate/internal/http-api/handler"
	"platerate/internal/http-api/middleware"
	"platerate/internal/http-api/repository"
	"platerate/internal/http-api/service"
	"platerate/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("could not load config: %v\n", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid config: %v\n", err)
		return
	}

	log := logger.NewLogger(&logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}
	if err := database.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("admin bootstrap failed")
	}

	// Redis is optional. Without it rating averages are computed per request.
	redisAddr := strings.TrimPrefix(cfg.RedisURL, "redis://")
	ratingCache, err := cache.NewRatingCache(redisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, running without rating cache")
		ratingCache = cache.NewNoopRatingCache()
	}
	defer ratingCache.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewCommentVoteRepository(db)
	reportRepo := repository.NewReportRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	statsService := service.NewStatisticsService(statsRepo, userRepo, vehicleRepo, ratingRepo, commentRepo, reportRepo, incidentRepo)
	ratingService := service.NewRatingService(ratingRepo, vehicleRepo, statsService, ratingCache)
	vehicleService := service.NewVehicleService(vehicleRepo, ratingRepo, commentRepo, ratingCache)
	commentService := service.NewCommentService(commentRepo, vehicleRepo, statsService)
	voteService := service.NewVoteService(voteRepo, commentRepo, statsService)
	moderationService := service.NewModerationService(reportRepo, commentRepo)
	incidentService := service.NewIncidentService(incidentRepo, statsService)
	favoriteService := service.NewFavoriteService(favoriteRepo, vehicleRepo)
	profileService := service.NewProfileService(userRepo, ratingRepo, commentRepo, favoriteRepo, statsService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService, voteService, moderationService)
	incidentHandler := handler.NewIncidentHandler(incidentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	statisticsHandler := handler.NewStatisticsHandler(statsService, profileService)
	adminHandler := handler.NewAdminHandler(moderationService, vehicleService, statsService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public reads carry optional auth so admins see blocked vehicles.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(authService))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireAdmin())

	authHandler.RegisterRoutes(api)
	vehicleHandler.RegisterRoutes(public)
	ratingHandler.RegisterRoutes(public, authed)
	commentHandler.RegisterRoutes(public, authed)
	incidentHandler.RegisterRoutes(public, authed)
	favoriteHandler.RegisterRoutes(authed)
	statisticsHandler.RegisterRoutes(public, authed)
	adminHandler.RegisterRoutes(admin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.WithField("addr", addr).Info("api server listening")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
