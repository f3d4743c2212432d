package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paws/shelter-backend/internal/api/handler"
	"github.com/paws/shelter-backend/internal/api/middleware"
	"github.com/paws/shelter-backend/internal/core/domain"
	"github.com/paws/shelter-backend/internal/core/service"
	"github.com/paws/shelter-backend/internal/infrastructure/config"
	mongodb "github.com/paws/shelter-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/paws/shelter-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shelter"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	animalRepo := mongodb.NewAnimalRepository(db)
	listingCache := redisdb.NewListingCache(rdb)

	tokens := service.NewTokenService(cfg.Token.Mode, cfg.Token.Prefix, cfg.Token.JWTSecret, cfg.Token.TTL)
	guard := service.NewGuard(userRepo, tokens)
	userService := service.NewUserService(userRepo, tokens, log)
	animalService := service.NewAnimalService(animalRepo, listingCache, log)

	userHandler := handler.NewUserHandler(userService, cfg.LegacyLoginPayload)
	animalHandler := handler.NewAnimalHandler(animalService)

	// --- Account routes ---
	e.POST("/users/register", userHandler.Register)
	e.POST("/users/login", userHandler.Login)
	e.POST("/volunteers/apply", userHandler.ApplyForVolunteer)

	// --- Animal routes ---
	e.GET("/animals/available", animalHandler.Available)
	e.GET("/animals/all", animalHandler.All)
	e.GET("/animals/search", animalHandler.Search)
	e.GET("/animals/:id", animalHandler.Get)
	e.POST("/animals/add", animalHandler.Add)
	e.PUT("/animals/:id", animalHandler.Update,
		middleware.Auth(guard), middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
