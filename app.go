package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"starwars/internal/apierror"
	"starwars/internal/config"
	"starwars/internal/handlers"
	"starwars/internal/repositories"
	"starwars/internal/services"
)

// NewApp wires repositories, services and handlers over db into a Fiber app.
// publisher may be nil, in which case no favorite events are emitted.
func NewApp(cfg config.Config, db *gorm.DB, publisher services.EventPublisher, log *logrus.Logger) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	characterRepo := repositories.NewGORMCharacterRepository(db)
	planetRepo := repositories.NewGORMPlanetRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	// --- Services ---
	catalogService := services.NewCatalogService(userRepo, characterRepo, planetRepo)
	favoriteService := services.NewFavoriteService(
		favoriteRepo, userRepo, planetRepo, characterRepo,
		publisher, log, cfg.FavoritesUserFallback,
	)

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, cfg.LegacyErrorEnvelope)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:      "starwars-blog",
		ErrorHandler: apierror.Handler(log),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	// --- Routes ---
	app.Get("/", handlers.HandleSitemap)
	app.Get("/health", healthHandler.HandleHealth)
	catalogHandler.RegisterRoutes(app)
	favoriteHandler.RegisterRoutes(app)

	return app
}
