package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/logging"
	"starwars/internal/seed"
	"starwars/internal/services"
	"starwars/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load(viper.New())
	log := logging.New(os.Stdout, cfg.LogLevel)

	// --- Database ---
	if cfg.DatabaseURL == "" {
		log.WithField("path", cfg.SQLitePath).Info("DATABASE_URL is not set, using embedded SQLite store")
	}
	db, err := database.Open(database.Dialector(cfg.DatabaseURL, cfg.SQLitePath), log)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Info("Connected to database")

	if cfg.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		if _, err := seed.Run(db, fixture, log); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// --- Favorite events (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Logger: log})
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, favorite events disabled")
		} else {
			defer mqClient.Close()
			publisher = mqClient

			err := mqClient.ConsumeFavoriteEvents(func(msg amqp.Delivery) error {
				event, err := rabbitmq.DecodeFavoriteEvent(msg.Body)
				if err != nil {
					return err
				}
				log.WithField("type", event.Type).
					WithField("favorite_id", event.FavoriteID).
					WithField("user_id", event.UserID).
					Info("Favorite event")
				return nil
			})
			if err != nil {
				log.WithError(err).Warn("Failed to start favorite event consumer")
			}
		}
	}

	app := NewApp(cfg, db, publisher, log)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", cfg.ListenAddr()).Info("Starting server")
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("Error during Fiber shutdown")
	}
	log.Info("Server gracefully stopped")
}
