package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-admin/core/config"
	"catalog-admin/core/database"
	"catalog-admin/core/loader"
	"catalog-admin/core/logger"
	"catalog-admin/core/middleware/actor"
	"catalog-admin/core/middleware/auth"
	"catalog-admin/core/middleware/rayid"
	"catalog-admin/core/storage"
	"catalog-admin/feature/catalog"
	"catalog-admin/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-admin/docs/swagger"
)

// @title Catalog Admin API
// @version 1.0
// @description Administrative API for catalog items, their variants and priced options.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog admin server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database and create the schema
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(models.All()...); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}
		logg = logg.With(zap.String("driver", cfg.Database.Driver))
		logg.Info("Connected to database")

		// 4. Initialize Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Storage bucket is not available; image uploads will fail", zap.Error(err))
		}
		cancel()
		publisher := storage.NewPublisher(client, cfg.Storage)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, publisher, logg, cfg.Catalog))

		// Middleware Registration
		// RayID first so every log line can be traced
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Everything below requires the API key
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		app.Use(actor.New(actor.Config{Secret: cfg.Server.JWTSecret}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
