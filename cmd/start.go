package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"layersync/core/config"
	"layersync/core/database"
	"layersync/core/layer"
	"layersync/core/loader"
	"layersync/core/logger"
	"layersync/core/middleware/auth"
	"layersync/core/middleware/rayid"
	"layersync/core/middleware/requestlog"
	"layersync/core/storage"
	"layersync/feature/layers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "layersync/docs/swagger"
)

// @title Layer Sync API
// @version 1.0
// @description API for syncing scene view layers with their collection hierarchy.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the layer sync server",
	Long:  `Starts the HTTP server, loads the configured scene document and registers all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		engine := layer.NewEngineFromConfig(cfg.Sync, logg)

		// The state database is optional: without it state only lives in the
		// documents.
		var stateStore *layers.Store
		if cfg.Layers.Persist {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else if stateStore, err = layers.NewStore(conn, cfg.Layers.Migrate); err != nil {
				logg.Fatal("Failed to prepare state tables", zap.Error(err))
			} else {
				logg.Info("Connected to state database", zap.String("driver", cfg.Database.Driver))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		docs := storage.NewDocuments(client, cfg.Storage)
		svc := layers.NewService(engine, docs, stateStore, logg, cfg.Layers.Document)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		if err := docs.EnsureBucket(ctx); err != nil {
			logg.Warn("Document bucket unavailable", zap.Error(err))
		} else if _, err := svc.Load(ctx, ""); err != nil {
			logg.Warn("Initial document load failed", zap.String("document", cfg.Layers.Document), zap.Error(err))
		}
		cancel()

		mgr := loader.NewManager(logg)
		if err := mgr.Register(layers.NewFeature(svc)); err != nil {
			logg.Fatal("Failed to register feature", zap.Error(err))
		}

		// RayID first so every log line carries it.
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))

		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		if !cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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
