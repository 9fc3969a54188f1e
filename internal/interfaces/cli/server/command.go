package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rasu25115/pickme/internal/infrastructure/config"
	"github.com/rasu25115/pickme/internal/infrastructure/database"
	"github.com/rasu25115/pickme/internal/infrastructure/migration"
	httpInterface "github.com/rasu25115/pickme/internal/interfaces/http"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

const migrationsPath = "./internal/infrastructure/persistence/migrations"

// NewCommand creates the server command
func NewCommand() *cobra.Command {
	var (
		env                string
		autoMigrate        bool
		skipMigrationCheck bool
	)

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the admin API server",
		Long:  "Start the HTTP server exposing the catalog, provider key and rate plan admin APIs",
		Run: func(cmd *cobra.Command, args []string) {
			runServer(env, autoMigrate, skipMigrationCheck)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (dev, staging, prod)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run GORM auto-migration on startup (development only)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip the pending migration check on startup")

	return cmd
}

func runServer(env string, autoMigrate, skipMigrationCheck bool) {
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ginMode := mapEnvToGinMode(cfg.Server.Mode)
	gin.SetMode(ginMode)
	if ginMode == gin.ReleaseMode {
		gin.DefaultWriter = io.Discard
	}

	logger.Info("starting server",
		"mode", cfg.Server.Mode,
		"addr", cfg.Server.GetAddr())

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := handleMigrations(autoMigrate, skipMigrationCheck); err != nil {
		logger.Fatal("migration check failed", "error", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			logger.Fatal("failed to connect to redis", "error", err)
		}
		cancel()
		defer redisClient.Close()
		logger.Info("redis connection established", "addr", cfg.Redis.GetAddr())
	}

	log := logger.NewLogger()
	router := httpInterface.NewRouter(cfg, database.Get(), redisClient, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func handleMigrations(autoMigrate, skipMigrationCheck bool) error {
	if autoMigrate {
		logger.Warn("running auto-migration, do not use in production")
		strategy := migration.NewAutoMigrateStrategy()
		return strategy.Migrate(database.Get(), migration.AutoMigrateModels()...)
	}

	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	scriptsPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to check migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty migration state at version %d, run 'pickme migrate force' to fix", version)
	}

	logger.Info("migration check passed", "version", version)
	return nil
}

func mapEnvToGinMode(mode string) string {
	switch mode {
	case "prod", "production", "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
