package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rasu25115/pickme/internal/infrastructure/config"
	"github.com/rasu25115/pickme/internal/infrastructure/database"
	"github.com/rasu25115/pickme/internal/infrastructure/migration"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

const migrationsPath = "./internal/infrastructure/persistence/migrations"

// NewCommand creates the migrate command with its subcommands
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (dev, staging, prod)")

	cmd.AddCommand(newUpCommand(&env))
	cmd.AddCommand(newDownCommand(&env))
	cmd.AddCommand(newStatusCommand(&env))
	cmd.AddCommand(newForceCommand(&env))

	return cmd
}

func newUpCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			strategy := initEnv(*env)
			defer closeDatabase()

			if err := strategy.Migrate(database.Get()); err != nil {
				logger.Fatal("migration failed", "error", err)
			}
			logger.Info("migrations applied")
		},
	}
}

func newDownCommand(env *string) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Run: func(cmd *cobra.Command, args []string) {
			strategy := initEnv(*env)
			defer closeDatabase()

			if err := strategy.MigrateDown(database.Get(), steps); err != nil {
				logger.Fatal("rollback failed", "error", err)
			}
			logger.Info("migrations rolled back", "steps", steps)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			strategy := initEnv(*env)
			defer closeDatabase()

			version, dirty, err := strategy.GetVersion(database.Get())
			if err != nil {
				logger.Fatal("failed to get migration version", "error", err)
			}
			logger.Info("migration status", "version", version, "dirty", dirty)
		},
	}
}

func newForceCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "force [version]",
		Short: "Force the migration version without running migrations",
		Long:  "Mark the database as being at a specific version, clearing a dirty state",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var version int
			if _, err := fmt.Sscanf(args[0], "%d", &version); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid version %q: %v\n", args[0], err)
				os.Exit(1)
			}

			strategy := initEnv(*env)
			defer closeDatabase()

			if err := strategy.Force(database.Get(), version); err != nil {
				logger.Fatal("failed to force migration version", "error", err)
			}
			logger.Info("migration version forced", "version", version)
		},
	}
}

// initEnv loads config, initializes the logger and database connection, and
// returns a migration strategy pointed at the SQL scripts directory.
func initEnv(env string) *migration.GolangMigrateStrategy {
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}

	scriptsPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		logger.Fatal("failed to resolve migrations path", "error", err)
	}

	return migration.NewGolangMigrateStrategy(scriptsPath)
}

func closeDatabase() {
	if err := database.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
