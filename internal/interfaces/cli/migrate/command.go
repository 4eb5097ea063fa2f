package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gorm.io/gorm"

	"gearshop/internal/infrastructure/config"
	"gearshop/internal/infrastructure/database"
	"gearshop/internal/infrastructure/migration"
	"gearshop/internal/shared/logger"
)

var (
	env     string
	steps   int
	version int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect the current version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newVersionCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current migration version",
		RunE:  runVersion,
	}
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the migration version without running migrations",
		Long:  `Set the schema version record directly. Use this to recover from a dirty migration state.`,
		RunE:  runForce,
	}

	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to force (required)")
	cmd.MarkFlagRequired("version")

	return cmd
}

func initEnv() (*gorm.DB, string, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	gormDB, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return gormDB, scriptsPath, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	gormDB, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	log.Infow("running up migrations", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.Migrate(gormDB); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	gormDB, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.MigrateDown(gormDB, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	gormDB, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	current, dirty, err := strategy.GetVersion(gormDB)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", current)
	fmt.Printf("  Dirty:           %t\n", dirty)

	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	gormDB, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	log.Warnw("forcing migration version", "version", version)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.Force(gormDB, version); err != nil {
		log.Errorw("failed to force migration version", "error", err)
		return fmt.Errorf("failed to force migration version: %w", err)
	}

	log.Infow("migration version forced", "version", version)
	return nil
}
