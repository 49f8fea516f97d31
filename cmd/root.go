package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erasmus-survival/erasmusbot/internal/config"
	"github.com/erasmus-survival/erasmusbot/internal/repository/postgres"
	"github.com/erasmus-survival/erasmusbot/internal/service"
	"github.com/erasmus-survival/erasmusbot/pkg/logger"
)

var flagMigrations string

var rootCmd = &cobra.Command{
	Use:   "erasmusbot",
	Short: "Erasmus Survival — expenses, pantry, shopping lists, schedule and reminders",
	Long: "Erasmus Survival keeps a single student's life on track: monthly expenses,\n" +
		"pantry stock, shopping lists that restock the pantry when checked off,\n" +
		"a weekly class schedule and one-off reminders. Served over Telegram and HTTP.",
	RunE: runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMigrations, "migrations", "migrations", "Path to the SQL migrations directory")
}

// openStore is the shared startup path: env, config, logger, database,
// migrations, and a loaded domain store. The caller owns closing the
// returned Database.
func openStore(cmd *cobra.Command) (*service.Service, *config.Database, *config.Config, *logrus.Logger, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.NewDatabase(cfg.DatabaseURL, l)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.Migrate(flagMigrations); err != nil {
		db.Close()
		return nil, nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	svc := service.New(postgres.NewStateRepository(db.DB), l)
	if err := svc.Load(cmd.Context()); err != nil {
		db.Close()
		return nil, nil, nil, nil, fmt.Errorf("load domain store: %w", err)
	}

	return svc, db, cfg, l, nil
}
