package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"scalehouse/internal/infrastructure/config"
	"scalehouse/internal/infrastructure/database"
	"scalehouse/internal/infrastructure/migration"
	"scalehouse/internal/shared/logger"
)

var env string

// NewCommand builds the migrate command with its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&env, "env", "", "environment (development, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func() error {
					manager := migration.NewManagerWithStrategy(migration.NewGooseStrategy())
					return manager.Migrate(database.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func() error {
					return migration.Down(database.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func() error {
					return migration.Status(database.Get())
				})
			},
		},
	)
	return cmd
}

func withDatabase(fn func() error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()
	return fn()
}
