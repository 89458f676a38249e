package jobs

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scalehouse/internal/application/jobs/usecases"
	"scalehouse/internal/infrastructure/config"
	"scalehouse/internal/infrastructure/database"
	"scalehouse/internal/infrastructure/jobsource"
	"scalehouse/internal/infrastructure/migration"
	"scalehouse/internal/infrastructure/repository"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/db"
	"scalehouse/internal/shared/logger"
)

var env string

// NewCommand builds the jobs command with its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage the jobs cache",
	}
	cmd.PersistentFlags().StringVar(&env, "env", "", "environment (development, production)")

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Refresh the jobs cache from the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd)
		},
	})
	return cmd
}

func runRefresh(cmd *cobra.Command) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	biztime.MustInit(cfg.Business.Timezone)

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Server.Mode)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return err
	}

	gormDB := database.Get()
	refreshUC := usecases.NewRefreshJobsUseCase(
		jobsource.NewSource(&cfg.Jobs),
		repository.NewJobCacheRepository(gormDB),
		db.NewTransactionManager(gormDB),
		time.Duration(cfg.Jobs.TimeoutSeconds)*time.Second,
		logger.NewLogger(),
	)

	result, err := refreshUC.Execute(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("refreshed %d jobs from %s source\n", result.RowCount, result.Source)
	return nil
}
