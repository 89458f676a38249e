package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	jobsusecases "scalehouse/internal/application/jobs/usecases"
	catalogusecases "scalehouse/internal/application/catalog/usecases"
	ticketusecases "scalehouse/internal/application/ticket/usecases"
	"scalehouse/internal/infrastructure/config"
	"scalehouse/internal/infrastructure/database"
	"scalehouse/internal/infrastructure/documents"
	"scalehouse/internal/infrastructure/jobsource"
	"scalehouse/internal/infrastructure/migration"
	"scalehouse/internal/infrastructure/pdf"
	"scalehouse/internal/infrastructure/printing"
	"scalehouse/internal/infrastructure/repository"
	cataloghandlers "scalehouse/internal/interfaces/http/handlers/catalog"
	jobshandlers "scalehouse/internal/interfaces/http/handlers/jobs"
	tickethandlers "scalehouse/internal/interfaces/http/handlers/ticket"
	reporthandlers "scalehouse/internal/interfaces/http/handlers/report"
	"scalehouse/internal/interfaces/http/routes"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/db"
	"scalehouse/internal/shared/logger"
)

var env string

// NewCommand builds the server command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the ticket HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	cmd.Flags().StringVar(&env, "env", "", "environment (development, production)")
	return cmd
}

func run() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	biztime.MustInit(cfg.Business.Timezone)

	if cfg.Server.Mode == "release" || cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Server.Mode)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := wire(cfg)

	if cfg.Jobs.RefreshOnStartup {
		if _, err := app.refreshJobsUC.Execute(ctx); err != nil {
			// The cache keeps serving its last-good rows.
			logger.Warn("startup jobs refresh failed", "error", err)
		}
	}

	engine := routes.NewRouter(app.routerConfig(), logger.NewLogger())
	server := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// application holds the wired use cases backing the HTTP layer.
type application struct {
	issueTicketUC    *ticketusecases.IssueTicketUseCase
	getTicketUC      *ticketusecases.GetTicketUseCase
	searchTicketsUC  *ticketusecases.SearchTicketsUseCase
	getDocumentUC    *ticketusecases.GetDocumentUseCase
	printTicketUC    *ticketusecases.PrintTicketUseCase
	getReportUC      *ticketusecases.GetReportUseCase
	exportCSVUC      *ticketusecases.ExportReportCSVUseCase
	reportDocumentUC *ticketusecases.ReportDocumentUseCase
	refreshJobsUC    *jobsusecases.RefreshJobsUseCase
	listJobsUC       *jobsusecases.ListJobsUseCase
	truckUC          *catalogusecases.TruckUseCases
	materialUC       *catalogusecases.MaterialUseCases
	customerUC       *catalogusecases.CustomerUseCases
}

func wire(cfg *config.Config) *application {
	gormDB := database.Get()
	log := logger.NewLogger()

	ticketRepo := repository.NewTicketRepository(gormDB)
	sequenceRepo := repository.NewSequenceRepository(gormDB)
	jobRepo := repository.NewJobCacheRepository(gormDB)
	truckRepo := repository.NewTruckRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	priceRepo := repository.NewMaterialPriceRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)

	store := documents.NewStore(&cfg.Documents)
	ticketRenderer := pdf.NewTicketRenderer(&cfg.Company)
	reportRenderer := pdf.NewReportRenderer(&cfg.Company)
	printer := printing.NewCommandDispatcher(&cfg.Printing)
	txManager := db.NewTransactionManager(gormDB)
	source := jobsource.NewSource(&cfg.Jobs)

	getReportUC := ticketusecases.NewGetReportUseCase(ticketRepo, log)

	return &application{
		issueTicketUC: ticketusecases.NewIssueTicketUseCase(
			ticketRepo, sequenceRepo, jobRepo, truckRepo, materialRepo,
			ticketRenderer, store, printer, log),
		getTicketUC:      ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		searchTicketsUC:  ticketusecases.NewSearchTicketsUseCase(ticketRepo, log),
		getDocumentUC:    ticketusecases.NewGetDocumentUseCase(ticketRepo, store, log),
		printTicketUC:    ticketusecases.NewPrintTicketUseCase(ticketRepo, store, printer, log),
		getReportUC:      getReportUC,
		exportCSVUC:      ticketusecases.NewExportReportCSVUseCase(getReportUC, log),
		reportDocumentUC: ticketusecases.NewReportDocumentUseCase(ticketRepo, reportRenderer, store, printer, log),
		refreshJobsUC: jobsusecases.NewRefreshJobsUseCase(
			source, jobRepo, txManager,
			time.Duration(cfg.Jobs.TimeoutSeconds)*time.Second, log),
		listJobsUC: jobsusecases.NewListJobsUseCase(jobRepo, log),
		truckUC:    catalogusecases.NewTruckUseCases(truckRepo, log),
		materialUC: catalogusecases.NewMaterialUseCases(materialRepo, priceRepo, log),
		customerUC: catalogusecases.NewCustomerUseCases(customerRepo, log),
	}
}

func (a *application) routerConfig() *routes.RouterConfig {
	return &routes.RouterConfig{
		Ticket: &routes.TicketRouteConfig{
			TicketHandler: tickethandlers.NewTicketHandler(
				a.issueTicketUC, a.getTicketUC, a.searchTicketsUC,
				a.getDocumentUC, a.printTicketUC),
		},
		Jobs: &routes.JobsRouteConfig{
			JobsHandler: jobshandlers.NewJobsHandler(a.refreshJobsUC, a.listJobsUC),
		},
		Catalog: &routes.CatalogRouteConfig{
			CatalogHandler: cataloghandlers.NewCatalogHandler(a.truckUC, a.materialUC, a.customerUC),
		},
		Report: &routes.ReportRouteConfig{
			ReportHandler: reporthandlers.NewReportHandler(
				a.getReportUC, a.exportCSVUC, a.reportDocumentUC),
		},
	}
}
