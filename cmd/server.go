package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/attendance"
	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/insights"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/logistics"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/maintenance"
	"github.com/plantworks/facilityops/internal/store"
	"github.com/plantworks/facilityops/internal/sysconfig"
	"github.com/plantworks/facilityops/internal/task"
	"github.com/plantworks/facilityops/internal/transport/rest"
	"github.com/plantworks/facilityops/internal/user"
	"github.com/plantworks/facilityops/internal/visitor"
	"github.com/plantworks/facilityops/internal/worklog"
	"github.com/plantworks/facilityops/pkg/database"
	"github.com/plantworks/facilityops/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Store  *store.Store
	Router *chi.Mux
	Logger *slog.Logger
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	lg := logger.L()

	db, err := database.Connect(database.Config{
		Driver:          cfg.Storage.Driver,
		DSN:             cfg.Storage.Source,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	substrate, err := store.NewGormSubstrate(db)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare record store: %w", err)
	}
	st := store.New(substrate, lg)

	bus := events.NewEventBus(lg)

	userSvc := user.NewService(st, lg)
	inventorySvc := inventory.NewService(st, bus, lg)
	worklogSvc := worklog.NewService(st, bus, lg)
	logisticsSvc := logistics.NewService(st, lg)
	visitorSvc := visitor.NewService(st, lg)
	maintenanceSvc := maintenance.NewService(st, lg)
	taskSvc := task.NewService(st, lg)
	attendanceSvc := attendance.NewService(st, lg)
	machineSvc := machine.NewService(st, lg)
	sysconfigSvc := sysconfig.NewService(st, lg)

	// log → inventory side effect
	inventory.NewEventHandler(inventorySvc, lg).RegisterEventHandlers(bus)

	insightsClient := insights.NewClient(insights.Config{
		BaseURL: cfg.Insights.BaseURL,
		APIKey:  cfg.Insights.APIKey,
		Timeout: cfg.Insights.Timeout,
		Enabled: cfg.Insights.Enabled,
	}, lg)

	handlers := rest.Handlers{
		User:        user.NewHandler(userSvc),
		Inventory:   inventory.NewHandler(inventorySvc),
		WorkLog:     worklog.NewHandler(worklogSvc),
		Logistics:   logistics.NewHandler(logisticsSvc),
		Visitor:     visitor.NewHandler(visitorSvc),
		Maintenance: maintenance.NewHandler(maintenanceSvc),
		Task:        task.NewHandler(taskSvc, userSvc),
		Attendance:  attendance.NewHandler(attendanceSvc),
		Machine:     machine.NewHandler(machineSvc),
		SysConfig:   sysconfig.NewHandler(sysconfigSvc),
		Insights:    insights.NewHandler(insightsClient, inventorySvc, machineSvc, worklogSvc),
		Admin:       rest.NewAdminHandler(st),
	}

	router := chi.NewRouter()
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access storage connection: %w", err)
	}
	rest.RegisterAllRoutes(router, sqlDB, handlers, lg)

	return &Dependencies{
		Config: cfg,
		Store:  st,
		Router: router,
		Logger: lg,
	}, nil
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}
