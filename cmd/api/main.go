package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	alertsHttp "alert-dashboard-service/internal/alerts/adapters/http/fiber"
	alertsDomain "alert-dashboard-service/internal/alerts/core/domain"
	alertsUsecase "alert-dashboard-service/internal/alerts/core/usecase"

	dashboardHttp "alert-dashboard-service/internal/dashboard/adapters/http/fiber"
	dashboardDomain "alert-dashboard-service/internal/dashboard/core/domain"
	dashboardUsecase "alert-dashboard-service/internal/dashboard/core/usecase"

	"alert-dashboard-service/internal/config"
	"alert-dashboard-service/internal/logger"
	"alert-dashboard-service/internal/server"

	"github.com/spf13/viper"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "alert-dashboard-service/docs"
)

// @title Alert Dashboard Service API
// @version 1.0
// @description Aggregates alert records by category, severity or day and serves bar, pie, line and doughnut chart configs.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.Load(viper.New(), os.Getenv(config.EnvPrefix+"_CONFIG"))
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dates, err := alertsDomain.NewDateFormatter(cfg.Locale, cfg.Timezone)
	if err != nil {
		zl.Fatal("invalid date settings", zap.Error(err))
	}

	// Record store
	st, err := openStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open record store", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer st.close()

	// Usecases
	aggregateUC := alertsUsecase.NewAggregateAlertsUseCase(st.reader, dates, zl)

	var storeUC alertsHttp.StoreAlertUseCase
	if st.writer != nil {
		storeUC = alertsUsecase.NewStoreAlertUseCase(st.writer, dates, zl)
	}

	defaultKey, err := alertsDomain.ParseGroupKey(cfg.DefaultGroupBy)
	if err != nil {
		zl.Fatal("invalid default group_by", zap.Error(err))
	}
	board := dashboardDomain.NewBoard(dashboardDomain.State{
		GroupBy:   defaultKey,
		DarkTheme: cfg.DefaultDarkTheme,
	})
	defer board.Close()

	dashboardUC := dashboardUsecase.NewDashboardUseCase(aggregateUC, board, zl)
	if _, err := dashboardUC.Current(ctx); err != nil {
		zl.Warn("initial dashboard render failed", zap.Error(err))
	}

	// HTTP (Fiber) app + handlers
	app := server.New(zl)

	alertsHttp.NewAlertHandler(aggregateUC, storeUC).Register(app)
	dashboardHttp.NewDashboardHandler(dashboardUC).Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	if err := server.Run(ctx, app, cfg.HTTPAddr, cfg.ShutdownTimeout, zl); err != nil {
		zl.Error("server stopped", zap.Error(err))
	}
}
