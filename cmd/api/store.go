package main

import (
	"context"
	"database/sql"
	"time"

	"alert-dashboard-service/internal/alerts/adapters/file"
	"alert-dashboard-service/internal/alerts/adapters/memory"
	alertsRepoPg "alert-dashboard-service/internal/alerts/adapters/postgres"
	"alert-dashboard-service/internal/alerts/core/ports"
	"alert-dashboard-service/internal/config"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type recordStore struct {
	reader ports.RecordReaderPort
	writer ports.RecordWriterPort // nil for read-only stores
	close  func()
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*recordStore, error) {
	switch cfg.Store {
	case config.StoreFile:
		log.Info("serving records from file", zap.String("path", cfg.RecordsFile))
		return &recordStore{reader: file.NewSource(cfg.RecordsFile), close: func() {}}, nil

	case config.StorePostgres:
		return openPostgres(ctx, cfg.PostgresDSN, log)

	default:
		seed, err := file.LoadRecords(cfg.RecordsFile)
		if err != nil {
			return nil, err
		}
		log.Info("records loaded", zap.String("path", cfg.RecordsFile), zap.Int("count", len(seed)))

		s := memory.NewStore(seed)
		return &recordStore{reader: s, writer: s, close: func() {}}, nil
	}
}

func openPostgres(ctx context.Context, dsn string, log *zap.Logger) (*recordStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	repo := alertsRepoPg.NewAlertRepository(alertsRepoPg.NewSQLDB(db))
	if err := repo.EnsureSchema(pctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("postgres record store ready")

	return &recordStore{
		reader: repo,
		writer: repo,
		close: func() {
			if err := db.Close(); err != nil {
				log.Warn("postgres close failed", zap.Error(err))
			}
		},
	}, nil
}
