package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/receiptiq/receiptiq/gen/ent"
	"github.com/receiptiq/receiptiq/internal/repository"
)

// InitDatabase connects to Postgres, verifies the connection, and returns the
// Ent client together with a cleanup function that closes everything.
func InitDatabase(ctx context.Context, cfg *Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, func(), error) {
	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		repository.Close(client, pool, logger)
		return nil, nil, nil, err
	}

	cleanup := func() { repository.Close(client, pool, logger) }
	return client, pool, cleanup, nil
}
