package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
	"github.com/evoshop/storefront/pkg/retry"
)

var _ port.CartRepository = (*SQLRepository)(nil)

type sqldb interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// SQLRepository keeps one cart snapshot row per client id.
type SQLRepository struct {
	sqldb    sqldb
	clientID string
}

func NewSQLRepository(ctx context.Context, dsn, clientID string) (SQLRepository, error) {
	const op = "SQLRepository"

	connConfig, _ := pgx.ParseConfig(dsn)
	connStr := stdlib.RegisterConnConfig(connConfig)
	db, _ := sql.Open("pgx", connStr)

	r := SQLRepository{db, clientID}
	if err := r.ping(ctx); err != nil {
		return SQLRepository{}, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

func (r SQLRepository) ping(ctx context.Context) error {
	const op = "SQLRepository.ping"

	retryCfg := retry.Config{
		MaxAttempts: 5,
		Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
	}

	err := retry.Do(ctx, retryCfg, func() error {
		return r.sqldb.PingContext(ctx)
	})
	if err != nil {
		return fmt.Errorf("%s: database unavailable: %w", op, err)
	}
	slog.Info("database is available", "op", op)
	return nil
}

func (r SQLRepository) Load(ctx context.Context) ([]domain.CartItem, error) {
	const op = "SQLRepository.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT items FROM cart_snapshots WHERE client_id = $1;`

	var data []byte
	err := r.sqldb.QueryRowContext(ctx, query, r.clientID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, port.ErrNoCart)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (r SQLRepository) Save(ctx context.Context, items []domain.CartItem) error {
	const op = "SQLRepository.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := encodeItems(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO cart_snapshots (client_id, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (client_id) DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.sqldb.ExecContext(ctx, query, r.clientID, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r SQLRepository) Close() {
	const op = "SQLRepository.Close"
	log := slog.With("op", op)

	log.Info("closing sql database...")
	if err := r.sqldb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("sql database is closed")
}
