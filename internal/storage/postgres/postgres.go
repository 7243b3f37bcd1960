// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

type pg struct {
	db *sqlx.DB
}

type recordDTO struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		db: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) Load(ctx context.Context, key string) (string, error) {
	var r recordDTO

	if err := sqlx.GetContext(ctx, s.db, &r, `SELECT key, value FROM kv WHERE key = $1`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to query: %w", err)
	}

	return r.Value, nil
}

func (s pg) Save(ctx context.Context, key, value string) error {
	if _, err := sqlx.NamedExecContext(ctx, s.db,
		`
			INSERT INTO kv(key, value) VALUES(:key, :value)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=(now() AT TIME ZONE 'utc')
		`, recordDTO{Key: key, Value: value},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Remove(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		log.WithField("key", key).Debug("nothing to remove")
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}
