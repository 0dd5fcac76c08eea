package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	_ "modernc.org/sqlite"

	"github.com/soteriapass/pswmgr/internal/server/credstore/migrations"
)

// Open connects to the credential store described by dsn and brings its
// schema up to date. A dsn starting with postgres:// or postgresql://
// selects the postgres backend; anything else is treated as a sqlite
// file path (an optional sqlite:// prefix is stripped).
//
// Opening and migrating retry transient failures with exponential
// backoff, since the database may still be coming up when the server
// starts.
func Open(ctx context.Context, dsn string) (Store, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := open(ctx, "pgx", dsn, "postgres")
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	db, err := open(ctx, "sqlite", path, "sqlite3")
	if err != nil {
		return nil, err
	}
	// Serialized access keeps single-statement atomicity simple for the
	// file-backed store.
	db.SetMaxOpenConns(1)
	return NewSQLiteStore(db), nil
}

func open(ctx context.Context, driver, dsn, dialect string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(100*time.Millisecond))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := migrate(ctx, db, dialect, backoff); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return db, nil
}

func migrate(ctx context.Context, db *sql.DB, dialect string, backoff retry.Backoff) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	dir := "sqlite"
	if dialect == "postgres" {
		dir = "postgres"
	}

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := goose.UpContext(ctx, db, dir); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
