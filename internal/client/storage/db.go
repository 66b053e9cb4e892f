// Package storage opens the client-local sqlite database, applies schema
// migrations, and hands out the repositories backed by it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/winkhq/onboard/internal/client/migrations"
	"github.com/winkhq/onboard/internal/client/repositories/drafts"
)

type DB struct {
	db     *sql.DB
	Drafts drafts.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the database at dsn and brings the
// schema up to date.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate client db: %w", err)
	}

	return &DB{db: db, Drafts: drafts.NewSQLiteRepository(db)}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
