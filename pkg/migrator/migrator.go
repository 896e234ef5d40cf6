package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations opens dbURL and applies every pending migration in files.
// It returns the migrations that were applied by this call.
func RunMigrations(ctx context.Context, dbURL string, files fs.FS) ([]*goose.MigrationResult, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, db, files)
}

// Up is RunMigrations over an already open handle. db is left open.
func Up(ctx context.Context, db *sql.DB, files fs.FS) ([]*goose.MigrationResult, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("apply migrations: %w", err)
	}
	return results, nil
}
