package storage

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/stockticker/db/migrations"
	goose "github.com/pressly/goose/v3"
)

// Migrate brings the schema up to date using the embedded goose migrations.
// Every migration is written with IF NOT EXISTS, so running it against an
// already provisioned database only records the goose version.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
