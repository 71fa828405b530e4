// Package db owns the schema migrations and the fixed data sets loaded by
// the seed command.
package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

const (
	EnvDev  = "dev"
	EnvTest = "test"
)

//go:embed migrations/*.sql
var migrations embed.FS

//go:embed data/*.sql
var data embed.FS

// EnvironmentFromTesting maps the TESTING variable to a data set name.
func EnvironmentFromTesting(testing string) string {
	if strings.EqualFold(testing, "test") {
		return EnvTest
	}
	return EnvDev
}

// Migrate applies pending schema migrations. With reset set, every
// migration is rolled back first so the schema is recreated from scratch.
func Migrate(ctx context.Context, db *sqlx.DB, reset bool) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if reset {
		if err := goose.ResetContext(ctx, db.DB, "migrations"); err != nil {
			return fmt.Errorf("failed to reset migrations: %w", err)
		}
	}

	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Load replaces the table contents with the data set of env. Identities are
// restarted so ids are stable between runs.
func Load(ctx context.Context, db *sqlx.DB, env string) error {
	if env != EnvDev && env != EnvTest {
		return fmt.Errorf("unknown environment %q", env)
	}

	script, err := data.ReadFile("data/" + env + ".sql")
	if err != nil {
		return fmt.Errorf("failed to read %s data: %w", env, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		return fmt.Errorf("failed to load %s data: %w", env, err)
	}

	return tx.Commit()
}

// Seed migrates the schema and loads the data set of env.
func Seed(ctx context.Context, db *sqlx.DB, env string, reset bool) error {
	if err := Migrate(ctx, db, reset); err != nil {
		return err
	}
	return Load(ctx, db, env)
}
