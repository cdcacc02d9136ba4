package database

import (
	"context"
	"fmt"

	"recruitai-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// migrationLockKey serializes EnsureSchema across processes sharing a database.
const migrationLockKey int64 = 7_204_117_301

// Migration is one additive schema step. Steps are never edited once shipped.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id       BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role     TEXT NOT NULL
		)`,
	},
	{
		Version: 2,
		Name:    "create_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS jobs (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL DEFAULT '',
			company      TEXT NOT NULL DEFAULT '',
			department   TEXT NOT NULL DEFAULT '',
			requirements TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		// status arrives in version 4, as it did for databases created before it existed
		Version: 3,
		Name:    "create_applications",
		SQL: `CREATE TABLE IF NOT EXISTS applications (
			id          BIGSERIAL PRIMARY KEY,
			user_id     BIGINT NOT NULL REFERENCES users(id),
			job_id      BIGINT NOT NULL REFERENCES jobs(id),
			resume_data BYTEA NOT NULL DEFAULT '\x',
			applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 4,
		Name:    "add_application_status",
		SQL:     `ALTER TABLE applications ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'Pending'`,
	},
	{
		Version: 5,
		Name:    "index_jobs_created_at",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,
	},
	{
		Version: 6,
		Name:    "index_applications_applied_at",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications (applied_at DESC)`,
	},
}

// Migrations returns the registered steps in application order.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

// EnsureSchema applies every migration not yet recorded in schema_migrations.
// It is safe to call on every start and from several processes at once.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("migrate: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("migrate: lock: %w", err)
	}

	if _, err := tx.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INT PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, tx)
	if err != nil {
		return err
	}

	for _, m := range pending(migrations, applied) {
		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("migrate: %03d_%s: %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("migrate: record %03d_%s: %w", m.Version, m.Name, err)
		}
		logger.Log.Info("Applied migration", "version", m.Version, "name", m.Name)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}

func appliedVersions(ctx context.Context, tx pgx.Tx) (map[int]bool, error) {
	rows, err := tx.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("migrate: read applied: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("migrate: read applied: %w", err)
	}

	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// pending keeps registration order and drops steps already applied.
func pending(all []Migration, applied map[int]bool) []Migration {
	var out []Migration
	for _, m := range all {
		if !applied[m.Version] {
			out = append(out, m)
		}
	}
	return out
}
