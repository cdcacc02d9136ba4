package database

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsStrictlyIncreasing(t *testing.T) {
	all := Migrations()
	require.NotEmpty(t, all)

	names := map[string]bool{}
	for i, m := range all {
		assert.NotEmpty(t, m.SQL, "migration %d has no SQL", m.Version)
		assert.False(t, names[m.Name], "duplicate migration name %s", m.Name)
		names[m.Name] = true
		if i > 0 {
			assert.Greater(t, m.Version, all[i-1].Version)
		}
	}
}

func TestMigrationsReturnsCopy(t *testing.T) {
	all := Migrations()
	all[0].Name = "mutated"
	assert.Equal(t, "create_users", Migrations()[0].Name)
}

func TestPendingSkipsApplied(t *testing.T) {
	got := pending(Migrations(), map[int]bool{1: true, 2: true, 4: true})

	var versions []int
	for _, m := range got {
		versions = append(versions, m.Version)
	}
	assert.Equal(t, []int{3, 5, 6}, versions)
	assert.Empty(t, pending(Migrations(), map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}))
}

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := NewPostgresConnection(context.Background(), url, Options{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func resetSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`DROP TABLE IF EXISTS schema_migrations, applications, jobs, users CASCADE`)
	require.NoError(t, err)
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	resetSchema(t, pool)

	require.NoError(t, EnsureSchema(ctx, pool))

	_, err := pool.Exec(ctx, `INSERT INTO users (username, password, role) VALUES ('alice', 'h', 'Candidate')`)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, EnsureSchema(ctx, pool))
	}

	var users, recorded, statusCols int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&recorded))
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM information_schema.columns WHERE table_name = 'applications' AND column_name = 'status'`,
	).Scan(&statusCols))

	assert.Equal(t, 1, users)
	assert.Equal(t, len(Migrations()), recorded)
	assert.Equal(t, 1, statusCols)
}

func TestEnsureSchemaAdoptsLegacyStore(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	resetSchema(t, pool)

	// Shape of a store created before the status column and migrations table existed
	legacy := []string{
		`CREATE TABLE users (id BIGSERIAL PRIMARY KEY, username TEXT NOT NULL UNIQUE, password TEXT NOT NULL, role TEXT NOT NULL)`,
		`CREATE TABLE jobs (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL DEFAULT '', company TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '', requirements TEXT NOT NULL DEFAULT '', description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`CREATE TABLE applications (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id),
			job_id BIGINT NOT NULL REFERENCES jobs(id), resume_data BYTEA NOT NULL DEFAULT '\x', applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`INSERT INTO users (username, password, role) VALUES ('alice', 'h', 'Candidate')`,
		`INSERT INTO jobs (title) VALUES ('Engineer')`,
		`INSERT INTO applications (user_id, job_id, resume_data) SELECT u.id, j.id, '\x01' FROM users u, jobs j`,
	}
	for _, stmt := range legacy {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	require.NoError(t, EnsureSchema(ctx, pool))

	var status string
	var resume []byte
	require.NoError(t, pool.QueryRow(ctx, `SELECT status, resume_data FROM applications`).Scan(&status, &resume))
	assert.Equal(t, "Pending", status)
	assert.Equal(t, []byte{0x01}, resume)
}
