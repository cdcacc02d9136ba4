package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"recruitai-backend/internal/domain"
	"recruitai-backend/internal/repository/postgres"
	"recruitai-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a disposable database; they drop and recreate the schema.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, url, database.Options{MaxConns: 8})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS schema_migrations, applications, jobs, users CASCADE`)
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(ctx, pool))
	return pool
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	first := &domain.User{Username: "alice", Password: "h1", Role: domain.RoleCandidate}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	err := repo.Create(ctx, &domain.User{Username: "alice", Password: "h2", Role: domain.RoleRecruiter})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = 'alice'`).Scan(&count))
	assert.Equal(t, 1, count)

	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "h1", stored.Password)
	assert.Equal(t, domain.RoleCandidate, stored.Role)
}

func TestUserRepoConcurrentRegistrationOneWinner(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &domain.User{Username: "carol", Password: "h", Role: domain.RoleCandidate})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestUserRepoGetByCredentials(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", Password: "good", Role: domain.RoleRecruiter}))

	user, err := repo.GetByCredentials(ctx, "bob", "good")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, errWrongPassword := repo.GetByCredentials(ctx, "bob", "bad")
	_, errUnknownUser := repo.GetByCredentials(ctx, "nobody", "good")
	assert.ErrorIs(t, errWrongPassword, domain.ErrNotFound)
	assert.ErrorIs(t, errUnknownUser, domain.ErrNotFound)
}

func TestJobRepoFetchNewestFirst(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewJobRepository(pool)

	empty, err := repo.Fetch(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Now().Add(-time.Hour)
	ids := map[int64]bool{}
	for i, title := range []string{"first", "second", "third"} {
		job := &domain.Job{Title: title, Company: "Acme", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, job))
		ids[job.ID] = true
	}
	// Same timestamp as "third"; id breaks the tie
	tie := &domain.Job{Title: "fourth", Company: "Acme", CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, repo.Create(ctx, tie))
	ids[tie.ID] = true

	jobs, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, []string{"fourth", "third", "second", "first"},
		[]string{jobs[0].Title, jobs[1].Title, jobs[2].Title, jobs[3].Title})
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].CreatedAt.After(jobs[i-1].CreatedAt))
	}
	for _, j := range jobs {
		assert.True(t, ids[j.ID])
		delete(ids, j.ID)
	}

	_, err = repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplicationRepoLifecycle(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	jobs := postgres.NewJobRepository(pool)
	apps := postgres.NewApplicationRepository(pool)

	alice := &domain.User{Username: "alice", Password: "h", Role: domain.RoleCandidate}
	require.NoError(t, users.Create(ctx, alice))
	job := &domain.Job{Title: "Engineer", Company: "Acme", Department: "Eng", Requirements: "Go/Python", Description: "Build stuff"}
	require.NoError(t, jobs.Create(ctx, job))

	resume := []byte("%PDF-resume-bytes\x00\xff")
	app := &domain.Application{UserID: alice.ID, JobID: job.ID, Resume: resume}
	require.NoError(t, apps.Create(ctx, app))
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)

	list, err := apps.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].CandidateUsername)
	assert.Equal(t, "Engineer", list[0].JobTitle)
	assert.Equal(t, "Acme", list[0].Company)
	assert.Equal(t, "Go/Python", list[0].Requirements)
	assert.Equal(t, domain.ApplicationStatusPending, list[0].Status)
	assert.Equal(t, resume, list[0].Resume)

	require.NoError(t, apps.UpdateStatus(ctx, app.ID, domain.ApplicationStatusHired))
	require.NoError(t, apps.UpdateStatus(ctx, app.ID, domain.ApplicationStatusNotHired))
	got, err := apps.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusNotHired, got.Status)

	assert.ErrorIs(t, apps.UpdateStatus(ctx, 999999, domain.ApplicationStatusHired), domain.ErrNotFound)
}

func TestApplicationRepoEmptyResumeAndDuplicates(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	jobs := postgres.NewJobRepository(pool)
	apps := postgres.NewApplicationRepository(pool)

	u := &domain.User{Username: "dave", Password: "h", Role: domain.RoleCandidate}
	require.NoError(t, users.Create(ctx, u))
	j := &domain.Job{Title: "Analyst"}
	require.NoError(t, jobs.Create(ctx, j))

	require.NoError(t, apps.Create(ctx, &domain.Application{UserID: u.ID, JobID: j.ID}))
	require.NoError(t, apps.Create(ctx, &domain.Application{UserID: u.ID, JobID: j.ID, Resume: []byte{}}))

	list, err := apps.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, v := range list {
		assert.Empty(t, v.Resume)
	}

	err = apps.Create(ctx, &domain.Application{UserID: u.ID, JobID: 999999})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}
