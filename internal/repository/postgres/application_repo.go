package postgres

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Inner joins: an application whose user or job row is gone is not listed.
const applicationViewSelect = `
		SELECT
			a.id, u.username, j.title, a.applied_at,
			a.resume_data, j.company, j.requirements, a.status
		FROM applications a
		JOIN users u ON a.user_id = u.id
		JOIN jobs j ON a.job_id = j.id`

// Create inserts a new application. Duplicate submissions are allowed.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, resume_data, applied_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	// BYTEA is NOT NULL; an empty upload is stored as zero bytes
	if app.Resume == nil {
		app.Resume = []byte{}
	}

	err := r.db.QueryRow(ctx, query,
		app.UserID,
		app.JobID,
		app.Resume,
		app.AppliedAt,
		string(app.Status),
	).Scan(&app.ID)
	if err != nil {
		if hasCode(err, pgForeignKeyViolation) {
			return domain.ErrReferenceNotFound
		}
		return err
	}
	return nil
}

// GetByID retrieves one application with candidate and job data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.ApplicationView, error) {
	query := applicationViewSelect + `
		WHERE a.id = $1`

	app, err := scanApplicationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// Fetch retrieves all applications, most recent first
func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.ApplicationView, error) {
	query := applicationViewSelect + `
		ORDER BY a.applied_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]domain.ApplicationView, 0)
	for rows.Next() {
		app, err := scanApplicationView(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateStatus overwrites the status. Concurrent updates are last-writer-wins.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanApplicationView(row pgx.Row) (*domain.ApplicationView, error) {
	var app domain.ApplicationView
	var status string
	if err := row.Scan(
		&app.ID, &app.CandidateUsername, &app.JobTitle, &app.AppliedAt,
		&app.Resume, &app.Company, &app.Requirements, &status,
	); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	return &app, nil
}
