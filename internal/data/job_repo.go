package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// JobRepo provides database operations for the job registry. It guarantees
// field integrity only; status transitions are the callers' responsibility.
type JobRepo struct {
	DB *sql.DB
}

// NewJobRepo creates a new JobRepo with the given database connection.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db}
}

const jobColumns = `id, owner_id, status, result, created_at`

// Create inserts a new PENDING job row for the given owner.
// A duplicate job id yields a Conflict error.
func (r *JobRepo) Create(ctx context.Context, id string, ownerID int64) (*model.Job, error) {
	if id == "" {
		return nil, apperrors.Validation("job id is required")
	}

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO jobs (id, owner_id, status)
		VALUES ($1, $2, $3)
		RETURNING `+jobColumns, id, ownerID, model.JobStatusPending)

	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// GetByID returns the job with the given id, or a NotFound error.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// ListForOwner returns the owner's jobs, newest created-at first. The id
// tiebreak keeps ordering deterministic for rows created in the same instant.
func (r *JobRepo) ListForOwner(ctx context.Context, ownerID int64) ([]*model.Job, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer rows.Close()

	var jobs []*model.Job
	for rows.Next() {
		var j model.Job
		if scanErr := rows.Scan(&j.ID, &j.OwnerID, &j.Status, &j.Result, &j.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("scan job: %w", scanErr)
		}
		jobs = append(jobs, &j)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, apperrors.MapDBError(rowsErr)
	}
	return jobs, nil
}

func scanJob(row *sql.Row) (*model.Job, error) {
	var j model.Job
	if err := row.Scan(&j.ID, &j.OwnerID, &j.Status, &j.Result, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

// UpdateStatus sets status and result on an existing row and reports whether a
// row was updated. An unknown id is a no-op returning false; callers that care
// about existence must check first.
func (r *JobRepo) UpdateStatus(ctx context.Context, id string, status model.JobStatus, result *string) (bool, error) {
	if !status.Valid() {
		return false, apperrors.Validationf("invalid job status %q", status)
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE jobs
		SET status = $2, result = $3
		WHERE id = $1`, id, status, result)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes the row only if it exists and the owner matches, and reports
// whether a row was removed.
func (r *JobRepo) Delete(ctx context.Context, id string, ownerID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM jobs
		WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
