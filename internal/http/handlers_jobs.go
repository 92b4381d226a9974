// Package httpx provides the HTTP handlers and utilities for the audioscribe API.
package httpx

import (
	"context"
	"net/http"

	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/service"
)

// DispatcherInterface defines the dispatcher operations used by handlers.
type DispatcherInterface interface {
	Submit(ctx context.Context, in service.SubmitInput) (string, error)
}

// StatusInterface defines the status tracker operations used by handlers.
type StatusInterface interface {
	GetStatus(ctx context.Context, jobID string, requesterID int64) (*model.Job, error)
	ListMine(ctx context.Context, requesterID int64) ([]*model.Job, error)
	Delete(ctx context.Context, jobID string, requesterID int64) error
}

// JobHandlers provides HTTP handlers for job submission and tracking.
type JobHandlers struct {
	Dispatcher     DispatcherInterface
	Status         StatusInterface
	MaxUploadBytes int64
}

// Transcribe handles POST /api/transcribe: a multipart form with a "language"
// field and a "file" payload. Requires a bearer identity in context.
func (h *JobHandlers) Transcribe(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeValidation, "file is required"))
		return
	}
	defer file.Close()

	jobID, err := h.Dispatcher.Submit(r.Context(), service.SubmitInput{
		OwnerID:      identity.AccountID,
		LanguageHint: r.FormValue("language"),
		Filename:     header.Filename,
		Payload:      file,
	})
	if err != nil {
		// A dispatch failure after the row was written still reports the
		// job id so the caller can observe the FAILURE record.
		if jobID != "" {
			WriteJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   string(apperrors.ErrCodeInternal),
				"message": err.Error(),
				"job_id":  jobID,
			})
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"job_id": jobID})
}

// GetStatus handles GET /api/status/{job_id}.
func (h *JobHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	jobID := r.PathValue("job_id")
	if jobID == "" {
		WriteAppError(w, apperrors.Validation("job id is required"))
		return
	}

	job, err := h.Status.GetStatus(r.Context(), jobID, identity.AccountID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"id":     job.ID,
		"status": job.Status,
		"result": job.Result,
	})
}

// ListJobs handles GET /api/jobs.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	jobs, err := h.Status.ListMine(r.Context(), identity.AccountID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// DeleteJob handles DELETE /api/jobs/{job_id}. Deletion is idempotent.
func (h *JobHandlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	jobID := r.PathValue("job_id")
	if jobID == "" {
		WriteAppError(w, apperrors.Validation("job id is required"))
		return
	}

	if err := h.Status.Delete(r.Context(), jobID, identity.AccountID); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
