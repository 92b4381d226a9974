package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// StatusServiceOptions groups dependencies for StatusService.
type StatusServiceOptions struct {
	Jobs   core.JobRepository
	Queue  core.Publisher
	Probes core.ProbeStore
}

// StatusService is the owner-scoped read/list/delete surface over job records,
// plus the queue health probe.
type StatusService struct {
	jobs   core.JobRepository
	queue  core.Publisher
	probes core.ProbeStore
}

// NewStatusService constructs a new StatusService.
func NewStatusService(opts StatusServiceOptions) *StatusService {
	return &StatusService{
		jobs:   opts.Jobs,
		queue:  opts.Queue,
		probes: opts.Probes,
	}
}

// GetStatus returns the job if it exists and belongs to the requester.
// Unknown ids yield NotFound; someone else's job yields Forbidden.
func (s *StatusService) GetStatus(ctx context.Context, jobID string, requesterID int64) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != requesterID {
		return nil, apperrors.Forbidden("not authorized to access this job")
	}
	return job, nil
}

// ListMine returns the requester's jobs, newest first.
func (s *StatusService) ListMine(ctx context.Context, requesterID int64) ([]*model.Job, error) {
	return s.jobs.ListForOwner(ctx, requesterID)
}

// Delete removes the requester's job. Deletion is idempotent: an unknown id
// succeeds as a no-op. A job owned by another account yields Forbidden.
func (s *StatusService) Delete(ctx context.Context, jobID string, requesterID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if job.OwnerID != requesterID {
		return apperrors.Forbidden("not authorized to delete this job")
	}

	// The row vanishing between the check and the delete still counts as success.
	if _, err = s.jobs.Delete(ctx, jobID, requesterID); err != nil {
		return err
	}
	return nil
}

// HealthProbe publishes a probe message through the same queue/worker path
// used for real jobs and returns an identifier the caller can poll. It
// validates the pipeline without touching job records.
func (s *StatusService) HealthProbe(ctx context.Context) (string, error) {
	probeID := uuid.NewString()
	msg := &model.WorkMessage{Kind: model.MessageKindProbe, ProbeID: probeID}
	if err := s.queue.Publish(ctx, msg); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "enqueue health probe")
	}
	return probeID, nil
}

// ProbeStatus reports whether a previously issued probe completed the round trip.
func (s *StatusService) ProbeStatus(ctx context.Context, probeID string) (bool, error) {
	return s.probes.ProbeSeen(ctx, probeID)
}
