package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// DispatcherServiceOptions groups dependencies for DispatcherService.
type DispatcherServiceOptions struct {
	Jobs     core.JobRepository
	Payloads core.PayloadStore
	Queue    core.Publisher
	Logger   *slog.Logger
}

// DispatcherService accepts submissions: it persists the payload and the job
// row, then publishes the work message. The call is synchronous only up to
// enqueue acknowledgment; transcription itself runs asynchronously.
type DispatcherService struct {
	jobs     core.JobRepository
	payloads core.PayloadStore
	queue    core.Publisher
	logger   *slog.Logger
}

// NewDispatcherService constructs a new DispatcherService.
func NewDispatcherService(opts DispatcherServiceOptions) *DispatcherService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DispatcherService{
		jobs:     opts.Jobs,
		payloads: opts.Payloads,
		queue:    opts.Queue,
		logger:   logger,
	}
}

// SubmitInput groups parameters for Submit.
type SubmitInput struct {
	OwnerID      int64
	LanguageHint string
	Filename     string
	Payload      io.Reader
}

// Submit registers a new transcription job and enqueues its work message,
// returning the generated job id.
//
// If publishing fails after the payload and row are written, the job is marked
// FAILURE with the error text (compensating write), the payload is removed,
// and an Internal error is surfaced; the job id is still returned so the
// caller can observe the FAILURE record.
func (s *DispatcherService) Submit(ctx context.Context, in SubmitInput) (string, error) {
	if in.LanguageHint == "" {
		return "", apperrors.Validation("language hint is required")
	}
	if in.Payload == nil {
		return "", apperrors.Validation("payload is required")
	}

	jobID := uuid.NewString()

	location, err := s.payloads.Save(jobID, in.Filename, in.Payload)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "store payload")
	}

	if _, err = s.jobs.Create(ctx, jobID, in.OwnerID); err != nil {
		s.removePayload(location)
		return "", err
	}

	msg := &model.WorkMessage{
		Kind:            model.MessageKindTranscribe,
		JobID:           jobID,
		LanguageHint:    in.LanguageHint,
		PayloadLocation: location,
	}
	if err = s.queue.Publish(ctx, msg); err != nil {
		s.failJob(ctx, jobID, err)
		s.removePayload(location)
		return jobID, apperrors.Wrap(err, apperrors.ErrCodeInternal, "enqueue transcription job")
	}

	return jobID, nil
}

// failJob records a dispatch failure on the job row so it is never silently dropped.
func (s *DispatcherService) failJob(ctx context.Context, jobID string, cause error) {
	result := cause.Error()
	if _, err := s.jobs.UpdateStatus(ctx, jobID, model.JobStatusFailure, &result); err != nil {
		s.logger.ErrorContext(ctx, "record dispatch failure",
			"job_id", jobID, "error", err, "cause", cause)
	}
}

func (s *DispatcherService) removePayload(location string) {
	if err := s.payloads.Remove(location); err != nil {
		s.logger.Error("remove payload", "location", location, "error", err)
	}
}
