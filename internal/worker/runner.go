// Package worker consumes work messages and runs transcriptions for the audioscribe system.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// receiveErrorBackoff is the pause after a failed receive before retrying.
const receiveErrorBackoff = time.Second

// SourceFactory returns the message source for one worker goroutine. Each
// goroutine gets its own source so processing lists stay disjoint.
type SourceFactory func(consumerID string) core.Source

// RunnerOptions configures the worker runner.
type RunnerOptions struct {
	Sources     SourceFactory
	Jobs        core.JobRepository
	Payloads    core.PayloadStore
	Transcriber core.Transcriber
	Probes      core.ProbeStore
	Logger      *slog.Logger

	// Concurrency is the number of consumer goroutines; defaults to 1.
	Concurrency int
}

// Runner pulls work messages and executes transcription jobs. Multiple runner
// processes may run concurrently; the queue guarantees each message is held by
// at most one consumer at a time.
type Runner struct {
	sources     SourceFactory
	jobs        core.JobRepository
	payloads    core.PayloadStore
	transcriber core.Transcriber
	probes      core.ProbeStore
	logger      *slog.Logger
	workers     int
}

// NewRunner constructs a worker runner.
func NewRunner(opts RunnerOptions) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Concurrency
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		sources:     opts.Sources,
		jobs:        opts.Jobs,
		payloads:    opts.Payloads,
		transcriber: opts.Transcriber,
		probes:      opts.Probes,
		logger:      logger,
		workers:     workers,
	}
}

// Run consumes messages until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.workers; i++ {
		source := r.sources(fmt.Sprintf("worker-%d", i))
		g.Go(func() error {
			return r.consume(ctx, source)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (r *Runner) consume(ctx context.Context, source core.Source) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		delivery, err := source.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.ErrorContext(ctx, "receive work message", "error", err)
			// Back off so a persistent transport failure cannot spin the loop hot.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(receiveErrorBackoff):
			}
			continue
		}
		if delivery == nil {
			continue
		}

		// Failures are recorded on the job and logged for outer alerting;
		// the message is acked either way so the outcome stands. Retry
		// policy belongs to the infrastructure around the queue.
		if handleErr := r.Handle(ctx, &delivery.Message); handleErr != nil {
			r.logger.ErrorContext(ctx, "job failed",
				"job_id", delivery.Message.JobID, "error", handleErr)
		}

		if ackErr := source.Ack(ctx, delivery); ackErr != nil {
			r.logger.ErrorContext(ctx, "ack work message",
				"job_id", delivery.Message.JobID, "error", ackErr)
		}
	}
}

// Handle processes a single work message. It is exported so the handling
// sequence can be exercised without a live queue.
func (r *Runner) Handle(ctx context.Context, msg *model.WorkMessage) error {
	switch msg.Kind {
	case model.MessageKindProbe:
		return r.handleProbe(ctx, msg)
	case model.MessageKindTranscribe:
		return r.handleTranscribe(ctx, msg)
	default:
		return apperrors.Validationf("unknown message kind %q", msg.Kind)
	}
}

func (r *Runner) handleProbe(ctx context.Context, msg *model.WorkMessage) error {
	if err := r.probes.MarkProbe(ctx, msg.ProbeID); err != nil {
		return fmt.Errorf("mark probe %s: %w", msg.ProbeID, err)
	}
	return nil
}

func (r *Runner) handleTranscribe(ctx context.Context, msg *model.WorkMessage) (err error) {
	job, err := r.jobs.GetByID(ctx, msg.JobID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Row already deleted; nothing to record.
			r.logger.WarnContext(ctx, "work message for unknown job", "job_id", msg.JobID)
			return nil
		}
		return err
	}
	if job.Status.Terminal() {
		// Redelivery of a finished job: the payload is gone and the record
		// is immutable, so this is an idempotent no-op, not a failure.
		r.logger.InfoContext(ctx, "skipping redelivered terminal job",
			"job_id", msg.JobID, "status", job.Status)
		return nil
	}

	// The payload is deleted exactly once, whatever the outcome below.
	defer func() {
		if removeErr := r.payloads.Remove(msg.PayloadLocation); removeErr != nil {
			r.logger.ErrorContext(ctx, "remove payload",
				"job_id", msg.JobID, "location", msg.PayloadLocation, "error", removeErr)
		}
	}()

	// A job can already be in PROCESSING when its consumer crashed mid-run;
	// the status graph permits no re-entry, so the transition is written only
	// when it is legal and the redelivery resumes from the current status.
	if job.Status.CanTransitionTo(model.JobStatusProcessing) {
		if _, err = r.jobs.UpdateStatus(ctx, msg.JobID, model.JobStatusProcessing, nil); err != nil {
			return fmt.Errorf("mark job processing: %w", err)
		}
	}

	if !r.payloads.Exists(msg.PayloadLocation) {
		return r.fail(ctx, msg.JobID, fmt.Errorf("payload not found: %s", msg.PayloadLocation))
	}

	text, err := r.transcriber.Transcribe(ctx, msg.PayloadLocation, msg.LanguageHint)
	if err != nil {
		return r.fail(ctx, msg.JobID, err)
	}
	if text == "" {
		return r.fail(ctx, msg.JobID, errors.New("transcription produced no text"))
	}

	if _, err = r.jobs.UpdateStatus(ctx, msg.JobID, model.JobStatusSuccess, &text); err != nil {
		return fmt.Errorf("record job success: %w", err)
	}
	return nil
}

// fail records the failure on the job row and propagates the cause upward.
func (r *Runner) fail(ctx context.Context, jobID string, cause error) error {
	result := cause.Error()
	if _, err := r.jobs.UpdateStatus(ctx, jobID, model.JobStatusFailure, &result); err != nil {
		return fmt.Errorf("record job failure: %w (cause: %w)", err, cause)
	}
	return cause
}
