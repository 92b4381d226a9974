// Package model defines the core data types used throughout the audioscribe job system.
package model

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the current status of a transcription job.
type JobStatus string

const (
	// JobStatusPending indicates a job is waiting to be picked up by a worker.
	JobStatusPending JobStatus = "PENDING"
	// JobStatusProcessing indicates a worker is transcribing the job.
	JobStatusProcessing JobStatus = "PROCESSING"
	// JobStatusSuccess indicates the job finished with a transcript.
	JobStatusSuccess JobStatus = "SUCCESS"
	// JobStatusFailure indicates the job finished with an error.
	JobStatusFailure JobStatus = "FAILURE"
)

// UnmarshalText implements encoding.TextUnmarshaler for JobStatus.
func (s *JobStatus) UnmarshalText(text []byte) error {
	v := JobStatus(strings.ToUpper(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus: %q", string(text))
	}
	*s = v
	return nil
}

// Valid returns true if the JobStatus is one of the defined statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusSuccess, JobStatusFailure:
		return true
	default:
		return false
	}
}

// Terminal returns true if no further transitions are permitted from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSuccess || s == JobStatusFailure
}

// CanTransitionTo reports whether the status graph permits moving from s to next.
// The graph is PENDING→PROCESSING→{SUCCESS|FAILURE}, plus PENDING→FAILURE for
// jobs whose work message could not be enqueued.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing || next == JobStatusFailure
	case JobStatusProcessing:
		return next == JobStatusSuccess || next == JobStatusFailure
	default:
		return false
	}
}

// Job represents one transcription request tracked through its status lifecycle.
// The owner reference is a one-directional foreign key on the job row; jobs are
// queried by owner, accounts never hold job collections.
type Job struct {
	ID        string    `json:"id"         db:"id"`
	OwnerID   int64     `json:"-"          db:"owner_id"`
	Status    JobStatus `json:"status"     db:"status"`
	Result    *string   `json:"result"     db:"result"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
