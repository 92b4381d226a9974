package core

import (
	"context"
	"io"

	"github.com/audioscribe/audioscribe/internal/domain/model"
)

// This file contains the port definitions between the service/worker layers and
// their collaborators. Services depend on these interfaces, not on concrete
// implementations.

// AccountRepository defines the interface for credential store operations.
// Email lookups are case-sensitive; identifiers are stored exactly as given.
type AccountRepository interface {
	// Create inserts a new account. passwordHash is nil for accounts created
	// via federated login. Returns a Conflict error if the email is taken.
	Create(ctx context.Context, email string, passwordHash *string) (*model.Account, error)
	// GetByEmail returns the account with the given email, or a NotFound error.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

// JobRepository defines the interface for job registry operations. It enforces
// field integrity only; the status state machine belongs to its callers.
type JobRepository interface {
	// Create inserts a PENDING job row. Returns a Conflict error if the id exists.
	Create(ctx context.Context, id string, ownerID int64) (*model.Job, error)
	// GetByID returns the job with the given id, or a NotFound error.
	GetByID(ctx context.Context, id string) (*model.Job, error)
	// ListForOwner returns the owner's jobs ordered newest created-at first.
	ListForOwner(ctx context.Context, ownerID int64) ([]*model.Job, error)
	// UpdateStatus sets status and result on an existing row. Returns false
	// without error when the id is unknown.
	UpdateStatus(ctx context.Context, id string, status model.JobStatus, result *string) (bool, error)
	// Delete removes the row only if it exists and ownerID matches, and
	// reports whether a row was removed.
	Delete(ctx context.Context, id string, ownerID int64) (bool, error)
}

// Publisher publishes work messages to the queue.
type Publisher interface {
	Publish(ctx context.Context, msg *model.WorkMessage) error
}

// Delivery is one received work message plus the receipt needed to ack it.
type Delivery struct {
	Message model.WorkMessage
	Receipt string
}

// Source is the consumer side of the queue. Receive blocks up to the
// transport's receive timeout and returns nil when nothing arrived; Ack marks
// a delivery as processed so the transport stops redelivering it.
type Source interface {
	Receive(ctx context.Context) (*Delivery, error)
	Ack(ctx context.Context, d *Delivery) error
}

// ProbeStore records health-probe round trips so callers can poll completion.
type ProbeStore interface {
	MarkProbe(ctx context.Context, probeID string) error
	ProbeSeen(ctx context.Context, probeID string) (bool, error)
}

// Transcriber is the external speech-to-text capability. A languageHint of
// "auto" asks the engine to detect the language; any other value is passed
// through verbatim.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageHint string) (string, error)
}

// PayloadStore persists one temp payload per in-flight job, keyed by job id.
// A slot is exclusively owned by its job from Save until worker cleanup.
type PayloadStore interface {
	// Save writes the payload and returns its location.
	Save(jobID, filename string, r io.Reader) (string, error)
	// Exists reports whether the payload at location is still present.
	Exists(location string) bool
	// Remove deletes the payload; removing a missing payload is not an error.
	Remove(location string) error
}
