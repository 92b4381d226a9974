package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audioscribe/audioscribe/internal/adapters/transcriber"
	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/storage"
	"github.com/audioscribe/audioscribe/internal/worker"
)

// In-memory repositories backing the end-to-end scenario below. They mirror
// the Postgres repositories' contracts (Conflict on duplicates, NotFound on
// misses, owner-scoped delete) without a database.

type memAccounts struct {
	mu     sync.Mutex
	nextID int64
	byMail map[string]*model.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byMail: make(map[string]*model.Account)}
}

func (m *memAccounts) Create(_ context.Context, email string, hash *string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byMail[email]; ok {
		return nil, apperrors.Conflict("email already registered")
	}
	m.nextID++
	acct := &model.Account{ID: m.nextID, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	m.byMail[email] = acct
	return acct, nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.byMail[email]
	if !ok {
		return nil, apperrors.NotFound("account not found")
	}
	return acct, nil
}

type memJobs struct {
	mu   sync.Mutex
	byID map[string]*model.Job
}

func newMemJobs() *memJobs {
	return &memJobs{byID: make(map[string]*model.Job)}
}

func (m *memJobs) Create(_ context.Context, id string, ownerID int64) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; ok {
		return nil, apperrors.Conflict("job already exists")
	}
	job := &model.Job{ID: id, OwnerID: ownerID, Status: model.JobStatusPending, CreatedAt: time.Now()}
	m.byID[id] = job
	return job, nil
}

func (m *memJobs) GetByID(_ context.Context, id string) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.byID[id]
	if !ok {
		return nil, apperrors.NotFound("job not found")
	}
	clone := *job
	return &clone, nil
}

func (m *memJobs) ListForOwner(_ context.Context, ownerID int64) ([]*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var jobs []*model.Job
	for _, job := range m.byID {
		if job.OwnerID == ownerID {
			clone := *job
			jobs = append(jobs, &clone)
		}
	}
	return jobs, nil
}

func (m *memJobs) UpdateStatus(_ context.Context, id string, status model.JobStatus, result *string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	job.Status = status
	job.Result = result
	return true, nil
}

func (m *memJobs) Delete(_ context.Context, id string, ownerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.byID[id]
	if !ok || job.OwnerID != ownerID {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

// memQueue collects published messages so the test can hand them to the
// worker directly instead of running a consume loop.
type memQueue struct {
	mu       sync.Mutex
	messages []model.WorkMessage
}

func (q *memQueue) Publish(_ context.Context, msg *model.WorkMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, *msg)
	return nil
}

func (q *memQueue) take(t *testing.T) model.WorkMessage {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	require.NotEmpty(t, q.messages, "no work message published")
	msg := q.messages[0]
	q.messages = q.messages[1:]
	return msg
}

type memProbes struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (p *memProbes) MarkProbe(_ context.Context, probeID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	p.seen[probeID] = true
	return nil
}

func (p *memProbes) ProbeSeen(_ context.Context, probeID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seen[probeID], nil
}

// TestScenario_RegisterSubmitTranscribe walks the whole pipeline in-process:
// register an account, submit a job, have the worker handle the published
// message, then observe the terminal status through the status service.
func TestScenario_RegisterSubmitTranscribe(t *testing.T) {
	ctx := context.Background()

	accounts := newMemAccounts()
	jobs := newMemJobs()
	queue := &memQueue{}
	probes := &memProbes{}
	payloads := storage.NewDiskStore(t.TempDir())

	auth := NewAuthService(AuthServiceOptions{
		Accounts: accounts,
		Tokens:   newTestTokens(t),
		StateTTL: 10 * time.Minute,
	})
	dispatcher := NewDispatcherService(DispatcherServiceOptions{
		Jobs:     jobs,
		Payloads: payloads,
		Queue:    queue,
	})
	status := NewStatusService(StatusServiceOptions{
		Jobs:   jobs,
		Queue:  queue,
		Probes: probes,
	})
	runner := worker.NewRunner(worker.RunnerOptions{
		Sources:     func(string) core.Source { return nil },
		Jobs:        jobs,
		Payloads:    payloads,
		Transcriber: &transcriber.Fake{Text: "hello from the sample clip"},
		Probes:      probes,
	})

	// Register and resolve the identity the way the bearer middleware would.
	accessToken, err := auth.Register(ctx, "carol@x.com", "pw")
	require.NoError(t, err)
	account, err := auth.Authenticate(ctx, accessToken)
	require.NoError(t, err)
	require.Equal(t, "carol@x.com", account.Email)

	// Registering the same identifier again conflicts and leaves one row.
	_, err = auth.Register(ctx, "carol@x.com", "other")
	assert.True(t, apperrors.IsConflict(err))

	jobID, err := dispatcher.Submit(ctx, SubmitInput{
		OwnerID:      account.ID,
		LanguageHint: "auto",
		Filename:     "sample.wav",
		Payload:      strings.NewReader("fake audio bytes"),
	})
	require.NoError(t, err)

	job, err := status.GetStatus(ctx, jobID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusPending, job.Status)

	msg := queue.take(t)
	require.NoError(t, runner.Handle(ctx, &msg))

	job, err = status.GetStatus(ctx, jobID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusSuccess, job.Status)
	require.NotNil(t, job.Result)
	assert.Equal(t, "hello from the sample clip", *job.Result)
	assert.False(t, payloads.Exists(msg.PayloadLocation), "payload should be cleaned up")

	// Another account sees neither the status nor the delete.
	intruderToken, err := auth.Register(ctx, "mallory@x.com", "pw")
	require.NoError(t, err)
	intruder, err := auth.Authenticate(ctx, intruderToken)
	require.NoError(t, err)

	_, err = status.GetStatus(ctx, jobID, intruder.ID)
	assert.True(t, apperrors.IsForbidden(err))
	assert.True(t, apperrors.IsForbidden(status.Delete(ctx, jobID, intruder.ID)))

	// Owner delete succeeds and stays idempotent.
	require.NoError(t, status.Delete(ctx, jobID, account.ID))
	require.NoError(t, status.Delete(ctx, jobID, account.ID))
	_, err = status.GetStatus(ctx, jobID, account.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

// TestScenario_HealthProbeRoundTrip pushes a probe through the same queue and
// worker path a real deployment uses.
func TestScenario_HealthProbeRoundTrip(t *testing.T) {
	ctx := context.Background()

	jobs := newMemJobs()
	queue := &memQueue{}
	probes := &memProbes{}
	payloads := storage.NewDiskStore(t.TempDir())

	status := NewStatusService(StatusServiceOptions{Jobs: jobs, Queue: queue, Probes: probes})
	runner := worker.NewRunner(worker.RunnerOptions{
		Sources:     func(string) core.Source { return nil },
		Jobs:        jobs,
		Payloads:    payloads,
		Transcriber: &transcriber.Fake{},
		Probes:      probes,
	})

	probeID, err := status.HealthProbe(ctx)
	require.NoError(t, err)

	done, err := status.ProbeStatus(ctx, probeID)
	require.NoError(t, err)
	assert.False(t, done)

	msg := queue.take(t)
	require.NoError(t, runner.Handle(ctx, &msg))

	done, err = status.ProbeStatus(ctx, probeID)
	require.NoError(t, err)
	assert.True(t, done)
}
