package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now func() time.Time) *Service {
	t.Helper()
	svc, err := NewService(Config{Secret: "test-secret", AccessTTL: 30 * time.Minute, Now: now})
	require.NoError(t, err)
	return svc
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing secret is required")
}

func TestService_IssueAndValidate(t *testing.T) {
	svc := newTestService(t, nil)

	raw, err := svc.IssueAccess("42")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	subject, err := svc.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestService_Validate_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := newTestService(t, func() time.Time { return clock })

	raw, err := svc.Issue("42", 10*time.Minute)
	require.NoError(t, err)

	// Still valid just before expiry
	clock = issuedAt.Add(9 * time.Minute)
	_, err = svc.Validate(raw)
	require.NoError(t, err)

	// Rejected after expiry
	clock = issuedAt.Add(11 * time.Minute)
	_, err = svc.Validate(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	issuer := newTestService(t, nil)
	other, err := NewService(Config{Secret: "different-secret"})
	require.NoError(t, err)

	raw, err := issuer.IssueAccess("42")
	require.NoError(t, err)

	_, err = other.Validate(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Malformed(t *testing.T) {
	svc := newTestService(t, nil)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}

func TestService_Validate_EmptySubject(t *testing.T) {
	svc := newTestService(t, nil)

	raw, err := svc.Issue("", time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
