// Package service contains the application services orchestrating the job and
// auth flows over the repository, queue, and provider ports.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/token"
)

// federatedStateSubject is the sentinel subject carried by federated-login
// state tokens. It is never a valid account identifier (identifiers are email
// addresses), so a state token can never pass for an access token.
const federatedStateSubject = "github_oauth"

// FederatedProvider is the external identity provider used for federated login.
type FederatedProvider interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchVerifiedEmail(ctx context.Context, accessToken string) (string, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Accounts core.AccountRepository
	Tokens   *token.Service
	// Provider is nil when federated login is not configured.
	Provider FederatedProvider
	// StateTTL is the lifetime of federated-login state tokens.
	StateTTL time.Duration
	Logger   *slog.Logger
}

// AuthService issues and validates identities: local password authentication,
// bearer-token validation, and the federated login exchange.
type AuthService struct {
	accounts core.AccountRepository
	tokens   *token.Service
	provider FederatedProvider
	stateTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stateTTL := opts.StateTTL
	if stateTTL <= 0 {
		stateTTL = 10 * time.Minute
	}
	return &AuthService{
		accounts: opts.Accounts,
		tokens:   opts.Tokens,
		provider: opts.Provider,
		stateTTL: stateTTL,
		logger:   logger,
	}
}

// Register creates an account with a password hash and returns a fresh access
// token bound to it. A taken email yields a Conflict error before any write.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", apperrors.Validation("email is required")
	}
	if password == "" {
		return "", apperrors.Validation("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	hashStr := string(hash)
	if _, err = s.accounts.Create(ctx, email, &hashStr); err != nil {
		if apperrors.IsConflict(err) {
			return "", apperrors.Conflict("email already registered")
		}
		return "", err
	}

	return s.issueAccess(email)
}

// Login authenticates an email/password pair and returns a fresh access token.
// Unknown email, a federated-only account, and a wrong password all yield the
// same Unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.Unauthorized("incorrect email or password")
		}
		return "", err
	}
	if account.PasswordHash == nil {
		return "", apperrors.Unauthorized("incorrect email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(password)) != nil {
		return "", apperrors.Unauthorized("incorrect email or password")
	}

	return s.issueAccess(account.Email)
}

// Authenticate validates a bearer token and resolves its account.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*model.Account, error) {
	subject, err := s.tokens.Validate(rawToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "could not validate credentials")
	}
	if subject == federatedStateSubject {
		// A state token is anti-CSRF proof, never an identity.
		return nil, apperrors.Unauthorized("could not validate credentials")
	}

	account, err := s.accounts.GetByEmail(ctx, subject)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("could not validate credentials")
		}
		return nil, err
	}
	return account, nil
}

// BeginFederatedResult contains the result of beginning a federated login flow.
type BeginFederatedResult struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

// BeginFederatedLogin mints a short-lived state token and returns the provider
// authorization URL carrying it.
func (s *AuthService) BeginFederatedLogin() (*BeginFederatedResult, error) {
	if s.provider == nil {
		return nil, apperrors.Internal("GitHub OAuth is not configured")
	}

	state, err := s.tokens.Issue(federatedStateSubject, s.stateTTL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "issue state token")
	}

	return &BeginFederatedResult{
		AuthorizationURL: s.provider.AuthCodeURL(state),
		State:            state,
	}, nil
}

// CompleteFederatedLogin validates the state token, exchanges the code with the
// provider, resolves a verified email, gets or creates the local account, and
// returns a fresh access token. State validation happens before any provider
// call and fails with a Validation error, distinct from Unauthorized.
func (s *AuthService) CompleteFederatedLogin(ctx context.Context, code, state string) (string, error) {
	if s.provider == nil {
		return "", apperrors.Internal("GitHub OAuth is not configured")
	}
	if code == "" {
		return "", apperrors.Validation("authorization code is required")
	}

	subject, err := s.tokens.Validate(state)
	if err != nil || subject != federatedStateSubject {
		return "", apperrors.Validation("invalid OAuth state")
	}

	accessToken, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}

	email, err := s.provider.FetchVerifiedEmail(ctx, accessToken)
	if err != nil {
		return "", err
	}

	if err = s.ensureAccount(ctx, email); err != nil {
		return "", err
	}
	return s.issueAccess(email)
}

// ensureAccount looks up the account for email, creating a federated-only
// account (no password hash) when absent.
func (s *AuthService) ensureAccount(ctx context.Context, email string) error {
	_, err := s.accounts.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !apperrors.IsNotFound(err) {
		return err
	}

	if _, err = s.accounts.Create(ctx, email, nil); err != nil {
		// A concurrent first login may have created the row already.
		if apperrors.IsConflict(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *AuthService) issueAccess(email string) (string, error) {
	t, err := s.tokens.IssueAccess(email)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "issue access token")
	}
	return t, nil
}
