// Package github provides the GitHub OAuth adapter for federated login.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultAuthURL    = "https://github.com/login/oauth/authorize"
	defaultTokenURL   = "https://github.com/login/oauth/access_token"

	// GitHub's user:email scope grants read access to the email list.
	oauthScope = "user:email"

	maxErrorBodyBytes = 1 << 20
)

// Provider implements the federated login exchange against GitHub's OAuth and
// REST APIs. GitHub is plain OAuth2 (no OIDC discovery or ID tokens), so the
// profile and email list are fetched over REST after the code exchange.
type Provider struct {
	config     *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// ProviderConfig holds configuration for the GitHub provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// APIBaseURL overrides the GitHub REST API base, for tests. Optional.
	APIBaseURL string
	// Endpoint overrides the OAuth2 endpoints, for tests. Optional.
	Endpoint *oauth2.Endpoint
	// HTTPClient overrides the HTTP client. Optional.
	HTTPClient *http.Client
}

// NewProvider creates a new GitHub OAuth provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	endpoint := oauth2.Endpoint{AuthURL: defaultAuthURL, TokenURL: defaultTokenURL}
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}
	apiBase := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{oauthScope},
			Endpoint:     endpoint,
		},
		apiBaseURL: apiBase,
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the GitHub authorization URL carrying the given state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for a GitHub access token.
// Transport or HTTP failures yield an Upstream error; no local state exists yet.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "exchange GitHub code")
	}
	if tok.AccessToken == "" {
		return "", apperrors.Upstream("empty access token from GitHub")
	}
	return tok.AccessToken, nil
}

type githubUser struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// FetchVerifiedEmail resolves the account email for the given access token.
// If the profile exposes no email it falls back to the email list and picks
// the primary verified email, then the first verified one. No verified email
// yields a Validation error; transport failures yield Upstream errors.
func (p *Provider) FetchVerifiedEmail(ctx context.Context, accessToken string) (string, error) {
	var user githubUser
	if err := p.getJSON(ctx, accessToken, "/user", &user); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "fetch GitHub profile")
	}
	if user.Email != "" {
		return user.Email, nil
	}

	var emails []githubEmail
	if err := p.getJSON(ctx, accessToken, "/user/emails", &emails); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "fetch GitHub emails")
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", apperrors.Validation("GitHub account does not have a verified email address")
}

func (p *Provider) getJSON(ctx context.Context, accessToken, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
