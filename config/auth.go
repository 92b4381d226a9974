package config

import "time"

// GitHubConfig contains the GitHub OAuth application credentials used for
// federated login. Federated login is disabled unless all three are set.
type GitHubConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URI"`
}

// Configured reports whether the GitHub OAuth credentials are fully set.
func (g GitHubConfig) Configured() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURL != ""
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// SecretKey signs both access tokens and federated-login state tokens.
	SecretKey string `env:"SECRET_KEY,required"`

	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`

	// StateTokenTTL is the lifetime of the anti-CSRF state token minted for
	// a federated login round trip.
	StateTokenTTL time.Duration `env:"STATE_TOKEN_TTL" envDefault:"10m"`

	// GitHub OAuth application configuration.
	GitHub GitHubConfig `envPrefix:"GITHUB_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.AccessTokenTTL <= 0 {
		a.AccessTokenTTL = 30 * time.Minute
	}
	if a.StateTokenTTL <= 0 {
		a.StateTokenTTL = 10 * time.Minute
	}
}
