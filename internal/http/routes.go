package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       AuthServiceInterface
	Dispatcher DispatcherInterface
	Status     StatusInterface
	Prober     HealthProber
	// Authn resolves bearer tokens for the protected routes. Usually the same
	// value as Auth.
	Authn          Authenticator
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	jobHandlers := &JobHandlers{
		Dispatcher:     services.Dispatcher,
		Status:         services.Status,
		MaxUploadBytes: services.MaxUploadBytes,
	}
	healthHandlers := &HealthHandlers{Prober: services.Prober}

	registerAuthRoutes(mux, authHandlers)
	registerJobRoutes(mux, jobHandlers, services.Authn)
	registerHealthRoutes(mux, healthHandlers)

	var handler http.Handler = mux
	if services.Logger != nil {
		handler = Logging(services.Logger)(handler)
		handler = Recover(services.Logger)(handler)
	}
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/token", h.Token)
	mux.HandleFunc("GET /api/auth/github/login", h.GitHubLogin)
	mux.HandleFunc("GET /api/auth/github/callback", h.GitHubCallback)
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, authn Authenticator) {
	auth := RequireAuth(authn)
	mux.Handle("POST /api/transcribe", auth(http.HandlerFunc(h.Transcribe)))
	mux.Handle("GET /api/status/{job_id}", auth(http.HandlerFunc(h.GetStatus)))
	mux.Handle("GET /api/jobs", auth(http.HandlerFunc(h.ListJobs)))
	mux.Handle("DELETE /api/jobs/{job_id}", auth(http.HandlerFunc(h.DeleteJob)))
}

func registerHealthRoutes(mux *http.ServeMux, h *HealthHandlers) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("HEAD /healthz", h.Healthz)
	mux.HandleFunc("POST /api/health-check", h.RunProbe)
	mux.HandleFunc("GET /api/health-check/{probe_id}", h.ProbeStatus)
}
