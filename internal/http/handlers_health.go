package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// HealthProber runs queue round-trip probes.
type HealthProber interface {
	HealthProbe(ctx context.Context) (string, error)
	ProbeStatus(ctx context.Context, probeID string) (bool, error)
}

// HealthHandlers provides liveness and queue-probe endpoints.
type HealthHandlers struct {
	Prober HealthProber
}

// Healthz handles GET/HEAD /healthz (process liveness only).
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("ok"))
	}
}

// RunProbe handles POST /api/health-check: it publishes a probe message
// through the real queue/worker path and returns its id for polling.
func (h *HealthHandlers) RunProbe(w http.ResponseWriter, r *http.Request) {
	probeID, err := h.Prober.HealthProbe(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"probe_id": probeID})
}

// ProbeStatus handles GET /api/health-check/{probe_id}.
func (h *HealthHandlers) ProbeStatus(w http.ResponseWriter, r *http.Request) {
	probeID := r.PathValue("probe_id")
	if probeID == "" {
		WriteAppError(w, apperrors.Validation("probe id is required"))
		return
	}

	done, err := h.Prober.ProbeStatus(r.Context(), probeID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"probe_id": probeID, "done": done})
}
