package config

import (
	"fmt"
	"strings"
	"time"
)

// ServiceMode identifies one of the independently runnable services.
type ServiceMode string

const (
	// ServiceModeHTTP runs the client-facing API server.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeWorker runs the transcription worker loop.
	ServiceModeWorker ServiceMode = "worker"
)

// ParseServices parses a comma-separated SERVICES value into a mode set.
func ParseServices(value string) (map[ServiceMode]bool, error) {
	modes := make(map[ServiceMode]bool)
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		switch ServiceMode(name) {
		case ServiceModeHTTP, ServiceModeWorker:
			modes[ServiceMode(name)] = true
		default:
			return nil, fmt.Errorf("unknown service %q (valid: http, worker)", name)
		}
	}
	return modes, nil
}

// TranscriberEngine selects the transcription adapter implementation.
type TranscriberEngine string

const (
	// EngineWhisper shells out to a whisper-cli binary.
	EngineWhisper TranscriberEngine = "whisper"
	// EngineFake returns a canned transcript, for development and tests.
	EngineFake TranscriberEngine = "fake"
)

// UnmarshalText implements encoding.TextUnmarshaler for TranscriberEngine.
func (t *TranscriberEngine) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch TranscriberEngine(v) {
	case EngineWhisper, EngineFake:
		*t = TranscriberEngine(v)
		return nil
	default:
		return fmt.Errorf("invalid TranscriberEngine: %q (valid: whisper, fake)", v)
	}
}

// WorkerConfig contains transcription worker configuration.
type WorkerConfig struct {
	// Concurrency is the number of messages processed in parallel.
	Concurrency int `env:"WORKER_CONCURRENCY" envDefault:"1"`

	// ReceiveTimeout bounds each blocking queue receive so shutdown stays responsive.
	ReceiveTimeout time.Duration `env:"WORKER_RECEIVE_TIMEOUT" envDefault:"5s"`

	// Engine selects the transcription adapter.
	Engine TranscriberEngine `env:"TRANSCRIBER_ENGINE" envDefault:"whisper"`

	// WhisperBin is the whisper-cli binary invoked by the whisper engine.
	WhisperBin string `env:"WHISPER_BIN" envDefault:"whisper-cli"`

	// WhisperModel is the model file passed to the whisper engine.
	WhisperModel string `env:"WHISPER_MODEL" envDefault:"models/ggml-base.bin"`
}

// Sanitize applies guardrails to worker configuration values.
func (w *WorkerConfig) Sanitize() {
	if w.Concurrency < 1 {
		w.Concurrency = 1
	}
	if w.ReceiveTimeout <= 0 {
		w.ReceiveTimeout = 5 * time.Second
	}
}

// StorageConfig contains payload storage configuration.
type StorageConfig struct {
	// UploadDir is the directory holding one temp payload file per in-flight job.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
}
