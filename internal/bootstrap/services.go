package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/audioscribe/audioscribe/config"
	"github.com/audioscribe/audioscribe/internal/adapters/github"
	"github.com/audioscribe/audioscribe/internal/adapters/redisqueue"
	"github.com/audioscribe/audioscribe/internal/adapters/transcriber"
	"github.com/audioscribe/audioscribe/internal/core"
	"github.com/audioscribe/audioscribe/internal/data"
	"github.com/audioscribe/audioscribe/internal/service"
	"github.com/audioscribe/audioscribe/internal/storage"
	"github.com/audioscribe/audioscribe/internal/token"
	"github.com/audioscribe/audioscribe/internal/worker"
)

// ServiceContainer holds the constructed services and adapters shared by the
// runnable processes.
type ServiceContainer struct {
	Auth       *service.AuthService
	Dispatcher *service.DispatcherService
	Status     *service.StatusService

	Queue    *redisqueue.Queue
	Payloads core.PayloadStore
	Jobs     core.JobRepository
	Accounts core.AccountRepository
}

// ServiceDeps contains the dependencies needed to construct services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger

	// GitHubEndpoint overrides the OAuth2 endpoints, for tests. Optional.
	GitHubEndpoint *oauth2.Endpoint
}

// NewServices constructs the service container from shared infrastructure.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	tokens, err := token.NewService(token.Config{
		Secret:    cfg.Auth.SecretKey,
		AccessTTL: cfg.Auth.AccessTokenTTL,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init token service: %w", err)
	}

	var provider service.FederatedProvider
	if cfg.Auth.GitHub.Configured() {
		p, perr := github.NewProvider(github.ProviderConfig{
			ClientID:     cfg.Auth.GitHub.ClientID,
			ClientSecret: cfg.Auth.GitHub.ClientSecret,
			RedirectURL:  cfg.Auth.GitHub.RedirectURL,
			Endpoint:     deps.GitHubEndpoint,
		})
		if perr != nil {
			return ServiceContainer{}, fmt.Errorf("init github provider: %w", perr)
		}
		provider = p
	} else {
		logger.Info("federated login disabled", "reason", "GitHub OAuth credentials not configured")
	}

	accounts := data.NewAccountRepo(deps.DB)
	jobs := data.NewJobRepo(deps.DB)
	payloads := storage.NewDiskStore(cfg.Storage.UploadDir)
	queue := redisqueue.New(deps.RedisClient, redisqueue.Options{
		Key:            cfg.Redis.QueueKey,
		ReceiveTimeout: cfg.Worker.ReceiveTimeout,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Accounts: accounts,
		Tokens:   tokens,
		Provider: provider,
		StateTTL: cfg.Auth.StateTokenTTL,
		Logger:   logger,
	})
	dispatcher := service.NewDispatcherService(service.DispatcherServiceOptions{
		Jobs:     jobs,
		Payloads: payloads,
		Queue:    queue,
		Logger:   logger,
	})
	status := service.NewStatusService(service.StatusServiceOptions{
		Jobs:   jobs,
		Queue:  queue,
		Probes: queue,
	})

	return ServiceContainer{
		Auth:       auth,
		Dispatcher: dispatcher,
		Status:     status,
		Queue:      queue,
		Payloads:   payloads,
		Jobs:       jobs,
		Accounts:   accounts,
	}, nil
}

// NewWorkerRunner constructs the transcription worker from the container.
func NewWorkerRunner(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) *worker.Runner {
	var engine core.Transcriber
	switch cfg.Worker.Engine {
	case config.EngineFake:
		engine = &transcriber.Fake{}
	default:
		engine = transcriber.NewWhisper(cfg.Worker.WhisperBin, cfg.Worker.WhisperModel)
	}

	return worker.NewRunner(worker.RunnerOptions{
		Sources: func(consumerID string) core.Source {
			return services.Queue.WithConsumerID(consumerID)
		},
		Jobs:        services.Jobs,
		Payloads:    services.Payloads,
		Transcriber: engine,
		Probes:      services.Queue,
		Logger:      logger,
		Concurrency: cfg.Worker.Concurrency,
	})
}
