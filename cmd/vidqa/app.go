package main

import (
	"fmt"
	"os"

	"github.com/bnema/vidqa/config"
	"github.com/bnema/vidqa/internal/adapter/ffmpeg"
	"github.com/bnema/vidqa/internal/adapter/provider"
	"github.com/bnema/vidqa/internal/adapter/report"
	"github.com/bnema/vidqa/internal/adapter/storage/jsonfile"
	"github.com/bnema/vidqa/internal/adapter/storage/local"
	redisstore "github.com/bnema/vidqa/internal/adapter/storage/redis"
	sqlitestore "github.com/bnema/vidqa/internal/adapter/storage/sqlite"
	"github.com/bnema/vidqa/internal/adapter/ytdlp"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/port"
	"github.com/bnema/vidqa/internal/service"
)

// app holds the wired services shared by every command.
type app struct {
	cfg    *config.Config
	orch   *service.Orchestrator
	media  *service.MediaService
	events *service.EventBus
	close  func() error
}

type stateStore interface {
	port.JobRepository
	port.ResultStore
}

func openState(cfg *config.Config) (stateStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return jsonfile.NewMemoryStore(), noop, nil
	case config.StoreJSON:
		store, err := jsonfile.NewStore(cfg.StatePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open json store: %w", err)
		}
		return store, noop, nil
	case config.StoreSQLite:
		if err := os.MkdirAll(cfg.StatePath(), 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
		}
		store, err := sqlitestore.NewStore(cfg.StatePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, store.Close, nil
	case config.StoreRedis:
		client := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		store, err := redisstore.NewStore(client, cfg.RedisResultTTL)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func newApp(cfg *config.Config) (*app, error) {
	formats, err := cfg.Formats()
	if err != nil {
		return nil, err
	}

	mediaStore, err := local.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	state, closeState, err := openState(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info.Printf("using %s store, data in %s", cfg.Store, cfg.DataDir)

	registry := provider.NewRegistry(provider.Config{
		InferenceURL:    cfg.InferenceURL,
		WhisperURL:      cfg.WhisperURL,
		WhisperAPIKey:   cfg.WhisperAPIKey,
		WhisperModel:    cfg.WhisperModel,
		WhisperLanguage: cfg.WhisperLanguage,
		Timeout:         cfg.ProviderTimeout,
		FrameMaxWidth:   cfg.FrameMaxWidth,
	})

	events := service.NewEventBus()
	orch := service.NewOrchestrator(service.Deps{
		Jobs:      state,
		Results:   state,
		Media:     mediaStore,
		Processor: ffmpeg.NewProcessor(cfg.FFmpegPath, cfg.FFprobePath),
		Fetcher:   ytdlp.NewFetcher(cfg.YtDlpPath, cfg.CookiesFile),
		Providers: registry.Providers(),
		Renderer:  report.NewRenderer(),
		Events:    events,
	}, service.OrchestratorConfig{
		FrameInterval: cfg.FrameIntervalSeconds,
		ScoreWorkers:  cfg.ScoreWorkers,
		ReportFormats: formats,
	})

	return &app{
		cfg:    cfg,
		orch:   orch,
		media:  service.NewMediaService(mediaStore, cfg.MaxUploadBytes()),
		events: events,
		close:  closeState,
	}, nil
}
