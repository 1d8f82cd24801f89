package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DecisionSpinner_Go/internal/ads"
	"github.com/osse101/DecisionSpinner_Go/internal/analytics"
	"github.com/osse101/DecisionSpinner_Go/internal/config"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/history"
	"github.com/osse101/DecisionSpinner_Go/internal/options"
	"github.com/osse101/DecisionSpinner_Go/internal/scheduler"
	"github.com/osse101/DecisionSpinner_Go/internal/spin"
	"github.com/osse101/DecisionSpinner_Go/internal/sse"
	"github.com/osse101/DecisionSpinner_Go/internal/worker"
)

// Services holds every long-lived component built at startup
type Services struct {
	Options   options.Service
	History   history.Service
	Spins     spin.Service
	Ads       ads.Service
	Tracker   *analytics.Tracker
	Hub       *sse.Hub
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// InitializeServices builds the domain services, loads stored state, wires
// event subscribers and starts the background components.
func InitializeServices(ctx context.Context, cfg *config.Config, bus event.Bus, publisher event.Publisher, storage *Storage) (*Services, error) {
	samples, err := LoadSampleSets(cfg.SamplesPath)
	if err != nil {
		return nil, err
	}

	svc := &Services{
		Options: options.NewServiceWithSamples(storage.State, publisher, samples),
		History: history.NewService(storage.State, publisher),
		Spins: spin.NewService(spin.Config{
			Duration:            cfg.SpinDuration,
			CelebrationDuration: cfg.CelebrationDuration,
			Wheel: spin.Wheel{
				PointerOffset: cfg.SpinPointerOffset,
				MinSpins:      cfg.SpinMinTurns,
				MaxSpins:      cfg.SpinMaxTurns,
				Source:        spin.DefaultSource(),
			},
		}, publisher),
		Tracker: analytics.NewTracker(cfg.AnalyticsMeasurementID),
		Hub:     sse.NewHub(),
	}

	svc.Ads, err = initializeAds(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := svc.Options.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadOptions, err)
	}
	if err := svc.History.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadHistory, err)
	}

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:       bus,
		SpinService:    svc.Spins,
		HistoryService: svc.History,
		Hub:            svc.Hub,
		Tracker:        svc.Tracker,
	}); err != nil {
		return nil, err
	}

	svc.Hub.Start()

	svc.Pool = worker.NewPool(HealthWorkerCount, HealthWorkerQueueSize)
	svc.Pool.Start()
	svc.Scheduler = scheduler.New(svc.Pool)
	if cfg.HealthInterval > 0 {
		svc.Scheduler.Schedule(HealthJobName, cfg.HealthInterval, worker.NewStorageHealthJob(storage.State, storage.Driver))
	}

	slog.Info(LogMsgServicesInitialized,
		"options", len(svc.Options.List(ctx)),
		"history", len(svc.History.List(ctx)),
		"ads", cfg.AdsPublisherID != "")

	return svc, nil
}

// initializeAds returns the no-op service when no publisher id is set
func initializeAds(ctx context.Context, cfg *config.Config) (ads.Service, error) {
	if cfg.AdsPublisherID == "" {
		slog.Info(LogMsgAdsDisabled)
		return ads.Noop(), nil
	}

	placements, err := LoadPlacements(cfg.AdsPlacementsPath)
	if err != nil {
		return nil, err
	}

	svc := ads.NewService()
	if err := svc.Initialize(ctx, ads.Config{PublisherID: cfg.AdsPublisherID, Placements: placements}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitializeAds, err)
	}
	return svc, nil
}
