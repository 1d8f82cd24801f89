package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/DecisionSpinner_Go/internal/ads"
	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/options"
)

// LoadSampleSets returns the sample catalogue. An empty path selects the
// embedded sets; otherwise the YAML file replaces them entirely.
func LoadSampleSets(path string) ([]domain.SampleSet, error) {
	if path == "" {
		return options.BuiltinSamples(), nil
	}

	slog.Info(LogMsgLoadingSamples, "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadSamples, err)
	}

	samples, err := options.ParseSamples(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSamples, err)
	}

	slog.Info(LogMsgSamplesLoaded, "count", len(samples))
	return samples, nil
}

// LoadPlacements returns the ad placements, embedded unless path is set
func LoadPlacements(path string) ([]domain.AdPlacement, error) {
	if path == "" {
		return ads.DefaultPlacements(), nil
	}

	slog.Info(LogMsgLoadingPlacements, "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadPlacement, err)
	}

	placements, err := ads.ParsePlacements(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPlacements, err)
	}

	slog.Info(LogMsgPlacementsLoaded, "count", len(placements))
	return placements, nil
}
