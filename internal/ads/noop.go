package ads

import (
	"context"
	"fmt"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

type noop struct{}

// Noop returns a Service for deployments without an ad publisher. Every
// unit operation reports that ads are not initialized.
func Noop() Service {
	return noop{}
}

func (noop) Initialize(context.Context, Config) error { return nil }

func (noop) CreateAdUnit(context.Context, string) (*domain.AdUnit, error) {
	return nil, domain.ErrAdsNotInitialized
}

func (noop) RemoveAdUnit(_ context.Context, containerID string) error {
	return fmt.Errorf("%w: %q", domain.ErrAdsNotInitialized, containerID)
}

func (noop) Units() []domain.AdUnit { return []domain.AdUnit{} }
func (noop) Placements() []domain.AdPlacement { return []domain.AdPlacement{} }
func (noop) ScriptURL() string { return "" }
func (noop) InterstitialDue(int) (string, bool) { return "", false }
func (noop) Teardown(context.Context) error { return nil }
