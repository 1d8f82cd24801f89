// Package ads keeps the registry of ad units rendered by clients
package ads

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

var publisherIDPattern = regexp.MustCompile(`^ca-pub-[0-9]{10,20}$`)

// Config configures an ads service
type Config struct {
	PublisherID string
	Placements  []domain.AdPlacement
}

// Service manages ad units. It is constructed explicitly and injected into
// the HTTP layer.
type Service interface {
	Initialize(ctx context.Context, cfg Config) error
	CreateAdUnit(ctx context.Context, placement string) (*domain.AdUnit, error)
	RemoveAdUnit(ctx context.Context, containerID string) error
	Units() []domain.AdUnit
	Placements() []domain.AdPlacement
	ScriptURL() string
	// InterstitialDue reports whether an every-N-spins placement should show
	// after spinCount spins, returning the placement name
	InterstitialDue(spinCount int) (string, bool)
	Teardown(ctx context.Context) error
}

type service struct {
	mu          sync.RWMutex
	initialized bool
	publisherID string
	placements  map[string]domain.AdPlacement
	order       []string
	units       []domain.AdUnit
}

// NewService creates an uninitialized ads service
func NewService() Service {
	return &service{}
}

// Initialize sets the publisher and placements. Calling it again after a
// successful call does nothing.
func (s *service) Initialize(ctx context.Context, cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)
	if s.initialized {
		log.Debug(LogMsgAdsAlreadyInit, "publisher_id", s.publisherID)
		return nil
	}
	if !publisherIDPattern.MatchString(cfg.PublisherID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPublisherID, cfg.PublisherID)
	}

	placements := cfg.Placements
	if placements == nil {
		placements = DefaultPlacements()
	}

	s.placements = make(map[string]domain.AdPlacement, len(placements))
	s.order = make([]string, 0, len(placements))
	for _, p := range placements {
		s.placements[p.Name] = p
		s.order = append(s.order, p.Name)
	}
	s.publisherID = cfg.PublisherID
	s.units = nil
	s.initialized = true

	log.Info(LogMsgAdsInitialized, "publisher_id", cfg.PublisherID, "placements", len(placements))
	return nil
}

// CreateAdUnit registers a unit for a named placement. Creating a unit for
// a container that already holds one returns the existing unit.
func (s *service) CreateAdUnit(ctx context.Context, placement string) (*domain.AdUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, domain.ErrAdsNotInitialized
	}
	p, ok := s.placements[placement]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlacement, placement)
	}

	for _, u := range s.units {
		if u.ContainerID == p.ContainerID {
			unit := u
			return &unit, nil
		}
	}

	unit := domain.AdUnit{
		ContainerID: p.ContainerID,
		Placement:   p.Name,
		Slot:        p.Slot,
		Format:      p.Format,
		PublisherID: s.publisherID,
	}
	s.units = append(s.units, unit)

	logger.FromContext(ctx).Info(LogMsgAdUnitCreated, "container_id", unit.ContainerID, "placement", unit.Placement)
	return &unit, nil
}

func (s *service) RemoveAdUnit(ctx context.Context, containerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrAdsNotInitialized
	}
	for i, u := range s.units {
		if u.ContainerID == containerID {
			s.units = append(s.units[:i:i], s.units[i+1:]...)
			logger.FromContext(ctx).Info(LogMsgAdUnitRemoved, "container_id", containerID)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrAdUnitNotFound, containerID)
}

func (s *service) Units() []domain.AdUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AdUnit, len(s.units))
	copy(out, s.units)
	return out
}

func (s *service) Placements() []domain.AdPlacement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AdPlacement, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.placements[name])
	}
	return out
}

func (s *service) ScriptURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return ""
	}
	return AdSenseScriptURL + s.publisherID
}

func (s *service) InterstitialDue(spinCount int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized || spinCount <= 0 {
		return "", false
	}
	for _, name := range s.order {
		p := s.placements[name]
		if p.ShowAfterSpins > 0 && spinCount%p.ShowAfterSpins == 0 {
			return p.Name, true
		}
	}
	return "", false
}

// Teardown drops every unit and returns to the uninitialized state
func (s *service) Teardown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = nil
	s.placements = nil
	s.order = nil
	s.publisherID = ""
	s.initialized = false
	logger.FromContext(ctx).Info(LogMsgAdsTornDown)
	return nil
}
