package options

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/repository"
)

// Service owns the live option list
type Service interface {
	List(ctx context.Context) []domain.Option
	// Snapshot returns the list together with its revision, which grows
	// by one on every change
	Snapshot(ctx context.Context) ([]domain.Option, uint64)
	Add(ctx context.Context, text string) (*domain.Option, error)
	AddWithColor(ctx context.Context, text, color string) (*domain.Option, error)
	Remove(ctx context.Context, id string) error
	Edit(ctx context.Context, id, text string) error
	SetWeight(ctx context.Context, id string, weight float64) error
	ReplaceAll(ctx context.Context, options []domain.Option) error
	Clear(ctx context.Context) error
	LoadSample(ctx context.Context, name string) error
	Samples() []string

	// Load replaces the in-memory list with stored state, falling back to
	// the default sample set when nothing usable is stored
	Load(ctx context.Context) error
}

type service struct {
	repo      repository.Options
	publisher event.Publisher
	samples   []domain.SampleSet

	mu       sync.Mutex
	options  []domain.Option
	revision uint64
}

// NewService creates an options service holding the default set. Call Load
// to pick up stored state.
func NewService(repo repository.Options, publisher event.Publisher) Service {
	return NewServiceWithSamples(repo, publisher, BuiltinSamples())
}

// NewServiceWithSamples is NewService with a custom sample catalogue. The
// first sample set is the default.
func NewServiceWithSamples(repo repository.Options, publisher event.Publisher, samples []domain.SampleSet) Service {
	s := &service{
		repo:      repo,
		publisher: publisher,
		samples:   samples,
	}
	s.options = s.defaults()
	return s
}

func newOption(text, color string) domain.Option {
	return domain.Option{
		ID:     uuid.NewString(),
		Text:   strings.TrimSpace(text),
		Color:  color,
		Weight: domain.DefaultOptionWeight,
	}
}

func (s *service) defaults() []domain.Option {
	if sample, ok := findSample(s.samples, DefaultSampleName); ok {
		return textsToOptions(sample.Options)
	}
	if len(s.samples) > 0 {
		return textsToOptions(s.samples[0].Options)
	}
	return textsToOptions(domain.DefaultOptionTexts)
}

func (s *service) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	stored, err := s.repo.LoadOptions(ctx)
	if err == nil {
		stored, err = normalizeStored(stored)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.options = stored
		log.Info(LogMsgOptionsLoaded, "count", len(stored))
	case errors.Is(err, domain.ErrStateNotFound):
		s.options = s.defaults()
		log.Info(LogMsgOptionsDefaulted, "count", len(s.options))
	default:
		s.options = s.defaults()
		log.Warn(LogMsgOptionsMalformed,
			"error", domain.NewPersistenceError("load", domain.StorageKeyOptions, err))
	}
	return nil
}

// normalizeStored fills gaps in stored options and rejects lists that
// could not have been produced by this service
func normalizeStored(stored []domain.Option) ([]domain.Option, error) {
	if len(stored) > domain.MaxOptions {
		return nil, fmt.Errorf("%w: %d options stored", domain.ErrStateMalformed, len(stored))
	}
	if err := domain.ValidateOptionEntries(stored); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStateMalformed, err)
	}

	out := make([]domain.Option, len(stored))
	for i, o := range stored {
		o.Text = strings.TrimSpace(o.Text)
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if o.Color == "" || domain.ValidateColor(o.Color) != nil {
			o.Color = domain.ColorForIndex(i)
		}
		if o.Weight <= 0 || o.Weight > domain.MaxOptionWeight {
			o.Weight = domain.DefaultOptionWeight
		}
		out[i] = o
	}
	return out, nil
}

func (s *service) List(_ context.Context) []domain.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneOptions(s.options)
}

func (s *service) Snapshot(_ context.Context) ([]domain.Option, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneOptions(s.options), s.revision
}

func (s *service) Add(ctx context.Context, text string) (*domain.Option, error) {
	return s.AddWithColor(ctx, text, "")
}

func (s *service) AddWithColor(ctx context.Context, text, color string) (*domain.Option, error) {
	if err := domain.ValidateOptionText(text); err != nil {
		return nil, err
	}
	if err := domain.ValidateColor(color); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.options) >= domain.MaxOptions {
		return nil, domain.ErrMaxOptionsReached
	}
	if s.indexOfTextLocked(text, "") >= 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateOption, strings.TrimSpace(text))
	}

	if color == "" {
		color = domain.ColorForIndex(len(s.options))
	}
	opt := newOption(text, color)
	s.options = append(s.options, opt)

	logger.FromContext(ctx).Info(LogMsgOptionAdded, "option_id", opt.ID, "text", opt.Text, "count", len(s.options))
	s.commitLocked(ctx, domain.OptionActionAdd)
	return &opt, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfIDLocked(id)
	if idx < 0 {
		return domain.ErrOptionNotFound
	}
	if len(s.options)-1 < domain.MinOptions {
		return domain.ErrMinOptionsReached
	}

	removed := s.options[idx]
	s.options = append(s.options[:idx:idx], s.options[idx+1:]...)

	logger.FromContext(ctx).Info(LogMsgOptionRemoved, "option_id", removed.ID, "text", removed.Text, "count", len(s.options))
	s.commitLocked(ctx, domain.OptionActionRemove)
	return nil
}

func (s *service) Edit(ctx context.Context, id, text string) error {
	if err := domain.ValidateOptionText(text); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfIDLocked(id)
	if idx < 0 {
		return domain.ErrOptionNotFound
	}
	if s.indexOfTextLocked(text, id) >= 0 {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateOption, strings.TrimSpace(text))
	}

	s.options[idx].Text = strings.TrimSpace(text)

	logger.FromContext(ctx).Info(LogMsgOptionEdited, "option_id", id, "text", s.options[idx].Text)
	s.commitLocked(ctx, domain.OptionActionEdit)
	return nil
}

func (s *service) SetWeight(ctx context.Context, id string, weight float64) error {
	if err := domain.ValidateWeight(weight); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfIDLocked(id)
	if idx < 0 {
		return domain.ErrOptionNotFound
	}
	s.options[idx].Weight = weight

	logger.FromContext(ctx).Info(LogMsgOptionWeightSet, "option_id", id, "weight", weight)
	s.commitLocked(ctx, domain.OptionActionWeight)
	return nil
}

// ReplaceAll swaps in a whole new list. Entries without an id get one,
// entries without a color get the palette color for their position, and
// a zero weight becomes the default.
func (s *service) ReplaceAll(ctx context.Context, options []domain.Option) error {
	next, err := prepareReplacement(options)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.options = next
	logger.FromContext(ctx).Info(LogMsgOptionsReplaced, "count", len(next))
	s.commitLocked(ctx, domain.OptionActionReplace)
	return nil
}

func prepareReplacement(options []domain.Option) ([]domain.Option, error) {
	if len(options) > domain.MaxOptions {
		return nil, fmt.Errorf("%s: %w", ErrContextReplaceOptions, domain.ErrMaxOptionsReached)
	}
	if err := domain.ValidateOptionEntries(options); err != nil {
		return nil, err
	}

	next := make([]domain.Option, len(options))
	ids := make(map[string]struct{}, len(options))
	for i, o := range options {
		if err := domain.ValidateColor(o.Color); err != nil {
			return nil, fmt.Errorf("option %d: %w", i+1, err)
		}
		if o.Weight == 0 {
			o.Weight = domain.DefaultOptionWeight
		} else if err := domain.ValidateWeight(o.Weight); err != nil {
			return nil, fmt.Errorf("option %d: %w", i+1, err)
		}

		o.Text = strings.TrimSpace(o.Text)
		if _, dup := ids[o.ID]; o.ID == "" || dup {
			o.ID = uuid.NewString()
		}
		ids[o.ID] = struct{}{}
		if o.Color == "" {
			o.Color = domain.ColorForIndex(i)
		}
		next[i] = o
	}
	return next, nil
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.options = []domain.Option{}
	logger.FromContext(ctx).Info(LogMsgOptionsCleared)
	s.commitLocked(ctx, domain.OptionActionClear)
	return nil
}

func (s *service) LoadSample(ctx context.Context, name string) error {
	sample, ok := findSample(s.samples, name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrSampleNotFound, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.options = textsToOptions(sample.Options)
	logger.FromContext(ctx).Info(LogMsgSampleLoaded, "sample", name, "count", len(s.options))
	s.commitLocked(ctx, domain.OptionActionSample)
	return nil
}

func (s *service) Samples() []string {
	names := make([]string, len(s.samples))
	for i, sample := range s.samples {
		names[i] = sample.Name
	}
	return names
}

func (s *service) indexOfIDLocked(id string) int {
	for i, o := range s.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// indexOfTextLocked finds an option whose text collides with text,
// skipping the option with id ignoreID
func (s *service) indexOfTextLocked(text, ignoreID string) int {
	key := domain.OptionKey(text)
	for i, o := range s.options {
		if o.ID != ignoreID && domain.OptionKey(o.Text) == key {
			return i
		}
	}
	return -1
}

// commitLocked persists the list and publishes options.changed. Both happen
// under the lock so storage and subscribers see mutations in order.
func (s *service) commitLocked(ctx context.Context, action domain.OptionAction) {
	s.revision++
	snapshot := domain.CloneOptions(s.options)

	if err := s.repo.SaveOptions(ctx, snapshot); err != nil {
		logger.FromContext(ctx).Error(LogMsgOptionsSaveFailed,
			"error", domain.NewPersistenceError("save", domain.StorageKeyOptions, err))
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewOptionsChangedEvent(action, snapshot, s.revision))
	}
}
