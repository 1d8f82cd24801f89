package spin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

// Service runs spins one at a time against a shared wheel
type Service interface {
	RequestSpin(ctx context.Context, options []domain.Option) (*domain.SpinResult, error)
	RequestSpinAt(ctx context.Context, options []domain.Option, revision uint64) (*domain.SpinResult, error)
	Reset(ctx context.Context) error
	Snapshot(now time.Time) domain.SpinSnapshot
	State() domain.SpinState
	Subscribe(bus event.Bus)
	Shutdown(ctx context.Context) error
}

// Config holds the timing and geometry of the wheel
type Config struct {
	Duration            time.Duration
	CelebrationDuration time.Duration
	Wheel               Wheel
}

// DefaultConfig returns the stock timings and a randomly seeded wheel
func DefaultConfig() Config {
	return Config{
		Duration:            domain.DefaultSpinDuration,
		CelebrationDuration: domain.DefaultCelebrationDuration,
		Wheel:               NewWheel(),
	}
}

type activeSpin struct {
	id          string
	gen         uint64
	optionsRev  uint64
	options     []domain.Option
	winnerIndex int
	start       float64
	final       float64
	startedAt   time.Time
	timer       *time.Timer

	done   chan struct{}
	result *domain.SpinResult
	err    error
}

type service struct {
	cfg       Config
	publisher event.Publisher
	now       func() time.Time

	mu               sync.Mutex
	state            domain.SpinState
	rotation         float64
	gen              uint64
	optionsRev       uint64
	current          *activeSpin
	lastResult       *domain.SpinResult
	lastOptions      []domain.Option
	celebrating      bool
	celebrationGen   uint64
	celebrationTimer *time.Timer
	closed           bool

	wg sync.WaitGroup
}

// NewService creates a spin service in the Idle state
func NewService(cfg Config, publisher event.Publisher) Service {
	if cfg.Wheel.Source == nil {
		cfg.Wheel.Source = DefaultSource()
	}
	return &service{
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
		state:     domain.SpinStateIdle,
	}
}

// Subscribe resets the wheel whenever the option list changes, so a spin
// never settles on a list the user has since edited.
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.OptionsChanged, s.handleOptionsChanged)
}

// handleOptionsChanged ignores revisions older than the one a running spin
// was started on, which only arrive when a failed delivery is retried.
func (s *service) handleOptionsChanged(ctx context.Context, evt event.Event) error {
	var revision uint64
	payload, err := event.PayloadAs[domain.OptionsChangedPayload](evt)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "error", err)
	} else {
		revision = payload.Revision
	}

	s.mu.Lock()
	if revision > s.optionsRev {
		s.optionsRev = revision
	}
	if sp := s.current; sp != nil && revision != 0 && revision <= sp.optionsRev {
		s.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgStaleOptionsChange, "spin_id", sp.id, "revision", revision)
		return nil
	}
	cancelledID, ok := s.resetLocked()
	s.mu.Unlock()

	if ok {
		s.announceCancel(ctx, cancelledID, CancelReasonOptionsChanged)
	}
	return nil
}

// RequestSpin validates the options, commits a winner and blocks until the
// spin settles. If ctx ends first the caller stops waiting but the spin
// still settles and is recorded.
func (s *service) RequestSpin(ctx context.Context, options []domain.Option) (*domain.SpinResult, error) {
	return s.requestSpin(ctx, options, 0, false)
}

// RequestSpinAt is RequestSpin for a list read at the given revision. It
// fails with domain.ErrOptionsChanged when a newer revision has already
// been published, so a spin never starts on a list that was just edited.
func (s *service) RequestSpinAt(ctx context.Context, options []domain.Option, revision uint64) (*domain.SpinResult, error) {
	return s.requestSpin(ctx, options, revision, true)
}

func (s *service) requestSpin(ctx context.Context, options []domain.Option, revision uint64, checked bool) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	if err := domain.ValidateSpinnable(options); err != nil {
		log.Info(LogMsgSpinRejected, "reason", err, "option_count", len(options))
		return nil, fmt.Errorf("%s: %w", ErrContextValidate, err)
	}

	sp, err := s.begin(options, revision, checked)
	if err != nil {
		log.Info(LogMsgSpinRejected, "reason", err)
		return nil, err
	}

	log.Info(LogMsgSpinStarted,
		"spin_id", sp.id,
		"option_count", len(sp.options),
		"start_angle", sp.start,
		"final_angle", sp.final)

	s.publish(ctx, event.NewSpinStartedEvent(sp.id, sp.start, sp.final, len(sp.options), s.cfg.Duration, domain.DefaultEasing))

	select {
	case <-sp.done:
		if sp.err != nil {
			return nil, sp.err
		}
		return sp.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *service) begin(options []domain.Option, revision uint64, checked bool) (*activeSpin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrServiceClosed
	}
	if s.state == domain.SpinStateSpinning {
		return nil, domain.ErrSpinInProgress
	}
	if !checked {
		revision = s.optionsRev
	} else if revision < s.optionsRev {
		return nil, domain.ErrOptionsChanged
	}

	snapshot := domain.CloneOptions(options)
	idx, final, err := s.cfg.Wheel.Plan(s.rotation, snapshot)
	if err != nil {
		return nil, err
	}

	s.stopCelebrationLocked()
	s.gen++
	sp := &activeSpin{
		id:          uuid.NewString(),
		gen:         s.gen,
		optionsRev:  revision,
		options:     snapshot,
		winnerIndex: idx,
		start:       s.rotation,
		final:       final,
		startedAt:   s.now(),
		done:        make(chan struct{}),
	}

	gen := sp.gen
	sp.timer = time.AfterFunc(s.cfg.Duration, func() {
		s.settle(gen)
	})

	s.current = sp
	s.state = domain.SpinStateSpinning
	s.lastResult = nil
	s.lastOptions = snapshot
	return sp, nil
}

func (s *service) settle(gen uint64) {
	s.mu.Lock()
	sp := s.current
	if s.closed || sp == nil || sp.gen != gen {
		s.mu.Unlock()
		logger.Debug(LogMsgStaleSettlement, "gen", gen)
		return
	}

	if decoded := s.cfg.Wheel.WinnerAt(sp.final, len(sp.options)); decoded != sp.winnerIndex {
		logger.Error(LogMsgWinnerMismatch,
			"spin_id", sp.id,
			"committed", sp.winnerIndex,
			"decoded", decoded)
	}

	result := &domain.SpinResult{
		SpinID:       sp.id,
		Winner:       sp.options[sp.winnerIndex],
		WinnerIndex:  sp.winnerIndex,
		StartAngle:   sp.start,
		FinalAngle:   sp.final,
		TotalOptions: len(sp.options),
		DurationMS:   s.cfg.Duration.Milliseconds(),
		SettledAt:    s.now(),
	}

	s.current = nil
	s.state = domain.SpinStateSettled
	s.rotation = sp.final
	s.lastResult = result
	s.startCelebrationLocked()
	sp.result = result
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()

	logger.Info(LogMsgSpinSettled,
		"spin_id", result.SpinID,
		"winner", result.Winner.Text,
		"winner_index", result.WinnerIndex)

	// Subscribers (history, metrics) observe the result before the caller does
	s.publish(context.Background(), event.NewSpinSettledEvent(*result))
	close(sp.done)
}

func (s *service) startCelebrationLocked() {
	if s.cfg.CelebrationDuration <= 0 {
		return
	}
	s.celebrating = true
	s.celebrationGen++
	gen := s.celebrationGen
	s.celebrationTimer = time.AfterFunc(s.cfg.CelebrationDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.celebrationGen == gen {
			s.celebrating = false
			s.celebrationTimer = nil
		}
	})
}

func (s *service) stopCelebrationLocked() {
	if s.celebrationTimer != nil {
		s.celebrationTimer.Stop()
		s.celebrationTimer = nil
	}
	s.celebrationGen++
	s.celebrating = false
}

// cancelLocked aborts the in-flight spin, leaving the wheel where it was
// at this instant. It returns the cancelled spin id or "".
func (s *service) cancelLocked() string {
	sp := s.current
	if sp == nil {
		return ""
	}
	sp.timer.Stop()
	s.rotation = RotationAtTime(sp.start, sp.final, s.now().Sub(sp.startedAt), s.cfg.Duration)
	s.current = nil
	s.gen++
	sp.err = domain.ErrSpinCancelled
	close(sp.done)
	return sp.id
}

// Reset cancels any pending settlement and clears the shown winner.
// Options are not touched.
func (s *service) Reset(ctx context.Context) error {
	s.reset(ctx, CancelReasonReset)
	return nil
}

func (s *service) reset(ctx context.Context, reason string) {
	s.mu.Lock()
	cancelledID, ok := s.resetLocked()
	s.mu.Unlock()

	if ok {
		s.announceCancel(ctx, cancelledID, reason)
	}
}

// resetLocked returns the id of the spin it cancelled, and false when there
// was none
func (s *service) resetLocked() (string, bool) {
	if s.closed {
		return "", false
	}
	cancelledID := s.cancelLocked()
	s.stopCelebrationLocked()
	s.lastResult = nil
	s.state = domain.SpinStateIdle
	return cancelledID, cancelledID != ""
}

func (s *service) announceCancel(ctx context.Context, spinID, reason string) {
	logger.FromContext(ctx).Info(LogMsgSpinCancelled, "spin_id", spinID, "reason", reason)
	s.publish(ctx, event.NewSpinCancelledEvent(spinID, reason))
}

// State returns the current lifecycle state
func (s *service) State() domain.SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot reports the wheel as it is at now, including the mid-spin
// angle so that polling clients can follow the animation.
func (s *service) Snapshot(now time.Time) domain.SpinSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.SpinSnapshot{
		State:           s.state,
		StartAngle:      s.rotation,
		FinalAngle:      s.rotation,
		CurrentAngle:    s.rotation,
		Progress:        1,
		TotalOptions:    len(s.lastOptions),
		ShowCelebration: s.celebrating,
		DurationMS:      s.cfg.Duration.Milliseconds(),
		Easing:          domain.DefaultEasing,
	}

	if sp := s.current; sp != nil {
		elapsed := now.Sub(sp.startedAt)
		snap.SpinID = sp.id
		snap.StartAngle = sp.start
		snap.FinalAngle = sp.final
		snap.CurrentAngle = RotationAtTime(sp.start, sp.final, elapsed, s.cfg.Duration)
		snap.Progress = Progress(elapsed, s.cfg.Duration)
		snap.StartedAt = sp.startedAt
	}

	if s.lastResult != nil {
		winner := s.lastResult.Winner
		snap.SpinID = s.lastResult.SpinID
		snap.Winner = &winner
	}

	if len(s.lastOptions) > 0 {
		snap.PointerIndex = s.cfg.Wheel.WinnerAt(snap.CurrentAngle, len(s.lastOptions))
	}

	return snap
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

// Shutdown cancels any in-flight spin and waits for settlement publishing
// to finish
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	cancelledID := s.cancelLocked()
	s.stopCelebrationLocked()
	s.closed = true
	s.mu.Unlock()

	if cancelledID != "" {
		log.Info(LogMsgSpinCancelled, "spin_id", cancelledID, "reason", CancelReasonShutdown)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
