package spin

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/testing/leaktest"
)

// recorder collects published events by type
type recorder struct {
	mu     sync.Mutex
	events map[event.Type][]event.Event
}

func newRecorder(bus event.Bus, types ...event.Type) *recorder {
	r := &recorder{events: make(map[event.Type][]event.Event)}
	for _, typ := range types {
		bus.Subscribe(typ, func(_ context.Context, e event.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events[e.Type] = append(r.events[e.Type], e)
			return nil
		})
	}
	return r
}

func (r *recorder) count(typ event.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events[typ])
}

func (r *recorder) last(typ event.Type) event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.events[typ]
	return list[len(list)-1]
}

type fixture struct {
	svc Service
	bus *event.MemoryBus
	rec *recorder
}

func newFixture(t *testing.T, duration, celebration time.Duration, src Source) *fixture {
	t.Helper()
	bus := event.NewMemoryBus()
	rec := newRecorder(bus, event.SpinStarted, event.SpinSettled, event.SpinCancelled)
	svc := NewService(Config{
		Duration:            duration,
		CelebrationDuration: celebration,
		Wheel:               Wheel{MinSpins: 5, MaxSpins: 10, Source: src},
	}, event.NewDirectPublisher(bus))
	svc.Subscribe(bus)
	t.Cleanup(func() {
		_ = svc.Shutdown(context.Background())
	})
	return &fixture{svc: svc, bus: bus, rec: rec}
}

func waitForState(t *testing.T, svc Service, want domain.SpinState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return svc.State() == want
	}, time.Second, 2*time.Millisecond)
}

func TestRequestSpin_FoodScenario(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond, time.Second, fixedSource{f: 0.6, n: 3})
	opts := makeOptions("Pizza", "Burger", "Sushi", "Tacos")

	result, err := f.svc.RequestSpin(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.WinnerIndex)
	assert.Equal(t, "Sushi", result.Winner.Text)
	assert.Equal(t, 4, result.TotalOptions)
	assert.Equal(t, 2, DecodeWinnerFromAngle(result.FinalAngle, 4, 0))
	assert.InDelta(t, 360*8+135.0, result.FinalAngle, 1e-9)
	assert.NotEmpty(t, result.SpinID)

	assert.Equal(t, domain.SpinStateSettled, f.svc.State())
	assert.Equal(t, 1, f.rec.count(event.SpinStarted))
	require.Equal(t, 1, f.rec.count(event.SpinSettled))

	payload, err := event.PayloadAs[domain.SpinSettledPayload](f.rec.last(event.SpinSettled))
	require.NoError(t, err)
	assert.Equal(t, "Sushi", payload.Winner.Text)
	assert.Equal(t, result.SpinID, payload.SpinID)
}

func TestRequestSpin_Validation(t *testing.T) {
	tests := []struct {
		name    string
		options []domain.Option
		wantErr error
	}{
		{"no options", nil, domain.ErrInsufficientOptions},
		{"one option", makeOptions("Only"), domain.ErrInsufficientOptions},
		{"duplicate after trim and case fold", makeOptions("Pizza", " pizza "), domain.ErrDuplicateOption},
		{"blank option", makeOptions("Pizza", "   "), domain.ErrEmptyOption},
		{"too many", makeOptions("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11",
			"12", "13", "14", "15", "16", "17", "18", "19", "20", "21"), domain.ErrTooManyOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10*time.Millisecond, 0, fixedSource{})
			_, err := f.svc.RequestSpin(context.Background(), tt.options)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsValidationError(err))
			assert.Equal(t, domain.SpinStateIdle, f.svc.State())
			assert.Zero(t, f.rec.count(event.SpinStarted))
		})
	}
}

func TestRequestSpin_TwoOptions(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond, 0, NewSeededSource(1))
	result, err := f.svc.RequestSpin(context.Background(), makeOptions("Yes", "No"))
	require.NoError(t, err)
	assert.Contains(t, []string{"Yes", "No"}, result.Winner.Text)
	assert.Equal(t, result.WinnerIndex, DecodeWinnerFromAngle(result.FinalAngle, 2, 0))
}

func TestRequestSpin_RejectsConcurrentSpin(t *testing.T) {
	f := newFixture(t, 100*time.Millisecond, 0, fixedSource{f: 0.1})
	opts := makeOptions("A", "B", "C")

	var (
		first    *domain.SpinResult
		firstErr error
		wg       sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = f.svc.RequestSpin(context.Background(), opts)
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)
	before := f.svc.Snapshot(time.Now())

	_, err := f.svc.RequestSpin(context.Background(), makeOptions("X", "Y"))
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)

	after := f.svc.Snapshot(time.Now())
	assert.Equal(t, before.SpinID, after.SpinID)
	assert.Equal(t, before.FinalAngle, after.FinalAngle)

	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, "A", first.Winner.Text)
	assert.Equal(t, 1, f.rec.count(event.SpinStarted))
	assert.Equal(t, 1, f.rec.count(event.SpinSettled))
}

func TestRequestSpin_SettledAcceptsNextSpin(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond, time.Second, NewSeededSource(3))
	opts := makeOptions("A", "B", "C", "D", "E")

	first, err := f.svc.RequestSpin(context.Background(), opts)
	require.NoError(t, err)
	second, err := f.svc.RequestSpin(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.FinalAngle, second.StartAngle)
	assert.Greater(t, second.FinalAngle, second.StartAngle)
	assert.Equal(t, second.WinnerIndex, DecodeWinnerFromAngle(second.FinalAngle, len(opts), 0))
}

func TestReset_CancelsPendingSpin(t *testing.T) {
	f := newFixture(t, 60*time.Millisecond, 0, fixedSource{f: 0.5})

	errCh := make(chan error, 1)
	go func() {
		_, err := f.svc.RequestSpin(context.Background(), makeOptions("A", "B"))
		errCh <- err
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)

	require.NoError(t, f.svc.Reset(context.Background()))
	assert.ErrorIs(t, <-errCh, domain.ErrSpinCancelled)
	assert.Equal(t, domain.SpinStateIdle, f.svc.State())

	// The original deadline passes without a stale settlement
	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, f.rec.count(event.SpinSettled))
	assert.Equal(t, 1, f.rec.count(event.SpinCancelled))
	assert.Nil(t, f.svc.Snapshot(time.Now()).Winner)
}

func TestResetClearsWinner(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond, time.Second, fixedSource{})
	_, err := f.svc.RequestSpin(context.Background(), makeOptions("A", "B"))
	require.NoError(t, err)
	require.NotNil(t, f.svc.Snapshot(time.Now()).Winner)

	require.NoError(t, f.svc.Reset(context.Background()))
	snap := f.svc.Snapshot(time.Now())
	assert.Equal(t, domain.SpinStateIdle, snap.State)
	assert.Nil(t, snap.Winner)
	assert.False(t, snap.ShowCelebration)
	assert.Zero(t, f.rec.count(event.SpinCancelled), "nothing to cancel once settled")
}

func TestOptionsChangedDuringSpinInvalidates(t *testing.T) {
	f := newFixture(t, 60*time.Millisecond, 0, fixedSource{f: 0.5})

	errCh := make(chan error, 1)
	go func() {
		_, err := f.svc.RequestSpin(context.Background(), makeOptions("A", "B", "C"))
		errCh <- err
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)

	require.NoError(t, f.bus.Publish(context.Background(),
		event.NewOptionsChangedEvent(domain.OptionActionEdit, makeOptions("A", "B", "Z"), 1)))

	assert.ErrorIs(t, <-errCh, domain.ErrSpinCancelled)
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, f.rec.count(event.SpinSettled))

	payload, err := event.PayloadAs[domain.SpinCancelledPayload](f.rec.last(event.SpinCancelled))
	require.NoError(t, err)
	assert.Equal(t, CancelReasonOptionsChanged, payload.Reason)
}

func TestRequestSpinAt_RejectsStaleRevision(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond, 0, fixedSource{})

	// An edit lands between reading the list and starting the spin
	require.NoError(t, f.bus.Publish(context.Background(),
		event.NewOptionsChangedEvent(domain.OptionActionRemove, makeOptions("A", "B"), 4)))

	_, err := f.svc.RequestSpinAt(context.Background(), makeOptions("A", "B", "C"), 3)
	assert.ErrorIs(t, err, domain.ErrOptionsChanged)
	assert.Equal(t, domain.SpinStateIdle, f.svc.State())
	assert.Zero(t, f.rec.count(event.SpinStarted))

	result, err := f.svc.RequestSpinAt(context.Background(), makeOptions("A", "B"), 4)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalOptions)
}

func TestOptionsChangedAtSpinRevisionDoesNotCancel(t *testing.T) {
	f := newFixture(t, 40*time.Millisecond, 0, fixedSource{f: 0.5})
	opts := makeOptions("A", "B", "C")

	errCh := make(chan error, 1)
	go func() {
		_, err := f.svc.RequestSpinAt(context.Background(), opts, 5)
		errCh <- err
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)

	// A retried delivery of the change the spin already saw, and an older one
	for _, rev := range []uint64{5, 2} {
		require.NoError(t, f.bus.Publish(context.Background(),
			event.NewOptionsChangedEvent(domain.OptionActionEdit, opts, rev)))
	}

	require.NoError(t, <-errCh)
	assert.Equal(t, 1, f.rec.count(event.SpinSettled))
	assert.Zero(t, f.rec.count(event.SpinCancelled))
}

func TestOptionsChangedAfterCheckedSpinCancels(t *testing.T) {
	f := newFixture(t, 60*time.Millisecond, 0, fixedSource{f: 0.5})

	errCh := make(chan error, 1)
	go func() {
		_, err := f.svc.RequestSpinAt(context.Background(), makeOptions("A", "B", "C"), 5)
		errCh <- err
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)

	require.NoError(t, f.bus.Publish(context.Background(),
		event.NewOptionsChangedEvent(domain.OptionActionAdd, makeOptions("A", "B", "C", "D"), 6)))

	assert.ErrorIs(t, <-errCh, domain.ErrSpinCancelled)
	assert.Equal(t, 1, f.rec.count(event.SpinCancelled))
}

func TestCallerCancellationStillSettles(t *testing.T) {
	f := newFixture(t, 40*time.Millisecond, 0, fixedSource{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := f.svc.RequestSpin(ctx, makeOptions("A", "B"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	waitForState(t, f.svc, domain.SpinStateSettled)
	assert.Equal(t, 1, f.rec.count(event.SpinSettled))
}

func TestCelebrationWindow(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond, 40*time.Millisecond, fixedSource{})
	_, err := f.svc.RequestSpin(context.Background(), makeOptions("A", "B"))
	require.NoError(t, err)

	assert.True(t, f.svc.Snapshot(time.Now()).ShowCelebration)
	require.Eventually(t, func() bool {
		return !f.svc.Snapshot(time.Now()).ShowCelebration
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.SpinStateSettled, f.svc.State())
}

func TestSnapshotDuringSpin(t *testing.T) {
	f := newFixture(t, 200*time.Millisecond, 0, fixedSource{f: 0.9})
	opts := makeOptions("A", "B", "C", "D")

	go func() {
		_, _ = f.svc.RequestSpin(context.Background(), opts)
	}()
	waitForState(t, f.svc, domain.SpinStateSpinning)

	snap := f.svc.Snapshot(time.Now())
	assert.Equal(t, domain.SpinStateSpinning, snap.State)
	assert.Equal(t, 4, snap.TotalOptions)
	assert.GreaterOrEqual(t, snap.CurrentAngle, snap.StartAngle)
	assert.Less(t, snap.CurrentAngle, snap.FinalAngle)
	assert.Less(t, snap.Progress, 1.0)
	assert.Nil(t, snap.Winner)
	assert.Equal(t, domain.DefaultEasing, snap.Easing)

	end := f.svc.Snapshot(snap.StartedAt.Add(time.Hour))
	assert.Equal(t, snap.FinalAngle, end.CurrentAngle)
	assert.Equal(t, 3, end.PointerIndex)
}

func TestShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	bus := event.NewMemoryBus()
	svc := NewService(Config{Duration: time.Second, Wheel: NewWheel()}, event.NewDirectPublisher(bus))

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.RequestSpin(context.Background(), makeOptions("A", "B"))
		errCh <- err
	}()
	waitForState(t, svc, domain.SpinStateSpinning)

	require.NoError(t, svc.Shutdown(context.Background()))
	assert.ErrorIs(t, <-errCh, domain.ErrSpinCancelled)

	_, err := svc.RequestSpin(context.Background(), makeOptions("A", "B"))
	assert.ErrorIs(t, err, domain.ErrServiceClosed)
	assert.NoError(t, svc.Shutdown(context.Background()), "second shutdown is a no-op")

	checker.Check(0)
}
