package options

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/storage/memory"
)

// failingRepo loads whatever it was given and fails every save
type failingRepo struct {
	stored  []domain.Option
	loadErr error
	saves   int
}

func (r *failingRepo) LoadOptions(context.Context) ([]domain.Option, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *failingRepo) SaveOptions(context.Context, []domain.Option) error {
	r.saves++
	return errors.New("disk full")
}

type changeLog struct {
	mu        sync.Mutex
	actions   []domain.OptionAction
	revisions []uint64
}

func (c *changeLog) handle(_ context.Context, e event.Event) error {
	payload, err := event.PayloadAs[domain.OptionsChangedPayload](e)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions = append(c.actions, payload.Action)
	c.revisions = append(c.revisions, payload.Revision)
	return nil
}

func (c *changeLog) lastRevision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.revisions) == 0 {
		return 0
	}
	return c.revisions[len(c.revisions)-1]
}

func (c *changeLog) list() []domain.OptionAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.OptionAction(nil), c.actions...)
}

func newTestService(t *testing.T) (Service, *memory.Store, *changeLog) {
	t.Helper()
	store := memory.New()
	bus := event.NewMemoryBus()
	log := &changeLog{}
	bus.Subscribe(event.OptionsChanged, log.handle)
	svc := NewService(store, event.NewDirectPublisher(bus))
	require.NoError(t, svc.Load(context.Background()))
	return svc, store, log
}

func texts(opts []domain.Option) []string {
	return domain.OptionTexts(opts)
}

func TestLoad_DefaultsWhenNothingStored(t *testing.T) {
	svc, _, _ := newTestService(t)

	opts := svc.List(context.Background())
	assert.Equal(t, []string{"Pizza", "Burger", "Sushi", "Tacos"}, texts(opts))
	for i, o := range opts {
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, domain.DefaultOptionColors[i], o.Color)
		assert.Equal(t, domain.DefaultOptionWeight, o.Weight)
	}
}

func TestLoad_StoredOptions(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.SaveOptions(ctx, []domain.Option{
		{ID: "a", Text: "Red", Color: "#FF0000", Weight: 2},
		{Text: " Blue ", Color: "not-a-color"},
	}))

	svc := NewService(store, nil)
	require.NoError(t, svc.Load(ctx))

	opts := svc.List(ctx)
	require.Len(t, opts, 2)
	assert.Equal(t, domain.Option{ID: "a", Text: "Red", Color: "#FF0000", Weight: 2}, opts[0])
	assert.Equal(t, "Blue", opts[1].Text)
	assert.NotEmpty(t, opts[1].ID, "missing id is generated")
	assert.Equal(t, domain.ColorForIndex(1), opts[1].Color)
	assert.Equal(t, domain.DefaultOptionWeight, opts[1].Weight)
}

func TestLoad_FallsBackOnBadState(t *testing.T) {
	tests := []struct {
		name string
		repo *failingRepo
	}{
		{"malformed", &failingRepo{loadErr: fmt.Errorf("%w: bad json", domain.ErrStateMalformed)}},
		{"driver error", &failingRepo{loadErr: errors.New("connection refused")}},
		{"duplicates stored", &failingRepo{stored: []domain.Option{{Text: "A"}, {Text: "a"}}}},
		{"empty text stored", &failingRepo{stored: []domain.Option{{Text: "  "}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, nil)
			require.NoError(t, svc.Load(context.Background()))
			assert.Equal(t, domain.DefaultOptionTexts, texts(svc.List(context.Background())))
		})
	}
}

func TestAdd(t *testing.T) {
	svc, store, log := newTestService(t)
	ctx := context.Background()

	opt, err := svc.Add(ctx, "  Ramen ")
	require.NoError(t, err)
	assert.Equal(t, "Ramen", opt.Text)
	assert.Equal(t, domain.ColorForIndex(4), opt.Color)

	stored, err := store.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, svc.List(ctx), stored)
	assert.Equal(t, []domain.OptionAction{domain.OptionActionAdd}, log.list())
}

func TestAdd_Errors(t *testing.T) {
	svc, _, log := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", domain.ErrEmptyOption},
		{"whitespace only", "   ", domain.ErrEmptyOption},
		{"exact duplicate", "Pizza", domain.ErrDuplicateOption},
		{"padded duplicate", " Pizza ", domain.ErrDuplicateOption},
		{"case duplicate", "SUSHI", domain.ErrDuplicateOption},
		{"too long", strings.Repeat("x", domain.MaxOptionTextLength+1), domain.ErrOptionTextTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.text)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, domain.IsValidationError(err))
		})
	}

	assert.Len(t, svc.List(ctx), 4)
	assert.Empty(t, log.list(), "rejected adds publish nothing")
}

func TestAdd_MaxOptions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := len(svc.List(ctx)); i < domain.MaxOptions; i++ {
		_, err := svc.Add(ctx, fmt.Sprintf("Option %d", i))
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, "One too many")
	assert.ErrorIs(t, err, domain.ErrMaxOptionsReached)

	// Empty text is reported before the size limit
	_, err = svc.Add(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyOption)

	// The size limit is reported before duplicates
	_, err = svc.Add(ctx, "Pizza")
	assert.ErrorIs(t, err, domain.ErrMaxOptionsReached)
	assert.Len(t, svc.List(ctx), domain.MaxOptions)
}

func TestAddWithColor(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	opt, err := svc.AddWithColor(ctx, "Curry", "#123abc")
	require.NoError(t, err)
	assert.Equal(t, "#123abc", opt.Color)

	_, err = svc.AddWithColor(ctx, "Pho", "blue")
	assert.ErrorIs(t, err, domain.ErrInvalidColor)
}

func TestRemove(t *testing.T) {
	svc, _, log := newTestService(t)
	ctx := context.Background()
	opts := svc.List(ctx)

	require.NoError(t, svc.Remove(ctx, opts[1].ID))
	assert.Equal(t, []string{"Pizza", "Sushi", "Tacos"}, texts(svc.List(ctx)))

	assert.ErrorIs(t, svc.Remove(ctx, "missing"), domain.ErrOptionNotFound)

	require.NoError(t, svc.Remove(ctx, opts[0].ID))
	err := svc.Remove(ctx, opts[2].ID)
	assert.ErrorIs(t, err, domain.ErrMinOptionsReached)
	assert.Len(t, svc.List(ctx), domain.MinOptions, "never drops below the minimum")
	assert.Equal(t, []domain.OptionAction{domain.OptionActionRemove, domain.OptionActionRemove}, log.list())
}

func TestEdit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	opts := svc.List(ctx)

	require.NoError(t, svc.Edit(ctx, opts[0].ID, " Calzone "))
	assert.Equal(t, "Calzone", svc.List(ctx)[0].Text)

	// Changing only the case of itself is allowed
	require.NoError(t, svc.Edit(ctx, opts[0].ID, "CALZONE"))

	assert.ErrorIs(t, svc.Edit(ctx, opts[0].ID, "burger"), domain.ErrDuplicateOption)
	assert.ErrorIs(t, svc.Edit(ctx, opts[0].ID, ""), domain.ErrEmptyOption)
	assert.ErrorIs(t, svc.Edit(ctx, "missing", "Fine"), domain.ErrOptionNotFound)
	assert.Equal(t, opts[0].ID, svc.List(ctx)[0].ID, "edit keeps the id")
}

func TestSetWeight(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	id := svc.List(ctx)[2].ID

	require.NoError(t, svc.SetWeight(ctx, id, 3.5))
	assert.Equal(t, 3.5, svc.List(ctx)[2].Weight)

	for _, w := range []float64{0, -1, domain.MaxOptionWeight + 1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, svc.SetWeight(ctx, id, w), domain.ErrInvalidWeight, "weight %v", w)
	}
	assert.ErrorIs(t, svc.SetWeight(ctx, "missing", 2), domain.ErrOptionNotFound)
}

func TestReplaceAll(t *testing.T) {
	svc, _, log := newTestService(t)
	ctx := context.Background()

	err := svc.ReplaceAll(ctx, []domain.Option{
		{Text: "Left"},
		{ID: "keep", Text: " Right ", Color: "#000000", Weight: 4},
		{ID: "keep", Text: "Straight"},
	})
	require.NoError(t, err)

	opts := svc.List(ctx)
	require.Len(t, opts, 3)
	assert.Equal(t, []string{"Left", "Right", "Straight"}, texts(opts))
	assert.NotEmpty(t, opts[0].ID)
	assert.Equal(t, domain.ColorForIndex(0), opts[0].Color)
	assert.Equal(t, domain.DefaultOptionWeight, opts[0].Weight)
	assert.Equal(t, domain.Option{ID: "keep", Text: "Right", Color: "#000000", Weight: 4}, opts[1])
	assert.NotEqual(t, "keep", opts[2].ID, "repeated ids are replaced")
	assert.Equal(t, []domain.OptionAction{domain.OptionActionReplace}, log.list())
}

func TestReplaceAll_Errors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	before := svc.List(ctx)

	tooMany := make([]domain.Option, domain.MaxOptions+1)
	for i := range tooMany {
		tooMany[i] = domain.Option{Text: fmt.Sprintf("opt %d", i)}
	}

	tests := []struct {
		name string
		opts []domain.Option
		want error
	}{
		{"too many", tooMany, domain.ErrMaxOptionsReached},
		{"duplicate", []domain.Option{{Text: "A"}, {Text: " a"}}, domain.ErrDuplicateOption},
		{"empty entry", []domain.Option{{Text: "A"}, {Text: ""}}, domain.ErrEmptyOption},
		{"bad color", []domain.Option{{Text: "A", Color: "red"}}, domain.ErrInvalidColor},
		{"negative weight", []domain.Option{{Text: "A", Weight: -2}}, domain.ErrInvalidWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.ReplaceAll(ctx, tt.opts), tt.want)
		})
	}
	assert.Equal(t, before, svc.List(ctx))

	// An empty replacement is allowed
	require.NoError(t, svc.ReplaceAll(ctx, nil))
	assert.Empty(t, svc.List(ctx))
}

func TestClear(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.List(ctx))

	stored, err := store.LoadOptions(ctx)
	require.NoError(t, err, "a cleared list is stored, not missing")
	assert.Empty(t, stored)
}

func TestLoadSample(t *testing.T) {
	svc, _, log := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, []string{"food", "yes-no", "weekend", "movie-night"}, svc.Samples())

	require.NoError(t, svc.LoadSample(ctx, "yes-no"))
	opts := svc.List(ctx)
	assert.Equal(t, []string{"Yes", "No"}, texts(opts))
	assert.Equal(t, domain.DefaultOptionColors[:2], []string{opts[0].Color, opts[1].Color})

	err := svc.LoadSample(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
	assert.Equal(t, []domain.OptionAction{domain.OptionActionSample}, log.list())
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	repo := &failingRepo{loadErr: domain.ErrStateNotFound}
	svc := NewService(repo, nil)
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	_, err := svc.Add(ctx, "Noodles")
	require.NoError(t, err, "persistence errors are not surfaced")
	assert.Contains(t, texts(svc.List(ctx)), "Noodles")
	assert.Equal(t, 1, repo.saves)
}

func TestSnapshotRevision(t *testing.T) {
	svc, _, log := newTestService(t)
	ctx := context.Background()

	opts, start := svc.Snapshot(ctx)
	assert.Equal(t, svc.List(ctx), opts)
	assert.Equal(t, log.lastRevision(), start, "published revision matches the snapshot")

	_, err := svc.Add(ctx, "Ramen")
	require.NoError(t, err)
	_, rev := svc.Snapshot(ctx)
	assert.Equal(t, start+1, rev)
	assert.Equal(t, rev, log.lastRevision())

	// A rejected change leaves the revision alone
	_, err = svc.Add(ctx, "Ramen")
	require.ErrorIs(t, err, domain.ErrDuplicateOption)
	_, same := svc.Snapshot(ctx)
	assert.Equal(t, rev, same)

	require.NoError(t, svc.Remove(ctx, opts[0].ID))
	require.NoError(t, svc.Clear(ctx))
	_, last := svc.Snapshot(ctx)
	assert.Equal(t, start+3, last)
	assert.Equal(t, last, log.lastRevision())
}

func TestListReturnsCopy(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	opts := svc.List(ctx)
	opts[0].Text = "Mutated"
	assert.Equal(t, "Pizza", svc.List(ctx)[0].Text)
}

func TestConcurrentAddsStayUnique(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Clear(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.Add(ctx, fmt.Sprintf("Item %d", i%10))
		}(i)
	}
	wg.Wait()

	opts := svc.List(ctx)
	assert.Len(t, opts, 10)
	seen := map[string]bool{}
	for _, o := range opts {
		key := domain.OptionKey(o.Text)
		assert.False(t, seen[key], "duplicate %q", o.Text)
		seen[key] = true
	}
}
