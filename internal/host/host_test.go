package host

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/calsigns/internal/cache"
	"github.com/ppiankov/calsigns/internal/model"
	"github.com/ppiankov/calsigns/internal/signs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 9, 0, 0, 0, time.UTC)
}

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("entry-1", "", signs.All(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return r
}

func TestNewDeviceInfo(t *testing.T) {
	d := NewDeviceInfo("", "abc")
	assert.Equal(t, DefaultDeviceName, d.Name)
	assert.Equal(t, [][2]string{{Domain, "abc"}}, d.Identifiers)
	assert.Equal(t, EntryTypeService, d.EntryType)

	assert.Equal(t, "Signs", NewDeviceInfo("Signs", "abc").Name)
}

func TestNewRegistry(t *testing.T) {
	r := newRegistry(t)

	assert.Equal(t, "entry-1", r.EntryID())
	require.Len(t, r.Entities(), 5)

	for _, e := range r.Entities() {
		assert.Equal(t, r.Device(), e.Device())
		assert.Equal(t, DeviceClassEnum, e.DeviceClass())
		assert.Equal(t, TranslationKey, e.TranslationKey())
		assert.True(t, e.HasEntityName())
	}

	e, ok := r.Get(signs.IDEgyptian)
	require.True(t, ok)
	assert.Equal(t, "Egyptian Signs", e.Name())

	_, ok = r.Get("chinese_signs")
	assert.False(t, ok)
}

func TestNewRegistry_GeneratesEntryID(t *testing.T) {
	a, err := NewRegistry("", "", signs.All(), nil)
	require.NoError(t, err)
	b, err := NewRegistry("", "", signs.All(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, a.EntryID())
	assert.NotEqual(t, a.EntryID(), b.EntryID())
	assert.Equal(t, a.EntryID(), a.Device().Identifiers[0][1])
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	celtic, _ := signs.Lookup(signs.IDCeltic)
	_, err := NewRegistry("e", "", []*model.SignTable{celtic, celtic}, nil)
	assert.Error(t, err)
}

func TestRegistry_UpdateAll(t *testing.T) {
	r := newRegistry(t)

	states := r.UpdateAll(day(time.March, 21))
	require.Len(t, states, 5)

	want := []string{signs.TAAries, signs.JZSun, signs.NAFalcon, signs.EOsiris, signs.CAlder}
	for i, st := range states {
		require.NotNil(t, st.Value, st.UniqueID)
		assert.Equal(t, want[i], *st.Value, st.UniqueID)
		assert.Contains(t, st.Options, *st.Value)
		assert.Equal(t, day(time.March, 21), st.UpdatedAt)
		assert.Equal(t, DeviceClassEnum, st.DeviceClass)
		assert.Equal(t, TranslationKey, st.TranslationKey)
	}

	assert.Equal(t, map[string]string{
		model.AttrElement:  model.ElementFire,
		model.AttrModality: model.ModalityCardinal,
	}, states[0].Attributes)
	assert.Empty(t, states[1].Attributes)
	assert.Equal(t, model.StoneOpal, states[2].Attributes[model.AttrStone])
}

func TestEntity_StateUnsetUntilMatch(t *testing.T) {
	r := newRegistry(t)
	jz, _ := r.Get(signs.IDJapanZen)

	st := jz.Update(day(time.May, 10))
	assert.Nil(t, st.Value)
	assert.Equal(t, "unknown", st.ValueOr("unknown"))
	assert.NotNil(t, st.Attributes)

	st = jz.Update(day(time.June, 10))
	require.NotNil(t, st.Value)
	assert.Equal(t, signs.JZBuffalo, *st.Value)

	// A miss keeps the last value
	st = jz.Update(day(time.September, 10))
	require.NotNil(t, st.Value)
	assert.Equal(t, signs.JZBuffalo, *st.Value)
}

func TestState_SameAs(t *testing.T) {
	a, b := "a", "b"
	base := State{Value: &a, Attributes: map[string]string{"k": "v"}}

	tests := []struct {
		desc  string
		other State
		same  bool
	}{
		{"identical", State{Value: &a, Attributes: map[string]string{"k": "v"}}, true},
		{"different value", State{Value: &b, Attributes: map[string]string{"k": "v"}}, false},
		{"unset value", State{Attributes: map[string]string{"k": "v"}}, false},
		{"different attribute", State{Value: &a, Attributes: map[string]string{"k": "w"}}, false},
		{"missing attribute", State{Value: &a, Attributes: map[string]string{}}, false},
		{"timestamps ignored", State{Value: &a, Attributes: map[string]string{"k": "v"}, UpdatedAt: time.Now()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.same, base.SameAs(tt.other))
		})
	}
}

func TestPublisher_Publish(t *testing.T) {
	pub := NewPublisher(cache.NewMemoryCache(time.Hour, 0), "entry", 0)
	r := newRegistry(t)
	e, _ := r.Get(signs.IDTraditional)

	changed, err := pub.Publish(e.Update(day(time.March, 21)))
	require.NoError(t, err)
	assert.True(t, changed, "first publish is a change")

	changed, err = pub.Publish(e.Update(day(time.March, 22)))
	require.NoError(t, err)
	assert.False(t, changed, "same sign on the next day")

	changed, err = pub.Publish(e.Update(day(time.April, 21)))
	require.NoError(t, err)
	assert.True(t, changed)

	last, ok := pub.Last(signs.IDTraditional)
	require.True(t, ok)
	assert.Equal(t, signs.TATaurus, last.ValueOr(""))
	assert.Equal(t, model.ElementEarth, last.Attributes[model.AttrElement])

	require.NoError(t, pub.Forget(signs.IDTraditional))
	_, ok = pub.Last(signs.IDTraditional)
	assert.False(t, ok)
}

func TestPublisher_EntriesAreIsolated(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour, 0)
	a := NewPublisher(c, "a", 0)
	b := NewPublisher(c, "b", 0)

	v := signs.CBirch
	_, err := a.Publish(State{UniqueID: signs.IDCeltic, Value: &v})
	require.NoError(t, err)

	_, ok := b.Last(signs.IDCeltic)
	assert.False(t, ok)
}

// fakeClock is a concurrency-safe settable clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func TestPoller_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newRegistry(t)
	pub := NewPublisher(cache.NewMemoryCache(time.Hour, 0), r.EntryID(), 0)
	poller := NewPoller(r, pub, 5*time.Millisecond, 1, zaptest.NewLogger(t))

	clock := &fakeClock{now: day(time.March, 21)}
	poller.SetClock(clock.Now)

	changes := make(chan State, 64)
	poller.OnChange(func(st State) { changes <- st })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	seen := map[string]string{}
	for len(seen) < 5 {
		select {
		case st := <-changes:
			seen[st.UniqueID] = st.ValueOr("")
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for initial states, got %v", seen)
		}
	}
	assert.Equal(t, signs.TAAries, seen[signs.IDTraditional])

	// Traditional and Japan Zen keep their signs between these days
	clock.Set(day(time.April, 20))
	changed := map[string]string{}
	deadline := time.After(2 * time.Second)
	for len(changed) < 3 {
		select {
		case st := <-changes:
			changed[st.UniqueID] = st.ValueOr("")
		case <-deadline:
			t.Fatalf("timed out waiting for changes, got %v", changed)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}

	assert.Equal(t, map[string]string{
		signs.IDNativeAmerican: signs.NABeaver,
		signs.IDEgyptian:       signs.EThoth,
		signs.IDCeltic:         signs.CWillow,
	}, changed)

	for _, e := range r.Entities() {
		_, ok := pub.Last(e.UniqueID())
		assert.False(t, ok, "%s still published after stop", e.UniqueID())
	}
}

func TestPoller_StopsOnCancelledContext(t *testing.T) {
	r := newRegistry(t)
	pub := NewPublisher(cache.NewMemoryCache(time.Hour, 0), r.EntryID(), 0)
	poller := NewPoller(r, pub, time.Hour, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller ignored cancelled context")
	}
}

func TestPoller_EmptyRegistryWaitsForCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := NewRegistry("entry-empty", "", []*model.SignTable{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Empty(t, r.Entities())

	pub := NewPublisher(cache.NewMemoryCache(time.Hour, 0), r.EntryID(), 0)
	poller := NewPoller(r, pub, time.Millisecond, 1, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("poller returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on an empty registry")
	}
}

func TestEntity_StateIsConsistentUnderRefresh(t *testing.T) {
	e, ok := newRegistry(t).Get(signs.IDTraditional)
	require.True(t, ok)

	element := map[string]string{
		signs.TAAries:  model.ElementFire,
		signs.TATaurus: model.ElementEarth,
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				e.Update(day(time.March, 21))
			} else {
				e.Update(day(time.April, 25))
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		st := e.State(time.Now())
		if st.Value == nil {
			continue
		}
		assert.Equal(t, element[*st.Value], st.Attributes[model.AttrElement])
	}
	close(stop)
	wg.Wait()
}
