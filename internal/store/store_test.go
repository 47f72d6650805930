package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type add struct{ n int }

func (add) Type() string { return "[Counter] Add" }

type set struct{ n int }

func (set) Type() string { return "[Counter] Set" }

type fetch struct{ id int }

func (fetch) Type() string { return "[Counter] Fetch" }

type counter struct {
	Total int
	Log   []int
}

func reduceCounter(s counter, a Action) counter {
	switch a := a.(type) {
	case add:
		s.Total += a.n
		s.Log = append(append([]int(nil), s.Log...), a.n)
	case set:
		s.Total = a.n
	}
	return s
}

func TestStore_DispatchNotifiesSynchronously(t *testing.T) {
	s := New(counter{}, reduceCounter)

	var seen []int
	unsubscribe := s.Subscribe(func(c counter) { seen = append(seen, c.Total) })

	s.Dispatch(add{1})
	s.Dispatch(add{2})
	assert.Equal(t, []int{1, 3}, seen)

	unsubscribe()
	s.Dispatch(add{3})
	assert.Equal(t, []int{1, 3}, seen)
	assert.Equal(t, 6, s.State().Total)
}

func TestStore_UnknownActionKeepsState(t *testing.T) {
	s := New(counter{Total: 4}, reduceCounter)
	before := s.State()

	s.Dispatch(fetch{1})
	assert.Equal(t, before, s.State())
}

func TestStore_ReentrantDispatchIsQueued(t *testing.T) {
	s := New(counter{}, reduceCounter)

	var seen []int
	s.Subscribe(func(c counter) {
		seen = append(seen, c.Total)
		if c.Total == 1 {
			s.Dispatch(add{10})
		}
	})
	s.Subscribe(func(c counter) {
		seen = append(seen, -c.Total)
	})

	s.Dispatch(add{1})

	// both observers see state 1 before any observer sees state 11
	assert.Equal(t, []int{1, -1, 11, -11}, seen)
	assert.Equal(t, []int{1, 10}, s.State().Log)
}

func TestStore_DispatchFromOtherGoroutineMayReturnFirst(t *testing.T) {
	s := New(counter{}, reduceCounter)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	s.Subscribe(func(c counter) {
		if c.Total == 1 {
			once.Do(func() { close(entered) })
			<-release
		}
	})

	go s.Dispatch(add{1})
	<-entered

	returned := make(chan struct{})
	go func() {
		s.Dispatch(add{10})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("dispatch from a second goroutine blocked on the active drain")
	}
	assert.Equal(t, 1, s.State().Total)

	close(release)
	require.Eventually(t, func() bool { return s.State().Total == 11 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 10}, s.State().Log)
}

func TestStore_ReplayIsDeterministic(t *testing.T) {
	actions := []Action{add{1}, set{5}, fetch{2}, add{3}, add{-2}}

	run := func() counter {
		s := New(counter{}, reduceCounter)
		for _, a := range actions {
			s.Dispatch(a)
		}
		return s.State()
	}

	assert.Equal(t, run(), run())
	assert.Equal(t, counter{Total: 6, Log: []int{1, 3, -2}}, run())
}

func TestSelect_DeduplicatesByValue(t *testing.T) {
	s := New(counter{}, reduceCounter)

	var got []bool
	stop := Select(s, func(c counter) bool { return c.Total > 2 }, nil, func(v bool) {
		got = append(got, v)
	})
	defer stop()

	s.Dispatch(add{1})
	s.Dispatch(add{1})
	s.Dispatch(add{1})
	s.Dispatch(add{1})
	s.Dispatch(set{0})

	assert.Equal(t, []bool{false, true, false}, got)
}

func TestSelect_CallbackMayDispatch(t *testing.T) {
	s := New(counter{}, reduceCounter)

	var got []int
	Select(s, func(c counter) int { return c.Total }, nil, func(v int) {
		got = append(got, v)
		if v < 3 {
			s.Dispatch(add{1})
		}
	})

	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Equal(t, 3, s.State().Total)
}

func TestWatch_KeepsLatestValue(t *testing.T) {
	s := New(counter{}, reduceCounter)

	ch, cancel := Watch(s, func(c counter) int { return c.Total }, nil)
	s.Dispatch(add{1})
	s.Dispatch(add{1})

	assert.Equal(t, 2, <-ch)

	s.Dispatch(add{5})
	assert.Equal(t, 7, <-ch)

	cancel()
	_, open := <-ch
	assert.False(t, open)
	s.Dispatch(add{1})
}

func TestSameSlice(t *testing.T) {
	a := []int{1, 2, 3}
	b := a
	c := append([]int(nil), a...)

	assert.True(t, SameSlice(a, b))
	assert.False(t, SameSlice(a, c))
	assert.False(t, SameSlice(a, a[:2]))
	assert.True(t, SameSlice[int](nil, nil))
	assert.False(t, SameSlice(nil, []int{}))
}

func TestMemo_RecomputesOnNewInput(t *testing.T) {
	calls := 0
	sum := Memo(SameSlice[int], func(xs []int) int {
		calls++
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})

	xs := []int{1, 2}
	assert.Equal(t, 3, sum(xs))
	assert.Equal(t, 3, sum(xs))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 3, sum([]int{1, 2}))
	assert.Equal(t, 2, calls)
}

func TestMemo2(t *testing.T) {
	calls := 0
	f := Memo2(Comparable[int], Comparable[string], func(n int, s string) string {
		calls++
		return s + string(rune('0'+n))
	})

	assert.Equal(t, "a1", f(1, "a"))
	assert.Equal(t, "a1", f(1, "a"))
	assert.Equal(t, "b1", f(1, "b"))
	assert.Equal(t, 2, calls)
}

func TestEffect_LatestDiscardsSupersededOutcome(t *testing.T) {
	s := New(counter{}, reduceCounter)

	release := map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})}
	var cancelled sync.Map
	s.Register(On("fetch", Latest, func(ctx context.Context, a fetch) Action {
		select {
		case <-release[a.id]:
		case <-ctx.Done():
			cancelled.Store(a.id, true)
			<-release[a.id]
		}
		return set{a.id * 100}
	}))

	s.Dispatch(fetch{1})
	s.Dispatch(fetch{2})

	close(release[2])
	require.Eventually(t, func() bool { return s.State().Total == 200 }, time.Second, time.Millisecond)

	close(release[1])
	s.Wait()

	assert.Equal(t, 200, s.State().Total)
	_, ok := cancelled.Load(1)
	assert.True(t, ok)
}

func TestEffect_ExhaustIgnoresWhileBusy(t *testing.T) {
	s := New(counter{}, reduceCounter)

	release := make(chan struct{})
	var mu sync.Mutex
	var started []int
	s.Register(On("save", Exhaust, func(ctx context.Context, a fetch) Action {
		mu.Lock()
		started = append(started, a.id)
		mu.Unlock()
		<-release
		return add{a.id}
	}))

	s.Dispatch(fetch{1})
	s.Dispatch(fetch{2})
	close(release)
	s.Wait()

	s.Dispatch(fetch{3})
	s.Wait()

	assert.Equal(t, []int{1, 3}, started)
	assert.Equal(t, 4, s.State().Total)
}

func TestEffect_OnceRunsFirstOnly(t *testing.T) {
	s := New(counter{}, reduceCounter)

	var mu sync.Mutex
	runs := 0
	s.Register(On("once", Once, func(ctx context.Context, a set) Action {
		mu.Lock()
		runs++
		mu.Unlock()
		return nil
	}))

	s.Dispatch(set{1})
	s.Dispatch(set{2})
	s.Wait()

	assert.Equal(t, 1, runs)
}

func TestStore_CloseCancelsEffects(t *testing.T) {
	s := New(counter{}, reduceCounter)

	s.Register(On("hang", Latest, func(ctx context.Context, a fetch) Action {
		<-ctx.Done()
		return nil
	}))

	s.Dispatch(fetch{1})
	s.Close()
	assert.Equal(t, 0, s.State().Total)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "latest", Latest.String())
	assert.Equal(t, "exhaust", Exhaust.String())
	assert.Equal(t, "once", Once.String())
}
