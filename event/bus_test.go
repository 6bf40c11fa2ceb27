package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu     sync.Mutex
	name   string
	calls  *[]string
	err    error
	bodies []any
}

func (r *recorder) Handle(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies = append(r.bodies, e.Body())
	if r.calls != nil {
		*r.calls = append(*r.calls, r.name)
	}
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bodies)
}

type funcListener func(Event) error

func (f funcListener) Handle(e Event) error { return f(e) }

func TestBus_Emit(t *testing.T) {
	b := NewBus()
	var calls []string
	first := &recorder{name: "first", calls: &calls}
	second := &recorder{name: "second", calls: &calls}
	head := &recorder{name: "head", calls: &calls}

	e := New(ProductionFinished{Factory: "cars", Produced: 2, Stock: 3})
	require.NoError(t, b.On(e, first))
	require.NoError(t, b.On(e, second))
	require.NoError(t, b.Prepend(e, head))
	assert.Equal(t, 3, b.ListenerCount(e))

	require.NoError(t, b.Emit(e))
	assert.Equal(t, []string{"head", "first", "second"}, calls)
	assert.Equal(t, ProductionFinished{Factory: "cars", Produced: 2, Stock: 3}, first.bodies[0])

	// other body types do not reach these listeners
	require.NoError(t, b.Emit(New(LineAdded{Factory: "cars", Lines: 1})))
	assert.Equal(t, 1, first.count())
}

func TestBus_Once(t *testing.T) {
	b := NewBus()
	once := &recorder{}
	e := New(LineAdded{Lines: 1})
	require.NoError(t, b.Once(e, once))
	require.NoError(t, b.Emit(e))
	require.NoError(t, b.Emit(e))
	assert.Equal(t, 1, once.count())
	assert.Equal(t, 0, b.ListenerCount(e))
}

func TestBus_Off(t *testing.T) {
	b := NewBus()
	lis := &recorder{}
	once := &recorder{}
	e := New(LineAdded{Lines: 1})
	require.NoError(t, b.On(e, lis))
	require.NoError(t, b.Once(e, once))
	require.NoError(t, b.Off(e, lis))
	require.NoError(t, b.Off(e, once))
	require.NoError(t, b.Emit(e))
	assert.Zero(t, lis.count())
	assert.Zero(t, once.count())
}

func TestBus_EmitJoinsErrors(t *testing.T) {
	b := NewBus()
	errA, errB := errors.New("a"), errors.New("b")
	e := New(LineAdded{})
	require.NoError(t, b.On(e, &recorder{err: errA}))
	require.NoError(t, b.On(e, &recorder{err: errB}))
	err := b.Emit(e)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestBus_Check(t *testing.T) {
	b := NewBus()
	e := New(LineAdded{})
	assert.ErrorIs(t, b.On(nil, &recorder{}), ErrEventNil)
	assert.ErrorIs(t, b.On(New(nil), &recorder{}), ErrEventTypeInvalid)
	assert.ErrorIs(t, b.On(e, nil), ErrListenerNil)
	assert.ErrorIs(t, b.On(e, funcListener(func(Event) error { return nil })), ErrListenerIncomparable)
	assert.ErrorIs(t, b.Emit(nil), ErrEventNil)
}

func TestBus_AsyncEmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBus()
	boom := errors.New("boom")
	ok := &recorder{}
	e := New(ProductionFinished{Produced: 1})
	require.NoError(t, b.On(e, ok))
	require.NoError(t, b.On(e, &recorder{err: boom}))

	var errs []error
	for err := range b.AsyncEmit(e) {
		errs = append(errs, err)
	}
	assert.Equal(t, []error{boom}, errs)
	assert.Equal(t, 1, ok.count())

	for err := range b.AsyncEmit(New(LineAdded{})) {
		t.Fatalf("unexpected error %v", err)
	}
	require.NoError(t, b.Close(context.Background()))
}

func TestBus_Close(t *testing.T) {
	b := NewBus()
	require.NoError(t, b.Close(context.Background()))
	e := New(LineAdded{})
	assert.ErrorIs(t, b.Close(context.Background()), ErrBusClosed)
	assert.ErrorIs(t, b.On(e, &recorder{}), ErrBusClosed)
	assert.ErrorIs(t, b.Emit(e), ErrBusClosed)
	assert.ErrorIs(t, <-b.AsyncEmit(e), ErrBusClosed)
}

type lateCheck struct {
	closed *atomic.Bool
	late   *atomic.Int32
}

func (l *lateCheck) Handle(Event) error {
	if l.closed.Load() {
		l.late.Add(1)
	}
	return nil
}

func TestBus_CloseWaitsForAsyncEmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	for i := 0; i < 50; i++ {
		b := NewBus()
		var closed atomic.Bool
		var late atomic.Int32
		e := New(ProductionFinished{})
		require.NoError(t, b.On(e, &lateCheck{closed: &closed, late: &late}))

		var wg sync.WaitGroup
		for j := 0; j < 20; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range b.AsyncEmit(e) {
				}
			}()
		}
		require.NoError(t, b.Close(context.Background()))
		closed.Store(true)
		wg.Wait()
		assert.Zero(t, late.Load(), "no listener starts after Close returned")
	}
}
