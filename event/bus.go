package event

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx"
	"github.com/go-leo/gox/syncx/chanx"
	"go.uber.org/zap"
)

type Bus interface {
	// On adds a Listener for the type of e's body.
	On(e Event, lis Listener) error

	// Prepend adds the Listener to the beginning of the listeners.
	Prepend(e Event, lis Listener) error

	// Once adds a one-time Listener. It is removed after the first Emit or AsyncEmit.
	Once(e Event, lis Listener) error

	// Off removes the specified Listener, regular or one-time.
	Off(e Event, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the type of e,
	// in the order they were registered, one-time listeners last.
	// The returned error joins every listener error.
	Emit(e Event) error

	// AsyncEmit calls each of the listeners on the bus pool.
	// The channel is closed once every listener returned.
	AsyncEmit(e Event) <-chan error

	// ListenerCount returns the number of listeners for the type of e.
	ListenerCount(e Event) int

	// Close waits for running AsyncEmit listeners and refuses further calls.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	mu            sync.RWMutex
	listeners     map[reflect.Type][]Listener
	onceListeners map[reflect.Type][]Listener
	wg            sync.WaitGroup
	inShutdown    atomic.Bool
	options       *option
}

func (b *bus) On(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[e.Type()] = append(b.listeners[e.Type()], lis)
	return nil
}

func (b *bus) Prepend(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[e.Type()] = slicex.Prepend(b.listeners[e.Type()], lis)
	return nil
}

func (b *bus) Once(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onceListeners[e.Type()] = append(b.onceListeners[e.Type()], lis)
	return nil
}

func (b *bus) Off(e Event, lis Listener) error {
	if err := b.check(e, lis); err != nil {
		return err
	}
	eventType := e.Type()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventType] = without(b.listeners[eventType], lis)
	b.onceListeners[eventType] = without(b.onceListeners[eventType], lis)
	return nil
}

func (b *bus) Emit(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	listeners := b.take(e.Type())
	errs := make([]error, 0, len(listeners))
	for _, listener := range listeners {
		errs = append(errs, listener.Handle(e))
	}
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(e Event) <-chan error {
	if err := b.checkEvent(e); err != nil {
		return errorChan(err)
	}
	// Close flips inShutdown under mu, so every listener counted here is waited for.
	b.mu.Lock()
	if b.shuttingDown() {
		b.mu.Unlock()
		return errorChan(ErrBusClosed)
	}
	listeners := b.takeLocked(e.Type())
	b.wg.Add(len(listeners))
	b.mu.Unlock()
	if len(listeners) == 0 {
		return errorChan(nil)
	}
	errCs := make([]<-chan error, 0, len(listeners))
	for _, listener := range listeners {
		listener := listener
		errC := make(chan error, 1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := listener.Handle(e); err != nil {
				errC <- err
			}
		})
		if err != nil {
			b.wg.Done()
			b.options.Logger.Warn("listener not scheduled", zap.Stringer("type", e.Type()), zap.Error(err))
			errC <- err
			close(errC)
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (b *bus) ListenerCount(e Event) int {
	if b.checkEvent(e) != nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[e.Type()]) + len(b.onceListeners[e.Type()])
}

func (b *bus) Close(ctx context.Context) error {
	b.mu.Lock()
	closing := b.inShutdown.CompareAndSwap(false, true)
	b.mu.Unlock()
	if !closing {
		return ErrBusClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-syncx.WaitNotify(&b.wg):
		return nil
	}
}

// take returns the listeners to call for eventType and drops the one-time ones.
func (b *bus) take(eventType reflect.Type) []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.takeLocked(eventType)
}

func (b *bus) takeLocked(eventType reflect.Type) []Listener {
	onces := b.onceListeners[eventType]
	delete(b.onceListeners, eventType)
	listeners := make([]Listener, 0, len(b.listeners[eventType])+len(onces))
	listeners = append(listeners, b.listeners[eventType]...)
	return append(listeners, onces...)
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

func (b *bus) check(e Event, lis Listener) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if lis == nil {
		return ErrListenerNil
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (b *bus) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if e.Type() == nil {
		return ErrEventTypeInvalid
	}
	return nil
}

func without(listeners []Listener, lis Listener) []Listener {
	indexes := slicex.Indexes(listeners, lis)
	if len(indexes) == 0 {
		return listeners
	}
	return slicex.DeleteAll(listeners, indexes...)
}

func errorChan(err error) <-chan error {
	errC := make(chan error, 1)
	if err != nil {
		errC <- err
	}
	close(errC)
	return errC
}
