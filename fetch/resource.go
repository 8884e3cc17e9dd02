// Package fetch adapts parameterized remote calls into observable
// {data, loading, error} state with cancellation. It is the console's
// equivalent of a data-loading hook: every list/detail view drives one
// Resource and renders from its state.
package fetch

import (
	"context"
	"sync"
)

// Func is the remote call a Resource drives. The token is passed through
// verbatim; unauthorized endpoints ignore it.
type Func[P, T any] func(ctx context.Context, params P, token string) (T, error)

// State is a snapshot of a Resource. Data always starts from the initial
// value handed to NewResource, never from a nil container, so consumers can
// iterate before the first load settles. A failed load keeps the previous
// Data and sets Err; a successful load clears Err.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Resource runs at most one in-flight call. Issuing a new Load cancels the
// previous call and bumps the generation; only the most recent generation
// may commit state, so a slow stale response can never clobber the result
// of a newer request, regardless of arrival order.
type Resource[P, T any] struct {
	fn       Func[P, T]
	onChange func(State[T])

	mu         sync.Mutex
	state      State[T]
	generation uint64
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// Option defines a function type to modify the Resource instance.
type Option[P, T any] func(*Resource[P, T])

// WithOnChange registers a callback invoked after every state transition,
// outside the resource's lock.
func WithOnChange[P, T any](fn func(State[T])) Option[P, T] {
	return func(r *Resource[P, T]) {
		r.onChange = fn
	}
}

// NewResource creates a resource over fn. A nil fn yields an inert
// resource: Load never invokes anything and the state stays at its initial
// value with Loading false.
func NewResource[P, T any](fn Func[P, T], initial T, options ...Option[P, T]) *Resource[P, T] {
	r := &Resource[P, T]{
		fn:    fn,
		state: State[T]{Data: initial},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Load cancels any in-flight call and issues a fresh one with the given
// inputs. It returns immediately; observe completion via State, OnChange
// or Wait.
func (r *Resource[P, T]) Load(ctx context.Context, params P, token string) {
	if r.fn == nil {
		return
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.generation++
	generation := r.generation
	r.state.Loading = true
	snapshot := r.state
	r.mu.Unlock()
	r.notify(snapshot)

	r.wg.Add(1)
	go r.run(callCtx, generation, params, token)
}

func (r *Resource[P, T]) run(ctx context.Context, generation uint64, params P, token string) {
	defer r.wg.Done()

	data, err := r.fn(ctx, params, token)

	r.mu.Lock()
	// A superseded or cancelled call must not touch state, even when the
	// remote call ignored its context and settled anyway.
	if generation != r.generation || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.state.Err = err
	} else {
		r.state.Data = data
		r.state.Err = nil
	}
	r.state.Loading = false
	snapshot := r.state
	r.mu.Unlock()
	r.notify(snapshot)
}

// State returns a snapshot of the current state.
func (r *Resource[P, T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetData splices data in directly, bypassing a re-fetch. Used to fold a
// mutation response into an already-loaded list.
func (r *Resource[P, T]) SetData(data T) {
	r.mu.Lock()
	r.state.Data = data
	snapshot := r.state
	r.mu.Unlock()
	r.notify(snapshot)
}

// Wait blocks until the in-flight call, if any, has settled.
func (r *Resource[P, T]) Wait() {
	r.wg.Wait()
}

// Close cancels the in-flight call and waits for it to unwind. The
// cancelled call's settlement is a no-op with respect to state.
func (r *Resource[P, T]) Close() {
	r.mu.Lock()
	r.generation++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Resource[P, T]) notify(state State[T]) {
	if r.onChange != nil {
		r.onChange(state)
	}
}
