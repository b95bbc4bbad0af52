// Package assets runs one-shot asset loads off the window thread.
//
// A load that fails never resolves: callers poll once per frame and simply keep
// going without the asset. The failure is logged once.
package assets

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Handle is the result of a background load. Poll it from the frame loop.
type Handle[T any] struct {
	Name string
	done chan struct{}
	val  T
	err  error
}

// Load starts decode on its own goroutine.
func Load[T any](name string, decode func() (T, error)) *Handle[T] {
	h := &Handle[T]{Name: name, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("assets: %s: panic: %v", name, r)
			}
		}()
		h.val, h.err = decode()
	}()
	return h
}

// Ready returns a handle that is already resolved with v.
func Ready[T any](name string, v T) *Handle[T] {
	h := &Handle[T]{Name: name, done: make(chan struct{}), val: v}
	close(h.done)
	return h
}

// Poll returns the value without blocking. ok is false while loading and forever after a failure.
func (h *Handle[T]) Poll() (v T, ok bool) {
	select {
	case <-h.done:
		if h.err != nil {
			return v, false
		}
		return h.val, true
	default:
		return v, false
	}
}

// Done reports whether the load has finished, successfully or not.
func (h *Handle[T]) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes.
func (h *Handle[T]) Wait() (T, error) {
	<-h.done
	return h.val, h.err
}

// Err returns the load error once finished, nil before that.
func (h *Handle[T]) Err() error {
	if !h.Done() {
		return nil
	}
	return h.err
}

type finishState int

const (
	pending finishState = iota
	ready
	failed
)

// Finisher pairs a background decode with a step that must run on the window thread
// (GPU uploads, audio stream creation). The finish step runs at most once.
type Finisher[D, T any] struct {
	src    *Handle[D]
	finish func(D) (T, error)
	log    zerolog.Logger
	state  finishState
	val    T
}

// Then returns a Finisher that runs finish on the polling goroutine once src resolves.
func Then[D, T any](src *Handle[D], log zerolog.Logger, finish func(D) (T, error)) *Finisher[D, T] {
	return &Finisher[D, T]{src: src, finish: finish, log: log}
}

// Poll advances the load and returns the finished value. Call it from the window thread only.
func (f *Finisher[D, T]) Poll() (v T, ok bool) {
	switch f.state {
	case ready:
		return f.val, true
	case failed:
		return v, false
	}
	if !f.src.Done() {
		return v, false
	}
	d, err := f.src.Wait()
	if err != nil {
		f.fail(err)
		return v, false
	}
	f.val, err = f.finish(d)
	if err != nil {
		f.fail(err)
		return v, false
	}
	f.state = ready
	f.log.Info().Str("asset", f.src.Name).Msg("asset loaded")
	return f.val, true
}

// Failed reports whether the load or its finish step failed.
func (f *Finisher[D, T]) Failed() bool {
	return f.state == failed
}

func (f *Finisher[D, T]) fail(err error) {
	f.state = failed
	f.log.Warn().Err(err).Str("asset", f.src.Name).Msg("asset load failed, feature stays inactive")
}
