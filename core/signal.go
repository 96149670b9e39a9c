package core

import "sync"

// Signal is a process-wide event that resolves exactly once. Every open poll
// races its own timer against the same Signal, so Done must be safe to read
// from any number of goroutines and Resolve must be idempotent.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal creates an unresolved Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Resolve fires the signal. Subsequent calls are no-ops.
func (s *Signal) Resolve() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// Done returns a channel that is closed once the signal resolves.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Resolved reports whether the signal has fired.
func (s *Signal) Resolved() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
