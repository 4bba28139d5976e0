// Package scope owns process state that lives only while a view is mounted.
package scope

import (
	"errors"
	"sync"

	"github.com/cristianoliveira/velvetpour/internal/logging"
)

// Scope collects cleanups and runs them in reverse registration order.
// The zero value is ready to use.
type Scope struct {
	mu       sync.Mutex
	cleanups []func() error
	closed   bool
}

// New returns an empty Scope.
func New() *Scope {
	return &Scope{}
}

// Add registers fn to run on Close. Adding to a closed scope runs fn
// immediately and returns its error, which is also logged.
func (s *Scope) Add(fn func() error) error {
	if fn == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if err := fn(); err != nil {
			logging.Warn("cleanup after scope closed failed", "error", err)
			return err
		}
		return nil
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
	return nil
}

// AddFunc registers a cleanup that cannot fail.
func (s *Scope) AddFunc(fn func()) {
	if fn == nil {
		return
	}
	_ = s.Add(func() error {
		fn()
		return nil
	})
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close runs every cleanup once, newest first, and joins their errors.
// Later calls return nil.
func (s *Scope) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	var errs []error
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
