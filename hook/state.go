package hook

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// State carries the loading, error and success flags of a hook.
type State struct {
	mu      sync.Mutex
	loading bool
	success bool
	err     error
}

func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *State) Success() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

// Error is the message of the last failure, or "".
func (s *State) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Err is the last failure itself, for errors.Is checks.
func (s *State) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *State) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.success = false
	s.err = nil
}

func (s *State) fail(op string, err error) {
	log.Errorf("%s: %v", op, err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
}

func (s *State) done(wrote bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.success = wrote
}
