package service

import (
	"math/rand"
	"sync"

	"ltranslate/internal/selector"
)

// Session is the per-user state of one study session: the selection
// history and the chosen theme.
type Session struct {
	mu        sync.Mutex
	selector  *selector.NonRepeating
	darkTheme bool
}

// NewSession creates a session with dark theme and no previous selection.
// A nil rng seeds a fresh generator.
func NewSession(rng *rand.Rand) *Session {
	return &Session{
		selector:  selector.New(rng),
		darkTheme: true,
	}
}

// DarkTheme reports whether the dark theme is active
func (s *Session) DarkTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkTheme
}

// SetDarkTheme switches between dark and light theme
func (s *Session) SetDarkTheme(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkTheme = dark
}

func (s *Session) next(rowCount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.Next(rowCount)
}
