// Package selector draws random row indices without immediate repetition.
package selector

import (
	"fmt"
	"math/rand"
	"time"

	"ltranslate/internal/domain"
)

const (
	noSelection = -1

	// maxRedraws bounds rejection sampling. After that many draws equal to the
	// previous index the selector picks directly among the other rows.
	maxRedraws = 32
)

// NonRepeating returns uniformly random indices, never the same one twice in a row
// when more than one row exists. It is not safe for concurrent use.
type NonRepeating struct {
	rng      *rand.Rand
	previous int
}

// New creates a selector with no previous selection. A nil rng is replaced
// by one seeded from the clock.
func New(rng *rand.Rand) *NonRepeating {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NonRepeating{
		rng:      rng,
		previous: noSelection,
	}
}

// Next draws an index in [0, rowCount).
//
// A single-row table always yields 0 and leaves the previous selection untouched.
// An empty table yields domain.ErrEmptyTable. A negative rowCount panics.
func (s *NonRepeating) Next(rowCount int) (int, error) {
	switch {
	case rowCount < 0:
		panic(fmt.Sprintf("selector: negative row count %d", rowCount))
	case rowCount == 0:
		return 0, domain.ErrEmptyTable
	case rowCount == 1:
		return 0, nil
	}

	index := s.rng.Intn(rowCount)
	for attempt := 1; index == s.previous; attempt++ {
		if attempt >= maxRedraws {
			// Uniform over the rowCount-1 indices other than previous
			index = (s.previous + 1 + s.rng.Intn(rowCount-1)) % rowCount
			break
		}
		index = s.rng.Intn(rowCount)
	}

	s.previous = index
	return index, nil
}

// Previous returns the last recorded selection
func (s *NonRepeating) Previous() (int, bool) {
	return s.previous, s.previous != noSelection
}
