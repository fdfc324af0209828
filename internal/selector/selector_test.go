package selector

import (
	"math/rand"
	"testing"

	"ltranslate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource makes every Intn call return 0
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func newSeeded(seed int64) *NonRepeating {
	return New(rand.New(rand.NewSource(seed)))
}

func TestNonRepeating_NoConsecutiveRepeats(t *testing.T) {
	for _, rowCount := range []int{2, 3, 5, 10, 100} {
		s := newSeeded(int64(rowCount))

		prev, err := s.Next(rowCount)
		require.NoError(t, err)

		for i := 0; i < 500; i++ {
			index, err := s.Next(rowCount)
			require.NoError(t, err)
			assert.NotEqual(t, prev, index, "rowCount=%d draw=%d", rowCount, i)
			assert.GreaterOrEqual(t, index, 0)
			assert.Less(t, index, rowCount)
			prev = index
		}
	}
}

func TestNonRepeating_SingleRow(t *testing.T) {
	s := newSeeded(1)

	for i := 0; i < 10; i++ {
		index, err := s.Next(1)
		assert.NoError(t, err)
		assert.Equal(t, 0, index)
	}

	_, recorded := s.Previous()
	assert.False(t, recorded)
}

func TestNonRepeating_EmptyTable(t *testing.T) {
	s := newSeeded(1)

	_, err := s.Next(0)

	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	_, recorded := s.Previous()
	assert.False(t, recorded)
}

func TestNonRepeating_NegativeRowCountPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = newSeeded(1).Next(-1)
	})
}

func TestNonRepeating_TwoRowsAlternate(t *testing.T) {
	s := newSeeded(42)

	first, err := s.Next(2)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		index, err := s.Next(2)
		require.NoError(t, err)
		assert.Equal(t, 1-first, index)
		first = index
	}
}

func TestNonRepeating_UniformDistribution(t *testing.T) {
	const (
		rowCount = 5
		trials   = 1000
	)

	s := newSeeded(7)
	counts := make([]int, rowCount)
	repeats := 0
	prev := -1

	for i := 0; i < trials; i++ {
		index, err := s.Next(rowCount)
		require.NoError(t, err)
		if index == prev {
			repeats++
		}
		counts[index]++
		prev = index
	}

	assert.Zero(t, repeats)
	// Expected 200 per index; 140..260 is far outside any plausible deviation
	for index, count := range counts {
		assert.InDelta(t, trials/rowCount, count, 60, "index %d", index)
	}
}

func TestNonRepeating_RedrawBound(t *testing.T) {
	s := New(rand.New(zeroSource{}))

	sequence := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		index, err := s.Next(3)
		require.NoError(t, err)
		sequence = append(sequence, index)
	}

	assert.Equal(t, []int{0, 1, 0, 1}, sequence)
}

func TestNonRepeating_Previous(t *testing.T) {
	s := newSeeded(3)

	_, recorded := s.Previous()
	assert.False(t, recorded)

	index, err := s.Next(4)
	require.NoError(t, err)

	prev, recorded := s.Previous()
	assert.True(t, recorded)
	assert.Equal(t, index, prev)
}

func TestNew_NilRand(t *testing.T) {
	s := New(nil)

	index, err := s.Next(3)

	assert.NoError(t, err)
	assert.Less(t, index, 3)
}
