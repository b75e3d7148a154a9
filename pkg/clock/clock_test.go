package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	require.Equal(t, start, c.Now())

	c.Advance(time.Hour)
	require.Equal(t, start.Add(time.Hour), c.Now())
	require.Equal(t, time.Hour, c.Since(start))

	c.Set(start)
	require.Equal(t, start, c.Now())
}

func TestRealClockReturnsUTC(t *testing.T) {
	require.Equal(t, time.UTC, NewRealClock().Now().Location())
}
