package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Nowhere/Land"))
	assert.Equal(t, "Asia/Seoul", Location("Asia/Seoul").String())
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2025-07-07", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC), end)

	seoul := Location("Asia/Seoul")
	start, end, err = DayBounds("2025-07-07", seoul)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 6, 15, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	_, _, err = DayBounds("07/07/2025", time.UTC)
	assert.Error(t, err)
}
