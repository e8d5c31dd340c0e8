package dateutils_test

import (
	"testing"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/utils/dateutils"
	"github.com/stretchr/testify/assert"
)

func TestDateOnly_StripsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 3, 15, 18, 30, 45, 999, time.UTC)

	got := dateutils.DateOnly(in)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDateOnly_ConvertsToUTCFirst(t *testing.T) {
	// 07:30 in UTC+8 is 23:30 UTC the previous day; the partition key follows
	// the UTC calendar, not the local one.
	kl := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2025, 3, 16, 7, 30, 0, 0, kl)

	got := dateutils.DateOnly(in)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDateOnly_MidnightIsFixedPoint(t *testing.T) {
	midnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, midnight, dateutils.DateOnly(midnight))
	assert.Equal(t, midnight, dateutils.DateOnly(dateutils.DateOnly(midnight)))
}
