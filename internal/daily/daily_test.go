package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(ts))
}

func TestSeedsStablePerDay(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	nextDay := morning.Add(24 * time.Hour)

	p1, m1 := Seeds(morning, "salt")
	p2, m2 := Seeds(evening, "salt")
	assert.Equal(t, p1, p2)
	assert.Equal(t, m1, m2)

	p3, _ := Seeds(nextDay, "salt")
	assert.NotEqual(t, p1, p3)

	p4, _ := Seeds(morning, "other")
	assert.NotEqual(t, p1, p4)
}
