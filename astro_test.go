package amlich

import (
	"math"
	"testing"

	"github.com/SebastiaanKlippert/go-amlich/jd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoon(t *testing.T) {
	assert.InDelta(t, newMoon1900, newMoon(0), 1e-3)
	assert.InDelta(t, 2415079.976104907, newMoon(2), 1e-6)
	assert.InDelta(t, 2414961.93439546, newMoon(-2), 1e-6)
}

func TestNewMoonDay(t *testing.T) {
	cases := []struct {
		k    int
		tz   float64
		want string
	}{
		//2019-11-26 15:06 UTC
		{1483, 7, "2019-11-26"},
		//2020-01-24 21:42 UTC, the next local day east of UTC+2:18
		{1485, 0, "2020-01-24"},
		{1485, 7, "2020-01-25"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, jd.ToDate(newMoonDay(c.k, c.tz)), "k=%d tz=%v", c.k, c.tz)
	}

	prev := newMoonDay(-1000, 7)
	for k := -999; k < 3000; k++ {
		day := newMoonDay(k, 7)
		require.Contains(t, []int{29, 30}, day-prev, "k=%d", k)
		prev = day
	}
}

func TestSunLongitudeRange(t *testing.T) {
	for day := 2400000; day < 2500000; day += 13 {
		l := sunLongitude(float64(day))
		require.True(t, l >= 0 && l < 2*math.Pi, "day %d: %v", day, l)
	}
}

func TestSolarTerm(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    int
	}{
		{2020, 4, 1, 0},
		{2020, 7, 1, 3},
		{2020, 1, 1, 9},
		//solstice 2020-12-21 10:02 UTC
		{2020, 12, 21, 8},
		{2020, 12, 22, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, solarTerm(jd.YMD2J(c.y, c.m, c.d), 7), "%04d-%02d-%02d", c.y, c.m, c.d)
	}
}
