package jd

import (
	"fmt"
	"testing"
	"time"

	cjd "github.com/carlosjhr64/jd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymd(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func TestJ2YMD(t *testing.T) {
	cases := []struct {
		jdate int
		want  string
	}{
		{2453738, "2006-01-02"},
		{2460131, "2023-07-05"},
		{2440588, "1970-01-01"},
		{2451544, "1999-12-31"},
		{2487763, "2099-02-28"},
		{2299161, "1582-10-15"},
		{2299160, "1582-10-04"},
		{2086308, "1000-01-01"},
		{2086367, "1000-02-29"},
		{0, "-4712-01-01"},
	}
	for _, c := range cases {
		y, m, d := J2YMD(c.jdate)
		if ymd(y, m, d) != c.want {
			t.Errorf("Julian date %d: want %s, have %s", c.jdate, c.want, ymd(y, m, d))
		}
	}
}

func TestYMD2J(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    int
	}{
		{2006, 1, 2, 2453738},
		{1970, 1, 1, 2440588},
		{1582, 10, 15, 2299161},
		{1582, 10, 4, 2299160},
		{1000, 2, 29, 2086367},
		{-4712, 1, 1, 0},
		//day 32 of December is the 1st of January
		{1999, 12, 32, 2451545},
		{2000, 1, 0, 2451544},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, YMD2J(c.y, c.m, c.d), ymd(c.y, c.m, c.d))
	}
}

func TestCalendarCutover(t *testing.T) {
	assert.Equal(t, YMD2J(1582, 10, 4)+1, YMD2J(1582, 10, 15))
	assert.Equal(t, "1582-10-04", ToDate(Gregorian-1))
	assert.Equal(t, "1582-10-15", ToDate(Gregorian))
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 2600000; n += 7 {
		y, m, d := J2YMD(n)
		require.Equal(t, n, YMD2J(y, m, d), "JDN %d (%s)", n, ymd(y, m, d))
	}
	for _, y := range []int{-4000, -1, 0, 4, 100, 1200, 1583, 1900, 2000, 2024, 3000} {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= 28; d++ {
				yy, mm, dd := J2YMD(YMD2J(y, m, d))
				require.Equal(t, ymd(y, m, d), ymd(yy, mm, dd))
			}
		}
	}
}

//The Gregorian regime must agree with the Fliegel/Van Flandern formulas
func TestGregorianAgainstFliegelVanFlandern(t *testing.T) {
	for n := Gregorian; n < Gregorian+400*366; n += 3 {
		y, m, d := J2YMD(n)
		ry, rm, rd := cjd.J2YMD(n)
		require.Equal(t, ymd(ry, rm, rd), ymd(y, m, d))
		require.Equal(t, cjd.YMD2J(y, m, d), YMD2J(y, m, d))
	}
	assert.Equal(t, cjd.ToDate(2453738), ToDate(2453738))
}

func TestNumber(t *testing.T) {
	tm := time.Date(2006, 1, 2, 23, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	assert.Equal(t, 2453738, Number(tm))
	assert.Equal(t, cjd.Number(tm), Number(tm))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(7, 3))
	assert.Equal(t, -3, floorDiv(-7, 3))
	assert.Equal(t, -1, floorDiv(-1, 12))
	assert.Equal(t, -2, floorDiv(-6, 3))
}
