package amlich

import "github.com/SebastiaanKlippert/go-amlich/jd"

// maxLeapScan bounds the leap month search, a lunar year never has more than 13 months.
const maxLeapScan = 14

// month11 returns the Julian day number on which lunar month 11 of year starts,
// the month that contains the winter solstice.
func month11(year int, tz float64) int {
	off := jd.YMD2J(year, 12, 31) - 2415021
	k := floor(float64(off) / synodicMonth)
	nm := newMoonDay(k, tz)
	//the sun is past 270 degrees at local midnight, so this moon comes after the solstice
	if solarTerm(nm, tz) >= 9 {
		return newMoonDay(k-1, tz)
	}
	return nm
}

// leapMonthOffset returns the offset, counted in months after the month 11 starting on day a11,
// of the first month that contains no major solar term.
func leapMonthOffset(a11 int, tz float64) int {
	k := floor((float64(a11)-newMoon1900)/synodicMonth + 0.5)
	i := 1 //start with the month following month 11
	arc := solarTerm(newMoonDay(k+i, tz), tz)
	for {
		last := arc
		i++
		arc = solarTerm(newMoonDay(k+i, tz), tz)
		if arc == last || i >= maxLeapScan {
			return i - 1
		}
	}
}
