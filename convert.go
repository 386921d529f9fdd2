// Package amlich converts dates between the Gregorian/Julian solar calendar and the
// Vietnamese/Chinese lunisolar calendar and names them in the sexagenary cycle.
//
// Every conversion takes the time zone as a fixed offset from UTC in hours, 7.0 for
// Vietnam and 8.0 for China. The zone decides on which local day a new moon or a
// solar term falls, so the same solar date can map to different lunar dates.
//
// All functions are pure and safe for concurrent use.
package amlich

import (
	"fmt"
	"math"

	"github.com/SebastiaanKlippert/go-amlich/jd"
	"github.com/ansel1/merry"
)

// SolarDate is a date in the Gregorian calendar, or in the Julian calendar before 15 October 1582.
type SolarDate struct {
	Hour  float64 //Fractional hour of the day, 7.25 is 07:15
	Day   int
	Month int
	Year  int
}

// IsZero reports whether d is the zero date returned for invalid lunar dates.
func (d SolarDate) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LunarDate is a date in the lunisolar calendar.
type LunarDate struct {
	Hour  int //Double hour 0..11, 0 is 23:00-00:59
	Day   int //1..30
	Month int //1..12
	Year  int
	Leap  bool //Month is the inserted leap month following the regular month of the same number
}

func (d LunarDate) String() string {
	if d.Leap {
		return fmt.Sprintf("%d/%d/%d (leap)", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// SolarToLunar converts the solar date day/month/year at the given hour to a lunar date.
// The input is not validated.
func SolarToLunar(hour float64, day, month, year int, tz float64) LunarDate {
	dayNumber := jd.YMD2J(year, month, day)
	monthStart := lunarMonthStart(dayNumber, tz)
	a11, b11, lunarYear := lunarYearBounds(year, monthStart, tz)

	diff := floor(float64(monthStart-a11) / 29)
	lunarMonth, leap := lunarMonthOf(diff, a11, b11, tz)
	//months 11 and 12 counted from the previous solar year's month 11
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}
	return LunarDate{
		Hour:  lunarHour(hour),
		Day:   dayNumber - monthStart + 1,
		Month: lunarMonth,
		Year:  lunarYear,
		Leap:  leap,
	}
}

// ConvertSolarToLunar is SolarToLunar returning the lunar hour, day, month, year and leap flag.
func ConvertSolarToLunar(hour float64, day, month, year int, tz float64) (int, int, int, int, bool) {
	l := SolarToLunar(hour, day, month, year, tz)
	return l.Hour, l.Day, l.Month, l.Year, l.Leap
}

// LunarToSolar converts a lunar date to the solar date it falls on.
// When leap is set but month is not the leap month of the lunar year, LunarToSolar
// returns the zero SolarDate and an error matching ErrInvalidLeapMonth.
func LunarToSolar(day, month, year int, leap bool, tz float64) (SolarDate, error) {
	a11, b11 := month11Bracket(month, year, tz)
	k := floor(0.5 + (float64(a11)-newMoon1900)/synodicMonth)
	off := month - 11
	if off < 0 {
		off += 12
	}

	if b11-a11 > 365 {
		leapOff := leapMonthOffset(a11, tz)
		leapMonth := leapOff - 2
		if leapMonth <= 0 {
			leapMonth += 12
		}
		if leap && month != leapMonth {
			return SolarDate{}, merry.Appendf(ErrInvalidLeapMonth, "lunar year %d has leap month %d, not %d", year, leapMonth, month)
		}
		if leap || off >= leapOff {
			off++
		}
	} else if leap {
		return SolarDate{}, merry.Appendf(ErrInvalidLeapMonth, "lunar year %d has no leap month", year)
	}

	monthStart := newMoonDay(k+off, tz)
	y, m, d := jd.J2YMD(monthStart + day - 1)
	return SolarDate{Day: d, Month: m, Year: y}, nil
}

// ConvertLunarToSolar is LunarToSolar returning the solar day, month and year.
// It returns 0, 0, 0 for an invalid leap month.
func ConvertLunarToSolar(day, month, year int, leap bool, tz float64) (int, int, int) {
	s, err := LunarToSolar(day, month, year, leap, tz)
	if err != nil {
		return 0, 0, 0
	}
	return s.Day, s.Month, s.Year
}

//lunarMonthStart returns the day number of the new moon starting the lunar month that contains dayNumber
func lunarMonthStart(dayNumber int, tz float64) int {
	k := floor((float64(dayNumber) - newMoon1900) / synodicMonth)
	if next := newMoonDay(k+1, tz); next <= dayNumber {
		return next
	}
	return newMoonDay(k, tz)
}

//lunarYearBounds returns the starts of the two months 11 around monthStart and the lunar year
//the later month 11 belongs to
func lunarYearBounds(year, monthStart int, tz float64) (a11, b11, lunarYear int) {
	a11 = month11(year, tz)
	if a11 >= monthStart {
		return month11(year-1, tz), a11, year
	}
	return a11, month11(year+1, tz), year + 1
}

//lunarMonthOf numbers the month starting diff months after month 11 at a11
func lunarMonthOf(diff, a11, b11 int, tz float64) (int, bool) {
	month, leap := diff+11, false
	if b11-a11 > 365 {
		if leapDiff := leapMonthOffset(a11, tz); diff >= leapDiff {
			month, leap = diff+10, diff == leapDiff
		}
	}
	if month > 12 {
		month -= 12
	}
	return month, leap
}

//month11Bracket returns the starts of month 11 before and after the lunar month/year
func month11Bracket(month, year int, tz float64) (int, int) {
	if month < 11 {
		return month11(year-1, tz), month11(year, tz)
	}
	return month11(year, tz), month11(year+1, tz)
}

//lunarHour maps the solar hour to the double hour, 23:00 starts double hour 0
func lunarHour(hour float64) int {
	return floor(math.Mod(hour+1, 24) / 2)
}
