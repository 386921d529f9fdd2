package amlich

import "time"

// Converter runs the conversions for a fixed time zone.
// The zero value converts in UTC.
type Converter struct {
	TimeZone float64 //Offset from UTC in hours
}

var (
	Vietnam = Converter{TimeZone: 7} //UTC+7, the zone of the Vietnamese calendar
	China   = Converter{TimeZone: 8} //UTC+8, the zone of the Chinese calendar
)

// SolarToLunar converts a solar date, see the package level SolarToLunar.
func (c Converter) SolarToLunar(hour float64, day, month, year int) LunarDate {
	return SolarToLunar(hour, day, month, year, c.TimeZone)
}

// LunarToSolar converts a lunar date, see the package level LunarToSolar.
func (c Converter) LunarToSolar(day, month, year int, leap bool) (SolarDate, error) {
	return LunarToSolar(day, month, year, leap, c.TimeZone)
}

// Sexagenary names a solar date, see SolarToSexagenary.
func (c Converter) Sexagenary(hour float64, day, month, year int) Sexagenary {
	return SolarToSexagenary(hour, day, month, year, c.TimeZone)
}

// TimeToLunar converts the wall clock date and time of t to a lunar date,
// using the UTC offset of t's location as the time zone.
// Go times are proleptic Gregorian, do not use this before 15 October 1582.
func TimeToLunar(t time.Time) LunarDate {
	hour, day, month, year, tz := timeArgs(t)
	return SolarToLunar(hour, day, month, year, tz)
}

// TimeToSexagenary names the wall clock date and time of t in the sexagenary cycle,
// using the UTC offset of t's location as the time zone.
func TimeToSexagenary(t time.Time) Sexagenary {
	hour, day, month, year, tz := timeArgs(t)
	return SolarToSexagenary(hour, day, month, year, tz)
}

func timeArgs(t time.Time) (float64, int, int, int, float64) {
	y, m, d := t.Date()
	_, offset := t.Zone()
	hour := float64(t.Hour()) + float64(t.Minute())/60
	return hour, d, int(m), y, float64(offset) / 3600
}
