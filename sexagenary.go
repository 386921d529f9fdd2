package amlich

import "github.com/SebastiaanKlippert/go-amlich/jd"

// The index into these tables is the cycle position, the order must not change.
var (
	stems    = [...]string{"giap", "at", "binh", "dinh", "mau", "ky", "canh", "tan", "nham", "quy"}
	branches = [...]string{"tys", "suu", "dan", "mao", "thin", "tyj", "ngo", "mui", "than", "dau", "tuat", "hoi"}
)

// Stem is one of the 10 Heavenly Stems, 0 is giap.
type Stem int

// String returns the ASCII transliteration of the stem.
func (s Stem) String() string {
	return stems[mod(int(s), len(stems))]
}

// Branch is one of the 12 Earthly Branches, 0 is tys.
type Branch int

// String returns the ASCII transliteration of the branch.
func (b Branch) String() string {
	return branches[mod(int(b), len(branches))]
}

// Pair is a position in the sexagenary cycle.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// String returns the stem and branch separated by a space, "giap tys".
func (p Pair) String() string {
	return p.Stem.String() + " " + p.Branch.String()
}

// Sexagenary names the year, month, day and double hour of a moment.
type Sexagenary struct {
	Year  Pair
	Month Pair
	Day   Pair
	Hour  Pair
}

// Strings returns the four pairs in year, month, day, hour order.
func (s Sexagenary) Strings() [4]string {
	return [4]string{s.Year.String(), s.Month.String(), s.Day.String(), s.Hour.String()}
}

// SolarToSexagenary names the solar date day/month/year at the given hour in the sexagenary cycle.
// Year and month follow the lunar date, day and hour follow the Julian day number.
func SolarToSexagenary(hour float64, day, month, year int, tz float64) Sexagenary {
	dayNumber := jd.YMD2J(year, month, day)
	l := SolarToLunar(hour, day, month, year, tz)
	return Sexagenary{
		Year:  yearPair(l.Year),
		Month: monthPair(l.Month, l.Year),
		Day:   dayPair(dayNumber),
		Hour:  hourPair(l.Hour, dayNumber),
	}
}

// ConvertSolarToSexagenary is SolarToSexagenary returning the four "stem branch" strings.
func ConvertSolarToSexagenary(hour float64, day, month, year int, tz float64) [4]string {
	return SolarToSexagenary(hour, day, month, year, tz).Strings()
}

func yearPair(lunarYear int) Pair {
	return Pair{Stem(mod(lunarYear+6, 10)), Branch(mod(lunarYear+8, 12))}
}

func monthPair(lunarMonth, lunarYear int) Pair {
	return Pair{Stem(mod(lunarYear*12+lunarMonth+3, 10)), Branch(mod(lunarMonth+1, 12))}
}

func dayPair(dayNumber int) Pair {
	return Pair{Stem(mod(dayNumber+9, 10)), Branch(mod(dayNumber+1, 12))}
}

//the stem of double hour 0 is fixed by the stem of the day
func hourPair(lunarHour, dayNumber int) Pair {
	return Pair{Stem(mod(mod(dayNumber+9, 5)*2+lunarHour, 10)), Branch(mod(lunarHour, 12))}
}

//mod is the remainder of a/n, always in 0..n-1
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
