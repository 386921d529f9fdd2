package amlich

import "math"

// Astronomical series from "Astronomical Algorithms" by Jean Meeus, 1998.
// The terms are truncated, so the results are only good to about an arc minute,
// and the day numbers derived from them depend on the exact rounding of every step.
// Products that feed a sum are wrapped in float64() so they are rounded on their own
// and never fused into a multiply-add.

var (
	pi = math.Pi
	dr = pi / 180 //degree to radian, computed in float64 arithmetic
)

const (
	synodicMonth = 29.530588853      //mean length of a synodic month in days
	newMoon1900  = 2415021.076998695 //new moon of 1900-01-01 13:52 UTC as a Julian date
)

// newMoon returns the time of the k-th new moon after the new moon of 1900-01-01 13:52 UTC
// as a Julian date (days since 4713 BC January 1 noon UTC).
func newMoon(k int) float64 {
	kf := float64(k)
	T := kf / 1236.85 //Julian centuries from 1900 January 0.5
	T2 := T * T
	T3 := T2 * T

	//mean new moon
	jd1 := 2415020.75933 + float64(29.53058868*kf) + float64(0.0001178*T2) - float64(0.000000155*T3) +
		float64(0.00033*math.Sin((166.56+float64(132.87*T)-float64(0.009173*T2))*dr))

	//sun's mean anomaly
	M := 359.2242 + float64(29.10535608*kf) - float64(0.0000333*T2) - float64(0.00000347*T3)
	//moon's mean anomaly
	Mpr := 306.0253 + float64(385.81691806*kf) + float64(0.0107306*T2) + float64(0.00001236*T3)
	//moon's argument of latitude
	F := 21.2964 + float64(390.67050646*kf) - float64(0.0016528*T2) - float64(0.00000239*T3)

	C1 := float64((0.1734-float64(0.000393*T))*math.Sin(M*dr)) + float64(0.0021*math.Sin(2*dr*M))
	C1 = C1 - float64(0.4068*math.Sin(Mpr*dr)) + float64(0.0161*math.Sin(dr*2*Mpr))
	C1 = C1 - float64(0.0004*math.Sin(dr*3*Mpr))
	C1 = C1 + float64(0.0104*math.Sin(dr*2*F)) - float64(0.0051*math.Sin(dr*(M+Mpr)))
	C1 = C1 - float64(0.0074*math.Sin(dr*(M-Mpr))) + float64(0.0004*math.Sin(dr*(float64(2*F)+M)))
	C1 = C1 - float64(0.0004*math.Sin(dr*(float64(2*F)-M))) - float64(0.0006*math.Sin(dr*(float64(2*F)+Mpr)))
	C1 = C1 + float64(0.001*math.Sin(dr*(float64(2*F)-Mpr))) + float64(0.0005*math.Sin(dr*(float64(2*Mpr)+M)))

	var deltaT float64
	if T < -11 {
		deltaT = 0.001 + float64(0.000839*T) + float64(0.0002261*T2) - float64(0.00000845*T3) - float64(0.000000081*T*T3)
	} else {
		deltaT = -0.000278 + float64(0.000265*T) + float64(0.000262*T2)
	}
	return jd1 + C1 - deltaT
}

// newMoonDay returns the Julian day number of the local day on which the k-th new moon falls.
// tz is the offset from UTC in hours, 7.0 for UTC+7:00.
func newMoonDay(k int, tz float64) int {
	return floor(newMoon(k) + 0.5 + tz/24)
}

// sunLongitude returns the ecliptic longitude of the sun in radians, normalized into [0, 2*Pi).
// jdn is a Julian date, the number of days since 4713 BC January 1 noon UTC.
func sunLongitude(jdn float64) float64 {
	T := (jdn - 2451545.0) / 36525 //Julian centuries from 2000-01-01 12:00:00 UTC
	T2 := T * T

	//mean anomaly, degree
	M := 357.5291 + float64(35999.0503*T) - float64(0.0001559*T2) - float64(0.00000048*T*T2)
	//mean longitude, degree
	L0 := 280.46645 + float64(36000.76983*T) + float64(0.0003032*T2)

	DL := float64((1.9146 - float64(0.004817*T) - float64(0.000014*T2)) * math.Sin(dr*M))
	DL = DL + float64((0.019993-float64(0.000101*T))*math.Sin(dr*2*M)) + float64(0.00029*math.Sin(dr*3*M))

	//true longitude, radians
	L := float64((L0 + DL) * dr)
	return L - float64(pi*2*math.Floor(L/(pi*2)))
}

// solarTerm returns the index 0..11 of the major solar term sector the sun is in at local midnight
// starting the day dayNumber. Sector 0 starts at the March equinox, every sector is 30 degrees wide.
func solarTerm(dayNumber int, tz float64) int {
	return floor(sunLongitude(float64(dayNumber)-0.5-tz/24) / pi * 6)
}

func floor(x float64) int {
	return int(math.Floor(x))
}
