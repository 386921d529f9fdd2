// Package jd converts between calendar dates and Julian day numbers.
// Dates from 15 October 1582 on are Gregorian, earlier dates are Julian.
package jd

import (
	"fmt"
	"time"
)

// Gregorian is the Julian day number of 15 October 1582, the first day of the Gregorian calendar.
// The day before it, JDN 2299160, is 4 October 1582 in the Julian calendar.
const Gregorian = 2299161

// YMD2J converts a year, month and day to a Julian day number.
// The input is not validated, day 0 or day 32 simply run into the neighbouring month.
// jd.YMD2J(2006, 1, 2) == 2453738 //=> true
func YMD2J(y, m, d int) int {
	a := floorDiv(14-m, 12)
	y = y + 4800 - a
	m = m + 12*a - 3
	n := d + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	if n < Gregorian {
		//Julian calendar, no century correction
		n = d + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
	}
	return n
}

// J2YMD converts a Julian day number to a year, month and day
// y, m, d := jd.J2YMD(2453738)
// y==2006 && m==1 && d==2 //=> true
func J2YMD(n int) (int, int, int) {
	var b, c int
	if n >= Gregorian {
		a := n + 32044
		b = floorDiv(4*a+3, 146097)
		c = a - floorDiv(146097*b, 4)
	} else {
		c = n + 32082
	}
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day := e - floorDiv(153*m+2, 5) + 1
	month := m + 3 - 12*floorDiv(m, 10)
	year := 100*b + d - 4800 + floorDiv(m, 10)
	return year, month, day
}

// Number returns the Julian day number of the calendar date of t in its own location.
func Number(t time.Time) int {
	y, m, d := t.Date()
	return YMD2J(y, int(m), d)
}

// ToDate formats a Julian day number as YYYY-MM-DD
// "2006-01-02" == jd.ToDate(2453738) //=> true
func ToDate(n int) string {
	y, m, d := J2YMD(n)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

//floorDiv divides rounding towards negative infinity, b must be positive
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
