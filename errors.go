package amlich

import "github.com/ansel1/merry"

var (
	ErrInvalidLeapMonth = merry.New("invalid leap month") //Returned when a leap month is requested that the lunar year does not have
)
