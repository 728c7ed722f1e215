package clock

import (
	"time"
)

// Clock is an interface around the standard library function that
// reports the time of day. It has been added to aid unit testing of
// generators that embed timestamps into their output, such as ULIDs
// and ObjectIDs, or that derive default time windows from the current
// time.
type Clock interface {
	// Return the current time of day. Equivalent to time.Now().
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is a Clock that corresponds to the current time of day,
// as reported by the operating system.
var SystemClock Clock = systemClock{}
