package timeseries

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lukechampine.com/uint128"
)

const nanosecondsPerSecond = uint64(time.Second)

// Window of time, for which it holds that the start time lies strictly
// before the end time.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow creates a Window, failing if the start time does not lie
// before the end time.
func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, status.Errorf(
			codes.InvalidArgument,
			"Start time %s is not before end time %s",
			start.Format(time.RFC3339Nano),
			end.Format(time.RFC3339Nano))
	}
	return Window{start: start, end: end}, nil
}

// Start time of the window.
func (w Window) Start() time.Time {
	return w.start
}

// End time of the window.
func (w Window) End() time.Time {
	return w.end
}

// Span returns the length of the window in nanoseconds. Unlike
// time.Duration, it does not saturate for windows that are longer than
// approximately 292 years.
func (w Window) Span() uint128.Uint128 {
	seconds := uint64(w.end.Unix() - w.start.Unix())
	return uint128.From64(seconds).
		Mul64(nanosecondsPerSecond).
		Add64(uint64(w.end.Nanosecond())).
		Sub64(uint64(w.start.Nanosecond()))
}

// At returns the point in time that lies a given number of nanoseconds
// after the start of the window. The time zone of the start time is
// retained.
func (w Window) At(offset uint128.Uint128) time.Time {
	seconds, nanoseconds := offset.QuoRem64(nanosecondsPerSecond)
	return time.Unix(
		w.start.Unix()+int64(seconds.Lo),
		int64(w.start.Nanosecond())+int64(nanoseconds),
	).In(w.start.Location())
}
