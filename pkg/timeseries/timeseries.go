// Package timeseries generates sorted series of random points in time
// that lie within a window.
package timeseries

import (
	"slices"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maximumStep is the exclusive upper bound of the number of whole
// seconds between successive points of an unbounded series.
const maximumStep = 15

// MeanStep is the average distance between successive points of a
// series generated by GenerateUntil.
const MeanStep = (maximumStep - 1) * time.Second / 2

// GenerateUntil generates a series of points in time by taking random
// steps of [0, 15) seconds, starting at the start time. The series
// ends with the end time. The number of points depends on the length
// of the window, being approximately one per 7.5 seconds.
func GenerateUntil(generator random.SingleThreadedGenerator, start, end time.Time) ([]time.Time, error) {
	if _, err := NewWindow(start, end); err != nil {
		return nil, err
	}

	series := []time.Time{start}
	for current := start; ; {
		current = current.Add(time.Duration(generator.IntN(maximumStep)) * time.Second)
		if !current.Before(end) {
			break
		}
		series = append(series, current)
	}
	series = append(series, end)
	sortSeries(series)
	return series, nil
}

// GenerateUntilWithLimit generates exactly limit points in time that
// are drawn uniformly from [start, end) at nanosecond resolution.
func GenerateUntilWithLimit(generator random.SingleThreadedGenerator, start, end time.Time, limit int) ([]time.Time, error) {
	window, err := NewWindow(start, end)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Limit %d is negative", limit)
	}

	span := window.Span()
	series := make([]time.Time, 0, limit)
	for i := 0; i < limit; i++ {
		series = append(series, window.At(random.Uint128N(generator, span)))
	}
	sortSeries(series)
	return series, nil
}

func sortSeries(series []time.Time) {
	slices.SortStableFunc(series, func(a, b time.Time) int {
		return a.Compare(b)
	})
}
