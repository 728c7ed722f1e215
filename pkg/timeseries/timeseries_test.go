package timeseries_test

import (
	"slices"
	"testing"
	"time"

	"github.com/buildbarn/bb-synthgen/internal/mock"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/testutil"
	"github.com/buildbarn/bb-synthgen/pkg/timeseries"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pgregory.net/rapid"
)

func compareTimes(a, b time.Time) int {
	return a.Compare(b)
}

func TestNewWindow(t *testing.T) {
	start := time.Date(2001, 9, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2001, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		window, err := timeseries.NewWindow(start, end)
		require.NoError(t, err)
		require.Equal(t, start, window.Start())
		require.Equal(t, end, window.End())
		require.Equal(t, uint64(24*time.Hour), window.Span().Lo)
		require.Equal(t, uint64(0), window.Span().Hi)
	})

	t.Run("Equal", func(t *testing.T) {
		_, err := timeseries.NewWindow(start, start)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Start time 2001-09-09T00:00:00Z is not before end time 2001-09-09T00:00:00Z"), err)
	})

	t.Run("Reversed", func(t *testing.T) {
		_, err := timeseries.NewWindow(end, start)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Start time 2001-09-10T00:00:00Z is not before end time 2001-09-09T00:00:00Z"), err)
	})

	t.Run("NanosecondBorrow", func(t *testing.T) {
		window, err := timeseries.NewWindow(
			time.Date(2001, 9, 9, 0, 0, 0, 900, time.UTC),
			time.Date(2001, 9, 9, 0, 0, 1, 100, time.UTC))
		require.NoError(t, err)
		require.Equal(t, uint64(999999200), window.Span().Lo)
	})

	t.Run("Long", func(t *testing.T) {
		// Spans beyond the range of time.Duration.
		window, err := timeseries.NewWindow(
			time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		require.NoError(t, err)
		require.NotZero(t, window.Span().Hi)
		require.Equal(t, window.End(), window.At(window.Span()))
	})
}

func TestGenerateUntil(t *testing.T) {
	ctrl := gomock.NewController(t)
	start := time.Date(2001, 9, 9, 0, 0, 0, 0, time.UTC)
	end := start.Add(20 * time.Second)

	t.Run("OrderingError", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)

		series, err := timeseries.GenerateUntil(generator, end, start)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Nil(t, series)
	})

	t.Run("Steps", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().IntN(15).Return(7).Times(3)

		series, err := timeseries.GenerateUntil(generator, start, end)
		require.NoError(t, err)
		require.Equal(t, []time.Time{
			start,
			start.Add(7 * time.Second),
			start.Add(14 * time.Second),
			end,
		}, series)
	})

	t.Run("ZeroStep", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().IntN(15).Return(0),
			generator.EXPECT().IntN(15).Return(14),
			generator.EXPECT().IntN(15).Return(6))

		series, err := timeseries.GenerateUntil(generator, start, end)
		require.NoError(t, err)
		require.Equal(t, []time.Time{start, start, start.Add(14 * time.Second), end}, series)
	})

	t.Run("StepReachesEnd", func(t *testing.T) {
		// The end time is only included once, even if a step
		// lands on it exactly.
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().IntN(15).Return(10),
			generator.EXPECT().IntN(15).Return(10))

		series, err := timeseries.GenerateUntil(generator, start, end)
		require.NoError(t, err)
		require.Equal(t, []time.Time{start, start.Add(10 * time.Second), end}, series)
	})

	t.Run("Properties", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			start := time.Unix(rapid.Int64Range(0, 4102444800).Draw(t, "start"), rapid.Int64Range(0, 999999999).Draw(t, "startNanos")).UTC()
			end := start.Add(time.Duration(rapid.Int64Range(1, int64(2*time.Hour)).Draw(t, "duration")))
			generator := random.NewSeededGenerator(rapid.Uint64().Draw(t, "seed"))

			series, err := timeseries.GenerateUntil(generator, start, end)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(series), 2)
			require.Equal(t, start, series[0])
			require.Equal(t, end, series[len(series)-1])
			require.True(t, slices.IsSortedFunc(series, compareTimes))
		})
	})
}

func TestGenerateUntilWithLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	start := time.Date(2001, 9, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2001, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("OrderingError", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)

		series, err := timeseries.GenerateUntilWithLimit(generator, end, start, 100)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Nil(t, series)
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)

		_, err := timeseries.GenerateUntilWithLimit(generator, start, end, -1)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Limit -1 is negative"), err)
	})

	t.Run("ZeroLimit", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)

		series, err := timeseries.GenerateUntilWithLimit(generator, start, end, 0)
		require.NoError(t, err)
		require.NotNil(t, series)
		require.Empty(t, series)
	})

	t.Run("Sorted", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().Int64N(int64(24*time.Hour)).Return(int64(5*time.Hour)),
			generator.EXPECT().Int64N(int64(24*time.Hour)).Return(int64(3)),
			generator.EXPECT().Int64N(int64(24*time.Hour)).Return(int64(0)))

		series, err := timeseries.GenerateUntilWithLimit(generator, start, end, 3)
		require.NoError(t, err)
		require.Equal(t, []time.Time{
			start,
			start.Add(3 * time.Nanosecond),
			start.Add(5 * time.Hour),
		}, series)
	})

	t.Run("TimeZoneRetained", func(t *testing.T) {
		location := time.FixedZone("UTC+5:30", 5*3600+1800)
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().Int64N(int64(time.Hour)).Return(int64(time.Minute))

		series, err := timeseries.GenerateUntilWithLimit(
			generator,
			time.Date(2024, 1, 1, 12, 0, 0, 0, location),
			time.Date(2024, 1, 1, 13, 0, 0, 0, location),
			1)
		require.NoError(t, err)
		require.Equal(t, []time.Time{time.Date(2024, 1, 1, 12, 1, 0, 0, location)}, series)
	})

	t.Run("LongSpan", func(t *testing.T) {
		longStart := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
		longEnd := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		series, err := timeseries.GenerateUntilWithLimit(random.NewFastSingleThreadedGenerator(), longStart, longEnd, 1000)
		require.NoError(t, err)
		require.Len(t, series, 1000)
		require.True(t, slices.IsSortedFunc(series, compareTimes))
		for _, instant := range series {
			require.False(t, instant.Before(longStart))
			require.True(t, instant.Before(longEnd))
		}
	})

	t.Run("Properties", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			start := time.Unix(rapid.Int64Range(-4102444800, 4102444800).Draw(t, "start"), 0).UTC()
			end := start.Add(time.Duration(rapid.Int64Range(1, int64(1000*time.Hour)).Draw(t, "duration")))
			limit := rapid.IntRange(0, 200).Draw(t, "limit")
			generator := random.NewSeededGenerator(rapid.Uint64().Draw(t, "seed"))

			series, err := timeseries.GenerateUntilWithLimit(generator, start, end, limit)
			require.NoError(t, err)
			require.Len(t, series, limit)
			require.True(t, slices.IsSortedFunc(series, compareTimes))
			for _, instant := range series {
				require.False(t, instant.Before(start))
				require.True(t, instant.Before(end))
			}
		})
	})
}

func TestMeanStep(t *testing.T) {
	require.Equal(t, 7*time.Second, timeseries.MeanStep)

	// The average distance between points stays close to MeanStep.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	series, err := timeseries.GenerateUntil(random.NewSeededGenerator(3), start, end)
	require.NoError(t, err)
	expected := int(end.Sub(start) / timeseries.MeanStep)
	require.InDelta(t, expected, len(series), float64(expected)/20)
}
