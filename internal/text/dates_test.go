package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderDateMaxIsBeforeEndOfCalendar(t *testing.T) {
	require.Less(t, OrderDateMax(), int64(StartDate+TotalDate))
	require.Greater(t, OrderDateMax(), int64(StartDate))
}

func TestJulianDateFirstDay(t *testing.T) {
	require.Equal(t, int64(StartDate), JulianDate(StartDate))
}

func TestBuildAscDateLengthAndFormat(t *testing.T) {
	dates := BuildAscDate()
	require.Len(t, dates, TotalDate)
	require.Regexp(t, `^19\d\d-\d\d-\d\d$`, dates[0])
	require.Regexp(t, `^19\d\d-\d\d-\d\d$`, dates[len(dates)-1])
}

func TestBuildAscDateIsMonotonic(t *testing.T) {
	dates := BuildAscDate()
	for i := 1; i < len(dates); i++ {
		require.LessOrEqual(t, dates[i-1], dates[i])
	}
}
