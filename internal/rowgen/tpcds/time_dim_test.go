package tpcds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeDimGeneratorRowShape(t *testing.T) {
	dists := loadFixtureDistributions(t)
	g := NewTimeDimGenerator(dists.Hours)
	require.Equal(t, int64(86400), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64(0), row.TimeSK, "first row is second zero of the day")
	require.Equal(t, int64(0), row.Time)
	require.Equal(t, int64(0), row.Hour)
	require.Equal(t, int64(0), row.Minute)
	require.Equal(t, int64(0), row.Second)
	require.Len(t, row.TimeID, 16)
}

func TestTimeDimGeneratorDecomposesSecondsOfDay(t *testing.T) {
	dists := loadFixtureDistributions(t)
	g := NewTimeDimGenerator(dists.Hours)

	row := g.GenerateRow(3725) // 3724 seconds in: 1h 2m 4s
	require.Equal(t, int64(1), row.Hour)
	require.Equal(t, int64(2), row.Minute)
	require.Equal(t, int64(4), row.Second)
}

func TestTimeDimGeneratorIsDeterministic(t *testing.T) {
	dists := loadFixtureDistributions(t)
	a := NewTimeDimGenerator(dists.Hours)
	b := NewTimeDimGenerator(dists.Hours)
	require.Equal(t, a.GenerateRow(50000), b.GenerateRow(50000))
}

func TestTimeDimGeneratorSkipRowsIsNoOp(t *testing.T) {
	dists := loadFixtureDistributions(t)
	g := NewTimeDimGenerator(dists.Hours)
	g.SkipRows(10000)
	row := g.GenerateRow(1)
	require.Equal(t, int64(0), row.TimeSK)
}
