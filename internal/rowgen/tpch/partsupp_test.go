package tpch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartSuppGeneratorEmitsFourRowsPerPart(t *testing.T) {
	g := NewPartSuppGenerator(1.0, "filler pool text repeated over and over again ")
	require.Equal(t, int64(6_000_000)*SuppPerPart, g.TotalRows())

	for i := 0; i < SuppPerPart; i++ {
		row, ok := g.NextRow()
		require.True(t, ok)
		require.Equal(t, int64(1), row.PartKey)
		require.GreaterOrEqual(t, row.AvailQty, int64(PSQtyMin))
		require.LessOrEqual(t, row.AvailQty, int64(PSQtyMax))
	}

	next, ok := g.NextRow()
	require.True(t, ok)
	require.Equal(t, int64(2), next.PartKey)
}

func TestPartSuppGeneratorDistinctSuppliersPerPart(t *testing.T) {
	g := NewPartSuppGenerator(1.0, "filler pool text repeated over and over again ")
	seen := make(map[int64]bool)
	for i := 0; i < SuppPerPart; i++ {
		row, ok := g.NextRow()
		require.True(t, ok)
		seen[row.SuppKey] = true
	}
	require.Len(t, seen, SuppPerPart)
}

func TestPartSuppGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	skipped := NewPartSuppGenerator(1.0, "pool text filler content for testing purposes only ")
	skipped.SkipRows(SuppPerPart * 2)
	skippedRow, ok := skipped.NextRow()
	require.True(t, ok)

	sequential := NewPartSuppGenerator(1.0, "pool text filler content for testing purposes only ")
	for i := 0; i < SuppPerPart*2; i++ {
		_, ok := sequential.NextRow()
		require.True(t, ok)
	}
	sequentialRow, ok := sequential.NextRow()
	require.True(t, ok)

	require.Equal(t, sequentialRow.PartKey, skippedRow.PartKey)
	require.Equal(t, sequentialRow.AvailQty, skippedRow.AvailQty)
}
