package ssb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleLineorderDists() LineorderDistributions {
	return LineorderDistributions{
		Priority: sampleTpchDist("o_priority", "1-URGENT", "2-HIGH", "3-MEDIUM", "4-NOT SPECIFIED", "5-LOW"),
		ShipMode: sampleTpchDist("l_smode", "REG AIR", "AIR", "RAIL", "SHIP", "TRUCK", "MAIL", "FOB"),
	}
}

func TestLineorderGeneratorRowShape(t *testing.T) {
	g := NewLineorderGenerator(0.01, sampleLineorderDists())
	require.Greater(t, g.TotalRows(), int64(0))

	row := g.GenerateRow(0)
	require.Greater(t, row.OrderKey, int64(0))
	require.Equal(t, int64(1), row.LineNumber, "first line of the first order")
	require.Greater(t, row.CustKey, int64(0))
	require.Greater(t, row.PartKey, int64(0))
	require.Greater(t, row.SuppKey, int64(0))
	require.NotEmpty(t, row.OrderDate)
	require.NotEmpty(t, row.OrderPriority)
	require.Greater(t, row.Quantity, int64(0))
	require.Greater(t, row.ExtendedPrice, int64(0))
	total := row.ExtendedPrice
	for next := g.GenerateRow(0); next.OrderKey == row.OrderKey; next = g.GenerateRow(0) {
		total += next.ExtendedPrice
	}
	require.Equal(t, total, row.OrderTotalPrice, "order total equals the sum of its lines' extended prices")
	require.NotEmpty(t, row.ShipMode)
}

func TestLineorderGeneratorLinesShareOrderHeader(t *testing.T) {
	g := NewLineorderGenerator(0.1, sampleLineorderDists())

	var rows []LineorderRow
	orderKey := int64(-1)
	for i := 0; i < 50; i++ {
		row := g.GenerateRow(0)
		if orderKey == -1 {
			orderKey = row.OrderKey
		}
		if row.OrderKey != orderKey {
			break
		}
		rows = append(rows, row)
	}
	require.NotEmpty(t, rows)
	for _, row := range rows {
		require.Equal(t, orderKey, row.OrderKey)
		require.Equal(t, rows[0].CustKey, row.CustKey)
		require.Equal(t, rows[0].OrderDate, row.OrderDate)
		require.Equal(t, rows[0].OrderTotalPrice, row.OrderTotalPrice, "every line of an order shares its total price")
	}
}

func TestLineorderGeneratorDeterministic(t *testing.T) {
	a := NewLineorderGenerator(0.01, sampleLineorderDists())
	b := NewLineorderGenerator(0.01, sampleLineorderDists())
	for i := 0; i < 10; i++ {
		require.Equal(t, a.GenerateRow(0), b.GenerateRow(0))
	}
}

func TestLineorderGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	const skipCount = 30

	skipped := NewLineorderGenerator(0.01, sampleLineorderDists())
	skipped.SkipRows(skipCount)
	skippedRow := skipped.GenerateRow(0)

	sequential := NewLineorderGenerator(0.01, sampleLineorderDists())
	var sequentialRow LineorderRow
	for i := int64(0); i < skipCount+1; i++ {
		sequentialRow = sequential.GenerateRow(0)
	}

	require.Equal(t, sequentialRow, skippedRow)
}
