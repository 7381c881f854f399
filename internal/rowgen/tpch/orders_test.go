package tpch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleOrderDists() OrderDistributions {
	return OrderDistributions{
		Priority:     sampleDist("o_priority", "1-URGENT", "2-HIGH", "3-MEDIUM", "4-NOT SPECIFIED", "5-LOW"),
		ShipInstruct: sampleDist("l_instruct", "DELIVER IN PERSON", "COLLECT COD", "NONE", "TAKE BACK RETURN"),
		ShipMode:     sampleDist("l_smode", "REG AIR", "AIR", "RAIL", "SHIP", "TRUCK", "MAIL", "FOB"),
		ReturnFlag:   sampleDist("l_rflag", "R", "A", "N"),
	}
}

func TestOrderGeneratorRowShape(t *testing.T) {
	pool := "a very long pool of repeated filler sentences used for order and line item comments alike forever "
	g := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	require.Equal(t, scaleOrderCountFixture(), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64('O'), int64(row.OrderStatus))
	require.GreaterOrEqual(t, row.CustKey, int64(1))
	require.NotEmpty(t, row.OrderPriority)
	require.Regexp(t, `^Clerk#\d+$`, row.Clerk)
	require.NotEmpty(t, row.Lines)
	require.LessOrEqual(t, len(row.Lines), OLcntMax)
	require.GreaterOrEqual(t, len(row.Lines), OLcntMin)

	for i, line := range row.Lines {
		require.Equal(t, row.OrderKey, line.OrderKey)
		require.Equal(t, int64(i+1), line.LineNumber)
		require.GreaterOrEqual(t, line.Quantity, int64(LQtyMin))
		require.LessOrEqual(t, line.Quantity, int64(LQtyMax))
		require.Contains(t, []byte{'O', 'F'}, line.LineStatus)
	}
}

func TestOrderGeneratorDeterministic(t *testing.T) {
	pool := "a very long pool of repeated filler sentences used for order and line item comments alike forever "
	a := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	b := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	require.Equal(t, a.GenerateRow(10), b.GenerateRow(10))
}

func TestOrderGeneratorCustomerKeyWithinRange(t *testing.T) {
	pool := "a very long pool of repeated filler sentences used for order and line item comments alike forever "
	g := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	for i := int64(1); i <= 50; i++ {
		row := g.GenerateRow(i)
		require.GreaterOrEqual(t, row.CustKey, int64(1))
		require.LessOrEqual(t, row.CustKey, g.customerCount)
	}
}

func TestOrderGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	pool := "a very long pool of repeated filler sentences used for order and line item comments alike forever "
	skipped := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	skipped.SkipRows(3)
	skippedRow := skipped.GenerateRow(4)

	sequential := NewOrderGenerator(1.0, sampleOrderDists(), pool)
	for i := int64(1); i <= 3; i++ {
		sequential.GenerateRow(i)
	}
	sequentialRow := sequential.GenerateRow(4)

	require.Equal(t, sequentialRow.Clerk, skippedRow.Clerk)
	require.Equal(t, sequentialRow.OrderPriority, skippedRow.OrderPriority)
}

func scaleOrderCountFixture() int64 {
	return 1500303
}
