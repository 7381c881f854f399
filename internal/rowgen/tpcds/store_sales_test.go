package tpcds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreSalesGeneratorRowShape(t *testing.T) {
	g := NewStoreSalesGenerator(1.0, 1000, 500)
	require.Greater(t, g.TotalRows(), int64(0))

	row := g.GenerateRow(0)
	require.Greater(t, row.SoldDateSK, int64(0))
	require.GreaterOrEqual(t, row.SoldTimeSK, int64(0))
	require.Greater(t, row.SoldItemSK, int64(0))
	require.LessOrEqual(t, row.SoldItemSK, int64(1000))
	require.Greater(t, row.SoldCustomerSK, int64(0))
	require.Greater(t, row.TicketNumber, int64(0))
	require.True(t, row.Pricing.NetPaid.Equal(row.Pricing.ExtSalesPrice.Sub(row.Pricing.CouponAmt)))
	require.True(t, row.Pricing.NetPaidIncTax.Equal(row.Pricing.NetPaid.Add(row.Pricing.ExtTax)))
}

func TestStoreSalesGeneratorTicketLinesShareHeaderUntilLastRow(t *testing.T) {
	g := NewStoreSalesGenerator(1.0, 1000, 500)

	var rows []StoreSalesRow
	for {
		row := g.GenerateRow(0)
		rows = append(rows, row)
		if row.LastRowInTicket {
			break
		}
	}
	require.NotEmpty(t, rows)
	for _, row := range rows {
		require.Equal(t, rows[0].TicketNumber, row.TicketNumber)
		require.Equal(t, rows[0].SoldCustomerSK, row.SoldCustomerSK)
		require.Equal(t, rows[0].SoldDateSK, row.SoldDateSK)
	}
	require.True(t, rows[len(rows)-1].LastRowInTicket)
	for _, row := range rows[:len(rows)-1] {
		require.False(t, row.LastRowInTicket)
	}
}

func TestStoreSalesGeneratorItemPermutationCyclesWithoutRepeatsWithinAPass(t *testing.T) {
	g := NewStoreSalesGenerator(1.0, 5, 500)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		row := g.GenerateRow(0)
		require.False(t, seen[row.SoldItemSK], "item permutation must not repeat within one pass")
		seen[row.SoldItemSK] = true
	}
}

func TestStoreSalesGeneratorDeterministic(t *testing.T) {
	a := NewStoreSalesGenerator(1.0, 1000, 500)
	b := NewStoreSalesGenerator(1.0, 1000, 500)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.GenerateRow(0), b.GenerateRow(0))
	}
}

func TestStoreSalesGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	const skipCount = 25

	skipped := NewStoreSalesGenerator(1.0, 1000, 500)
	skipped.SkipRows(skipCount)
	skippedRow := skipped.GenerateRow(0)

	sequential := NewStoreSalesGenerator(1.0, 1000, 500)
	var sequentialRow StoreSalesRow
	for i := 0; i < skipCount+1; i++ {
		sequentialRow = sequential.GenerateRow(0)
	}

	require.Equal(t, sequentialRow, skippedRow)
}
