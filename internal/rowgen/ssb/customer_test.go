package ssb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCustomerDists() CustomerDistributions {
	return CustomerDistributions{
		MarketSegment: sampleTpchDist("c_mseg", "AUTOMOBILE", "BUILDING", "FURNITURE", "MACHINERY", "HOUSEHOLD"),
	}
}

func TestCustomerGeneratorRowShape(t *testing.T) {
	g := NewCustomerGenerator(1.0, sampleCustomerDists())
	require.Equal(t, int64(30_000), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.CustKey)
	require.Equal(t, "Customer#000000001", row.Name)
	require.NotEmpty(t, row.Address)
	require.GreaterOrEqual(t, row.NationKey, int64(0))
	require.Less(t, row.NationKey, int64(len(nationSeeds)))
	require.Equal(t, nationSeeds[row.NationKey].Name, row.NationName)
	require.Equal(t, nationSeeds[row.NationKey].RegionName, row.RegionName)
	require.Len(t, strings.Split(row.Phone, "-"), 4)
	require.NotEmpty(t, row.MktSegment)
}

func TestCustomerGeneratorDeterministic(t *testing.T) {
	a := NewCustomerGenerator(1.0, sampleCustomerDists())
	b := NewCustomerGenerator(1.0, sampleCustomerDists())
	require.Equal(t, a.GenerateRow(42), b.GenerateRow(42))
}

func TestCustomerGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	const skipCount = 7

	skipped := NewCustomerGenerator(1.0, sampleCustomerDists())
	skipped.SkipRows(skipCount)
	skippedRow := skipped.GenerateRow(0)

	sequential := NewCustomerGenerator(1.0, sampleCustomerDists())
	var sequentialRow CustomerRow
	for i := int64(0); i < skipCount+1; i++ {
		sequentialRow = sequential.GenerateRow(0)
	}

	require.Equal(t, sequentialRow, skippedRow)
}
