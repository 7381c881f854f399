package tpcds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newHouseholdDemographicsGenerator(t *testing.T) *HouseholdDemographicsGenerator {
	t.Helper()
	dists := loadFixtureDistributions(t)
	return NewHouseholdDemographicsGenerator(dists.IncomeBand, dists.BuyPotential, dists.DependentCount, dists.VehicleCount)
}

func TestHouseholdDemographicsGeneratorRowShape(t *testing.T) {
	g := newHouseholdDemographicsGenerator(t)
	require.Greater(t, g.TotalRows(), int64(0))

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.DemoSK)
	require.GreaterOrEqual(t, row.IncomeBandSK, int64(1))
	require.NotEmpty(t, row.BuyPotential)
	require.GreaterOrEqual(t, row.DepCount, int64(0))
	require.GreaterOrEqual(t, row.VehicleCount, int64(0))
}

func TestHouseholdDemographicsGeneratorCoversEveryIncomeBand(t *testing.T) {
	dists := loadFixtureDistributions(t)
	g := newHouseholdDemographicsGenerator(t)
	size := int64(dists.IncomeBand.Size())

	for i := int64(1); i <= size; i++ {
		row := g.GenerateRow(i)
		require.GreaterOrEqual(t, row.IncomeBandSK, int64(1))
		require.LessOrEqual(t, row.IncomeBandSK, size)
	}
}

func TestHouseholdDemographicsGeneratorIsDeterministic(t *testing.T) {
	a := newHouseholdDemographicsGenerator(t)
	b := newHouseholdDemographicsGenerator(t)
	require.Equal(t, a.GenerateRow(123), b.GenerateRow(123))
}

func TestHouseholdDemographicsGeneratorSkipRowsIsNoOp(t *testing.T) {
	g := newHouseholdDemographicsGenerator(t)
	g.SkipRows(50)
	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.DemoSK)
}
