package tpcds

import "github.com/starschema/benchgen/internal/dist"

// HouseholdDemographicsRow is one row of the HouseholdDemographics
// dimension: a dense cross of income band, buying potential, dependents,
// and vehicles, entirely derived from the row number.
type HouseholdDemographicsRow struct {
	DemoSK       int64
	IncomeBandSK int64
	BuyPotential string
	DepCount     int64
	VehicleCount int64
}

// HouseholdDemographicsGenerator produces HouseholdDemographics rows by
// peeling successive mixed-radix digits off the row number against each
// referenced distribution's size, in declared order. It draws nothing from
// the PRNG.
type HouseholdDemographicsGenerator struct {
	incomeBand      *dist.TpcdsDistribution
	buyPotential    *dist.TpcdsDistribution
	dependentCount  *dist.TpcdsDistribution
	vehicleCount    *dist.TpcdsDistribution
	totalRows       int64
}

func NewHouseholdDemographicsGenerator(incomeBand, buyPotential, dependentCount, vehicleCount *dist.TpcdsDistribution) *HouseholdDemographicsGenerator {
	total := int64(incomeBand.Size()) * int64(buyPotential.Size()) * int64(dependentCount.Size()) * int64(vehicleCount.Size())
	return &HouseholdDemographicsGenerator{
		incomeBand:     incomeBand,
		buyPotential:   buyPotential,
		dependentCount: dependentCount,
		vehicleCount:   vehicleCount,
		totalRows:      total,
	}
}

func (g *HouseholdDemographicsGenerator) TotalRows() int64 { return g.totalRows }

func (g *HouseholdDemographicsGenerator) SkipRows(skipCount int64) {}

// GenerateRow produces the 1-based rowNumber-th HouseholdDemographics row.
func (g *HouseholdDemographicsGenerator) GenerateRow(rowNumber int64) HouseholdDemographicsRow {
	var row HouseholdDemographicsRow
	row.DemoSK = rowNumber

	temp := row.DemoSK
	size := int64(g.incomeBand.Size())
	row.IncomeBandSK = (temp % size) + 1
	temp /= size

	row.BuyPotential, _ = dist.NextBitmapString(g.buyPotential, 0, &temp)
	row.DepCount, _ = dist.NextBitmapInt(g.dependentCount, 0, &temp)
	row.VehicleCount, _ = dist.NextBitmapInt(g.vehicleCount, 0, &temp)

	return row
}
