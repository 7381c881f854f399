package tpcds

import "github.com/starschema/benchgen/internal/dist"

// IncomeBandRow is one row of the IncomeBand dimension: a contiguous
// income range, looked up by row number.
type IncomeBandRow struct {
	IncomeBandSK int64
	LowerBound   int64
	UpperBound   int64
}

// IncomeBandGenerator produces IncomeBand rows by dense lookup into the
// "income_band" distribution; it draws nothing from the PRNG.
type IncomeBandGenerator struct {
	incomeBand *dist.TpcdsDistribution
}

func NewIncomeBandGenerator(incomeBand *dist.TpcdsDistribution) *IncomeBandGenerator {
	return &IncomeBandGenerator{incomeBand: incomeBand}
}

func (g *IncomeBandGenerator) TotalRows() int64 { return int64(g.incomeBand.Size()) }

func (g *IncomeBandGenerator) SkipRows(skipCount int64) {}

// GenerateRow produces the 1-based rowNumber-th IncomeBand row.
func (g *IncomeBandGenerator) GenerateRow(rowNumber int64) IncomeBandRow {
	var row IncomeBandRow
	index := int(rowNumber) - 1
	row.IncomeBandSK = rowNumber
	row.LowerBound, _ = g.incomeBand.GetIntAt(index, 1)
	row.UpperBound, _ = g.incomeBand.GetIntAt(index, 2)
	return row
}
