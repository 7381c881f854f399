package ssb

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// SupplierRow is one row of SSB's Supplier dimension: the same shape as
// Customer, with nation/region denormalized and no free-text comment or
// "Better Business Bureau" splice.
type SupplierRow struct {
	SuppKey    int64
	Name       string
	Address    string
	City       string
	NationKey  int64
	NationName string
	RegionName string
	Phone      string
}

// SupplierGenerator produces Supplier rows, reusing TPC-H's Supplier
// streams; StreamSAbal and StreamSCmnt, unused by SSB's narrower schema
// (no balance or comment column), are repurposed for the city suffix and
// left idle respectively.
type SupplierGenerator struct {
	bank *prng.Bank

	totalRows int64
}

func NewSupplierGenerator(sf float64) *SupplierGenerator {
	return &SupplierGenerator{
		bank:      NewBank(),
		totalRows: scale.Linear(SupplierBase, sf),
	}
}

func (g *SupplierGenerator) TotalRows() int64 { return g.totalRows }

func (g *SupplierGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	tpch.SkipSupplier(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Supplier row.
func (g *SupplierGenerator) GenerateRow(rowNumber int64) SupplierRow {
	g.bank.RowStart()
	defer g.bank.RowStop(tpch.TableSupplier)

	var row SupplierRow
	row.SuppKey = rowNumber
	row.Name = text.FormatTagNumber("Supplier#", 9, rowNumber)
	row.Address = text.VariableString(g.bank, 25, tpch.StreamSAddr)

	row.NationKey = g.bank.RandomInt(0, int64(len(nationSeeds)-1), tpch.StreamSNtrg)
	citySuffix := g.bank.RandomInt(0, 9, tpch.StreamSAbal)
	row.City = cityName(row.NationKey, citySuffix)
	row.NationName = nationSeeds[row.NationKey].Name
	row.RegionName = nationSeeds[row.NationKey].RegionName

	row.Phone = text.GeneratePhone(g.bank, row.NationKey, tpch.StreamSPhne)

	return row
}
