package ssb

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// CustomerDistributions bundles the weighted distributions Customer's row
// generation draws from.
type CustomerDistributions struct {
	MarketSegment *dist.TpchDistribution
}

// CustomerRow is one row of SSB's Customer dimension. Unlike TPC-H's
// Customer, nation and region are denormalized directly onto the row
// instead of a foreign key into a separate Nation table, and there is no
// account balance or free-text comment.
type CustomerRow struct {
	CustKey     int64
	Name        string
	Address     string
	City        string
	NationKey   int64
	NationName  string
	RegionName  string
	Phone       string
	MktSegment  string
}

// CustomerGenerator produces Customer rows, reusing TPC-H's Customer
// streams (StreamCAddr, StreamCNtrg, StreamCPhne, StreamCMseg); the
// account-balance stream StreamCAbal, unused by SSB's narrower schema, is
// repurposed here to draw the city suffix instead of going idle.
type CustomerGenerator struct {
	bank  *prng.Bank
	dists CustomerDistributions

	totalRows int64
}

func NewCustomerGenerator(sf float64, dists CustomerDistributions) *CustomerGenerator {
	return &CustomerGenerator{
		bank:      NewBank(),
		dists:     dists,
		totalRows: scale.Linear(CustomerBase, sf),
	}
}

func (g *CustomerGenerator) TotalRows() int64 { return g.totalRows }

func (g *CustomerGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	tpch.SkipCustomer(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Customer row.
func (g *CustomerGenerator) GenerateRow(rowNumber int64) CustomerRow {
	g.bank.RowStart()
	defer g.bank.RowStop(tpch.TableCustomer)

	var row CustomerRow
	row.CustKey = rowNumber
	row.Name = text.FormatTagNumber("Customer#", 9, rowNumber)
	row.Address = text.VariableString(g.bank, 25, tpch.StreamCAddr)

	row.NationKey = g.bank.RandomInt(0, int64(len(nationSeeds)-1), tpch.StreamCNtrg)
	citySuffix := g.bank.RandomInt(0, 9, tpch.StreamCAbal)
	row.City = cityName(row.NationKey, citySuffix)
	row.NationName = nationSeeds[row.NationKey].Name
	row.RegionName = nationSeeds[row.NationKey].RegionName

	row.Phone = text.GeneratePhone(g.bank, row.NationKey, tpch.StreamCPhne)

	row.MktSegment, _ = text.PickString(g.dists.MarketSegment, g.bank, tpch.StreamCMseg)

	return row
}
