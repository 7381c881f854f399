package tpch

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// CustomerDistributions bundles the weighted distributions Customer's row
// generation draws from.
type CustomerDistributions struct {
	MarketSegment *dist.TpchDistribution
}

// CustomerRow is one row of the Customer table.
type CustomerRow struct {
	CustKey       int64
	Name          string
	Address       string
	NationKey     int64
	Phone         string
	AcctBal       int64
	MarketSegment string
	Comment       string
}

// CustomerGenerator produces Customer rows in row-number order.
type CustomerGenerator struct {
	bank  *prng.Bank
	pool  string
	dists CustomerDistributions

	totalRows int64
}

func NewCustomerGenerator(sf float64, dists CustomerDistributions, pool string) *CustomerGenerator {
	return &CustomerGenerator{
		bank:      NewBank(),
		pool:      pool,
		dists:     dists,
		totalRows: scale.Linear(150_000, sf),
	}
}

func (g *CustomerGenerator) TotalRows() int64 { return g.totalRows }

func (g *CustomerGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	SkipCustomer(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Customer row.
func (g *CustomerGenerator) GenerateRow(rowNumber int64) CustomerRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableCustomer)

	var row CustomerRow
	row.CustKey = rowNumber
	row.Name = text.FormatTagNumber(CNameTag, 9, rowNumber)
	row.Address = text.VariableString(g.bank, CAddressLen, StreamCAddr)

	row.NationKey = g.bank.RandomInt(0, NationsMax-1, StreamCNtrg)
	row.Phone = text.GeneratePhone(g.bank, row.NationKey, StreamCPhne)

	row.AcctBal = g.bank.RandomInt(CAbalMin, CAbalMax, StreamCAbal)

	row.MarketSegment, _ = text.PickString(g.dists.MarketSegment, g.bank, StreamCMseg)

	row.Comment = text.GenerateText(g.pool, CCommentLen, g.bank, StreamCCmnt)

	return row
}
