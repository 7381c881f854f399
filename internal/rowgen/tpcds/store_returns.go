package tpcds

import "github.com/starschema/benchgen/internal/prng"

const (
	srReasonStream = iota
	srReturnDateStream
	srStreamCount
)

const srRowBoundary = 10

// StoreReturnsRow is one row of the StoreReturns table: a returned line
// from a previously generated StoreSales ticket.
type StoreReturnsRow struct {
	ReturnedDateSK int64
	ReturnedTimeSK int64
	ItemSK         int64
	CustomerSK     int64
	CdemoSK        int64
	HdemoSK        int64
	AddrSK         int64
	StoreSK        int64
	ReasonSK       int64
	TicketNumber   int64
	Pricing        Pricing
}

// StoreReturnsGenerator builds its output by running a private StoreSales
// generator and materializing only the lines it flags is_returned. Since
// returns lag sales (a ticket may be fully sold before any of its lines
// are returned), a small buffer holds the currently available returns and
// is refilled by pulling more sales lines whenever it runs dry.
type StoreReturnsGenerator struct {
	bank  *prng.Bank
	sales *StoreSalesGenerator

	pending []StoreReturnsRow
	index   int
}

func NewStoreReturnsGenerator(sf float64, itemCount, customerCount int64) *StoreReturnsGenerator {
	return &StoreReturnsGenerator{
		bank:  newTableBank(TableStoreReturns, srStreamCount, srRowBoundary),
		sales: NewStoreSalesGenerator(sf, itemCount, customerCount),
	}
}

// TotalRows approximates the source's return rate: roughly one in seven
// sales lines is flagged returned (see ssReturnPctMax in store_sales.go).
func (g *StoreReturnsGenerator) TotalRows() int64 {
	return g.sales.TotalRows() * ssReturnPctMax / 100
}

// SkipRows replays skipCount returned rows, which in turn replays however
// many underlying sales lines that took, keeping both generators' scratch
// state (the sales ticket/permutation cursor and this buffer) consistent
// with what sequential generation would have produced.
func (g *StoreReturnsGenerator) SkipRows(skipCount int64) {
	for i := int64(0); i < skipCount; i++ {
		g.GenerateRow(0)
	}
}

func (g *StoreReturnsGenerator) refill() {
	for len(g.pending) == 0 {
		sale := g.sales.GenerateRow(0)
		if !sale.IsReturned {
			continue
		}
		g.bank.RowStart()
		var row StoreReturnsRow
		row.ReturnedDateSK = sale.SoldDateSK + g.bank.RandomInt(1, 90, srReturnDateStream)
		row.ReturnedTimeSK = g.bank.RandomInt(0, 86399, srReturnDateStream)
		row.ItemSK = sale.SoldItemSK
		row.CustomerSK = sale.SoldCustomerSK
		row.CdemoSK = sale.SoldCdemoSK
		row.HdemoSK = sale.SoldHdemoSK
		row.AddrSK = sale.SoldAddrSK
		row.StoreSK = sale.SoldStoreSK
		row.ReasonSK = g.bank.RandomInt(1, 55, srReasonStream)
		row.TicketNumber = sale.TicketNumber
		row.Pricing = sale.Pricing
		g.bank.RowStop(TableStoreReturns)
		g.pending = append(g.pending, row)
	}
}

// GenerateRow produces the next StoreReturns row.
func (g *StoreReturnsGenerator) GenerateRow(rowNumber int64) StoreReturnsRow {
	if g.index >= len(g.pending) {
		g.pending = nil
		g.index = 0
		g.refill()
	}
	row := g.pending[g.index]
	g.index++
	return row
}
