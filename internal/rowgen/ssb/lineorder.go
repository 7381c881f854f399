package ssb

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// LineorderDistributions bundles the weighted distributions Lineorder's
// row generation draws from.
type LineorderDistributions struct {
	Priority *dist.TpchDistribution
	ShipMode *dist.TpchDistribution
}

// LineorderRow is one row of SSB's Lineorder fact table: TPC-H's Orders
// and LineItem flattened into a single denormalized record, with the
// receipt date, line status, return flag, comment, clerk, and ship
// instruction columns TPC-H carries all dropped.
type LineorderRow struct {
	OrderKey       int64
	LineNumber     int64
	CustKey        int64
	PartKey        int64
	SuppKey        int64
	OrderDate      string
	OrderPriority  string
	ShipPriority   int64
	Quantity       int64
	ExtendedPrice  int64
	OrderTotalPrice int64
	Discount       int64
	Revenue        int64
	SuppCost       int64
	Tax            int64
	CommitDate     string
	ShipMode       string
}

// LineorderGenerator produces flattened Lineorder rows. It still walks
// dbgen's order/line-item state machine internally (one order header,
// then its line items) because the line count and per-line draws are
// defined relative to an order, but every produced row is a complete,
// self-contained Lineorder record rather than two joined tables.
//
// It reuses TPC-H's Orders and LineItem streams; StreamOClrk (no clerk in
// this schema) is repurposed for ship priority and StreamLCmnt (no line
// comment here) for supplier cost. Suppliers are selected on StreamLSkey,
// and StreamOCmnt, StreamLShip, StreamLRdte, and StreamLRflg are not drawn.
type LineorderGenerator struct {
	bank  *prng.Bank
	dists LineorderDistributions

	totalRows     int64
	partCount     int64
	supplierCount int64
	customerCount int64

	ascDate []string

	pending      []LineorderRow
	index        int
	orderCounter int64
}

func NewLineorderGenerator(sf float64, dists LineorderDistributions) *LineorderGenerator {
	return &LineorderGenerator{
		bank:          NewBank(),
		dists:         dists,
		totalRows:     scale.LineorderCount(sf),
		partCount:     scale.Linear(PartBase, sf) * scale.PartMultiplier(sf),
		supplierCount: scale.Linear(SupplierBase, sf),
		customerCount: scale.Linear(CustomerBase, sf),
		ascDate:       text.BuildAscDate(),
	}
}

func (g *LineorderGenerator) TotalRows() int64 { return g.totalRows }

func (g *LineorderGenerator) SkipRows(skipCount int64) {
	for i := int64(0); i < skipCount; i++ {
		g.GenerateRow(0)
	}
}

func (g *LineorderGenerator) dateString(offset int64) string {
	idx := offset - text.StartDate
	if idx < 0 || int(idx) >= len(g.ascDate) {
		return ""
	}
	return g.ascDate[idx]
}

// refill opens the next order and materializes every one of its lines at
// once, computing the shared order_totalprice only after every line's
// extended price is known, then queues the lines for one-at-a-time return.
func (g *LineorderGenerator) refill() {
	g.bank.RowStart()

	g.orderCounter++
	orderKey := scale.MakeSparseKey(g.orderCounter-1, 0)

	custKey := g.bank.RandomInt(1, g.customerCount, tpch.StreamOCkey)
	delta := int64(1)
	for custKey%tpch.CustomerMortality == 0 {
		custKey += delta
		if custKey > g.customerCount {
			custKey = g.customerCount
		}
		delta *= -1
	}

	orderDateOffset := g.bank.RandomInt(text.StartDate, text.OrderDateMax(), tpch.StreamOOdate)
	orderDate := g.dateString(orderDateOffset)
	orderPriority, _ := text.PickString(g.dists.Priority, g.bank, tpch.StreamOPrio)
	shipPriority := g.bank.RandomInt(0, 0, tpch.StreamOClrk)

	lineCount := g.bank.RandomInt(tpch.OLcntMin, tpch.OLcntMax, tpch.StreamOLcnt)
	lines := make([]LineorderRow, lineCount)
	var totalPrice int64

	for i := int64(0); i < lineCount; i++ {
		line := &lines[i]
		line.OrderKey = orderKey
		line.LineNumber = i + 1
		line.CustKey = custKey
		line.OrderDate = orderDate
		line.OrderPriority = orderPriority
		line.ShipPriority = shipPriority

		line.PartKey = g.bank.RandomInt(1, g.partCount, tpch.StreamLPkey)
		suppIndex := g.bank.RandomInt(0, tpch.SuppPerPart-1, tpch.StreamLSkey)
		line.SuppKey = scale.PartSuppBridge(line.PartKey, suppIndex, g.supplierCount)

		line.Quantity = g.bank.RandomInt(tpch.LQtyMin, tpch.LQtyMax, tpch.StreamLQty)
		line.Discount = g.bank.RandomInt(tpch.LDiscMin, tpch.LDiscMax, tpch.StreamLDcnt)
		line.Tax = g.bank.RandomInt(tpch.LTaxMin, tpch.LTaxMax, tpch.StreamLTax)

		retailPrice := text.RetailPrice(line.PartKey)
		line.ExtendedPrice = retailPrice * line.Quantity
		line.Revenue = line.ExtendedPrice * (tpch.Pennies - line.Discount) / tpch.Pennies
		line.SuppCost = g.bank.RandomInt(line.ExtendedPrice/4, line.ExtendedPrice/2+1, tpch.StreamLCmnt)

		line.ShipMode, _ = text.PickString(g.dists.ShipMode, g.bank, tpch.StreamLSmode)

		cDate := g.bank.RandomInt(30, 90, tpch.StreamLCdte) + orderDateOffset
		line.CommitDate = g.dateString(cDate)

		totalPrice += line.ExtendedPrice
	}
	for i := range lines {
		lines[i].OrderTotalPrice = totalPrice
	}

	g.bank.RowStop(tpch.TableOrders)
	g.pending = lines
	g.index = 0
}

// GenerateRow produces the next Lineorder row.
func (g *LineorderGenerator) GenerateRow(rowNumber int64) LineorderRow {
	if g.index >= len(g.pending) {
		g.refill()
	}
	row := g.pending[g.index]
	g.index++
	return row
}
