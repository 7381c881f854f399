package tpch

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// OrderDistributions bundles the weighted distributions Orders and its
// child LineItem rows draw from.
type OrderDistributions struct {
	Priority    *dist.TpchDistribution
	ShipInstruct *dist.TpchDistribution
	ShipMode    *dist.TpchDistribution
	ReturnFlag  *dist.TpchDistribution
}

// LineItemRow is one line item belonging to an order.
type LineItemRow struct {
	OrderKey      int64
	LineNumber    int64
	PartKey       int64
	SuppKey       int64
	Quantity      int64
	Discount      int64
	Tax           int64
	ShipInstruct  string
	ShipMode      string
	Comment       string
	ExtendedPrice int64
	ShipDate      string
	CommitDate    string
	ReceiptDate   string
	ReturnFlag    byte
	LineStatus    byte
}

// OrderRow is one row of the Orders table, with its bound LineItem rows.
type OrderRow struct {
	OrderKey      int64
	CustKey       int64
	OrderStatus   byte
	TotalPrice    int64
	OrderDate     string
	OrderPriority string
	Clerk         string
	ShipPriority  int64
	Comment       string
	Lines         []LineItemRow
}

// OrderGenerator produces the combined Orders+LineItem rows, the only TPC-H
// generator whose per-row output spans two tables at once.
type OrderGenerator struct {
	bank  *prng.Bank
	pool  string
	dists OrderDistributions

	totalRows     int64
	partCount     int64
	supplierCount int64
	customerCount int64
	maxClerk      int64

	ascDate []string
}

func NewOrderGenerator(sf float64, dists OrderDistributions, pool string) *OrderGenerator {
	scaleBucket := sf
	if scaleBucket < 1.0 {
		scaleBucket = 1.0
	}
	maxClerk := int64(scaleBucket) * OClerkScale
	if maxClerk < OClerkScale {
		maxClerk = OClerkScale
	}
	return &OrderGenerator{
		bank:          NewBank(),
		pool:          pool,
		dists:         dists,
		totalRows:     scale.OrderCount(sf),
		partCount:     scale.Linear(6_000_000, sf),
		supplierCount: scale.Linear(10_000, sf),
		customerCount: scale.Linear(150_000, sf),
		maxClerk:      maxClerk,
		ascDate:       text.BuildAscDate(),
	}
}

func (g *OrderGenerator) TotalRows() int64 { return g.totalRows }

// SkipRows advances both the Orders header streams and every LineItem
// stream (not bound to a child header row) by skipCount orders' worth.
func (g *OrderGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	SkipOrder(g.bank, skipCount)
	SkipLine(g.bank, skipCount, false)
}

// PeekLineCount returns the line count the next GenerateRow call would
// produce, without consuming the draw, letting a caller size its output
// buffer before committing to the row.
func (g *OrderGenerator) PeekLineCount() int64 {
	return g.bank.PeekRandomInt(OLcntMin, OLcntMax, StreamOLcnt)
}

// dateString returns the calendar string for a row-offset date, or "" if
// the offset falls outside the built calendar.
func (g *OrderGenerator) dateString(offset int64) string {
	idx := offset - text.StartDate
	if idx < 0 || int(idx) >= len(g.ascDate) {
		return ""
	}
	return g.ascDate[idx]
}

// GenerateRow produces the 1-based rowNumber-th Orders row along with every
// LineItem row it owns.
func (g *OrderGenerator) GenerateRow(rowNumber int64) OrderRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableOrders)

	var row OrderRow
	row.OrderKey = scale.MakeSparseKey(rowNumber, 0)
	row.OrderStatus = 'O'

	custKey := g.bank.RandomInt(1, g.customerCount, StreamOCkey)
	delta := int64(1)
	for custKey%CustomerMortality == 0 {
		custKey += delta
		if custKey > g.customerCount {
			custKey = g.customerCount
		}
		delta *= -1
	}
	row.CustKey = custKey

	orderDateOffset := g.bank.RandomInt(text.StartDate, text.OrderDateMax(), StreamOOdate)
	row.OrderDate = g.dateString(orderDateOffset)

	row.OrderPriority, _ = text.PickString(g.dists.Priority, g.bank, StreamOPrio)

	clerkNum := g.bank.RandomInt(1, g.maxClerk, StreamOClrk)
	row.Clerk = text.FormatTagNumber(OClerkTag, 9, clerkNum)

	row.Comment = text.GenerateText(g.pool, OCommentLen, g.bank, StreamOCmnt)

	lineCount := g.bank.RandomInt(OLcntMin, OLcntMax, StreamOLcnt)
	row.Lines = make([]LineItemRow, lineCount)

	var shippedLines int64
	for i := int64(0); i < lineCount; i++ {
		line := &row.Lines[i]
		line.OrderKey = row.OrderKey
		line.LineNumber = i + 1

		line.PartKey = g.bank.RandomInt(1, g.partCount, StreamLPkey)
		suppIndex := g.bank.RandomInt(0, SuppPerPart-1, StreamLSkey)
		line.SuppKey = scale.PartSuppBridge(line.PartKey, suppIndex, g.supplierCount)

		line.Quantity = g.bank.RandomInt(LQtyMin, LQtyMax, StreamLQty)
		line.Discount = g.bank.RandomInt(LDiscMin, LDiscMax, StreamLDcnt)
		line.Tax = g.bank.RandomInt(LTaxMin, LTaxMax, StreamLTax)

		line.ShipInstruct, _ = text.PickString(g.dists.ShipInstruct, g.bank, StreamLShip)
		line.ShipMode, _ = text.PickString(g.dists.ShipMode, g.bank, StreamLSmode)
		line.Comment = text.GenerateText(g.pool, LCommentLen, g.bank, StreamLCmnt)

		retailPrice := text.RetailPrice(line.PartKey)
		line.ExtendedPrice = retailPrice * line.Quantity

		sDate := g.bank.RandomInt(LSdteMin, LSdteMax, StreamLSdte) + orderDateOffset
		cDate := g.bank.RandomInt(LCdteMin, LCdteMax, StreamLCdte) + orderDateOffset
		rDate := g.bank.RandomInt(LRdteMin, LRdteMax, StreamLRdte) + sDate

		line.ShipDate = g.dateString(sDate)
		line.CommitDate = g.dateString(cDate)
		line.ReceiptDate = g.dateString(rDate)

		if text.JulianDate(rDate) <= text.CurrentDate {
			flag, idx := text.PickString(g.dists.ReturnFlag, g.bank, StreamLRflg)
			if idx >= 0 && flag != "" {
				line.ReturnFlag = flag[0]
			} else {
				line.ReturnFlag = 'N'
			}
		} else {
			line.ReturnFlag = 'N'
		}

		if text.JulianDate(sDate) <= text.CurrentDate {
			line.LineStatus = 'F'
			shippedLines++
		} else {
			line.LineStatus = 'O'
		}

		row.TotalPrice += (line.ExtendedPrice * (Pennies - line.Discount) / Pennies) *
			(Pennies + line.Tax) / Pennies
	}

	if shippedLines > 0 {
		row.OrderStatus = 'P'
	}
	if shippedLines == lineCount {
		row.OrderStatus = 'F'
	}

	return row
}
