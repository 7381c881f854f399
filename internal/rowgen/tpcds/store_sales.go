package tpcds

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
)

const (
	ssTicketCustomer = iota
	ssTicketCdemo
	ssTicketHdemo
	ssTicketAddr
	ssTicketStore
	ssTicketLineCount
	ssTicketDateAdvance
	ssItemPermutation
	ssItemPick
	ssQty
	ssPrice
	ssDiscount
	ssTax
	ssCoupon
	ssReturnedFlag
	ssStreamCount
)

const (
	ssRowBoundary  = 40
	ssMinLinesMin  = 8
	ssMinLinesMax  = 16
	ssBaseJulian   = int64(2450815)
	ssReturnPctMax = 15
)

// storeSalesTicketInfo is the header shared by every line of one ticket.
type storeSalesTicketInfo struct {
	soldDateSK   int64
	soldTimeSK   int64
	customerSK   int64
	cdemoSK      int64
	hdemoSK      int64
	addrSK       int64
	storeSK      int64
	ticketNumber int64
}

// StoreSalesRow is one line item of a sales ticket.
type StoreSalesRow struct {
	SoldDateSK    int64
	SoldTimeSK    int64
	SoldItemSK    int64
	SoldCustomerSK int64
	SoldCdemoSK   int64
	SoldHdemoSK   int64
	SoldAddrSK    int64
	SoldStoreSK   int64
	SoldPromoSK   int64
	TicketNumber  int64
	Pricing       Pricing
	IsReturned    bool
	LastRowInTicket bool
}

// StoreSalesGenerator produces StoreSales line rows, a sales-ticket state
// machine: each ticket opens with header draws and a line count, then
// emits that many lines by walking a once-shuffled item permutation
// round-robin before opening the next ticket.
type StoreSalesGenerator struct {
	bank *prng.Bank

	itemCount      int64
	storeCount     int64
	customerCount  int64
	ticketCounter  int64

	itemPermutation []int64
	permCursor      int

	remainingItems int
	ticket         storeSalesTicketInfo
}

func NewStoreSalesGenerator(sf float64, itemCount, customerCount int64) *StoreSalesGenerator {
	g := &StoreSalesGenerator{
		bank:          newTableBank(TableStoreSales, ssStreamCount, ssRowBoundary),
		itemCount:     itemCount,
		customerCount: customerCount,
		storeCount:    storeCount(sf),
	}
	g.shufflePermutation()
	return g
}

func (g *StoreSalesGenerator) TotalRows() int64 {
	return scale.Linear(2_880_404, float64(g.itemCount)/200_000)
}

// shufflePermutation draws a Fisher-Yates permutation of [1, itemCount]
// once; every ticket thereafter walks it round-robin instead of drawing a
// fresh item index per line.
func (g *StoreSalesGenerator) shufflePermutation() {
	n := int(g.itemCount)
	if n <= 0 {
		n = 1
	}
	perm := make([]int64, n)
	for i := range perm {
		perm[i] = int64(i + 1)
	}
	for i := n - 1; i > 0; i-- {
		j := g.bank.RandomInt(0, int64(i), ssItemPermutation)
		perm[i], perm[j] = perm[j], perm[i]
	}
	g.itemPermutation = perm
}

// SkipRows replays skipCount lines of draws, reconstructing the
// permutation cursor and open-ticket state sequential generation would
// leave, per spec.md's guidance for stateful row generators.
func (g *StoreSalesGenerator) SkipRows(skipCount int64) {
	for i := int64(0); i < skipCount; i++ {
		g.GenerateRow(0)
	}
}

func (g *StoreSalesGenerator) openTicket() {
	g.ticketCounter++
	var t storeSalesTicketInfo
	t.ticketNumber = g.ticketCounter
	t.soldDateSK = ssBaseJulian + g.bank.RandomInt(0, 1800, ssTicketDateAdvance)
	t.soldTimeSK = g.bank.RandomInt(0, 86399, ssTicketCustomer)
	t.customerSK = g.bank.RandomInt(1, g.customerCount, ssTicketCustomer)
	t.cdemoSK = g.bank.RandomInt(1, g.customerCount, ssTicketCdemo)
	t.hdemoSK = g.bank.RandomInt(1, g.customerCount/10+1, ssTicketHdemo)
	t.addrSK = g.bank.RandomInt(1, g.customerCount, ssTicketAddr)
	t.storeSK = g.bank.RandomInt(1, g.storeCount, ssTicketStore)
	g.ticket = t

	g.remainingItems = int(g.bank.RandomInt(ssMinLinesMin, ssMinLinesMax, ssTicketLineCount))
}

// GenerateRow produces the next StoreSales line. rowNumber is accepted for
// interface symmetry with the other generators but isn't needed: the
// ticket state machine is purely sequential.
func (g *StoreSalesGenerator) GenerateRow(rowNumber int64) StoreSalesRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableStoreSales)

	if g.remainingItems == 0 {
		g.openTicket()
	}

	var row StoreSalesRow
	row.SoldDateSK = g.ticket.soldDateSK
	row.SoldTimeSK = g.ticket.soldTimeSK
	row.SoldCustomerSK = g.ticket.customerSK
	row.SoldCdemoSK = g.ticket.cdemoSK
	row.SoldHdemoSK = g.ticket.hdemoSK
	row.SoldAddrSK = g.ticket.addrSK
	row.SoldStoreSK = g.ticket.storeSK
	row.TicketNumber = g.ticket.ticketNumber

	row.SoldItemSK = g.itemPermutation[g.permCursor]
	g.permCursor = (g.permCursor + 1) % len(g.itemPermutation)
	row.SoldPromoSK = g.bank.RandomInt(1, 100, ssItemPick)

	row.Pricing = GeneratePricing(g.bank, ssQty, ssPrice, ssDiscount, ssTax, ssCoupon)
	row.IsReturned = g.bank.RandomInt(1, 100, ssReturnedFlag) <= ssReturnPctMax

	g.remainingItems--
	row.LastRowInTicket = g.remainingItems == 0

	return row
}
