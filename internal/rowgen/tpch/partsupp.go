package tpch

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// PartSuppRow is one row of the PartSupp table.
type PartSuppRow struct {
	PartKey     int64
	SuppKey     int64
	AvailQty    int64
	SupplyCost  int64
	Comment     string
}

// PartSuppGenerator produces PartSupp rows SuppPerPart at a time per part,
// mirroring dbgen's cursor-based emitter: it walks parts in order and, for
// each, emits its four bound supplier rows before advancing.
type PartSuppGenerator struct {
	bank *prng.Bank
	pool string

	totalParts    int64
	supplierCount int64

	currentPart int64
	suppIndex   int
	hasPart     bool

	totalRows int64
}

func NewPartSuppGenerator(sf float64, pool string) *PartSuppGenerator {
	totalParts := scale.Linear(6_000_000, sf)
	return &PartSuppGenerator{
		bank:          NewBank(),
		pool:          pool,
		totalParts:    totalParts,
		supplierCount: scale.Linear(10_000, sf),
		totalRows:     totalParts * SuppPerPart,
	}
}

func (g *PartSuppGenerator) TotalRows() int64 { return g.totalRows }

// SkipRows replays skipCount rows' worth of draws without producing output,
// advancing across part boundaries exactly as NextRow would.
func (g *PartSuppGenerator) SkipRows(skipCount int64) {
	for i := int64(0); i < skipCount; i++ {
		g.NextRow()
	}
}

// loadPart starts a fresh part's four-supplier draw cycle.
func (g *PartSuppGenerator) loadPart() {
	g.currentPart++
	g.suppIndex = 0
	g.hasPart = g.currentPart <= g.totalParts
	if g.hasPart {
		g.bank.RowStart()
	}
}

// NextRow produces the next PartSupp row in part-then-supplier-index order,
// returning false once every part's suppliers have been emitted.
func (g *PartSuppGenerator) NextRow() (PartSuppRow, bool) {
	if !g.hasPart {
		g.loadPart()
	}
	if !g.hasPart {
		return PartSuppRow{}, false
	}

	var row PartSuppRow
	row.PartKey = g.currentPart
	row.SuppKey = scale.PartSuppBridge(g.currentPart, int64(g.suppIndex), g.supplierCount)
	row.AvailQty = g.bank.RandomInt(PSQtyMin, PSQtyMax, StreamPsQty)
	row.SupplyCost = g.bank.RandomInt(PSScstMin, PSScstMax, StreamPsScst)
	row.Comment = text.GenerateText(g.pool, PSCommentLen, g.bank, StreamPsCmnt)

	g.suppIndex++
	if g.suppIndex >= SuppPerPart {
		g.bank.RowStop(TablePartSupp)
		g.hasPart = false
	}
	return row, true
}
