package tpch

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// PartDistributions bundles the weighted distributions Part's row
// generation draws from, loaded once per suite from the .dst store.
type PartDistributions struct {
	Colors *dist.TpchDistribution
	Types  *dist.TpchDistribution
	Cntr   *dist.TpchDistribution
}

// PartRow is one row of the Part table.
type PartRow struct {
	PartKey     int64
	Name        string
	Mfgr        string
	Brand       string
	Type        string
	Size        int64
	Container   string
	RetailPrice int64
	Comment     string
}

// PartGenerator produces Part rows in row-number order, scaling its total
// row count and comment text pool with the suite's scale factor.
type PartGenerator struct {
	bank  *prng.Bank
	pool  string
	dists PartDistributions

	totalRows int64
}

func NewPartGenerator(sf float64, dists PartDistributions, pool string) *PartGenerator {
	return &PartGenerator{
		bank:      NewBank(),
		pool:      pool,
		dists:     dists,
		totalRows: scale.Linear(6_000_000, sf),
	}
}

func (g *PartGenerator) TotalRows() int64 { return g.totalRows }

// SkipRows advances both Part's own streams and its child PartSupp rows'
// streams, since a Part skip always implies skipping its four bound
// PartSupp rows too.
func (g *PartGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	SkipPart(g.bank, skipCount)
	SkipPartSupp(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Part row.
func (g *PartGenerator) GenerateRow(rowNumber int64) PartRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TablePart)

	var row PartRow
	row.PartKey = rowNumber

	row.Name = text.AggString(g.dists.Colors, PNameScl, g.bank, StreamPName)

	mfgr := g.bank.RandomInt(PMfgMin, PMfgMax, StreamPMfg)
	row.Mfgr = text.FormatTagNumber(PMfgTag, 1, mfgr)

	brnd := g.bank.RandomInt(PBrndMin, PBrndMax, StreamPBrnd)
	row.Brand = text.FormatTagNumber(PBrndTag, 2, mfgr*10+brnd)

	row.Type, _ = text.PickString(g.dists.Types, g.bank, StreamPType)

	row.Size = g.bank.RandomInt(PSizeMin, PSizeMax, StreamPSize)

	row.Container, _ = text.PickString(g.dists.Cntr, g.bank, StreamPCntr)

	row.RetailPrice = text.RetailPrice(row.PartKey)

	row.Comment = text.GenerateText(g.pool, PCommentLen, g.bank, StreamPCmnt)

	return row
}
