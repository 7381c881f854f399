package ssb

import (
	"fmt"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// PartDistributions bundles the weighted distributions Part's row
// generation draws from.
type PartDistributions struct {
	Colors *dist.TpchDistribution
	Types  *dist.TpchDistribution
	Cntr   *dist.TpchDistribution
}

// PartRow is one row of SSB's Part dimension. It keeps TPC-H's name, mfgr,
// brand, type, size, and container columns but adds a category column
// between mfgr and brand, and drops retail price and comment entirely.
type PartRow struct {
	PartKey   int64
	Name      string
	Mfgr      string
	Category  string
	Brand     string
	Color     string
	Type      string
	Size      int64
	Container string
}

// partNameScale is SSB's narrower color-word count for the synthetic part
// name (kPNameScl in the reference), smaller than TPC-H's PNameScl=5.
const partNameScale = 3

// PartGenerator produces Part rows, repurposing TPC-H's unused retail-cost
// and comment streams (StreamPRcst, StreamPCmnt) for SSB's extra category
// and color columns rather than leaving them idle.
type PartGenerator struct {
	bank  *prng.Bank
	dists PartDistributions

	totalRows int64
}

func NewPartGenerator(sf float64, dists PartDistributions) *PartGenerator {
	return &PartGenerator{
		bank:      NewBank(),
		dists:     dists,
		totalRows: scale.Linear(PartBase, sf) * scale.PartMultiplier(sf),
	}
}

func (g *PartGenerator) TotalRows() int64 { return g.totalRows }

func (g *PartGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	tpch.SkipPart(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Part row.
func (g *PartGenerator) GenerateRow(rowNumber int64) PartRow {
	g.bank.RowStart()
	defer g.bank.RowStop(tpch.TablePart)

	var row PartRow
	row.PartKey = rowNumber

	row.Name = text.AggString(g.dists.Colors, partNameScale, g.bank, tpch.StreamPName)

	mfgr := g.bank.RandomInt(PMfgMin, PMfgMax, tpch.StreamPMfg)
	row.Mfgr = fmt.Sprintf("MFGR#%d", mfgr)

	catNum := g.bank.RandomInt(PCatMin, PCatMax, tpch.StreamPRcst)
	row.Category = fmt.Sprintf("MFGR#%d%d", mfgr, catNum)

	brndNum := g.bank.RandomInt(PBrndMin, PBrndMax, tpch.StreamPBrnd)
	row.Brand = fmt.Sprintf("MFGR#%d%d%02d", mfgr, catNum, brndNum)

	row.Color, _ = text.PickString(g.dists.Colors, g.bank, tpch.StreamPCmnt)
	row.Type, _ = text.PickString(g.dists.Types, g.bank, tpch.StreamPType)
	row.Size = g.bank.RandomInt(PSizeMin, PSizeMax, tpch.StreamPSize)
	row.Container, _ = text.PickString(g.dists.Cntr, g.bank, tpch.StreamPCntr)

	return row
}
