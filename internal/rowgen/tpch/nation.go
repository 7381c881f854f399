package tpch

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/text"
)

// nationSeed is one entry of the fixed 25-nation reference table TPC-H
// defines: a dense lookup by row number, not a weighted pick, so it is
// kept as a plain Go table rather than routed through a distribution.
type nationSeed struct {
	Name      string
	RegionKey int64
}

var nationSeeds = []nationSeed{
	{"ALGERIA", 0}, {"ARGENTINA", 1}, {"BRAZIL", 1}, {"CANADA", 1}, {"EGYPT", 4},
	{"ETHIOPIA", 0}, {"FRANCE", 3}, {"GERMANY", 3}, {"INDIA", 2}, {"INDONESIA", 2},
	{"IRAN", 4}, {"IRAQ", 4}, {"JAPAN", 2}, {"JORDAN", 4}, {"KENYA", 0},
	{"MOROCCO", 0}, {"MOZAMBIQUE", 0}, {"PERU", 1}, {"CHINA", 2}, {"ROMANIA", 3},
	{"SAUDI ARABIA", 4}, {"VIETNAM", 2}, {"RUSSIA", 3}, {"UNITED KINGDOM", 3},
	{"UNITED STATES", 1},
}

// regionSeeds is the fixed 5-region reference table every nation's
// RegionKey indexes into.
var regionSeeds = []string{"AFRICA", "AMERICA", "ASIA", "EUROPE", "MIDDLE EAST"}

const nationCommentLen = 72
const regionCommentLen = 72

// NationRow is one row of the Nation table.
type NationRow struct {
	NationKey int64
	Name      string
	RegionKey int64
	Comment   string
}

// NationGenerator produces all 25 Nation rows; Nation never scales with
// the scale factor, matching TPC-H's fixed small-dimension tables.
type NationGenerator struct {
	bank *prng.Bank
	pool string
}

func NewNationGenerator(pool string) *NationGenerator {
	return &NationGenerator{bank: NewBank(), pool: pool}
}

func (g *NationGenerator) TotalRows() int64 { return int64(len(nationSeeds)) }

// SkipRows advances the comment stream by skipCount rows' worth of draws,
// the only per-row state Nation's generator carries.
func (g *NationGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	g.bank.AdvanceStream(StreamNCmnt, g.bank.SeedBoundary(StreamNCmnt)*skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Nation row.
func (g *NationGenerator) GenerateRow(rowNumber int64) NationRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableNation)

	var row NationRow
	row.NationKey = rowNumber - 1
	if rowNumber >= 1 && int(rowNumber) <= len(nationSeeds) {
		seed := nationSeeds[rowNumber-1]
		row.Name = seed.Name
		row.RegionKey = seed.RegionKey
	}
	row.Comment = text.GenerateText(g.pool, nationCommentLen, g.bank, StreamNCmnt)
	return row
}

// RegionRow is one row of the Region table.
type RegionRow struct {
	RegionKey int64
	Name      string
	Comment   string
}

// RegionGenerator produces all 5 Region rows.
type RegionGenerator struct {
	bank *prng.Bank
	pool string
}

func NewRegionGenerator(pool string) *RegionGenerator {
	return &RegionGenerator{bank: NewBank(), pool: pool}
}

func (g *RegionGenerator) TotalRows() int64 { return int64(len(regionSeeds)) }

func (g *RegionGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	g.bank.AdvanceStream(StreamRCmnt, g.bank.SeedBoundary(StreamRCmnt)*skipCount)
}

func (g *RegionGenerator) GenerateRow(rowNumber int64) RegionRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableRegion)

	var row RegionRow
	row.RegionKey = rowNumber - 1
	if rowNumber >= 1 && int(rowNumber) <= len(regionSeeds) {
		row.Name = regionSeeds[rowNumber-1]
	}
	row.Comment = text.GenerateText(g.pool, regionCommentLen, g.bank, StreamRCmnt)
	return row
}
