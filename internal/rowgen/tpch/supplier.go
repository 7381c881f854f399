package tpch

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// SupplierRow is one row of the Supplier table.
type SupplierRow struct {
	SuppKey   int64
	Name      string
	Address   string
	NationKey int64
	Phone     string
	AcctBal   int64
	Comment   string
}

// SupplierGenerator produces Supplier rows, splicing a "Better Business
// Bureau" complaint/recommendation blurb into a small fraction of comments.
type SupplierGenerator struct {
	bank *prng.Bank
	pool string

	totalRows int64
}

func NewSupplierGenerator(sf float64, pool string) *SupplierGenerator {
	return &SupplierGenerator{
		bank:      NewBank(),
		pool:      pool,
		totalRows: scale.Linear(10_000, sf),
	}
}

func (g *SupplierGenerator) TotalRows() int64 { return g.totalRows }

func (g *SupplierGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	SkipSupplier(g.bank, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Supplier row.
func (g *SupplierGenerator) GenerateRow(rowNumber int64) SupplierRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableSupplier)

	var row SupplierRow
	row.SuppKey = rowNumber
	row.Name = text.FormatTagNumber(SNameTag, 9, rowNumber)
	row.Address = text.VariableString(g.bank, SAddressLen, StreamSAddr)

	row.NationKey = g.bank.RandomInt(0, NationsMax-1, StreamSNtrg)
	row.Phone = text.GeneratePhone(g.bank, row.NationKey, StreamSPhne)

	row.AcctBal = g.bank.RandomInt(SAbalMin, SAbalMax, StreamSAbal)

	comment := text.GenerateText(g.pool, SCommentLen, g.bank, StreamSCmnt)
	row.Comment = spliceBbbComment(comment, g.bank)

	return row
}

// spliceBbbComment reproduces dbgen's "Better Business Bureau" injection: a
// small fraction of comments get a fixed "Customer " marker and a
// "Complaints"/"Recommends" blurb spliced in at a random offset, so
// downstream queries that scan for these markers return a stable,
// scale-independent fraction of suppliers.
func spliceBbbComment(comment string, bank *prng.Bank) string {
	badPress := bank.RandomInt(1, 10000, StreamBbbCmnt)
	typeRoll := bank.RandomInt(0, 100, StreamBbbType)
	commentLen := int64(len(comment))

	noiseHigh := commentLen - BbbCommentLen
	if noiseHigh < 0 {
		noiseHigh = 0
	}
	noise := bank.RandomInt(0, noiseHigh, StreamBbbJnk)

	offsetHigh := commentLen - (BbbCommentLen + noise)
	if offsetHigh < 0 {
		offsetHigh = 0
	}
	offset := bank.RandomInt(0, offsetHigh, StreamBbbOffset)

	if badPress > SCommentBbb || commentLen < BbbCommentLen {
		return comment
	}

	typeText := BbbCommend
	if typeRoll < BbbDeadbeats {
		typeText = BbbComplain
	}

	buf := []byte(comment)
	copy(buf[offset:offset+BbbBaseLen], BbbBase)
	typeStart := offset + BbbBaseLen + noise
	copy(buf[typeStart:typeStart+BbbTypeLen], typeText)
	return string(buf)
}
