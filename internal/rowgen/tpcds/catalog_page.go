package tpcds

import (
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/text"
)

const (
	cpDescriptionStream = iota
	cpStreamCount
)

const cpRowBoundary = 2

// cpCatalogsPerYear, yearMinimum, and yearMaximum mirror the source's
// utils/constants.h, which is not present in this generator's available
// sources; these reconstruct TPC-DS's published catalog cadence (three
// catalogs a year: one 182-day edition and two 91-day editions, reissued
// across a five-year span) rather than porting missing literals.
const (
	cpCatalogsPerYear = 3
	yearMinimum       = 1998
	yearMaximum       = 2002
	cpBaseJulian      = int64(2450815)
	cpDescriptionLen  = 74
)

// CatalogPageRow is one row of the CatalogPage dimension.
type CatalogPageRow struct {
	CatalogPageSK     int64
	CatalogPageID     string
	StartDateID       int64
	EndDateID         int64
	Department        string
	CatalogNumber      int64
	CatalogPageNumber  int64
	Description        string
	Type               string
}

// CatalogPageGenerator produces CatalogPage rows: catalog_number,
// page_number, date range, and type are all pure index arithmetic on the
// row number; only the description text is drawn from the PRNG.
type CatalogPageGenerator struct {
	bank *prng.Bank
	pool string
	pageType *dist.TpcdsDistribution

	pagesPerCatalog int64
	totalRows       int64
}

func NewCatalogPageGenerator(sf float64, pool string, pageType *dist.TpcdsDistribution) *CatalogPageGenerator {
	total := scaleLinearRows(11_680, sf)
	pagesPerCatalog := total / cpCatalogsPerYear
	pagesPerCatalog /= int64(yearMaximum-yearMinimum+2)
	if pagesPerCatalog <= 0 {
		pagesPerCatalog = 1
	}
	return &CatalogPageGenerator{
		bank:            newTableBank(TableCatalogPage, cpStreamCount, cpRowBoundary),
		pool:            pool,
		pageType:        pageType,
		pagesPerCatalog: pagesPerCatalog,
		totalRows:       total,
	}
}

func (g *CatalogPageGenerator) TotalRows() int64 { return g.totalRows }

func (g *CatalogPageGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	g.bank.AdvanceStream(cpDescriptionStream, cpRowBoundary*skipCount)
}

// GenerateRow produces the 1-based rowNumber-th CatalogPage row.
func (g *CatalogPageGenerator) GenerateRow(rowNumber int64) CatalogPageRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableCatalogPage)

	var row CatalogPageRow
	row.CatalogPageSK = rowNumber
	row.CatalogPageID = MakeBusinessKey(rowNumber)

	row.CatalogNumber = (rowNumber-1)/g.pagesPerCatalog + 1
	row.CatalogPageNumber = (rowNumber-1)%g.pagesPerCatalog + 1

	catalogInterval := (row.CatalogNumber - 1) % cpCatalogsPerYear
	var duration, offset, typeIndex int64
	switch catalogInterval {
	case 0:
		duration, offset, typeIndex = 182, 0, 0
	case 1:
		duration, offset, typeIndex = 91, 182, 1
	default:
		duration, offset, typeIndex = 91, 273, 1
	}

	row.StartDateID = cpBaseJulian + offset
	row.StartDateID += ((row.CatalogNumber - 1) / cpCatalogsPerYear) * 365
	row.EndDateID = row.StartDateID + duration - 1

	row.Department = "DEPARTMENT"
	row.Type, _ = g.pageType.GetStringAt(int(typeIndex), 0)
	row.Description = text.GenerateText(g.pool, cpDescriptionLen, g.bank, cpDescriptionStream)

	return row
}

// scaleLinearRows is a small local alias kept here so CatalogPage's
// constructor reads the same way the rest of the package's row-count
// setup does.
func scaleLinearRows(base int64, sf float64) int64 {
	if sf < 1 {
		sf = 1
	}
	return int64(float64(base) * sf)
}
