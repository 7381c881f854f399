package tpch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/dist"
)

func sampleDist(name string, words ...string) *dist.TpchDistribution {
	list := make([]dist.TpchEntry, len(words))
	for i, w := range words {
		list[i] = dist.TpchEntry{Text: w, Weight: int64(i + 1)}
	}
	return &dist.TpchDistribution{Name: name, Max: int64(len(words)), List: list}
}

func samplePartDists() PartDistributions {
	return PartDistributions{
		Colors: sampleDist("colors", "red", "green", "blue", "ivory", "linen"),
		Types:  sampleDist("p_types", "STANDARD ANODIZED TIN", "SMALL PLATED BRASS"),
		Cntr:   sampleDist("p_cntr", "SM CASE", "LG BOX"),
	}
}

func TestPartGeneratorRowShape(t *testing.T) {
	g := NewPartGenerator(1.0, samplePartDists(), "a pool of filler text repeated many times over ")
	require.Equal(t, int64(6_000_000), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.PartKey)
	require.NotEmpty(t, row.Name)
	require.Regexp(t, `^Manufacturer#\d$`, row.Mfgr)
	require.Regexp(t, `^Brand#\d+$`, row.Brand)
	require.NotEmpty(t, row.Type)
	require.GreaterOrEqual(t, row.Size, int64(PSizeMin))
	require.LessOrEqual(t, row.Size, int64(PSizeMax))
	require.NotEmpty(t, row.Container)
	require.Equal(t, row.RetailPrice, row.RetailPrice)
}

func TestPartGeneratorDeterministic(t *testing.T) {
	a := NewPartGenerator(1.0, samplePartDists(), "a pool of filler text repeated many times over ")
	b := NewPartGenerator(1.0, samplePartDists(), "a pool of filler text repeated many times over ")
	require.Equal(t, a.GenerateRow(5), b.GenerateRow(5))
}

func TestPartGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	skipped := NewPartGenerator(1.0, samplePartDists(), "pool text here and there and everywhere ")
	skipped.SkipRows(3)
	skippedRow := skipped.GenerateRow(4)

	sequential := NewPartGenerator(1.0, samplePartDists(), "pool text here and there and everywhere ")
	for i := int64(1); i <= 3; i++ {
		sequential.GenerateRow(i)
	}
	sequentialRow := sequential.GenerateRow(4)

	require.Equal(t, sequentialRow.Mfgr, skippedRow.Mfgr)
	require.Equal(t, sequentialRow.Brand, skippedRow.Brand)
}
