package ssb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePartDists() PartDistributions {
	return PartDistributions{
		Colors: sampleTpchDist("colors", "red", "green", "blue", "ivory", "linen"),
		Types:  sampleTpchDist("p_types", "STANDARD ANODIZED TIN", "SMALL PLATED BRASS"),
		Cntr:   sampleTpchDist("p_cntr", "SM CASE", "LG BOX"),
	}
}

func TestPartGeneratorRowShape(t *testing.T) {
	g := NewPartGenerator(1.0, samplePartDists())
	require.Equal(t, int64(200_000), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.PartKey)
	require.NotEmpty(t, row.Name)
	require.Contains(t, row.Mfgr, "MFGR#")
	require.Contains(t, row.Category, row.Mfgr)
	require.Contains(t, row.Brand, row.Category)
	require.NotEmpty(t, row.Color)
	require.NotEmpty(t, row.Type)
	require.GreaterOrEqual(t, row.Size, int64(PSizeMin))
	require.LessOrEqual(t, row.Size, int64(PSizeMax))
	require.NotEmpty(t, row.Container)
}

func TestPartGeneratorScalesByMultiplierAboveSfOne(t *testing.T) {
	base := NewPartGenerator(1.0, samplePartDists())
	larger := NewPartGenerator(4.0, samplePartDists())
	require.Greater(t, larger.TotalRows(), base.TotalRows()*4, "above sf=1 the part catalog widens by the PartMultiplier factor (3 at sf=4)")
}

func TestPartGeneratorDeterministic(t *testing.T) {
	a := NewPartGenerator(1.0, samplePartDists())
	b := NewPartGenerator(1.0, samplePartDists())
	require.Equal(t, a.GenerateRow(5), b.GenerateRow(5))
}

func TestPartGeneratorSkipRowsMatchesSequentialAdvance(t *testing.T) {
	const skipCount = 6

	skipped := NewPartGenerator(1.0, samplePartDists())
	skipped.SkipRows(skipCount)
	skippedRow := skipped.GenerateRow(0)

	sequential := NewPartGenerator(1.0, samplePartDists())
	var sequentialRow PartRow
	for i := int64(0); i < skipCount+1; i++ {
		sequentialRow = sequential.GenerateRow(0)
	}

	require.Equal(t, sequentialRow, skippedRow)
}
