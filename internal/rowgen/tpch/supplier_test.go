package tpch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/prng"
)

func TestSupplierGeneratorRowShape(t *testing.T) {
	g := NewSupplierGenerator(1.0, "a fairly long pool of filler sentences used for every supplier comment slice ")
	require.Equal(t, int64(10_000), g.TotalRows())

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.SuppKey)
	require.Equal(t, "Supplier#000000001", row.Name)
	require.NotEmpty(t, row.Address)
	require.GreaterOrEqual(t, row.NationKey, int64(0))
	require.Less(t, row.NationKey, int64(NationsMax))
	require.Len(t, strings.Split(row.Phone, "-"), 4)
	require.GreaterOrEqual(t, row.AcctBal, int64(SAbalMin))
	require.LessOrEqual(t, row.AcctBal, int64(SAbalMax))
}

func TestSupplierGeneratorDeterministic(t *testing.T) {
	pool := "a fairly long pool of filler sentences used for every supplier comment slice "
	a := NewSupplierGenerator(1.0, pool)
	b := NewSupplierGenerator(1.0, pool)
	require.Equal(t, a.GenerateRow(42), b.GenerateRow(42))
}

func TestSpliceBbbCommentNeverPanicsOnShortComment(t *testing.T) {
	bank := prng.NewBank(Seeds, Graph)
	require.NotPanics(t, func() {
		spliceBbbComment("short", bank)
	})
}

func TestSpliceBbbCommentPreservesLength(t *testing.T) {
	bank := prng.NewBank(Seeds, Graph)
	comment := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 3)
	out := spliceBbbComment(comment, bank)
	require.Equal(t, len(comment), len(out))
}
