package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearBelowOneCeilingRounds(t *testing.T) {
	require.Equal(t, int64(1), Linear(10, 0.05))
	require.Equal(t, int64(50), Linear(1000, 0.05))
}

func TestLinearAtOrAboveOneExact(t *testing.T) {
	require.Equal(t, int64(1000), Linear(1000, 1))
	require.Equal(t, int64(10000), Linear(1000, 10))
}

func TestLineItemCountExactAnchors(t *testing.T) {
	require.Equal(t, int64(6001215), LineItemCount(1))
	require.Equal(t, int64(29999795), LineItemCount(5))
	require.Equal(t, int64(59986052), LineItemCount(10))
}

func TestLineItemCountInterpolatesBetweenAnchors(t *testing.T) {
	mid := LineItemCount(7)
	require.Greater(t, mid, int64(29999795))
	require.Less(t, mid, int64(59986052))
}

func TestLineItemCountExtrapolatesPastLastAnchor(t *testing.T) {
	far := LineItemCount(20)
	require.Greater(t, far, int64(59986052))
}

func TestLineItemCountBelowFirstAnchorScalesFromOrigin(t *testing.T) {
	half := LineItemCount(0.5)
	require.Greater(t, half, int64(0))
	require.Less(t, half, int64(6001215))
}

func TestLineorderCountSharesLineItemCurve(t *testing.T) {
	require.Equal(t, LineItemCount(3), LineorderCount(3))
}

func TestOrderCountIsOneQuarterOfLineItemCount(t *testing.T) {
	require.Equal(t, LineItemCount(1)/4, OrderCount(1))
}

func TestPartMultiplierStepsPerPowerOfTwo(t *testing.T) {
	require.Equal(t, int64(1), PartMultiplier(0.5))
	require.Equal(t, int64(1), PartMultiplier(1))
	require.Equal(t, int64(2), PartMultiplier(2))
	require.Equal(t, int64(3), PartMultiplier(4))
	require.Equal(t, int64(4), PartMultiplier(8))
}

func TestPartSuppBridgeSpreadsAcrossSuppliers(t *testing.T) {
	const supplierCount = 1000
	seen := map[int64]bool{}
	for n := int64(0); n < 4; n++ {
		s := PartSuppBridge(17, n, supplierCount)
		require.GreaterOrEqual(t, s, int64(1))
		require.LessOrEqual(t, s, int64(supplierCount))
		seen[s] = true
	}
	require.Len(t, seen, 4)
}

func TestPartSuppBridgeDegenerateSupplierCount(t *testing.T) {
	require.Equal(t, int64(1), PartSuppBridge(5, 2, 0))
}

func TestMakeSparseKeyPreservesLowBits(t *testing.T) {
	for i := int64(0); i < 8; i++ {
		key := MakeSparseKey(i, 0)
		require.Equal(t, i, key&0b111)
	}
}

func TestMakeSparseKeyLeavesGaps(t *testing.T) {
	k0 := MakeSparseKey(0, 0)
	k8 := MakeSparseKey(8, 0) // next block
	require.Greater(t, k8-k0, int64(8))
}

func TestMakeSparseKeyDistinguishesSeq(t *testing.T) {
	require.NotEqual(t, MakeSparseKey(4, 0), MakeSparseKey(4, 1))
}

func TestRowCountDispatchesByKind(t *testing.T) {
	require.Equal(t, int64(1000), RowCount(Table{Base: 1000, Kind: KindLinear}, 1))
	require.Equal(t, int64(25), RowCount(Table{Base: 25, Kind: KindFixed}, 100))
	require.Equal(t, LineItemCount(3), RowCount(Table{Kind: KindLineItem}, 3))
}
