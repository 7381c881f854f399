package dist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/prng"
)

func sampleTpcdsDistribution() *TpcdsDistribution {
	return &TpcdsDistribution{
		Name:  "gender",
		Types: []string{"value"},
		Names: []string{"gender"},
		WeightSets: []TpcdsWeightSet{
			{Name: "uniform", Weights: []int64{1, 1}},
		},
		Entries: []TpcdsEntry{
			{Values: []TpcdsValue{{Str: "M"}}},
			{Values: []TpcdsValue{{Str: "F"}}},
		},
	}
}

func TestTpcdsIdxRoundTrip(t *testing.T) {
	d := sampleTpcdsDistribution()
	encoded, err := EncodeTpcdsIdx([]*TpcdsDistribution{d})
	require.NoError(t, err)

	store, err := DecodeTpcdsIdx(encoded)
	require.NoError(t, err)

	got := store.Find("gender")
	require.NotNil(t, got)
	require.Equal(t, 2, got.Size())
	m, err := got.GetString(0, "value")
	require.NoError(t, err)
	require.Equal(t, "M", m)
}

func TestTpcdsPickIndexOnlineRunningSum(t *testing.T) {
	d := &TpcdsDistribution{
		Name:  "three",
		Types: []string{"value"},
		WeightSets: []TpcdsWeightSet{
			{Name: "uniform", Weights: []int64{1, 2, 3}},
		},
		Entries: []TpcdsEntry{
			{Values: []TpcdsValue{{Str: "a"}}},
			{Values: []TpcdsValue{{Str: "b"}}},
			{Values: []TpcdsValue{{Str: "c"}}},
		},
	}

	seeds := []prng.Seed{{Table: 0, Value: 42, Boundary: 100}}
	bank := prng.NewBank(seeds, prng.Graph{})
	for i := 0; i < 30; i++ {
		idx, err := d.PickIndex(bank, 0, "uniform")
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 3)
	}
}

func TestTpcdsPickIndexUnknownWeightSet(t *testing.T) {
	d := sampleTpcdsDistribution()
	bank := prng.NewBank([]prng.Seed{{Table: 0, Value: 1, Boundary: 10}}, prng.Graph{})
	_, err := d.PickIndex(bank, 0, "missing")
	require.Error(t, err)
}

func TestBitmapToIndexMixedRadix(t *testing.T) {
	sizes := []int{3, 2} // dims: size 3 (outer), size 2 (inner)
	idx := BitmapToIndex(5, sizes)
	require.Equal(t, []int{2, 1}, idx)

	idx0 := BitmapToIndex(0, sizes)
	require.Equal(t, []int{0, 0}, idx0)
}

func TestDistributionSize(t *testing.T) {
	d := sampleTpcdsDistribution()
	require.Equal(t, 2, d.Size())
}
