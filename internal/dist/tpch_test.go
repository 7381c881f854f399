package dist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/prng"
)

const sampleDst = `
# sample region distribution
begin region
count|5
AFRICA|1
AMERICA|1
ASIA|1
EUROPE|1
MIDDLE EAST|1
end region

begin nonexistent
count|1
x|1
end nonexistent
`

func TestParseTpchTextBuildsPrefixSums(t *testing.T) {
	store, err := ParseTpchText(strings.NewReader(sampleDst))
	require.NoError(t, err)

	region := store.Find("REGION")
	require.NotNil(t, region)
	require.Equal(t, int64(5), region.Max)
	require.Len(t, region.List, 5)
	require.Equal(t, int64(1), region.List[0].Weight)
	require.Equal(t, int64(5), region.List[4].Weight)
	require.Equal(t, "MIDDLE EAST", region.List[4].Text)
}

func TestParseTpchTextRejectsCountMismatch(t *testing.T) {
	bad := "begin x\ncount|2\na|1\nend x\n"
	_, err := ParseTpchText(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseTpchTextRejectsDuplicate(t *testing.T) {
	dup := "begin x\ncount|1\na|1\nend x\nbegin x\ncount|1\na|1\nend x\n"
	_, err := ParseTpchText(strings.NewReader(dup))
	require.Error(t, err)
}

func TestPickIndexRespectsWeightedPickLaw(t *testing.T) {
	store, err := ParseTpchText(strings.NewReader(sampleDst))
	require.NoError(t, err)
	region := store.Find("region")

	seeds := []prng.Seed{{Table: 0, Value: 1, Boundary: 10}}
	bank := prng.NewBank(seeds, prng.Graph{})

	for i := 0; i < 50; i++ {
		idx := region.PickIndex(bank, 0)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(region.List))
	}
}
