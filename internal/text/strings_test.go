package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
)

func testBank() *prng.Bank {
	return prng.NewBank([]prng.Seed{{Table: 0, Value: 12345, Boundary: 10000}}, prng.Graph{})
}

func TestRandomStringLengthWithinBounds(t *testing.T) {
	bank := testBank()
	s := RandomString(bank, 5, 10, 0)
	require.GreaterOrEqual(t, len(s), 5)
	require.LessOrEqual(t, len(s), 10)
	for _, c := range s {
		require.Contains(t, alphaNum, string(c))
	}
}

func TestRandomStringDeterministic(t *testing.T) {
	a := RandomString(testBank(), 10, 20, 0)
	b := RandomString(testBank(), 10, 20, 0)
	require.Equal(t, a, b)
}

func TestVariableStringScalesWithAverage(t *testing.T) {
	bank := testBank()
	s := VariableString(bank, 50, 0)
	require.GreaterOrEqual(t, len(s), int(50*vstrLow))
	require.LessOrEqual(t, len(s), int(50*vstrHigh))
}

func sampleColorDist() *dist.TpchDistribution {
	return &dist.TpchDistribution{
		Name: "colors",
		Max:  3,
		List: []dist.TpchEntry{
			{Text: "red", Weight: 1},
			{Text: "green", Weight: 2},
			{Text: "blue", Weight: 3},
		},
	}
}

func TestPickStringReturnsValidIndex(t *testing.T) {
	d := sampleColorDist()
	bank := testBank()
	for i := 0; i < 20; i++ {
		word, idx := PickString(d, bank, 0)
		require.GreaterOrEqual(t, idx, 0)
		require.Equal(t, d.List[idx].Text, word)
	}
}

func TestPickStringEmptyDistribution(t *testing.T) {
	word, idx := PickString(nil, testBank(), 0)
	require.Equal(t, -1, idx)
	require.Equal(t, "", word)
}

func TestAggStringReturnsDistinctWordsUpToCount(t *testing.T) {
	d := sampleColorDist()
	bank := testBank()
	out := AggString(d, 2, bank, 0)
	words := strings.Split(out, " ")
	require.Len(t, words, 2)
	require.NotEqual(t, words[0], words[1])
}

func TestAggStringClampsCountToDistributionSize(t *testing.T) {
	d := sampleColorDist()
	out := AggString(d, 100, testBank(), 0)
	require.Len(t, strings.Split(out, " "), 3)
}

func TestGeneratePhoneShape(t *testing.T) {
	bank := testBank()
	phone := GeneratePhone(bank, 7, 0)
	parts := strings.Split(phone, "-")
	require.Len(t, parts, 4)
	require.Len(t, parts[0], 2)
	require.Len(t, parts[1], 3)
	require.Len(t, parts[2], 3)
	require.Len(t, parts[3], 4)
}

func TestRetailPriceDeterministic(t *testing.T) {
	require.Equal(t, RetailPrice(1), RetailPrice(1))
	require.NotEqual(t, RetailPrice(1), RetailPrice(2))
}

func TestFormatTagNumberPadsWithZeros(t *testing.T) {
	require.Equal(t, "Supplier#000000042", FormatTagNumber("Supplier#", 9, 42))
}

func TestFormatTagNumberNoPadNeeded(t *testing.T) {
	require.Equal(t, "Brand#123456", FormatTagNumber("Brand#", 2, 123456))
}
