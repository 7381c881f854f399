package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testGraph() Graph {
	return Graph{
		Alias: map[Table]Table{6: 4, 7: 0},
		Child: map[Table]Table{0: 1, 4: 5},
	}
}

func testSeeds() []Seed {
	return []Seed{
		{Table: 0, Value: 1, Boundary: 1},
		{Table: 1, Value: 46831694, Boundary: 4},
		{Table: 4, Value: 1841581359, Boundary: 1},
		{Table: 5, Value: 1193163244, Boundary: 7},
	}
}

func TestSkipAheadIdentity(t *testing.T) {
	b := NewBank(testSeeds(), testGraph())
	before := b.SeedValue(2)

	b2 := NewBank(testSeeds(), testGraph())
	for i := 0; i < 5; i++ {
		b2.RandomInt(1, 100, 2)
	}
	want := b2.SeedValue(2)

	b.AdvanceStream(2, 5)
	require.Equal(t, want, b.SeedValue(2))
	require.NotEqual(t, before, b.SeedValue(2))
}

func TestRowStopAdvancesToBoundary(t *testing.T) {
	b := NewBank(testSeeds(), testGraph())
	b.RowStart()
	b.RandomInt(1, 10, 1) // one draw against a 4-draw boundary stream
	b.RowStop(0)          // table 0's child is table 1

	require.Equal(t, int64(4), b.Usage(1))
}

func TestRandomIntSwapsLowHigh(t *testing.T) {
	b := NewBank(testSeeds(), testGraph())
	v := b.RandomInt(10, 1, 0)
	require.GreaterOrEqual(t, v, int64(1))
	require.LessOrEqual(t, v, int64(10))
}

func TestPeekRandomIntDoesNotMutate(t *testing.T) {
	b := NewBank(testSeeds(), testGraph())
	before := b.SeedValue(0)
	peeked := b.PeekRandomInt(1, 100, 0)
	require.Equal(t, before, b.SeedValue(0))
	require.Equal(t, int64(0), b.Usage(0))

	drawn := b.RandomInt(1, 100, 0)
	require.Equal(t, peeked, drawn)
}

func TestNthElementMatchesSequentialDraws(t *testing.T) {
	seed := int64(987654321)
	sequential := seed
	for i := 0; i < 17; i++ {
		sequential = nextRand(sequential)
	}
	require.Equal(t, sequential, nthElement(17, seed))
}

func TestMaxLongOverflowQuirk(t *testing.T) {
	b := NewBank(testSeeds(), testGraph())
	v := b.RandomInt(0, MaxLong, 3)
	require.Less(t, v, int64(0))
}
