package text

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
)

func miniDist(name string, words ...string) *dist.TpchDistribution {
	list := make([]dist.TpchEntry, len(words))
	for i, w := range words {
		list[i] = dist.TpchEntry{Text: w, Weight: int64(i + 1)}
	}
	return &dist.TpchDistribution{Name: name, Max: int64(len(words)), List: list}
}

func miniGrammar() Grammar {
	return Grammar{
		Grammar:      miniDist("grammar", "NVT"),
		VerbPhrase:   miniDist("vp", "V"),
		NounPhrase:   miniDist("np", "N"),
		Prepositions: miniDist("prep", "above"),
		Terminators:  miniDist("term", "."),
		Articles:     miniDist("articles", "the"),
		Adjectives:   miniDist("adjectives", "final"),
		Adverbs:      miniDist("adverbs", "furiously"),
		Nouns:        miniDist("nouns", "foxes"),
		Verbs:        miniDist("verbs", "sleep"),
		Auxiliaries:  miniDist("aux", "can"),
	}
}

func TestTextSentenceProducesNonEmptyOutput(t *testing.T) {
	g := miniGrammar()
	bank := prng.NewBank([]prng.Seed{{Table: 0, Value: 555, Boundary: 10000}}, prng.Graph{})
	s := textSentence(g, bank, 0)
	require.NotEmpty(t, s)
	require.True(t, strings.HasSuffix(s, "."))
}

func TestPoolBuildsOnceAndIsDeterministic(t *testing.T) {
	poolOnce = sync.Once{}
	poolValue = ""

	g := miniGrammar()
	seeds := []prng.Seed{{Table: 0, Value: 777, Boundary: 10000}}

	savedSize := PoolSize
	PoolSize = 2048
	defer func() { PoolSize = savedSize }()

	first := Pool(g, seeds, prng.Graph{})
	second := Pool(g, seeds, prng.Graph{})
	require.Equal(t, first, second)
	require.LessOrEqual(t, int64(len(first)), PoolSize)
}

func TestGenerateTextSliceWithinBounds(t *testing.T) {
	pool := strings.Repeat("the quick fox jumps over lazy dogs repeatedly ", 50)
	bank := prng.NewBank([]prng.Seed{{Table: 0, Value: 99, Boundary: 10000}}, prng.Graph{})
	s := GenerateText(pool, 20, bank, 0)
	require.LessOrEqual(t, len(s), int(20*vstrHigh))
}

func TestGenerateTextEmptyWhenPoolTooSmall(t *testing.T) {
	bank := prng.NewBank([]prng.Seed{{Table: 0, Value: 1, Boundary: 10}}, prng.Graph{})
	s := GenerateText("short", 1000, bank, 0)
	require.Equal(t, "", s)
}
