package text

import (
	"strings"
	"sync"

	"github.com/c2h5oh/datasize"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
)

// PoolSize is the fixed size of the lazily-built V-string text pool, taken
// verbatim from dbgen's published constant.
var PoolSize = int64(300 * datasize.MB)

// poolStream is the single dedicated stream the text pool's one-time
// build consumes; it is independent of every table generator's own bank,
// since the pool is process-global and built at most once.
const poolStream = 5

const (
	maxGrammarLen  = 12
	maxSentenceLen = 256
)

// Grammar bundles the distributions TextSentence's grammar expansion
// draws from. A suite wires these from its loaded distribution store
// before building or using the text pool.
type Grammar struct {
	Grammar      *dist.TpchDistribution
	VerbPhrase   *dist.TpchDistribution
	NounPhrase   *dist.TpchDistribution
	Prepositions *dist.TpchDistribution
	Terminators  *dist.TpchDistribution
	Articles     *dist.TpchDistribution
	Adjectives   *dist.TpchDistribution
	Adverbs      *dist.TpchDistribution
	Nouns        *dist.TpchDistribution
	Verbs        *dist.TpchDistribution
	Auxiliaries  *dist.TpchDistribution
}

// textVerbPhrase expands one "verb phrase" grammar rule (tokens like "VD",
// "X", "DV") into its constituent words, space-separated.
func textVerbPhrase(g Grammar, bank *prng.Bank, streamIdx int) string {
	syntax, _ := PickString(g.VerbPhrase, bank, streamIdx)
	return expandPhrase(syntax, bank, streamIdx, func(tag byte) *dist.TpchDistribution {
		switch tag {
		case 'D':
			return g.Adverbs
		case 'V':
			return g.Verbs
		case 'X':
			return g.Auxiliaries
		default:
			return nil
		}
	})
}

func textNounPhrase(g Grammar, bank *prng.Bank, streamIdx int) string {
	syntax, _ := PickString(g.NounPhrase, bank, streamIdx)
	return expandPhrase(syntax, bank, streamIdx, func(tag byte) *dist.TpchDistribution {
		switch tag {
		case 'A':
			return g.Articles
		case 'J':
			return g.Adjectives
		case 'D':
			return g.Adverbs
		case 'N':
			return g.Nouns
		default:
			return nil
		}
	})
}

// expandPhrase walks syntax's whitespace-separated tokens, each a tag
// character optionally followed by a punctuation suffix, picks one word
// per token from the distribution the selector resolves, and joins
// everything with trailing spaces exactly as dbgen's token loop does.
func expandPhrase(syntax string, bank *prng.Bank, streamIdx int, selector func(byte) *dist.TpchDistribution) string {
	if syntax == "" {
		return ""
	}
	var out strings.Builder
	for _, token := range strings.Fields(syntax) {
		src := selector(token[0])
		if src == nil {
			continue
		}
		word, idx := PickString(src, bank, streamIdx)
		if idx < 0 {
			continue
		}
		out.WriteString(word)
		if len(token) > 1 {
			out.WriteByte(token[1])
		}
		out.WriteByte(' ')
	}
	return out.String()
}

// textSentence expands one full grammar-level sentence: a sequence of verb
// phrases (V), noun phrases (N), prepositional phrases (P, "word the
// <noun phrase>"), and a single terminating punctuation mark (T).
func textSentence(g Grammar, bank *prng.Bank, streamIdx int) string {
	syntax, idx := PickString(g.Grammar, bank, streamIdx)
	if idx < 0 {
		return ""
	}

	var out strings.Builder
	for i := 0; i < len(syntax); i++ {
		c := syntax[i]
		if c == ' ' {
			continue
		}
		switch c {
		case 'V':
			out.WriteString(textVerbPhrase(g, bank, streamIdx))
		case 'N':
			out.WriteString(textNounPhrase(g, bank, streamIdx))
		case 'P':
			word, idx := PickString(g.Prepositions, bank, streamIdx)
			if idx >= 0 {
				out.WriteString(word)
				out.WriteString(" the ")
				out.WriteString(textNounPhrase(g, bank, streamIdx))
			}
		case 'T':
			word, idx := PickString(g.Terminators, bank, streamIdx)
			if idx >= 0 {
				trimmed := strings.TrimRight(out.String(), " ")
				out.Reset()
				out.WriteString(trimmed)
				out.WriteString(word)
			}
		}
		if i+1 < len(syntax) && syntax[i+1] != ' ' {
			out.WriteByte(syntax[i+1])
			i++
		}
	}
	return strings.TrimRight(out.String(), " ")
}

var (
	poolOnce  sync.Once
	poolMu    sync.Mutex
	poolValue string
)

// buildPool deterministically fills PoolSize bytes of grammar-generated
// sentences, using a private PRNG bank seeded identically to dbgen's own
// text-pool builder so the pool's contents are reproducible across runs.
func buildPool(g Grammar, seeds []prng.Seed, graph prng.Graph) string {
	bank := prng.NewBank(seeds, graph)
	var b strings.Builder
	b.Grow(int(PoolSize))
	for int64(b.Len()) < PoolSize {
		sentence := textSentence(g, bank, poolStream)
		if sentence == "" {
			break
		}
		remaining := PoolSize - int64(b.Len())
		if remaining >= int64(len(sentence))+1 {
			b.WriteString(sentence)
			b.WriteByte(' ')
		} else {
			b.WriteString(sentence[:remaining])
		}
	}
	return b.String()
}

// Pool is the process-wide, mutex-guarded V-string source text. It is
// built at most once, on first use, from the grammar and seed table the
// caller supplies; subsequent calls (even with different arguments) reuse
// the first build, matching dbgen's single static pool.
func Pool(g Grammar, seeds []prng.Seed, graph prng.Graph) string {
	poolMu.Lock()
	defer poolMu.Unlock()
	poolOnce.Do(func() {
		poolValue = buildPool(g, seeds, graph)
	})
	return poolValue
}

// GenerateText draws a V-string slice out of the shared text pool: an
// offset uniform over the valid range, then a length uniform over
// [0.4*avgLen, 1.6*avgLen].
func GenerateText(pool string, avgLen int, bank *prng.Bank, streamIdx int) string {
	minLen := int64(float64(avgLen) * vstrLow)
	maxLen := int64(float64(avgLen) * vstrHigh)
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	poolLen := int64(len(pool))
	if poolLen <= maxLen {
		return ""
	}
	offset := bank.RandomInt(0, poolLen-maxLen, streamIdx)
	length := bank.RandomInt(minLen, maxLen, streamIdx)
	return pool[offset : offset+length]
}
