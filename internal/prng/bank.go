// Package prng implements the Park-Miller multi-stream pseudo-random
// generator bank shared by every benchmark suite: a fixed-size array of
// independent streams, each with its own 31-bit state, a per-row usage
// counter, and a declared draws-per-row boundary.
//
// The arithmetic here is a bit-exact contract: next(v) = (16807*v) mod
// (2^31-1), computed with the classic Schrage decomposition so it never
// overflows a 63-bit int64. Do not "modernize" it to a different generator
// or a wider modulus - every downstream row depends on these exact values.
package prng

import "math"

const (
	multiplier = 16807
	modulus    = 2147483647 // 2^31 - 1
	quotient   = 127773
	remainder  = 2836

	modulusFloat = float64(modulus)

	// MaxLong mirrors dbgen's MAX_LONG: the largest value random_int ever
	// spans, and the trigger for the signed-overflow special case below.
	MaxLong = 0x7fffffff
)

// Table identifies the row-owning table a stream is bound to, for the
// purposes of row-stop boundary completion. Each suite package defines its
// own small set of Table values; NoTable (-1) marks a stream with no
// owning table.
type Table int

// NoTable marks a stream that is not swept by any table's row-stop.
const NoTable Table = -1

// Seed describes one stream's initial state, taken verbatim from the
// reference generator's hard-coded seed table.
type Seed struct {
	Table    Table
	Value    int64
	Boundary int64
}

type stream struct {
	table    Table
	value    int64
	usage    int64
	boundary int64
}

func (s *stream) advanceToBoundary() {
	remaining := s.boundary - s.usage
	if remaining > 0 {
		s.value = nthElement(remaining, s.value)
		s.usage = s.boundary
	}
}

// Graph describes how RowStop resolves the set of streams to sweep for a
// given table: an optional alias (OrderLine -> Orders, PartPsupp -> Part)
// and an optional child table whose streams are swept alongside the
// table's own (Part -> PartSupp, Orders -> LineItem).
type Graph struct {
	Alias map[Table]Table
	Child map[Table]Table
}

// Bank is one table generator's private array of PRNG streams.
type Bank struct {
	streams []stream
	seeds   []Seed
	graph   Graph
}

// NewBank builds a bank from the suite's seed table and table graph, reset
// to its initial state.
func NewBank(seeds []Seed, graph Graph) *Bank {
	b := &Bank{
		seeds: append([]Seed(nil), seeds...),
		graph: graph,
	}
	b.Reset()
	return b
}

// Reset restores every stream to its initial seed, usage, and boundary.
func (b *Bank) Reset() {
	b.streams = make([]stream, len(b.seeds))
	for i, seed := range b.seeds {
		b.streams[i] = stream{table: seed.Table, value: seed.Value, boundary: seed.Boundary}
	}
}

func (b *Bank) normalize(idx int) int {
	if idx < 0 || idx >= len(b.streams) {
		return 0
	}
	return idx
}

// RowStart clears the usage counter on every stream.
func (b *Bank) RowStart() {
	for i := range b.streams {
		b.streams[i].usage = 0
	}
}

// RowStop advances every stream owned by table (or its resolved child
// table) to its declared boundary, so the next RowStart begins from a
// position independent of how many draws this row actually used.
func (b *Bank) RowStop(table Table) {
	if alias, ok := b.graph.Alias[table]; ok {
		table = alias
	}
	child, hasChild := b.graph.Child[table]
	for i := range b.streams {
		s := &b.streams[i]
		if s.table == table || (hasChild && s.table == child) {
			s.advanceToBoundary()
		}
	}
}

// RandomInt draws int64 in [low, high], incrementing usage. Mirrors dbgen's
// signed-overflow quirk for the [0, MaxLong] range exactly.
func (b *Bank) RandomInt(low, high int64, streamIdx int) int64 {
	idx := b.normalize(streamIdx)
	s := &b.streams[idx]
	if low > high {
		low, high = high, low
	}
	rangeF := float64(high - low + 1)
	if low == 0 && high == MaxLong {
		rangeF = -float64(uint32(high) + 1)
	}
	s.value = nextRand(s.value)
	n := int64(float64(s.value) / modulusFloat * rangeF)
	s.usage++
	return low + n
}

// PeekRandomInt behaves like RandomInt but does not mutate stream state.
func (b *Bank) PeekRandomInt(low, high int64, streamIdx int) int64 {
	idx := b.normalize(streamIdx)
	s := b.streams[idx]
	if low > high {
		low, high = high, low
	}
	rangeF := float64(high - low + 1)
	if low == 0 && high == MaxLong {
		rangeF = -float64(uint32(high) + 1)
	}
	v := nextRand(s.value)
	return low + int64(float64(v)/modulusFloat*rangeF)
}

// RandomDouble draws a uniform double in [low, high].
func (b *Bank) RandomDouble(low, high float64, streamIdx int) float64 {
	idx := b.normalize(streamIdx)
	s := &b.streams[idx]
	if low == high {
		return low
	}
	if low > high {
		low, high = high, low
	}
	s.value = nextRand(s.value)
	v := (float64(s.value) / modulusFloat) * (high - low)
	s.usage++
	return low + v
}

// RandomExponential draws from an exponential distribution with the given
// mean, via inverse-CDF sampling of the stream's uniform output.
func (b *Bank) RandomExponential(mean float64, streamIdx int) float64 {
	if mean <= 0 {
		return 0
	}
	idx := b.normalize(streamIdx)
	s := &b.streams[idx]
	s.value = nextRand(s.value)
	u := float64(s.value) / modulusFloat
	s.usage++
	return -mean * math.Log(1.0-u)
}

// SeedValue returns the stream's current 31-bit state.
func (b *Bank) SeedValue(streamIdx int) int64 {
	return b.streams[b.normalize(streamIdx)].value
}

// SeedBoundary returns the stream's declared draws-per-row budget.
func (b *Bank) SeedBoundary(streamIdx int) int64 {
	return b.streams[b.normalize(streamIdx)].boundary
}

// Usage returns the stream's draw count since the last RowStart, exposed
// for the stream-boundary-invariant test property.
func (b *Bank) Usage(streamIdx int) int64 {
	return b.streams[b.normalize(streamIdx)].usage
}

// AdvanceStream mutates a stream's value by computing its count-th
// successor in O(log count) time, the shared primitive behind every
// per-table skip function.
func (b *Bank) AdvanceStream(streamIdx int, count int64) {
	if count <= 0 {
		return
	}
	idx := b.normalize(streamIdx)
	s := &b.streams[idx]
	s.value = nthElement(count, s.value)
}

func nextRand(seed int64) int64 {
	div := seed / quotient
	mod := seed - quotient*div
	next := multiplier*mod - div*remainder
	if next < 0 {
		next += modulus
	}
	return next
}

// nthElement computes the count-th successor of seed under the Park-Miller
// recurrence via binary exponentiation of the multiplier mod 2^31-1. This
// is the only arithmetic used by every skip-ahead function in the module.
func nthElement(count, seed int64) int64 {
	if count <= 0 {
		return seed
	}
	mult := int64(multiplier)
	value := seed
	for count > 0 {
		if count%2 != 0 {
			value = (mult * value) % modulus
		}
		count /= 2
		mult = (mult * mult) % modulus
	}
	return value
}
