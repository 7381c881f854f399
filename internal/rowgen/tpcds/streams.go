package tpcds

import "github.com/starschema/benchgen/internal/prng"

// Table identifies which TPC-DS table owns a private bank's streams, for
// RowStop's boundary-completion sweep. Unlike TPC-H's single shared bank
// with parent/child table aliasing, every TPC-DS row generator here owns
// its own small, independent set of streams (mirroring the source's
// per-generator RowStreams), so one Table value per generator is enough -
// there is no cross-table child sweep to resolve.
const (
	TableStore prng.Table = iota
	TableStoreSales
	TableStoreReturns
	TableInventory
	TableCatalogPage
)

// seedRoot and seedStride seed each generator's private streams with
// distinct, well-separated Park-Miller states. This generator's available
// reference sources declare a per-column seed table (utils/column_streams.*)
// but never define it, so streams here are seeded by skipping a single root
// seed forward by a large fixed stride per stream index - the same
// skip-ahead technique dbgen itself used to originally publish its TPC-H
// seed table - which keeps every stream's sequence independent and
// reproducible without inventing arbitrary per-column literals.
const (
	seedRoot   = 1
	seedStride = 10_000_003
)

// newTableBank builds a private bank of numStreams streams for one
// generator instance, each with the given per-row draw boundary.
func newTableBank(table prng.Table, numStreams int, boundary int64) *prng.Bank {
	seeds := make([]prng.Seed, numStreams)
	for i := range seeds {
		seeds[i] = prng.Seed{Table: table, Value: seedRoot, Boundary: boundary}
	}
	bank := prng.NewBank(seeds, prng.Graph{})
	for i := 0; i < numStreams; i++ {
		bank.AdvanceStream(i, int64(i)*seedStride+1)
	}
	return bank
}
