// Package rowgen is the row-generator registry tying the tpch, tpcds, and
// ssb packages together behind one lookup keyed by (suite, table). It owns
// no generation logic itself - every table's draws live in its own suite
// package - only the bookkeeping that turns a name into a running row
// source and the column schema it produces.
package rowgen

import (
	"github.com/pkg/errors"

	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/rowgen/ssb"
	"github.com/starschema/benchgen/internal/rowgen/tpcds"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
	"github.com/starschema/benchgen/internal/scale"
	"github.com/starschema/benchgen/internal/text"
)

// Suite names one of the three benchmark schemas this module generates.
type Suite string

const (
	SuiteTPCH  Suite = "tpch"
	SuiteTPCDS Suite = "tpcds"
	SuiteSSB   Suite = "ssb"
)

// RowSource is the uniform cursor the batch emitter drives: a total row
// count, a skip-ahead over skipCount rows, and an Encode call that
// produces the next row's columns into b. rowNumber is passed through to
// Encode for suites whose generators are row-number addressable; stateful
// cursor generators (PartSupp, LineItem, the sales/returns tables, SSB's
// Lineorder) ignore it and track their own position.
type RowSource interface {
	TotalRows() int64
	SkipRows(skipCount int64)
	Encode(rowNumber int64, b column.Builder) error
}

// Stores bundles the loaded distribution stores and the TPC-H v-str text
// pool every suite's generators may need; a caller builds this once per
// process (or per test) and passes it into every Open call.
type Stores struct {
	Tpch  *dist.TpchStore
	Tpcds *dist.TpcdsStore
	Pool  string
}

// Scale carries the cross-table row-count parameters TPC-DS's fact tables
// need from their sibling dimensions (see tpcds.Scale).
type Scale = tpcds.Scale

// DefaultScale derives a Scale from the scale factor alone, using the same
// item/customer/warehouse bases the rest of the TPC-DS suite scales off.
func DefaultScale(sf float64) Scale {
	return Scale{
		ItemCount:      scale.Linear(18_000, sf) * scale.PartMultiplier(sf),
		CustomerCount:  scale.Linear(100_000, sf),
		WarehouseCount: scale.Linear(5, sf),
	}
}

// Open resolves one table's row source and schema out of the given suite,
// scale factor, and loaded stores.
func Open(suite Suite, table string, sf float64, stores Stores, sc Scale) (RowSource, column.Schema, error) {
	var (
		raw    any
		schema column.Schema
		ok     bool
	)

	switch suite {
	case SuiteTPCH:
		if stores.Tpch == nil {
			return nil, column.Schema{}, errors.Errorf("suite %s requires a loaded tpch distribution store", suite)
		}
		dists := tpch.LoadDistributions(stores.Tpch)
		raw, schema, ok = tpch.NewRowSource(table, sf, dists, stores.Pool)
	case SuiteTPCDS:
		if stores.Tpcds == nil {
			return nil, column.Schema{}, errors.Errorf("suite %s requires a loaded tpcds distribution store", suite)
		}
		dists := tpcds.LoadDistributions(stores.Tpcds)
		raw, schema, ok = tpcds.NewRowSource(table, sf, stores.Pool, dists, sc)
	case SuiteSSB:
		if stores.Tpch == nil {
			return nil, column.Schema{}, errors.Errorf("suite %s requires a loaded tpch distribution store (ssb reuses it)", suite)
		}
		dists := ssb.Distributions{
			Colors:        stores.Tpch.Find("colors"),
			Types:         stores.Tpch.Find("p_types"),
			Containers:    stores.Tpch.Find("p_cntr"),
			Priorities:    stores.Tpch.Find("priority"),
			ShipModes:     stores.Tpch.Find("smode"),
			MarketSegment: stores.Tpch.Find("segments"),
		}
		raw, schema, ok = ssb.NewRowSource(table, sf, dists)
	default:
		return nil, column.Schema{}, errors.Errorf("unknown suite %q", suite)
	}

	if !ok {
		return nil, column.Schema{}, errors.Errorf("unknown table %q for suite %s", table, suite)
	}
	source, ok := raw.(RowSource)
	if !ok {
		return nil, column.Schema{}, errors.Errorf("table %q for suite %s did not produce a usable row source", table, suite)
	}
	return source, schema, nil
}

// BuildPool materializes the TPC-H v-str text pool from the grammar
// distributions in store, the process-wide resource every TPC-H/SSB
// generator's free-text columns draw from. It is cheap to call repeatedly:
// text.Pool only builds the pool on its first invocation.
func BuildPool(store *dist.TpchStore) string {
	grammar := text.Grammar{
		Grammar:      store.Find("grammar"),
		VerbPhrase:   store.Find("verb_phrase"),
		NounPhrase:   store.Find("noun_phrase"),
		Prepositions: store.Find("prepositions"),
		Terminators:  store.Find("terminators"),
		Articles:     store.Find("articles"),
		Adjectives:   store.Find("adjectives"),
		Adverbs:      store.Find("adverbs"),
		Nouns:        store.Find("nouns"),
		Verbs:        store.Find("verbs"),
		Auxiliaries:  store.Find("auxiliaries"),
	}
	return text.Pool(grammar, tpch.Seeds, tpch.Graph)
}
