// Package benchgen is the public entry point for generating deterministic
// synthetic TPC-H, TPC-DS, and SSB rows: Open resolves a (suite, table)
// pair against a scale factor and hands back a chunked Iterator a caller
// drives with Next until end-of-stream.
package benchgen

import (
	"github.com/spf13/afero"

	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/emitter"
	"github.com/starschema/benchgen/internal/rowgen"
)

// Suite re-exports the three supported benchmark schemas.
type Suite = rowgen.Suite

const (
	TPCH  = rowgen.SuiteTPCH
	TPCDS = rowgen.SuiteTPCDS
	SSB   = rowgen.SuiteSSB
)

// defaultDistCacheSize bounds how many distinct parsed distribution
// sources a Generator's Loader keeps warm; one store per suite is the
// common case, so this only matters for callers juggling many paths.
const defaultDistCacheSize = 8

const (
	defaultTpchDistPath  = "testdata/tpch/dists.dst"
	defaultTpcdsDistPath = "testdata/tpcds/dists.dst"
)

// Options configures one Open call, mirroring the open(suite, table,
// options) contract: a scale factor, a chunk size, an optional row
// window, and an optional column projection.
type Options struct {
	ScaleFactor float64
	ChunkSize   int64
	StartRow    int64
	RowCount    int64 // -1 (default) means "all rows from StartRow on"

	// ColumnNames, when non-empty, projects the emitted schema/batches to
	// just these columns, in the order given. An unknown name is a
	// KindInvalid error.
	ColumnNames []string

	// TpchDistPath/TpcdsDistPath override where a suite's distribution
	// source is loaded from; SSB always borrows TpchDistPath, since it
	// has no .dst fixtures of its own. Left blank, the module's built-in
	// embedded fixtures are used.
	TpchDistPath  string
	TpcdsDistPath string
}

// Generator loads and caches distribution sources and serves Open calls
// against them. Build one per process (or per test) and reuse it across
// suites and tables; it is safe for concurrent use.
type Generator struct {
	loader *dist.Loader
}

// NewGenerator builds a Generator backed by external for caller-supplied
// distribution sources, falling back to the module's embedded fixtures
// whenever an Options call leaves a path blank (or entirely, if external
// is nil). External, when given, shadows the embedded base on any path
// that collides.
func NewGenerator(external afero.Fs) (*Generator, error) {
	base := afero.FromIOFS{FS: dist.Embedded}

	var fsys afero.Fs = base
	if external != nil {
		fsys = afero.NewCopyOnWriteFs(base, external)
	}

	loader, err := dist.NewLoader(fsys, defaultDistCacheSize)
	if err != nil {
		return nil, wrapIO(err, "building distribution loader")
	}
	return &Generator{loader: loader}, nil
}

// Iterator is the chunked cursor Open returns: Next draws the next batch,
// Schema/TotalRows/RemainingRows describe the stream.
type Iterator struct {
	emit   *emitter.Emitter
	schema column.Schema
}

// Schema returns the ordered column list this iterator's batches carry.
func (it *Iterator) Schema() column.Schema { return it.schema }

// TotalRows is the table's full row count at this scale factor,
// independent of any StartRow/RowCount window.
func (it *Iterator) TotalRows() int64 { return it.emit.TotalRows() }

// RemainingRows is how many rows are left to draw before end-of-stream.
func (it *Iterator) RemainingRows() int64 { return it.emit.RemainingRows() }

// Next draws up to one chunk's worth of rows into builder and returns the
// assembled batch. ok is false once the stream is exhausted; a non-nil
// error is always a *Error and is never accompanied by a usable batch.
func (it *Iterator) Next() (column.Batch, bool, error) {
	batch, ok, err := it.emit.Next()
	if err != nil {
		return nil, false, &Error{Kind: KindIO, Message: "drawing next batch", Cause: err}
	}
	return batch, ok, nil
}

// Open resolves table within suite at the given options, loading (and
// caching) whatever distribution sources that table's generator needs,
// and returns an Iterator with SkipRows(options.StartRow) already applied.
func (g *Generator) Open(suite Suite, table string, opts Options, builder column.Builder) (*Iterator, error) {
	if opts.ScaleFactor <= 0 {
		return nil, invalidf("scale_factor must be > 0, got %v", opts.ScaleFactor)
	}
	if opts.ChunkSize <= 0 {
		return nil, invalidf("chunk_size must be > 0, got %d", opts.ChunkSize)
	}
	if opts.RowCount == 0 {
		opts.RowCount = -1
	}

	stores, err := g.stores(suite, opts)
	if err != nil {
		return nil, err
	}

	source, schema, err := rowgen.Open(suite, table, opts.ScaleFactor, stores, rowgen.DefaultScale(opts.ScaleFactor))
	if err != nil {
		return nil, missingf("%v", err)
	}

	if len(opts.ColumnNames) > 0 {
		projected, pb, err := projectSchema(schema, opts.ColumnNames, builder)
		if err != nil {
			return nil, err
		}
		schema = projected
		builder = pb
	}

	em, err := emitter.New(source, schema, builder, emitter.Options{
		ChunkSize: opts.ChunkSize,
		StartRow:  opts.StartRow,
		RowCount:  opts.RowCount,
	})
	if err != nil {
		return nil, invalidf("%v", err)
	}

	return &Iterator{emit: em, schema: schema}, nil
}

// stores resolves the distribution stores + v-string pool a suite's
// generators need, loading from opts' paths (or the embedded defaults)
// through the Generator's cached Loader.
func (g *Generator) stores(suite Suite, opts Options) (rowgen.Stores, error) {
	tpchPath := opts.TpchDistPath
	if tpchPath == "" {
		tpchPath = defaultTpchDistPath
	}
	tpcdsPath := opts.TpcdsDistPath
	if tpcdsPath == "" {
		tpcdsPath = defaultTpcdsDistPath
	}

	var stores rowgen.Stores
	switch suite {
	case TPCH, SSB:
		tpchStore, err := g.loader.TpchFromFile(tpchPath)
		if err != nil {
			return rowgen.Stores{}, wrapParse(err, "loading tpch distributions from %s", tpchPath)
		}
		stores.Tpch = tpchStore
		stores.Pool = rowgen.BuildPool(tpchStore)
	case TPCDS:
		tpcdsStore, err := g.loader.TpcdsTreeFromFile(tpcdsPath)
		if err != nil {
			return rowgen.Stores{}, wrapParse(err, "loading tpcds distributions from %s", tpcdsPath)
		}
		stores.Tpcds = tpcdsStore
	default:
		return rowgen.Stores{}, invalidf("unknown suite %q", suite)
	}
	return stores, nil
}

// projectSchema reorders/filters schema down to names, preserving the
// caller's requested order, and wraps inner in a projectingBuilder that
// remaps the row source's full-schema column indices onto the narrower
// projected indices inner actually expects. An unresolvable name is a
// KindInvalid error.
func projectSchema(schema column.Schema, names []string, inner column.Builder) (column.Schema, column.Builder, error) {
	out := column.Schema{Columns: make([]column.ColumnSchema, 0, len(names))}
	indexMap := make(map[int]int, len(names))
	for projected, name := range names {
		idx := schema.IndexOf(name)
		if idx < 0 {
			return column.Schema{}, nil, invalidf("unknown column %q", name)
		}
		out.Columns = append(out.Columns, schema.Columns[idx])
		indexMap[idx] = projected
	}
	return out, &projectingBuilder{inner: inner, indexMap: indexMap}, nil
}

// projectingBuilder adapts a RowSource's full-schema column indices onto
// the subset an inner Builder was sized for, dropping any column not in
// indexMap.
type projectingBuilder struct {
	inner    column.Builder
	indexMap map[int]int
}

func (p *projectingBuilder) AppendNull(col int) {
	if projected, ok := p.indexMap[col]; ok {
		p.inner.AppendNull(projected)
	}
}

func (p *projectingBuilder) AppendValue(col int, v column.Value) {
	if projected, ok := p.indexMap[col]; ok {
		p.inner.AppendValue(projected, v)
	}
}

func (p *projectingBuilder) Finish(col int) any { return p.inner.Finish(col) }

func (p *projectingBuilder) MakeRecordBatch(rowCount int, arrays []any) (column.Batch, error) {
	return p.inner.MakeRecordBatch(rowCount, arrays)
}
