// Package emitter implements the chunked batch emitter (C7): the layer
// between a row generator's row-at-a-time Encode calls and an externally
// owned columnar array builder. It owns chunk sizing, start/remaining-row
// bookkeeping, and end-of-stream signaling; it knows nothing about any
// particular table's columns.
package emitter

import (
	"github.com/pkg/errors"

	"github.com/starschema/benchgen/internal/common/column"
)

// RowSource is the minimal surface the emitter drives: the same shape
// internal/rowgen.RowSource implements, named independently here so this
// package doesn't need to import the registry just to type its dependency.
type RowSource interface {
	TotalRows() int64
	SkipRows(skipCount int64)
	Encode(rowNumber int64, b column.Builder) error
}

// Options configures one Emitter, matching the emitter contract's
// open(suite, table, options) parameters.
type Options struct {
	ChunkSize int64
	StartRow  int64
	RowCount  int64 // -1 means "all remaining rows"
}

// Emitter pulls chunk-sized batches of rows out of a RowSource and feeds
// them through a caller-owned column.Builder, one MakeRecordBatch call per
// Next.
type Emitter struct {
	source RowSource
	schema column.Schema
	builder column.Builder

	totalRows     int64
	remainingRows int64
	chunkSize     int64
	rowCursor     int64
}

// New builds an Emitter over source, clamping remaining_rows to
// min(row_count, total_rows-start_row) and replaying start_row rows of
// skip before the first Next call, exactly as the emitter contract
// specifies.
func New(source RowSource, schema column.Schema, builder column.Builder, opts Options) (*Emitter, error) {
	if opts.ChunkSize <= 0 {
		return nil, errors.New("chunk_size must be > 0")
	}
	if opts.StartRow < 0 {
		return nil, errors.New("start_row must be >= 0")
	}

	total := source.TotalRows()
	remaining := total - opts.StartRow
	if remaining < 0 {
		remaining = 0
	}
	if opts.RowCount >= 0 && opts.RowCount < remaining {
		remaining = opts.RowCount
	}

	source.SkipRows(opts.StartRow)

	return &Emitter{
		source:        source,
		schema:        schema,
		builder:       builder,
		totalRows:     total,
		remainingRows: remaining,
		chunkSize:     opts.ChunkSize,
		rowCursor:     opts.StartRow,
	}, nil
}

func (e *Emitter) Schema() column.Schema { return e.schema }

func (e *Emitter) TotalRows() int64 { return e.totalRows }

func (e *Emitter) RemainingRows() int64 { return e.remainingRows }

// Next draws up to min(remaining_rows, chunk_size) rows, encoding each
// through the builder, then finishes one batch. It returns ok=false once
// every row has been produced; a nil error with ok=false is the
// end-of-stream signal the emitter contract calls for. A builder error is
// surfaced unchanged, mid-chunk.
func (e *Emitter) Next() (column.Batch, bool, error) {
	if e.remainingRows <= 0 {
		return nil, false, nil
	}

	want := e.chunkSize
	if want > e.remainingRows {
		want = e.remainingRows
	}

	for i := int64(0); i < want; i++ {
		e.rowCursor++
		if err := e.source.Encode(e.rowCursor, e.builder); err != nil {
			return nil, false, err
		}
	}
	e.remainingRows -= want

	arrays := make([]any, len(e.schema.Columns))
	for i := range e.schema.Columns {
		arrays[i] = e.builder.Finish(i)
	}
	batch, err := e.builder.MakeRecordBatch(int(want), arrays)
	if err != nil {
		return nil, false, err
	}
	return batch, true, nil
}
