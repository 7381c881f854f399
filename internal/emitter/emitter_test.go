package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/common/column"
)

// fakeSource is a minimal RowSource over a fixed total row count, one int64
// column holding the row number itself, so tests can assert exactly which
// rows a chunk covered.
type fakeSource struct {
	total  int64
	cursor int64
}

func (f *fakeSource) TotalRows() int64 { return f.total }

func (f *fakeSource) SkipRows(skipCount int64) { f.cursor += skipCount }

func (f *fakeSource) Encode(_ int64, b column.Builder) error {
	f.cursor++
	b.AppendValue(0, column.Int64Value(f.cursor))
	return nil
}

var fakeSchema = column.Schema{Columns: []column.ColumnSchema{{Name: "n", Kind: column.KindInt64}}}

func newFakeEmitter(t *testing.T, total int64, opts Options) *Emitter {
	t.Helper()
	e, err := New(&fakeSource{total: total}, fakeSchema, column.NewMemoryBuilder(1), opts)
	require.NoError(t, err)
	return e
}

func TestNextChunksRowsAndSignalsEOS(t *testing.T) {
	e := newFakeEmitter(t, 10, Options{ChunkSize: 4, RowCount: -1})

	batch, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, batch.RowCount())

	batch, ok, err = e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, batch.RowCount())

	batch, ok, err = e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, batch.RowCount(), "final chunk is the 2 remaining rows, not a full chunk")

	batch, ok, err = e.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, batch)
}

func TestNextProducesContiguousRowNumbers(t *testing.T) {
	e := newFakeEmitter(t, 6, Options{ChunkSize: 3, RowCount: -1})

	batch, _, err := e.Next()
	require.NoError(t, err)
	mb := batch.(*column.MemoryBatch)
	values := mb.Column(0)
	require.Len(t, values, 3)
	for i, v := range values {
		require.Equal(t, int64(i+1), v.Int64)
	}

	batch, _, err = e.Next()
	require.NoError(t, err)
	mb = batch.(*column.MemoryBatch)
	values = mb.Column(0)
	for i, v := range values {
		require.Equal(t, int64(i+4), v.Int64)
	}
}

func TestStartRowSkipsAheadBeforeFirstChunk(t *testing.T) {
	e := newFakeEmitter(t, 10, Options{ChunkSize: 3, StartRow: 5, RowCount: -1})
	require.Equal(t, int64(5), e.RemainingRows())

	batch, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	mb := batch.(*column.MemoryBatch)
	require.Equal(t, int64(6), mb.Column(0)[0].Int64, "first row after skipping 5 is row 6")
}

func TestRowCountClampsBelowTotalRemaining(t *testing.T) {
	e := newFakeEmitter(t, 100, Options{ChunkSize: 10, StartRow: 90, RowCount: 50})
	require.Equal(t, int64(10), e.RemainingRows(), "row_count of 50 clamps to the 10 rows actually left")
}

func TestChunkSizeInvariantTotalRowsProducedMatchesRemaining(t *testing.T) {
	for _, chunkSize := range []int64{1, 3, 7, 100} {
		e := newFakeEmitter(t, 23, Options{ChunkSize: chunkSize, RowCount: -1})
		var total int
		for {
			batch, ok, err := e.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			total += batch.RowCount()
		}
		require.Equal(t, 23, total, "chunk size %d", chunkSize)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := New(&fakeSource{total: 10}, fakeSchema, column.NewMemoryBuilder(1), Options{ChunkSize: 0})
	require.Error(t, err)

	_, err = New(&fakeSource{total: 10}, fakeSchema, column.NewMemoryBuilder(1), Options{ChunkSize: 1, StartRow: -1})
	require.Error(t, err)
}

func TestStartRowPastTotalYieldsImmediateEOS(t *testing.T) {
	e := newFakeEmitter(t, 5, Options{ChunkSize: 2, StartRow: 5, RowCount: -1})
	require.Equal(t, int64(0), e.RemainingRows())

	batch, ok, err := e.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, batch)
}
