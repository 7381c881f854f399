package column

// MemoryBuilder is a simple in-process Builder used by this module's own
// tests and by callers that don't need a columnar array library. Each
// column accumulates a plain []Value; Finish returns that slice.
type MemoryBuilder struct {
	columns [][]Value
}

func NewMemoryBuilder(columnCount int) *MemoryBuilder {
	return &MemoryBuilder{columns: make([][]Value, columnCount)}
}

func (m *MemoryBuilder) AppendNull(column int) {
	m.columns[column] = append(m.columns[column], Value{Null: true})
}

func (m *MemoryBuilder) AppendValue(column int, v Value) {
	m.columns[column] = append(m.columns[column], v)
}

func (m *MemoryBuilder) Finish(column int) any {
	out := m.columns[column]
	m.columns[column] = nil
	return out
}

func (m *MemoryBuilder) MakeRecordBatch(rowCount int, arrays []any) (Batch, error) {
	return &MemoryBatch{rows: rowCount, arrays: arrays}, nil
}

// MemoryBatch is the Batch produced by MemoryBuilder: a row count plus the
// per-column []Value arrays in schema order.
type MemoryBatch struct {
	rows   int
	arrays []any
}

func (m *MemoryBatch) RowCount() int { return m.rows }

func (m *MemoryBatch) Column(i int) []Value { return m.arrays[i].([]Value) }
