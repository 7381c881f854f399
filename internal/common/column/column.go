// Package column is the concrete, minimal realization of the "external
// column builder" surface: a typed column value, a row's null-bitmap, and
// the Builder/Batch interfaces the batch emitter drives. A host application
// embedding this generator is free to swap in its own Arrow or Parquet
// builders implementing the same interfaces; this package exists so the
// row generators and emitter can be built and tested standalone.
package column

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
)

// Kind tags the runtime type carried by a Value.
type Kind int

const (
	KindInt32 Kind = iota
	KindInt64
	KindBool
	KindUTF8
	KindDate32
	KindDecimal
)

// Value is one column's contribution to one row. Null is orthogonal to Kind
// so a null Decimal still reports its intended precision/scale.
type Value struct {
	Kind    Kind
	Null    bool
	Int32   int32
	Int64   int64
	Bool    bool
	UTF8    string
	Date32  int32 // days since Unix epoch
	Decimal decimal.Decimal
}

func NullValue(kind Kind) Value { return Value{Kind: kind, Null: true} }

func Int32Value(v int32) Value { return Value{Kind: KindInt32, Int32: v} }
func Int64Value(v int64) Value { return Value{Kind: KindInt64, Int64: v} }
func BoolValue(v bool) Value   { return Value{Kind: KindBool, Bool: v} }
func UTF8Value(v string) Value { return Value{Kind: KindUTF8, UTF8: v} }
func Date32Value(v int32) Value {
	return Value{Kind: KindDate32, Date32: v}
}

// DecimalValue builds a fixed decimal(precision, scale) value from an
// integer amount already scaled by 10^scale (e.g. cents for scale=2).
func DecimalValue(scaledAmount int64, scale int32) Value {
	return Value{Kind: KindDecimal, Decimal: decimal.New(scaledAmount, -scale)}
}

// NullBitmap marks, per row, which declared columns are null. It is backed
// by a Roaring bitmap rather than a raw integer mask, which gives a real
// Contains/Add API instead of hand-rolled bit-shift arithmetic.
type NullBitmap struct {
	bits *roaring.Bitmap
}

func NewNullBitmap() *NullBitmap {
	return &NullBitmap{bits: roaring.New()}
}

// NullBitmapFromUint64 reconstructs a bitmap from the source generator's raw
// null-bitmap integer, treating bit i as column ordinal i.
func NullBitmapFromUint64(mask uint64) *NullBitmap {
	b := NewNullBitmap()
	for i := 0; i < 64; i++ {
		if mask&(1<<uint(i)) != 0 {
			b.bits.AddInt(i)
		}
	}
	return b
}

func (b *NullBitmap) SetNull(columnOrdinal int) { b.bits.AddInt(columnOrdinal) }

func (b *NullBitmap) IsNull(columnOrdinal int) bool { return b.bits.ContainsInt(columnOrdinal) }

// ColumnSchema describes one output column: name, type, and whether it may
// carry a null-bitmap entry.
type ColumnSchema struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Schema is the ordered column list a table's row generator produces.
type Schema struct {
	Columns []ColumnSchema
}

func (s Schema) IndexOf(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Builder is the external collaborator the emitter depends on: one
// per-column typed array builder plus the batch-assembly step. Spec §6
// deliberately treats this as an interface whose implementation (Arrow,
// Parquet, a Go slice) lives outside this module.
type Builder interface {
	AppendNull(column int)
	AppendValue(column int, v Value)
	Finish(column int) any
	MakeRecordBatch(rowCount int, arrays []any) (Batch, error)
}

// Batch is an opaque handle to one assembled chunk of rows; its only
// required property is RowCount, used by the emitter's EOS bookkeeping.
type Batch interface {
	RowCount() int
}
