package tpch

import (
	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/scale"
)

// rowSource adapts one table's concrete generator into the uniform cursor
// the batch emitter drives: a total row count, a skip-ahead, and a closure
// that produces the next row's column values in schema order. Every TPC-H
// generator but LineItem fits this shape directly, including the
// cursor-style PartSupp generator, whose NextRow simply ignores the row
// number the emitter passes in.
type rowSource struct {
	totalRows int64
	skip      func(int64)
	next      func(rowNumber int64) []column.Value
	cursor    int64
}

func (s *rowSource) TotalRows() int64 { return s.totalRows }

func (s *rowSource) SkipRows(skipCount int64) {
	s.skip(skipCount)
	s.cursor += skipCount
}

// Encode produces the next row and feeds its values into b in schema
// column order. rowNumber is accepted for signature symmetry with the
// emitter's other suites; TPC-H's generators track their own row cursor.
func (s *rowSource) Encode(_ int64, b column.Builder) error {
	s.cursor++
	for i, v := range s.next(s.cursor) {
		if v.Null {
			b.AppendNull(i)
		} else {
			b.AppendValue(i, v)
		}
	}
	return nil
}

var NationSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "n_nationkey", Kind: column.KindInt64},
	{Name: "n_name", Kind: column.KindUTF8},
	{Name: "n_regionkey", Kind: column.KindInt64},
	{Name: "n_comment", Kind: column.KindUTF8},
}}

var RegionSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "r_regionkey", Kind: column.KindInt64},
	{Name: "r_name", Kind: column.KindUTF8},
	{Name: "r_comment", Kind: column.KindUTF8},
}}

var PartSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "p_partkey", Kind: column.KindInt64},
	{Name: "p_name", Kind: column.KindUTF8},
	{Name: "p_mfgr", Kind: column.KindUTF8},
	{Name: "p_brand", Kind: column.KindUTF8},
	{Name: "p_type", Kind: column.KindUTF8},
	{Name: "p_size", Kind: column.KindInt64},
	{Name: "p_container", Kind: column.KindUTF8},
	{Name: "p_retailprice", Kind: column.KindDecimal},
	{Name: "p_comment", Kind: column.KindUTF8},
}}

var PartSuppSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "ps_partkey", Kind: column.KindInt64},
	{Name: "ps_suppkey", Kind: column.KindInt64},
	{Name: "ps_availqty", Kind: column.KindInt64},
	{Name: "ps_supplycost", Kind: column.KindDecimal},
	{Name: "ps_comment", Kind: column.KindUTF8},
}}

var SupplierSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "s_suppkey", Kind: column.KindInt64},
	{Name: "s_name", Kind: column.KindUTF8},
	{Name: "s_address", Kind: column.KindUTF8},
	{Name: "s_nationkey", Kind: column.KindInt64},
	{Name: "s_phone", Kind: column.KindUTF8},
	{Name: "s_acctbal", Kind: column.KindDecimal},
	{Name: "s_comment", Kind: column.KindUTF8},
}}

var CustomerSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "c_custkey", Kind: column.KindInt64},
	{Name: "c_name", Kind: column.KindUTF8},
	{Name: "c_address", Kind: column.KindUTF8},
	{Name: "c_nationkey", Kind: column.KindInt64},
	{Name: "c_phone", Kind: column.KindUTF8},
	{Name: "c_acctbal", Kind: column.KindDecimal},
	{Name: "c_mktsegment", Kind: column.KindUTF8},
	{Name: "c_comment", Kind: column.KindUTF8},
}}

var OrdersSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "o_orderkey", Kind: column.KindInt64},
	{Name: "o_custkey", Kind: column.KindInt64},
	{Name: "o_orderstatus", Kind: column.KindUTF8},
	{Name: "o_totalprice", Kind: column.KindDecimal},
	{Name: "o_orderdate", Kind: column.KindUTF8},
	{Name: "o_orderpriority", Kind: column.KindUTF8},
	{Name: "o_clerk", Kind: column.KindUTF8},
	{Name: "o_shippriority", Kind: column.KindInt64},
	{Name: "o_comment", Kind: column.KindUTF8},
}}

var LineItemSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "l_orderkey", Kind: column.KindInt64},
	{Name: "l_partkey", Kind: column.KindInt64},
	{Name: "l_suppkey", Kind: column.KindInt64},
	{Name: "l_linenumber", Kind: column.KindInt64},
	{Name: "l_quantity", Kind: column.KindInt64},
	{Name: "l_extendedprice", Kind: column.KindDecimal},
	{Name: "l_discount", Kind: column.KindDecimal},
	{Name: "l_tax", Kind: column.KindDecimal},
	{Name: "l_returnflag", Kind: column.KindUTF8},
	{Name: "l_linestatus", Kind: column.KindUTF8},
	{Name: "l_shipdate", Kind: column.KindUTF8},
	{Name: "l_commitdate", Kind: column.KindUTF8},
	{Name: "l_receiptdate", Kind: column.KindUTF8},
	{Name: "l_shipinstruct", Kind: column.KindUTF8},
	{Name: "l_shipmode", Kind: column.KindUTF8},
	{Name: "l_comment", Kind: column.KindUTF8},
}}

// Distributions bundles every named .dst distribution TPC-H's generators
// draw from, resolved once from a loaded store before any table is opened.
type Distributions struct {
	Colors       *dist.TpchDistribution
	Types        *dist.TpchDistribution
	Containers   *dist.TpchDistribution
	Instructions *dist.TpchDistribution
	ShipModes    *dist.TpchDistribution
	ReturnFlags  *dist.TpchDistribution
	Priorities   *dist.TpchDistribution
	Segments     *dist.TpchDistribution
}

// LoadDistributions resolves every named distribution TPC-H's generators
// need out of store, by the same names the .dst fixtures declare them
// under.
func LoadDistributions(store *dist.TpchStore) Distributions {
	return Distributions{
		Colors:       store.Find("colors"),
		Types:        store.Find("p_types"),
		Containers:   store.Find("p_cntr"),
		Instructions: store.Find("instructions"),
		ShipModes:    store.Find("smode"),
		ReturnFlags:  store.Find("rflag"),
		Priorities:   store.Find("priority"),
		Segments:     store.Find("segments"),
	}
}

func encodeMoney(cents int64) column.Value { return column.DecimalValue(cents, 2) }

func newNationSource(pool string) (*rowSource, column.Schema) {
	g := NewNationGenerator(pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.NationKey),
				column.UTF8Value(row.Name),
				column.Int64Value(row.RegionKey),
				column.UTF8Value(row.Comment),
			}
		},
	}, NationSchema
}

func newRegionSource(pool string) (*rowSource, column.Schema) {
	g := NewRegionGenerator(pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.RegionKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Comment),
			}
		},
	}, RegionSchema
}

func newPartSource(sf float64, dists Distributions, pool string) (*rowSource, column.Schema) {
	g := NewPartGenerator(sf, PartDistributions{Colors: dists.Colors, Types: dists.Types, Cntr: dists.Containers}, pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.PartKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Mfgr),
				column.UTF8Value(row.Brand),
				column.UTF8Value(row.Type),
				column.Int64Value(row.Size),
				column.UTF8Value(row.Container),
				encodeMoney(row.RetailPrice),
				column.UTF8Value(row.Comment),
			}
		},
	}, PartSchema
}

func newPartSuppSource(sf float64, pool string) (*rowSource, column.Schema) {
	g := NewPartSuppGenerator(sf, pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(int64) []column.Value {
			row, _ := g.NextRow()
			return []column.Value{
				column.Int64Value(row.PartKey),
				column.Int64Value(row.SuppKey),
				column.Int64Value(row.AvailQty),
				encodeMoney(row.SupplyCost),
				column.UTF8Value(row.Comment),
			}
		},
	}, PartSuppSchema
}

func newSupplierSource(sf float64, pool string) (*rowSource, column.Schema) {
	g := NewSupplierGenerator(sf, pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.SuppKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Address),
				column.Int64Value(row.NationKey),
				column.UTF8Value(row.Phone),
				encodeMoney(row.AcctBal),
				column.UTF8Value(row.Comment),
			}
		},
	}, SupplierSchema
}

func newCustomerSource(sf float64, dists Distributions, pool string) (*rowSource, column.Schema) {
	g := NewCustomerGenerator(sf, CustomerDistributions{MarketSegment: dists.Segments}, pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.CustKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Address),
				column.Int64Value(row.NationKey),
				column.UTF8Value(row.Phone),
				encodeMoney(row.AcctBal),
				column.UTF8Value(row.MarketSegment),
				column.UTF8Value(row.Comment),
			}
		},
	}, CustomerSchema
}

func newOrdersSource(sf float64, dists Distributions, pool string) (*rowSource, column.Schema) {
	g := NewOrderGenerator(sf, OrderDistributions{
		Priority:     dists.Priorities,
		ShipInstruct: dists.Instructions,
		ShipMode:     dists.ShipModes,
		ReturnFlag:   dists.ReturnFlags,
	}, pool)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.OrderKey),
				column.Int64Value(row.CustKey),
				column.UTF8Value(string(row.OrderStatus)),
				encodeMoney(row.TotalPrice),
				column.UTF8Value(row.OrderDate),
				column.UTF8Value(row.OrderPriority),
				column.UTF8Value(row.Clerk),
				column.Int64Value(row.ShipPriority),
				column.UTF8Value(row.Comment),
			}
		},
	}, OrdersSchema
}

// lineItemSource drives a private OrderGenerator and materializes one
// LineItem row at a time, buffering the rest of the current order's lines,
// the same pattern TPC-DS's StoreReturnsGenerator and SSB's
// LineorderGenerator use for a one-to-many parent/child row relationship.
type lineItemSource struct {
	orders    *OrderGenerator
	pending   []LineItemRow
	index     int
	orderNum  int64
	totalRows int64
}

func newLineItemSource(sf float64, dists Distributions, pool string) (*lineItemSource, column.Schema) {
	orders := NewOrderGenerator(sf, OrderDistributions{
		Priority:     dists.Priorities,
		ShipInstruct: dists.Instructions,
		ShipMode:     dists.ShipModes,
		ReturnFlag:   dists.ReturnFlags,
	}, pool)
	return &lineItemSource{orders: orders, totalRows: scale.LineItemCount(sf)}, LineItemSchema
}

func (s *lineItemSource) TotalRows() int64 { return s.totalRows }

func (s *lineItemSource) SkipRows(skipCount int64) {
	for int64(len(s.pending))-int64(s.index) < skipCount {
		skipCount -= int64(len(s.pending)) - int64(s.index)
		s.orderNum++
		order := s.orders.GenerateRow(s.orderNum)
		s.pending = order.Lines
		s.index = 0
	}
	s.index += int(skipCount)
}

func (s *lineItemSource) refill() {
	for s.index >= len(s.pending) {
		s.orderNum++
		order := s.orders.GenerateRow(s.orderNum)
		s.pending = order.Lines
		s.index = 0
	}
}

func (s *lineItemSource) Encode(_ int64, b column.Builder) error {
	s.refill()
	row := s.pending[s.index]
	s.index++

	values := []column.Value{
		column.Int64Value(row.OrderKey),
		column.Int64Value(row.PartKey),
		column.Int64Value(row.SuppKey),
		column.Int64Value(row.LineNumber),
		column.Int64Value(row.Quantity),
		encodeMoney(row.ExtendedPrice),
		encodeMoney(row.Discount),
		encodeMoney(row.Tax),
		column.UTF8Value(string(row.ReturnFlag)),
		column.UTF8Value(string(row.LineStatus)),
		column.UTF8Value(row.ShipDate),
		column.UTF8Value(row.CommitDate),
		column.UTF8Value(row.ReceiptDate),
		column.UTF8Value(row.ShipInstruct),
		column.UTF8Value(row.ShipMode),
		column.UTF8Value(row.Comment),
	}
	for i, v := range values {
		if v.Null {
			b.AppendNull(i)
		} else {
			b.AppendValue(i, v)
		}
	}
	return nil
}

// NewRowSource builds the row source and schema for one TPC-H table by
// name, resolving whichever distributions that table's generator needs out
// of dists. Unknown table names return a nil source.
func NewRowSource(table string, sf float64, dists Distributions, pool string) (any, column.Schema, bool) {
	switch table {
	case "nation":
		s, sc := newNationSource(pool)
		return s, sc, true
	case "region":
		s, sc := newRegionSource(pool)
		return s, sc, true
	case "part":
		s, sc := newPartSource(sf, dists, pool)
		return s, sc, true
	case "partsupp":
		s, sc := newPartSuppSource(sf, pool)
		return s, sc, true
	case "supplier":
		s, sc := newSupplierSource(sf, pool)
		return s, sc, true
	case "customer":
		s, sc := newCustomerSource(sf, dists, pool)
		return s, sc, true
	case "orders":
		s, sc := newOrdersSource(sf, dists, pool)
		return s, sc, true
	case "lineitem":
		s, sc := newLineItemSource(sf, dists, pool)
		return s, sc, true
	default:
		return nil, column.Schema{}, false
	}
}
