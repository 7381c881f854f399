package ssb

import (
	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
)

// rowSource adapts one table's concrete generator into the uniform cursor
// the batch emitter drives, exactly as tpch.rowSource does for TPC-H (SSB
// reuses the same generator shape since it reuses the same bank).
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

var CustomerSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "c_custkey", Kind: column.KindInt64},
	{Name: "c_name", Kind: column.KindUTF8},
	{Name: "c_address", Kind: column.KindUTF8},
	{Name: "c_city", Kind: column.KindUTF8},
	{Name: "c_nation", Kind: column.KindUTF8},
	{Name: "c_region", Kind: column.KindUTF8},
	{Name: "c_phone", Kind: column.KindUTF8},
	{Name: "c_mktsegment", Kind: column.KindUTF8},
}}

var SupplierSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "s_suppkey", Kind: column.KindInt64},
	{Name: "s_name", Kind: column.KindUTF8},
	{Name: "s_address", Kind: column.KindUTF8},
	{Name: "s_city", Kind: column.KindUTF8},
	{Name: "s_nation", Kind: column.KindUTF8},
	{Name: "s_region", Kind: column.KindUTF8},
	{Name: "s_phone", Kind: column.KindUTF8},
}}

var PartSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "p_partkey", Kind: column.KindInt64},
	{Name: "p_name", Kind: column.KindUTF8},
	{Name: "p_mfgr", Kind: column.KindUTF8},
	{Name: "p_category", Kind: column.KindUTF8},
	{Name: "p_brand1", Kind: column.KindUTF8},
	{Name: "p_color", Kind: column.KindUTF8},
	{Name: "p_type", Kind: column.KindUTF8},
	{Name: "p_size", Kind: column.KindInt64},
	{Name: "p_container", Kind: column.KindUTF8},
}}

var DateSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "d_datekey", Kind: column.KindInt64},
	{Name: "d_date", Kind: column.KindUTF8},
	{Name: "d_dayofweek", Kind: column.KindUTF8},
	{Name: "d_month", Kind: column.KindUTF8},
	{Name: "d_year", Kind: column.KindInt64},
	{Name: "d_yearmonthnum", Kind: column.KindInt64},
	{Name: "d_yearmonth", Kind: column.KindUTF8},
	{Name: "d_daynuminweek", Kind: column.KindInt64},
	{Name: "d_daynuminmonth", Kind: column.KindInt64},
	{Name: "d_daynuminyear", Kind: column.KindInt64},
	{Name: "d_monthnuminyear", Kind: column.KindInt64},
	{Name: "d_weeknuminyear", Kind: column.KindInt64},
	{Name: "d_sellingseason", Kind: column.KindUTF8},
	{Name: "d_lastdayinweekfl", Kind: column.KindBool},
	{Name: "d_lastdayinmonthfl", Kind: column.KindBool},
	{Name: "d_holidayfl", Kind: column.KindBool},
	{Name: "d_weekdayfl", Kind: column.KindBool},
}}

var LineorderSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "lo_orderkey", Kind: column.KindInt64},
	{Name: "lo_linenumber", Kind: column.KindInt64},
	{Name: "lo_custkey", Kind: column.KindInt64},
	{Name: "lo_partkey", Kind: column.KindInt64},
	{Name: "lo_suppkey", Kind: column.KindInt64},
	{Name: "lo_orderdate", Kind: column.KindUTF8},
	{Name: "lo_orderpriority", Kind: column.KindUTF8},
	{Name: "lo_shippriority", Kind: column.KindInt64},
	{Name: "lo_quantity", Kind: column.KindInt64},
	{Name: "lo_extendedprice", Kind: column.KindDecimal},
	{Name: "lo_ordtotalprice", Kind: column.KindDecimal},
	{Name: "lo_discount", Kind: column.KindDecimal},
	{Name: "lo_revenue", Kind: column.KindDecimal},
	{Name: "lo_supplycost", Kind: column.KindDecimal},
	{Name: "lo_tax", Kind: column.KindDecimal},
	{Name: "lo_commitdate", Kind: column.KindUTF8},
	{Name: "lo_shipmode", Kind: column.KindUTF8},
}}

func encodeMoney(cents int64) column.Value { return column.DecimalValue(cents, 2) }

// Distributions bundles the TPC-H distributions SSB's generators reuse
// directly: SSB never ships its own .dst fixtures, since its schema draws
// from the same colors/types/containers/priority/shipmode/segment tables
// TPC-H does.
type Distributions struct {
	Colors        *dist.TpchDistribution
	Types         *dist.TpchDistribution
	Containers    *dist.TpchDistribution
	Priorities    *dist.TpchDistribution
	ShipModes     *dist.TpchDistribution
	MarketSegment *dist.TpchDistribution
}

func newCustomerSource(sf float64, dists Distributions) (*rowSource, column.Schema) {
	g := NewCustomerGenerator(sf, CustomerDistributions{MarketSegment: dists.MarketSegment})
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.CustKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Address),
				column.UTF8Value(row.City),
				column.UTF8Value(row.NationName),
				column.UTF8Value(row.RegionName),
				column.UTF8Value(row.Phone),
				column.UTF8Value(row.MktSegment),
			}
		},
	}, CustomerSchema
}

func newSupplierSource(sf float64) (*rowSource, column.Schema) {
	g := NewSupplierGenerator(sf)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.SuppKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Address),
				column.UTF8Value(row.City),
				column.UTF8Value(row.NationName),
				column.UTF8Value(row.RegionName),
				column.UTF8Value(row.Phone),
			}
		},
	}, SupplierSchema
}

func newPartSource(sf float64, dists Distributions) (*rowSource, column.Schema) {
	g := NewPartGenerator(sf, PartDistributions{Colors: dists.Colors, Types: dists.Types, Cntr: dists.Containers})
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.PartKey),
				column.UTF8Value(row.Name),
				column.UTF8Value(row.Mfgr),
				column.UTF8Value(row.Category),
				column.UTF8Value(row.Brand),
				column.UTF8Value(row.Color),
				column.UTF8Value(row.Type),
				column.Int64Value(row.Size),
				column.UTF8Value(row.Container),
			}
		},
	}, PartSchema
}

func newDateSource() (*rowSource, column.Schema) {
	g := NewDateGenerator()
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.DateKey),
				column.UTF8Value(row.Date),
				column.UTF8Value(row.DayOfWeek),
				column.UTF8Value(row.Month),
				column.Int64Value(row.Year),
				column.Int64Value(row.YearMonthNum),
				column.UTF8Value(row.YearMonth),
				column.Int64Value(row.DayNumInWeek),
				column.Int64Value(row.DayNumInMonth),
				column.Int64Value(row.DayNumInYear),
				column.Int64Value(row.MonthNumInYear),
				column.Int64Value(row.WeekNumInYear),
				column.UTF8Value(row.SellingSeason),
				column.BoolValue(row.LastDayInWeekFl),
				column.BoolValue(row.LastDayInMonthFl),
				column.BoolValue(row.HolidayFl),
				column.BoolValue(row.WeekdayFl),
			}
		},
	}, DateSchema
}

func newLineorderSource(sf float64, dists Distributions) (*rowSource, column.Schema) {
	g := NewLineorderGenerator(sf, LineorderDistributions{Priority: dists.Priorities, ShipMode: dists.ShipModes})
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.OrderKey),
				column.Int64Value(row.LineNumber),
				column.Int64Value(row.CustKey),
				column.Int64Value(row.PartKey),
				column.Int64Value(row.SuppKey),
				column.UTF8Value(row.OrderDate),
				column.UTF8Value(row.OrderPriority),
				column.Int64Value(row.ShipPriority),
				column.Int64Value(row.Quantity),
				encodeMoney(row.ExtendedPrice),
				encodeMoney(row.OrderTotalPrice),
				encodeMoney(row.Discount),
				encodeMoney(row.Revenue),
				encodeMoney(row.SuppCost),
				encodeMoney(row.Tax),
				column.UTF8Value(row.CommitDate),
				column.UTF8Value(row.ShipMode),
			}
		},
	}, LineorderSchema
}

// NewRowSource builds the row source and schema for one SSB table by name.
// Unknown table names return ok=false.
func NewRowSource(table string, sf float64, dists Distributions) (any, column.Schema, bool) {
	switch table {
	case "customer":
		s, schema := newCustomerSource(sf, dists)
		return s, schema, true
	case "supplier":
		s, schema := newSupplierSource(sf)
		return s, schema, true
	case "part":
		s, schema := newPartSource(sf, dists)
		return s, schema, true
	case "date":
		s, schema := newDateSource()
		return s, schema, true
	case "lineorder":
		s, schema := newLineorderSource(sf, dists)
		return s, schema, true
	default:
		return nil, column.Schema{}, false
	}
}
