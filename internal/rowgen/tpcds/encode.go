package tpcds

import (
	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
)

// rowSource adapts one table's concrete generator into the uniform cursor
// the batch emitter drives, exactly as tpch.rowSource does for TPC-H.
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

var StoreSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "s_store_sk", Kind: column.KindInt64},
	{Name: "s_store_id", Kind: column.KindUTF8},
	{Name: "s_rec_start_date", Kind: column.KindInt64},
	{Name: "s_rec_end_date", Kind: column.KindInt64, Nullable: true},
	{Name: "s_closed_date_sk", Kind: column.KindInt64, Nullable: true},
	{Name: "s_store_name", Kind: column.KindUTF8},
	{Name: "s_number_employees", Kind: column.KindInt64},
	{Name: "s_floor_space", Kind: column.KindInt64},
	{Name: "s_hours", Kind: column.KindUTF8},
	{Name: "s_manager", Kind: column.KindUTF8},
	{Name: "s_market_id", Kind: column.KindInt64},
	{Name: "s_tax_percentage", Kind: column.KindDecimal},
	{Name: "s_geography_class", Kind: column.KindUTF8},
	{Name: "s_market_desc", Kind: column.KindUTF8},
	{Name: "s_market_manager", Kind: column.KindUTF8},
	{Name: "s_division_id", Kind: column.KindInt64},
	{Name: "s_division_name", Kind: column.KindUTF8},
	{Name: "s_company_id", Kind: column.KindInt64},
	{Name: "s_company_name", Kind: column.KindUTF8},
	{Name: "s_street_number", Kind: column.KindInt64},
	{Name: "s_street_name", Kind: column.KindUTF8},
	{Name: "s_street_type", Kind: column.KindUTF8},
	{Name: "s_suite_number", Kind: column.KindUTF8},
	{Name: "s_city", Kind: column.KindUTF8},
	{Name: "s_county", Kind: column.KindUTF8},
	{Name: "s_state", Kind: column.KindUTF8},
	{Name: "s_country", Kind: column.KindUTF8},
	{Name: "s_zip", Kind: column.KindUTF8},
	{Name: "s_gmt_offset", Kind: column.KindInt64},
}}

var pricingColumns = []column.ColumnSchema{
	{Name: "quantity", Kind: column.KindInt64},
	{Name: "wholesale_cost", Kind: column.KindDecimal},
	{Name: "list_price", Kind: column.KindDecimal},
	{Name: "sales_price", Kind: column.KindDecimal},
	{Name: "ext_sales_price", Kind: column.KindDecimal},
	{Name: "ext_wholesale_cost", Kind: column.KindDecimal},
	{Name: "ext_list_price", Kind: column.KindDecimal},
	{Name: "ext_tax", Kind: column.KindDecimal},
	{Name: "coupon_amt", Kind: column.KindDecimal},
	{Name: "net_paid", Kind: column.KindDecimal},
	{Name: "net_paid_inc_tax", Kind: column.KindDecimal},
	{Name: "net_profit", Kind: column.KindDecimal},
}

func pricingValues(p Pricing) []column.Value {
	return []column.Value{
		column.Int64Value(p.Quantity),
		column.DecimalValue(p.WholesaleCost.Shift(2).IntPart(), 2),
		column.DecimalValue(p.ListPrice.Shift(2).IntPart(), 2),
		column.DecimalValue(p.SalesPrice.Shift(2).IntPart(), 2),
		column.DecimalValue(p.ExtSalesPrice.Shift(2).IntPart(), 2),
		column.DecimalValue(p.ExtWholesaleCost.Shift(2).IntPart(), 2),
		column.DecimalValue(p.ExtListPrice.Shift(2).IntPart(), 2),
		column.DecimalValue(p.ExtTax.Shift(2).IntPart(), 2),
		column.DecimalValue(p.CouponAmt.Shift(2).IntPart(), 2),
		column.DecimalValue(p.NetPaid.Shift(2).IntPart(), 2),
		column.DecimalValue(p.NetPaidIncTax.Shift(2).IntPart(), 2),
		column.DecimalValue(p.NetProfit.Shift(2).IntPart(), 2),
	}
}

var StoreSalesSchema = column.Schema{Columns: append([]column.ColumnSchema{
	{Name: "ss_sold_date_sk", Kind: column.KindInt64},
	{Name: "ss_sold_time_sk", Kind: column.KindInt64},
	{Name: "ss_item_sk", Kind: column.KindInt64},
	{Name: "ss_customer_sk", Kind: column.KindInt64},
	{Name: "ss_cdemo_sk", Kind: column.KindInt64},
	{Name: "ss_hdemo_sk", Kind: column.KindInt64},
	{Name: "ss_addr_sk", Kind: column.KindInt64},
	{Name: "ss_store_sk", Kind: column.KindInt64},
	{Name: "ss_promo_sk", Kind: column.KindInt64},
	{Name: "ss_ticket_number", Kind: column.KindInt64},
}, pricingColumns...)}

var StoreReturnsSchema = column.Schema{Columns: append([]column.ColumnSchema{
	{Name: "sr_returned_date_sk", Kind: column.KindInt64},
	{Name: "sr_returned_time_sk", Kind: column.KindInt64},
	{Name: "sr_item_sk", Kind: column.KindInt64},
	{Name: "sr_customer_sk", Kind: column.KindInt64},
	{Name: "sr_cdemo_sk", Kind: column.KindInt64},
	{Name: "sr_hdemo_sk", Kind: column.KindInt64},
	{Name: "sr_addr_sk", Kind: column.KindInt64},
	{Name: "sr_store_sk", Kind: column.KindInt64},
	{Name: "sr_reason_sk", Kind: column.KindInt64},
	{Name: "sr_ticket_number", Kind: column.KindInt64},
}, pricingColumns...)}

var InventorySchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "inv_date_sk", Kind: column.KindInt64},
	{Name: "inv_item_sk", Kind: column.KindInt64},
	{Name: "inv_warehouse_sk", Kind: column.KindInt64},
	{Name: "inv_quantity_on_hand", Kind: column.KindInt64},
}}

var CatalogPageSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "cp_catalog_page_sk", Kind: column.KindInt64},
	{Name: "cp_catalog_page_id", Kind: column.KindUTF8},
	{Name: "cp_start_date_sk", Kind: column.KindInt64},
	{Name: "cp_end_date_sk", Kind: column.KindInt64},
	{Name: "cp_department", Kind: column.KindUTF8},
	{Name: "cp_catalog_number", Kind: column.KindInt64},
	{Name: "cp_catalog_page_number", Kind: column.KindInt64},
	{Name: "cp_description", Kind: column.KindUTF8},
	{Name: "cp_type", Kind: column.KindUTF8},
}}

var TimeDimSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "t_time_sk", Kind: column.KindInt64},
	{Name: "t_time_id", Kind: column.KindUTF8},
	{Name: "t_time", Kind: column.KindInt64},
	{Name: "t_hour", Kind: column.KindInt64},
	{Name: "t_minute", Kind: column.KindInt64},
	{Name: "t_second", Kind: column.KindInt64},
	{Name: "t_am_pm", Kind: column.KindUTF8},
	{Name: "t_shift", Kind: column.KindUTF8},
	{Name: "t_sub_shift", Kind: column.KindUTF8},
	{Name: "t_meal_time", Kind: column.KindUTF8},
}}

var IncomeBandSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "ib_income_band_sk", Kind: column.KindInt64},
	{Name: "ib_lower_bound", Kind: column.KindInt64},
	{Name: "ib_upper_bound", Kind: column.KindInt64},
}}

var HouseholdDemographicsSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "hd_demo_sk", Kind: column.KindInt64},
	{Name: "hd_income_band_sk", Kind: column.KindInt64},
	{Name: "hd_buy_potential", Kind: column.KindUTF8},
	{Name: "hd_dep_count", Kind: column.KindInt64},
	{Name: "hd_vehicle_count", Kind: column.KindInt64},
}}

var CustomerDemographicsSchema = column.Schema{Columns: []column.ColumnSchema{
	{Name: "cd_demo_sk", Kind: column.KindInt64},
	{Name: "cd_gender", Kind: column.KindUTF8},
	{Name: "cd_marital_status", Kind: column.KindUTF8},
	{Name: "cd_education_status", Kind: column.KindUTF8},
	{Name: "cd_purchase_estimate", Kind: column.KindInt64},
	{Name: "cd_credit_rating", Kind: column.KindUTF8},
	{Name: "cd_dep_count", Kind: column.KindInt64},
	{Name: "cd_dep_employed_count", Kind: column.KindInt64},
	{Name: "cd_dep_college_count", Kind: column.KindInt64},
}}

// Distributions bundles every named TPC-DS distribution this package's
// generators draw from, resolved once from a loaded store before any
// table is opened.
type Distributions struct {
	Hours               *dist.TpcdsDistribution
	IncomeBand          *dist.TpcdsDistribution
	BuyPotential        *dist.TpcdsDistribution
	DependentCount      *dist.TpcdsDistribution
	VehicleCount        *dist.TpcdsDistribution
	Gender              *dist.TpcdsDistribution
	MaritalStatus       *dist.TpcdsDistribution
	Education           *dist.TpcdsDistribution
	PurchaseBand        *dist.TpcdsDistribution
	CreditRating        *dist.TpcdsDistribution
	MarketHours         *dist.TpcdsDistribution
	GeographyCls        *dist.TpcdsDistribution
	CatalogPageType     *dist.TpcdsDistribution
	StreetNames         *dist.TpcdsDistribution
	StreetTypes         *dist.TpcdsDistribution
	Counties            *dist.TpcdsDistribution
}

func LoadDistributions(store *dist.TpcdsStore) Distributions {
	return Distributions{
		Hours:           store.Find("hours"),
		IncomeBand:      store.Find("income_band"),
		BuyPotential:    store.Find("buy_potential"),
		DependentCount:  store.Find("dependent_count"),
		VehicleCount:    store.Find("vehicle_count"),
		Gender:          store.Find("gender"),
		MaritalStatus:   store.Find("marital_status"),
		Education:       store.Find("education"),
		PurchaseBand:    store.Find("purchase_band"),
		CreditRating:    store.Find("credit_rating"),
		MarketHours:     store.Find("market_hours"),
		GeographyCls:    store.Find("geography_cls"),
		CatalogPageType: store.Find("catalog_page_type"),
		StreetNames:     store.Find("street_names"),
		StreetTypes:     store.Find("street_type"),
		Counties:        store.Find("county"),
	}
}

func (d Distributions) address() AddressDistributions {
	return AddressDistributions{StreetNames: d.StreetNames, StreetTypes: d.StreetTypes, Counties: d.Counties}
}

func newStoreSource(sf float64, dists Distributions) (*rowSource, column.Schema) {
	g := NewStoreGenerator(sf, StoreDistributions{
		Address:      dists.address(),
		MarketHours:  dists.MarketHours,
		GeographyCls: dists.GeographyCls,
	})
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.StoreSK),
				column.UTF8Value(row.StoreID),
				column.Int64Value(row.RecStartDateID),
				column.Int64Value(row.RecEndDateID),
				column.Int64Value(row.ClosedDateID),
				column.UTF8Value(row.StoreName),
				column.Int64Value(row.Employees),
				column.Int64Value(row.FloorSpace),
				column.UTF8Value(row.Hours),
				column.UTF8Value(row.StoreManager),
				column.Int64Value(row.MarketID),
				column.DecimalValue(row.TaxPercentage.Shift(2).IntPart(), 2),
				column.UTF8Value(row.GeographyClass),
				column.UTF8Value(row.MarketDesc),
				column.UTF8Value(row.MarketManager),
				column.Int64Value(row.DivisionID),
				column.UTF8Value(row.DivisionName),
				column.Int64Value(row.CompanyID),
				column.UTF8Value(row.CompanyName),
				column.Int64Value(row.Address.StreetNum),
				column.UTF8Value(row.Address.StreetName),
				column.UTF8Value(row.Address.StreetType),
				column.UTF8Value(row.Address.SuiteNum),
				column.UTF8Value(row.Address.City),
				column.UTF8Value(row.Address.County),
				column.UTF8Value(row.Address.State),
				column.UTF8Value(row.Address.Country),
				column.UTF8Value(row.Address.Zip),
				column.Int64Value(row.Address.GmtOffset),
			}
		},
	}, StoreSchema
}

func newStoreSalesSource(sf float64, itemCount, customerCount int64) (*rowSource, column.Schema) {
	g := NewStoreSalesGenerator(sf, itemCount, customerCount)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(int64) []column.Value {
			row := g.GenerateRow(0)
			values := []column.Value{
				column.Int64Value(row.SoldDateSK),
				column.Int64Value(row.SoldTimeSK),
				column.Int64Value(row.SoldItemSK),
				column.Int64Value(row.SoldCustomerSK),
				column.Int64Value(row.SoldCdemoSK),
				column.Int64Value(row.SoldHdemoSK),
				column.Int64Value(row.SoldAddrSK),
				column.Int64Value(row.SoldStoreSK),
				column.Int64Value(row.SoldPromoSK),
				column.Int64Value(row.TicketNumber),
			}
			return append(values, pricingValues(row.Pricing)...)
		},
	}, StoreSalesSchema
}

func newStoreReturnsSource(sf float64, itemCount, customerCount int64) (*rowSource, column.Schema) {
	g := NewStoreReturnsGenerator(sf, itemCount, customerCount)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(int64) []column.Value {
			row := g.GenerateRow(0)
			values := []column.Value{
				column.Int64Value(row.ReturnedDateSK),
				column.Int64Value(row.ReturnedTimeSK),
				column.Int64Value(row.ItemSK),
				column.Int64Value(row.CustomerSK),
				column.Int64Value(row.CdemoSK),
				column.Int64Value(row.HdemoSK),
				column.Int64Value(row.AddrSK),
				column.Int64Value(row.StoreSK),
				column.Int64Value(row.ReasonSK),
				column.Int64Value(row.TicketNumber),
			}
			return append(values, pricingValues(row.Pricing)...)
		},
	}, StoreReturnsSchema
}

func newInventorySource(itemCount, warehouseCount int64) (*rowSource, column.Schema) {
	g := NewInventoryGenerator(itemCount, warehouseCount)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.DateSK),
				column.Int64Value(row.ItemSK),
				column.Int64Value(row.WarehouseSK),
				column.Int64Value(row.QuantityOnHand),
			}
		},
	}, InventorySchema
}

func newCatalogPageSource(sf float64, pool string, dists Distributions) (*rowSource, column.Schema) {
	g := NewCatalogPageGenerator(sf, pool, dists.CatalogPageType)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.CatalogPageSK),
				column.UTF8Value(row.CatalogPageID),
				column.Int64Value(row.StartDateID),
				column.Int64Value(row.EndDateID),
				column.UTF8Value(row.Department),
				column.Int64Value(row.CatalogNumber),
				column.Int64Value(row.CatalogPageNumber),
				column.UTF8Value(row.Description),
				column.UTF8Value(row.Type),
			}
		},
	}, CatalogPageSchema
}

func newTimeDimSource(dists Distributions) (*rowSource, column.Schema) {
	g := NewTimeDimGenerator(dists.Hours)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.TimeSK),
				column.UTF8Value(row.TimeID),
				column.Int64Value(row.Time),
				column.Int64Value(row.Hour),
				column.Int64Value(row.Minute),
				column.Int64Value(row.Second),
				column.UTF8Value(row.AmPm),
				column.UTF8Value(row.Shift),
				column.UTF8Value(row.SubShift),
				column.UTF8Value(row.MealTime),
			}
		},
	}, TimeDimSchema
}

func newIncomeBandSource(dists Distributions) (*rowSource, column.Schema) {
	g := NewIncomeBandGenerator(dists.IncomeBand)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.IncomeBandSK),
				column.Int64Value(row.LowerBound),
				column.Int64Value(row.UpperBound),
			}
		},
	}, IncomeBandSchema
}

func newHouseholdDemographicsSource(dists Distributions) (*rowSource, column.Schema) {
	g := NewHouseholdDemographicsGenerator(dists.IncomeBand, dists.BuyPotential, dists.DependentCount, dists.VehicleCount)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.DemoSK),
				column.Int64Value(row.IncomeBandSK),
				column.UTF8Value(row.BuyPotential),
				column.Int64Value(row.DepCount),
				column.Int64Value(row.VehicleCount),
			}
		},
	}, HouseholdDemographicsSchema
}

func newCustomerDemographicsSource(dists Distributions) (*rowSource, column.Schema) {
	g := NewCustomerDemographicsGenerator(dists.Gender, dists.MaritalStatus, dists.Education, dists.PurchaseBand, dists.CreditRating)
	return &rowSource{
		totalRows: g.TotalRows(),
		skip:      g.SkipRows,
		next: func(rowNumber int64) []column.Value {
			row := g.GenerateRow(rowNumber)
			return []column.Value{
				column.Int64Value(row.DemoSK),
				column.UTF8Value(row.Gender),
				column.UTF8Value(row.MaritalStatus),
				column.UTF8Value(row.EducationStatus),
				column.Int64Value(row.PurchaseEstimate),
				column.UTF8Value(row.CreditRating),
				column.Int64Value(row.DepCount),
				column.Int64Value(row.DepEmployedCount),
				column.Int64Value(row.DepCollegeCount),
			}
		},
	}, CustomerDemographicsSchema
}

// Scale bundles the cross-table row-count parameters several TPC-DS
// generators need from their siblings (StoreSales/StoreReturns need the
// Item/Customer counts; Inventory needs Item/Warehouse) rather than
// deriving them locally, since those dimensions are generated separately.
type Scale struct {
	ItemCount      int64
	CustomerCount  int64
	WarehouseCount int64
}

// NewRowSource builds the row source and schema for one TPC-DS table by
// name. Unknown table names return ok=false.
func NewRowSource(table string, sf float64, pool string, dists Distributions, sc Scale) (any, column.Schema, bool) {
	switch table {
	case "store":
		s, schema := newStoreSource(sf, dists)
		return s, schema, true
	case "store_sales":
		s, schema := newStoreSalesSource(sf, sc.ItemCount, sc.CustomerCount)
		return s, schema, true
	case "store_returns":
		s, schema := newStoreReturnsSource(sf, sc.ItemCount, sc.CustomerCount)
		return s, schema, true
	case "inventory":
		s, schema := newInventorySource(sc.ItemCount, sc.WarehouseCount)
		return s, schema, true
	case "catalog_page":
		s, schema := newCatalogPageSource(sf, pool, dists)
		return s, schema, true
	case "time_dim":
		s, schema := newTimeDimSource(dists)
		return s, schema, true
	case "income_band":
		s, schema := newIncomeBandSource(dists)
		return s, schema, true
	case "household_demographics":
		s, schema := newHouseholdDemographicsSource(dists)
		return s, schema, true
	case "customer_demographics":
		s, schema := newCustomerDemographicsSource(dists)
		return s, schema, true
	default:
		return nil, column.Schema{}, false
	}
}
