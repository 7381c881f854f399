package tpcds

import "github.com/starschema/benchgen/internal/prng"

const invQuantityStream = 0
const invStreamCount = 1
const invRowBoundary = 1
const invDateCount = 261 // one inventory snapshot per week for five years
const invBaseJulian = int64(2450815)

// InventoryRow is one row of the dense date x item x warehouse Inventory
// cross-product.
type InventoryRow struct {
	DateSK         int64
	ItemSK         int64
	WarehouseSK    int64
	QuantityOnHand int64
}

// InventoryGenerator walks the date x item x warehouse cross-product in a
// fixed column-major order (date varies slowest, warehouse fastest),
// deriving date_sk and warehouse_sk from index arithmetic on the row
// number and drawing only the quantity from the PRNG.
type InventoryGenerator struct {
	bank *prng.Bank

	itemCount      int64
	warehouseCount int64
	totalRows      int64
}

func NewInventoryGenerator(itemCount, warehouseCount int64) *InventoryGenerator {
	return &InventoryGenerator{
		bank:           newTableBank(TableInventory, invStreamCount, invRowBoundary),
		itemCount:      itemCount,
		warehouseCount: warehouseCount,
		totalRows:      invDateCount * itemCount * warehouseCount,
	}
}

func (g *InventoryGenerator) TotalRows() int64 { return g.totalRows }

func (g *InventoryGenerator) SkipRows(skipCount int64) {
	if skipCount <= 0 {
		return
	}
	g.bank.AdvanceStream(invQuantityStream, skipCount)
}

// GenerateRow produces the 1-based rowNumber-th Inventory row. The row's
// three key columns are pure index arithmetic on (rowNumber-1); only
// quantity_on_hand is drawn.
func (g *InventoryGenerator) GenerateRow(rowNumber int64) InventoryRow {
	g.bank.RowStart()
	defer g.bank.RowStop(TableInventory)

	ordinal := rowNumber - 1
	perDate := g.itemCount * g.warehouseCount

	dateIndex := ordinal / perDate
	withinDate := ordinal % perDate
	itemIndex := withinDate / g.warehouseCount
	warehouseIndex := withinDate % g.warehouseCount

	var row InventoryRow
	row.DateSK = invBaseJulian + dateIndex*7
	row.ItemSK = itemIndex + 1
	row.WarehouseSK = warehouseIndex + 1
	row.QuantityOnHand = g.bank.RandomInt(0, 1000, invQuantityStream)

	return row
}
