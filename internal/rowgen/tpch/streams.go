// Package tpch implements the TPC-H row generators: Nation, Region, Part,
// PartSupp, Supplier, Customer, and the combined Orders+LineItem generator,
// each driven by its own private prng.Bank seeded with dbgen's published
// 48-stream table.
package tpch

import "github.com/starschema/benchgen/internal/prng"

// Table identifies which TPC-H table owns a given PRNG stream, for the
// purposes of RowStop's boundary-completion sweep.
const (
	TablePart prng.Table = iota
	TablePartSupp
	TableSupplier
	TableCustomer
	TableOrders
	TableLineItem
	TableOrderLine // alias of TableOrders
	TablePartPsupp // alias of TablePart
	TableNation
	TableRegion
	TableUpdate
)

// Graph resolves OrderLine/PartPsupp to their canonical owning table and
// names each table's generated child, so RowStop sweeps both a table's own
// streams and its child table's streams in one call.
var Graph = prng.Graph{
	Alias: map[prng.Table]prng.Table{
		TableOrderLine: TableOrders,
		TablePartPsupp: TablePart,
	},
	Child: map[prng.Table]prng.Table{
		TablePart:   TablePartSupp,
		TableOrders: TableLineItem,
	},
}

// Per-column stream indices, in dbgen's declared order. These are the
// addresses every generator and skip function uses to reach a specific
// stream in the bank; they must match the position of the corresponding
// entry in Seeds.
const (
	StreamPMfg       = 0
	StreamPBrnd      = 1
	StreamPType      = 2
	StreamPSize      = 3
	StreamPCntr      = 4
	StreamPRcst      = 5
	StreamPCmnt      = 6
	StreamPsQty      = 7
	StreamPsScst     = 8
	StreamPsCmnt     = 9
	StreamOSupp      = 10
	StreamOClrk      = 11
	StreamOCmnt      = 12
	StreamOOdate     = 13
	StreamLQty       = 14
	StreamLDcnt      = 15
	StreamLTax       = 16
	StreamLShip      = 17
	StreamLSmode     = 18
	StreamLPkey      = 19
	StreamLSkey      = 20
	StreamLSdte      = 21
	StreamLCdte      = 22
	StreamLRdte      = 23
	StreamLRflg      = 24
	StreamLCmnt      = 25
	StreamCAddr      = 26
	StreamCNtrg      = 27
	StreamCPhne      = 28
	StreamCAbal      = 29
	StreamCMseg      = 30
	StreamCCmnt      = 31
	StreamSAddr      = 32
	StreamSNtrg      = 33
	StreamSPhne      = 34
	StreamSAbal      = 35
	StreamSCmnt      = 36
	StreamPName      = 37
	StreamOPrio      = 38
	StreamHVar       = 39
	StreamOCkey      = 40
	StreamNCmnt      = 41
	StreamRCmnt      = 42
	StreamOLcnt      = 43
	StreamBbbJnk     = 44
	StreamBbbType    = 45
	StreamBbbCmnt    = 46
	StreamBbbOffset  = 47
	streamCount      = 48
)

// Generator-level constants that size comment/text fields and per-row draw
// counts; these come from dbgen's published schema widths.
const (
	MaxColor  = 92
	OLcntMin  = 1
	OLcntMax  = 7
	SuppPerPart = 4
)

// Seeds is dbgen's published 48-entry initial stream table: table
// ownership, starting 31-bit state, and draws-per-row boundary for every
// stream, in StreamXxx order. These values are a bit-exact contract with
// the reference generator and must never be recomputed or "simplified".
var Seeds = []prng.Seed{
	{Table: TablePart, Value: 1, Boundary: 1},
	{Table: TablePart, Value: 46831694, Boundary: 1},
	{Table: TablePart, Value: 1841581359, Boundary: 1},
	{Table: TablePart, Value: 1193163244, Boundary: 1},
	{Table: TablePart, Value: 727633698, Boundary: 1},
	{Table: prng.NoTable, Value: 933588178, Boundary: 1},
	{Table: TablePart, Value: 804159733, Boundary: 2},
	{Table: TablePartSupp, Value: 1671059989, Boundary: 4},
	{Table: TablePartSupp, Value: 1051288424, Boundary: 4},
	{Table: TablePartSupp, Value: 1961692154, Boundary: 2},
	{Table: TableOrders, Value: 1227283347, Boundary: 1},
	{Table: TableOrders, Value: 1171034773, Boundary: 1},
	{Table: TableOrders, Value: 276090261, Boundary: 2},
	{Table: TableOrders, Value: 1066728069, Boundary: 1},
	{Table: TableLineItem, Value: 209208115, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 554590007, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 721958466, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 1371272478, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 675466456, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 1808217256, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 2095021727, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 1769349045, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 904914315, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 373135028, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 717419739, Boundary: OLcntMax},
	{Table: TableLineItem, Value: 1095462486, Boundary: OLcntMax * 2},
	{Table: TableCustomer, Value: 881155353, Boundary: 9},
	{Table: TableCustomer, Value: 1489529863, Boundary: 1},
	{Table: TableCustomer, Value: 1521138112, Boundary: 3},
	{Table: TableCustomer, Value: 298370230, Boundary: 1},
	{Table: TableCustomer, Value: 1140279430, Boundary: 1},
	{Table: TableCustomer, Value: 1335826707, Boundary: 2},
	{Table: TableSupplier, Value: 706178559, Boundary: 9},
	{Table: TableSupplier, Value: 110356601, Boundary: 1},
	{Table: TableSupplier, Value: 884434366, Boundary: 3},
	{Table: TableSupplier, Value: 962338209, Boundary: 1},
	{Table: TableSupplier, Value: 1341315363, Boundary: 2},
	{Table: TablePart, Value: 709314158, Boundary: MaxColor},
	{Table: TableOrders, Value: 591449447, Boundary: 1},
	{Table: TableLineItem, Value: 431918286, Boundary: 1},
	{Table: TableOrders, Value: 851767375, Boundary: 1},
	{Table: TableNation, Value: 606179079, Boundary: 2},
	{Table: TableRegion, Value: 1500869201, Boundary: 2},
	{Table: TableOrders, Value: 1434868289, Boundary: 1},
	{Table: TableSupplier, Value: 263032577, Boundary: 1},
	{Table: TableSupplier, Value: 753643799, Boundary: 1},
	{Table: TableSupplier, Value: 202794285, Boundary: 1},
	{Table: TableSupplier, Value: 715851524, Boundary: 1},
}

// NewBank builds a fresh PRNG bank seeded with the TPC-H stream table,
// one per table generator so table generators can run independently (and
// concurrently) without sharing mutable stream state.
func NewBank() *prng.Bank {
	return prng.NewBank(Seeds, Graph)
}
