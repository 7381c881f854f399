// Package ssb implements the Star Schema Benchmark row generators. SSB
// reuses TPC-H's dbgen verbatim under the hood - same 48-stream Park-Miller
// bank, same seed table and table graph - reconfigured with SSB's own base
// row counts and a flattened lineorder fact row that merges what TPC-H
// keeps as separate Orders and LineItem records.
package ssb

import (
	"github.com/starschema/benchgen/internal/prng"
	"github.com/starschema/benchgen/internal/rowgen/tpch"
)

// Base cardinalities taken verbatim from the reference's utils/constants.h:
// SSB scales its three conformed dimensions off these bases instead of
// TPC-H's larger Customer/Supplier/Part bases.
const (
	CustomerBase = 30000
	SupplierBase = 2000
	PartBase     = 200000
	DateBase     = 2556
	OrdersBase   = 150000

	OrdersPerCustomer = 10

	MaxAggLen = 15

	PMfgMin  = 1
	PMfgMax  = 5
	PCatMin  = 1
	PCatMax  = 5
	PBrndMin = 1
	PBrndMax = 40
	PSizeMin = 1
	PSizeMax = 50

	SAbalMin = -99999
	SAbalMax = 999999
	CAbalMin = -99999
	CAbalMax = 999999

	CMsegMin = 1
	CMsegMax = 5

	CityFix = 10
)

// NewBank builds a fresh 48-stream bank seeded exactly as TPC-H's dbgen
// seeds it: SSB's generator is the same Park-Miller bank, not a distinct
// RNG architecture.
func NewBank() *prng.Bank { return tpch.NewBank() }
