package tpch

// Per-column length, range, and tag constants for Part, PartSupp, Supplier,
// Customer, Orders, and LineItem, taken verbatim from dbgen's published
// schema widths. These are a bit-exact contract with the reference
// generator's row shapes and must not be "tidied" or re-derived.
const (
	PMfgMin  = 1
	PMfgMax  = 5
	PBrndMin = 1
	PBrndMax = 5
	PSizeMin = 1
	PSizeMax = 50

	PNameScl = 5

	PCommentLen = 14

	PSQtyMin   = 1
	PSQtyMax   = 9999
	PSScstMin  = 100
	PSScstMax  = 100000
	PSCommentLen = 124

	SAddressLen = 25
	SAbalMin    = -99999
	SAbalMax    = 999999
	SCommentLen = 63

	CAddressLen = 25
	CAbalMin    = -99999
	CAbalMax    = 999999
	CCommentLen = 73
	CMsegMax    = 5

	OCommentLen = 49
	OClerkScale = 1000

	LQtyMin  = 1
	LQtyMax  = 50
	LDiscMin = 0
	LDiscMax = 10
	LTaxMin  = 0
	LTaxMax  = 8

	LSdteMin = 1
	LSdteMax = 121
	LCdteMin = -90
	LCdteMax = 30
	LRdteMin = 1
	LRdteMax = 30

	LCommentLen = 27

	// Pennies is the fixed-point scale every money-shaped column (discount,
	// tax, extended price derivations) is expressed in: 100 == 1.00.
	Pennies = 100

	// CustomerMortality marks every Nth customer key as "dead": Orders
	// never assigns such a key to a real order, nudging to the nearest
	// live key instead.
	CustomerMortality = 3
)

// Tag-string prefixes GenerateRow feeds into FormatTagNumber.
const (
	PMfgTag   = "Manufacturer#"
	PBrndTag  = "Brand#"
	SNameTag  = "Supplier#"
	CNameTag  = "Customer#"
	OClerkTag = "Clerk#"
)

// "Better Business Bureau" comment-injection constants: Supplier splices a
// complaint/recommendation blurb into a small fraction of generated
// comments, at a random offset, using these fixed marker strings and
// thresholds.
const (
	SCommentBbb  = 10
	BbbDeadbeats = 50

	BbbBase    = "Customer "
	BbbComplain = "Complaints"
	BbbCommend  = "Recommends"

	BbbBaseLen    = 9
	BbbTypeLen    = 10
	BbbCommentLen = 19
)

// NationsMax is the fixed size of the Nation reference table every
// nationkey draw is bounded by.
const NationsMax = 25
