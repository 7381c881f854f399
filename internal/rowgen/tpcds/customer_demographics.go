package tpcds

import "github.com/starschema/benchgen/internal/dist"

const (
	maxChildren = 7
	maxEmployed = 7
	maxCollege  = 7
)

// CustomerDemographicsRow is one row of the CustomerDemographics dimension:
// a dense cross of gender, marital status, education, purchase band,
// credit rating, and dependent counts, entirely derived from the row
// number.
type CustomerDemographicsRow struct {
	DemoSK            int64
	Gender            string
	MaritalStatus     string
	EducationStatus   string
	PurchaseEstimate  int64
	CreditRating      string
	DepCount          int64
	DepEmployedCount  int64
	DepCollegeCount   int64
}

// CustomerDemographicsGenerator produces CustomerDemographics rows the same
// dense-derivation way HouseholdDemographics does, chaining five
// distribution-backed digits plus three fixed-base (mod 7) digits off a
// single running modulus seeded from the row number. It draws nothing from
// the PRNG.
type CustomerDemographicsGenerator struct {
	gender          *dist.TpcdsDistribution
	maritalStatus   *dist.TpcdsDistribution
	education       *dist.TpcdsDistribution
	purchaseBand    *dist.TpcdsDistribution
	creditRating    *dist.TpcdsDistribution
	totalRows       int64
}

func NewCustomerDemographicsGenerator(gender, maritalStatus, education, purchaseBand, creditRating *dist.TpcdsDistribution) *CustomerDemographicsGenerator {
	total := int64(gender.Size()) * int64(maritalStatus.Size()) * int64(education.Size()) *
		int64(purchaseBand.Size()) * int64(creditRating.Size()) * maxChildren * maxEmployed * maxCollege
	return &CustomerDemographicsGenerator{
		gender:        gender,
		maritalStatus: maritalStatus,
		education:     education,
		purchaseBand:  purchaseBand,
		creditRating:  creditRating,
		totalRows:     total,
	}
}

func (g *CustomerDemographicsGenerator) TotalRows() int64 { return g.totalRows }

func (g *CustomerDemographicsGenerator) SkipRows(skipCount int64) {}

// GenerateRow produces the 1-based rowNumber-th CustomerDemographics row.
func (g *CustomerDemographicsGenerator) GenerateRow(rowNumber int64) CustomerDemographicsRow {
	var row CustomerDemographicsRow
	row.DemoSK = rowNumber
	temp := row.DemoSK - 1

	row.Gender, _ = dist.NextBitmapString(g.gender, 0, &temp)
	row.MaritalStatus, _ = dist.NextBitmapString(g.maritalStatus, 0, &temp)
	row.EducationStatus, _ = dist.NextBitmapString(g.education, 0, &temp)
	row.PurchaseEstimate, _ = dist.NextBitmapInt(g.purchaseBand, 0, &temp)
	row.CreditRating, _ = dist.NextBitmapString(g.creditRating, 0, &temp)

	row.DepCount = temp % maxChildren
	temp /= maxChildren
	row.DepEmployedCount = temp % maxEmployed
	temp /= maxEmployed
	row.DepCollegeCount = temp % maxCollege

	return row
}
