package tpcds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newCustomerDemographicsGenerator(t *testing.T) *CustomerDemographicsGenerator {
	t.Helper()
	dists := loadFixtureDistributions(t)
	return NewCustomerDemographicsGenerator(dists.Gender, dists.MaritalStatus, dists.Education, dists.PurchaseBand, dists.CreditRating)
}

func TestCustomerDemographicsGeneratorRowShape(t *testing.T) {
	g := newCustomerDemographicsGenerator(t)
	require.Greater(t, g.TotalRows(), int64(0))

	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.DemoSK)
	require.NotEmpty(t, row.Gender)
	require.NotEmpty(t, row.MaritalStatus)
	require.NotEmpty(t, row.EducationStatus)
	require.NotEmpty(t, row.CreditRating)
	require.GreaterOrEqual(t, row.DepCount, int64(0))
	require.Less(t, row.DepCount, int64(maxChildren))
	require.GreaterOrEqual(t, row.DepEmployedCount, int64(0))
	require.Less(t, row.DepEmployedCount, int64(maxEmployed))
	require.GreaterOrEqual(t, row.DepCollegeCount, int64(0))
	require.Less(t, row.DepCollegeCount, int64(maxCollege))
}

func TestCustomerDemographicsGeneratorIsDeterministic(t *testing.T) {
	a := newCustomerDemographicsGenerator(t)
	b := newCustomerDemographicsGenerator(t)
	require.Equal(t, a.GenerateRow(999), b.GenerateRow(999))
}

func TestCustomerDemographicsGeneratorSkipRowsIsNoOp(t *testing.T) {
	g := newCustomerDemographicsGenerator(t)
	g.SkipRows(500)
	row := g.GenerateRow(1)
	require.Equal(t, int64(1), row.DemoSK)
}
