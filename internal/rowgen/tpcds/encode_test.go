package tpcds

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
)

const fixtureDistPath = "../../dist/testdata/tpcds/dists.dst"

func loadFixtureDistributions(t *testing.T) Distributions {
	t.Helper()
	store, err := dist.ParseTpcdsTree(afero.NewOsFs(), fixtureDistPath)
	require.NoError(t, err)
	return LoadDistributions(store)
}

func sampleScale() Scale {
	return Scale{ItemCount: 1000, CustomerCount: 500, WarehouseCount: 2}
}

func TestNewRowSourceUnknownTable(t *testing.T) {
	dists := loadFixtureDistributions(t)
	_, _, ok := NewRowSource("not_a_table", 1.0, "a pool ", dists, sampleScale())
	require.False(t, ok)
}

func TestNewRowSourceIncomeBandEncodesDeclaredColumns(t *testing.T) {
	dists := loadFixtureDistributions(t)
	raw, schema, ok := NewRowSource("income_band", 1.0, "a pool ", dists, sampleScale())
	require.True(t, ok)
	require.Equal(t, IncomeBandSchema, schema)

	source := raw.(*rowSource)
	require.Greater(t, source.TotalRows(), int64(0))

	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(1, b))
	sks := b.Finish(0).([]column.Value)
	require.Len(t, sks, 1)
	require.Equal(t, int64(1), sks[0].Int64)
}

func TestNewRowSourceHouseholdDemographicsEncodesDeclaredColumns(t *testing.T) {
	dists := loadFixtureDistributions(t)
	raw, schema, ok := NewRowSource("household_demographics", 1.0, "a pool ", dists, sampleScale())
	require.True(t, ok)
	require.Equal(t, HouseholdDemographicsSchema, schema)

	source := raw.(*rowSource)
	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(1, b))
	buyPotential := b.Finish(2).([]column.Value)
	require.Len(t, buyPotential, 1)
	require.False(t, buyPotential[0].Null)
	require.Equal(t, column.KindUTF8, buyPotential[0].Kind)
}

func TestNewRowSourceStoreSalesEncodesPricingColumns(t *testing.T) {
	dists := loadFixtureDistributions(t)
	raw, schema, ok := NewRowSource("store_sales", 1.0, "a pool of filler text repeated over and over ", dists, sampleScale())
	require.True(t, ok)
	require.Equal(t, StoreSalesSchema, schema)
	require.Equal(t, 22, len(schema.Columns), "10 header columns + 12 shared pricing columns")

	source := raw.(*rowSource)
	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(0, b))
	netProfit := b.Finish(len(schema.Columns) - 1).([]column.Value)
	require.Len(t, netProfit, 1)
	require.Equal(t, column.KindDecimal, netProfit[0].Kind)
}

func TestNewRowSourceInventoryUsesCrossTableScale(t *testing.T) {
	dists := loadFixtureDistributions(t)
	sc := sampleScale()
	raw, schema, ok := NewRowSource("inventory", 1.0, "a pool ", dists, sc)
	require.True(t, ok)
	require.Equal(t, InventorySchema, schema)

	source := raw.(*rowSource)
	require.Equal(t, int64(261)*sc.ItemCount*sc.WarehouseCount, source.TotalRows(), "261 weekly snapshots x item count x warehouse count")
}

func TestNewRowSourceStoreEncodesAddressFields(t *testing.T) {
	dists := loadFixtureDistributions(t)
	raw, schema, ok := NewRowSource("store", 1.0, "a pool ", dists, sampleScale())
	require.True(t, ok)
	require.Equal(t, StoreSchema, schema)

	source := raw.(*rowSource)
	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(1, b))
	streetName := b.Finish(schema.IndexOf("s_street_name")).([]column.Value)
	require.Len(t, streetName, 1)
	require.False(t, streetName[0].Null)
}
