package rowgen

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/starschema/benchgen/internal/common/column"
	"github.com/starschema/benchgen/internal/dist"
)

const (
	tpchFixturePath  = "../dist/testdata/tpch/dists.dst"
	tpcdsFixturePath = "../dist/testdata/tpcds/dists.dst"
)

func loadTpchFixture(t *testing.T) *dist.TpchStore {
	t.Helper()
	f, err := os.Open(tpchFixturePath)
	require.NoError(t, err)
	defer f.Close()
	store, err := dist.ParseTpchText(f)
	require.NoError(t, err)
	return store
}

func loadTpcdsFixture(t *testing.T) *dist.TpcdsStore {
	t.Helper()
	store, err := dist.ParseTpcdsTree(afero.NewOsFs(), tpcdsFixturePath)
	require.NoError(t, err)
	return store
}

func fixtureStores(t *testing.T) Stores {
	t.Helper()
	tpchStore := loadTpchFixture(t)
	return Stores{
		Tpch:  tpchStore,
		Tpcds: loadTpcdsFixture(t),
		Pool:  BuildPool(tpchStore),
	}
}

func TestOpenUnknownSuite(t *testing.T) {
	_, _, err := Open(Suite("not_a_suite"), "nation", 1.0, fixtureStores(t), DefaultScale(1.0))
	require.Error(t, err)
}

func TestOpenUnknownTableForSuite(t *testing.T) {
	_, _, err := Open(SuiteTPCH, "not_a_table", 1.0, fixtureStores(t), DefaultScale(1.0))
	require.Error(t, err)
}

func TestOpenTpchRequiresTpchStore(t *testing.T) {
	stores := fixtureStores(t)
	stores.Tpch = nil
	_, _, err := Open(SuiteTPCH, "nation", 1.0, stores, DefaultScale(1.0))
	require.Error(t, err)
}

func TestOpenTpcdsRequiresTpcdsStore(t *testing.T) {
	stores := fixtureStores(t)
	stores.Tpcds = nil
	_, _, err := Open(SuiteTPCDS, "income_band", 1.0, stores, DefaultScale(1.0))
	require.Error(t, err)
}

func TestOpenSsbRequiresTpchStore(t *testing.T) {
	stores := fixtureStores(t)
	stores.Tpch = nil
	_, _, err := Open(SuiteSSB, "supplier", 1.0, stores, DefaultScale(1.0))
	require.Error(t, err)
}

func TestOpenTpchNationRoundTrips(t *testing.T) {
	source, schema, err := Open(SuiteTPCH, "nation", 1.0, fixtureStores(t), DefaultScale(1.0))
	require.NoError(t, err)
	require.Equal(t, int64(25), source.TotalRows())

	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(0, b))
	nationKeys := b.Finish(0).([]column.Value)
	require.Equal(t, int64(1), nationKeys[0].Int64)
}

func TestOpenTpcdsIncomeBandRoundTrips(t *testing.T) {
	source, schema, err := Open(SuiteTPCDS, "income_band", 1.0, fixtureStores(t), DefaultScale(1.0))
	require.NoError(t, err)
	require.Greater(t, source.TotalRows(), int64(0))

	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(1, b))
	sks := b.Finish(0).([]column.Value)
	require.Equal(t, int64(1), sks[0].Int64)
}

func TestOpenSsbSupplierRoundTrips(t *testing.T) {
	source, schema, err := Open(SuiteSSB, "supplier", 1.0, fixtureStores(t), DefaultScale(1.0))
	require.NoError(t, err)
	require.Greater(t, source.TotalRows(), int64(0))

	b := column.NewMemoryBuilder(len(schema.Columns))
	require.NoError(t, source.Encode(1, b))
	suppKeys := b.Finish(0).([]column.Value)
	require.Equal(t, int64(1), suppKeys[0].Int64)
}

func TestDefaultScaleGrowsWithScaleFactor(t *testing.T) {
	small := DefaultScale(1.0)
	large := DefaultScale(10.0)
	require.Greater(t, large.ItemCount, small.ItemCount)
	require.Greater(t, large.CustomerCount, small.CustomerCount)
	require.Greater(t, large.WarehouseCount, small.WarehouseCount)
}

func TestBuildPoolIsStableAndNonEmpty(t *testing.T) {
	store := loadTpchFixture(t)
	first := BuildPool(store)
	second := BuildPool(store)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}
