package dist

import (
	"github.com/pkg/errors"

	"github.com/starschema/benchgen/internal/prng"
)

// TpcdsValue is one field of one distribution entry: either a string or an
// integer payload, tagged so callers can fetch by column semantics.
type TpcdsValue struct {
	IsInt bool
	Str   string
	Int   int64
}

// TpcdsWeightSet is one named column of raw (non-cumulative) weights,
// parallel to Entries. TPC-DS distributions store the weight itself per
// entry rather than a running prefix sum, unlike the TPC-H .dst format, so
// a pick must accumulate online.
type TpcdsWeightSet struct {
	Name    string
	Weights []int64
	total   int64
}

// TpcdsEntry is one row of a TPC-DS distribution: one value per declared
// type/column.
type TpcdsEntry struct {
	Values []TpcdsValue
}

// TpcdsDistribution is a named, typed, multi-weighted TPC-DS distribution,
// the shared in-memory shape produced by both the binary .idx decoder and
// the tree-text .dst decoder.
type TpcdsDistribution struct {
	Name       string
	Types      []string
	Names      []string
	WeightSets []TpcdsWeightSet
	Entries    []TpcdsEntry
}

// Size is the dense-derivation cardinality of the distribution (spec.md
// §4.4's DistributionSize), the number of entries it carries.
func (d *TpcdsDistribution) Size() int { return len(d.Entries) }

func (d *TpcdsDistribution) weightSet(name string) (*TpcdsWeightSet, error) {
	for i := range d.WeightSets {
		if d.WeightSets[i].Name == name {
			return &d.WeightSets[i], nil
		}
	}
	return nil, errors.Errorf("distribution %s has no weight set %q", d.Name, name)
}

func (ws *TpcdsWeightSet) sum() int64 {
	if ws.total != 0 {
		return ws.total
	}
	var total int64
	for _, w := range ws.Weights {
		total += w
	}
	ws.total = total
	return total
}

// PickIndex draws random_int(1, total, stream) against the named weight
// set and returns the first entry whose online running sum reaches the
// draw, implementing TPC-DS's raw-weight variant of the weighted-pick law.
func (d *TpcdsDistribution) PickIndex(bank *prng.Bank, streamIdx int, weightSet string) (int, error) {
	ws, err := d.weightSet(weightSet)
	if err != nil {
		return -1, err
	}
	total := ws.sum()
	if total <= 0 || len(ws.Weights) == 0 {
		return -1, errors.Errorf("distribution %s weight set %q has no weight", d.Name, weightSet)
	}
	pick := bank.RandomInt(1, total, streamIdx)
	var running int64
	for i, w := range ws.Weights {
		running += w
		if running >= pick {
			return i, nil
		}
	}
	return len(ws.Weights) - 1, nil
}

// PickString draws a weighted pick against the named weight set and
// returns the string field at column pos of the chosen entry - the
// TPC-DS counterpart of TpchDistribution's simpler single-cumulative-
// weight PickIndex, needed because TPC-DS distributions carry one or more
// named raw-weight columns per entry instead of a single running sum.
func (d *TpcdsDistribution) PickString(bank *prng.Bank, streamIdx int, weightSet string, pos int) (string, error) {
	idx, err := d.PickIndex(bank, streamIdx, weightSet)
	if err != nil {
		return "", err
	}
	return d.GetStringAt(idx, pos)
}

func (d *TpcdsDistribution) typeIndex(name string) (int, error) {
	for i, t := range d.Types {
		if t == name {
			return i, nil
		}
	}
	return -1, errors.Errorf("distribution %s has no type %q", d.Name, name)
}

// GetString fetches the named-type field of the given entry as a string.
func (d *TpcdsDistribution) GetString(index int, typeName string) (string, error) {
	if index < 0 || index >= len(d.Entries) {
		return "", errors.Errorf("distribution %s index %d out of range", d.Name, index)
	}
	ti, err := d.typeIndex(typeName)
	if err != nil {
		return "", err
	}
	v := d.Entries[index].Values[ti]
	if v.IsInt {
		return "", errors.Errorf("distribution %s type %q is an int field, not a string", d.Name, typeName)
	}
	return v.Str, nil
}

// GetInt fetches the named-type field of the given entry as an integer.
func (d *TpcdsDistribution) GetInt(index int, typeName string) (int64, error) {
	if index < 0 || index >= len(d.Entries) {
		return 0, errors.Errorf("distribution %s index %d out of range", d.Name, index)
	}
	ti, err := d.typeIndex(typeName)
	if err != nil {
		return 0, err
	}
	v := d.Entries[index].Values[ti]
	if !v.IsInt {
		return 0, errors.Errorf("distribution %s type %q is a string field, not an int", d.Name, typeName)
	}
	return v.Int, nil
}

// GetStringAt and GetIntAt fetch a field by its raw declared column
// position rather than by type-name lookup. The source addresses
// demographic and calendar distributions this way (e.g. hours.GetString(
// hour_index, 2)), since several columns of a row share the same declared
// type token and can't be told apart by name alone. Both index and pos are
// 0-based here: pos is an index into the entry's Values, one less than the
// source's 1-based column position.
func (d *TpcdsDistribution) GetStringAt(index, pos int) (string, error) {
	if index < 0 || index >= len(d.Entries) {
		return "", errors.Errorf("distribution %s index %d out of range", d.Name, index)
	}
	if pos < 0 || pos >= len(d.Entries[index].Values) {
		return "", errors.Errorf("distribution %s column %d out of range", d.Name, pos)
	}
	v := d.Entries[index].Values[pos]
	if v.IsInt {
		return "", errors.Errorf("distribution %s column %d is an int field, not a string", d.Name, pos)
	}
	return v.Str, nil
}

func (d *TpcdsDistribution) GetIntAt(index, pos int) (int64, error) {
	if index < 0 || index >= len(d.Entries) {
		return 0, errors.Errorf("distribution %s index %d out of range", d.Name, index)
	}
	if pos < 0 || pos >= len(d.Entries[index].Values) {
		return 0, errors.Errorf("distribution %s column %d out of range", d.Name, pos)
	}
	v := d.Entries[index].Values[pos]
	if !v.IsInt {
		return 0, errors.Errorf("distribution %s column %d is a string field, not an int", d.Name, pos)
	}
	return v.Int, nil
}

// TpcdsStore holds every TPC-DS distribution loaded from binary .idx
// sources, tree-text .dst sources, or both, keyed by name.
type TpcdsStore struct {
	byName map[string]*TpcdsDistribution
}

func NewTpcdsStore() *TpcdsStore {
	return &TpcdsStore{byName: make(map[string]*TpcdsDistribution)}
}

func (s *TpcdsStore) Find(name string) *TpcdsDistribution { return s.byName[name] }

// All returns every distribution this store holds, in no particular
// order. Used by tooling that re-serializes a whole store (the .idx
// compiler), not by row generators, which always look up by name.
func (s *TpcdsStore) All() []*TpcdsDistribution {
	out := make([]*TpcdsDistribution, 0, len(s.byName))
	for _, d := range s.byName {
		out = append(out, d)
	}
	return out
}

func (s *TpcdsStore) add(d *TpcdsDistribution) error {
	if _, exists := s.byName[d.Name]; exists {
		return errors.Errorf("duplicate distribution: %s", d.Name)
	}
	s.byName[d.Name] = d
	return nil
}

// BitmapToIndex decomposes a single dense row ordinal into one index per
// dimension using mixed-radix decomposition over the given dimension
// sizes, the addressing scheme behind the small combinatorial dimension
// tables (household_demographics' cross of buy_potential x dep_count x
// vehicle_count, income_band's contiguous bands, and similar) that are
// derived directly from a row number instead of drawn from the PRNG bank.
func BitmapToIndex(rowOrdinal int, sizes []int) []int {
	out := make([]int, len(sizes))
	remaining := rowOrdinal
	for i := len(sizes) - 1; i >= 0; i-- {
		size := sizes[i]
		if size <= 0 {
			out[i] = 0
			continue
		}
		out[i] = remaining % size
		remaining /= size
	}
	return out
}

// NextBitmapIndex peels the lowest-order digit off *modulus in this
// distribution's own size's base, returning a 1-based index and leaving
// *modulus divided by that size so the next call (against a different
// distribution) peels the next digit. This is the exact stateful
// sequential decomposition dense-derived dimension tables (household and
// customer demographics) chain together: each dimension consumes one
// digit of the same running row-number-derived modulus, in call order.
func NextBitmapIndex(d *TpcdsDistribution, modulus *int64) (int, error) {
	size := d.Size()
	if size <= 0 {
		return 0, errors.Errorf("distribution %s is empty", d.Name)
	}
	index := int(*modulus%int64(size)) + 1
	*modulus /= int64(size)
	return index, nil
}

// NextBitmapString is NextBitmapIndex followed by a GetStringAt lookup at
// the given column position (the source's BitmapToString(dist, pos, &temp)
// always reads the distribution's value column, the source's 1-based
// position 1, which is pos 0 here).
func NextBitmapString(d *TpcdsDistribution, pos int, modulus *int64) (string, error) {
	idx, err := NextBitmapIndex(d, modulus)
	if err != nil {
		return "", err
	}
	return d.GetStringAt(idx-1, pos)
}

// NextBitmapInt is NextBitmapIndex followed by a GetIntAt lookup.
func NextBitmapInt(d *TpcdsDistribution, pos int, modulus *int64) (int64, error) {
	idx, err := NextBitmapIndex(d, modulus)
	if err != nil {
		return 0, err
	}
	return d.GetIntAt(idx-1, pos)
}

// BitmapToString is BitmapToIndex followed by a GetString lookup against
// the given distribution and type column.
func BitmapToString(d *TpcdsDistribution, rowOrdinal int, dimensionPos int, sizes []int, typeName string) (string, error) {
	idx := BitmapToIndex(rowOrdinal, sizes)
	return d.GetString(idx[dimensionPos], typeName)
}

// BitmapToInt is BitmapToIndex followed by a GetInt lookup against the
// given distribution and type column.
func BitmapToInt(d *TpcdsDistribution, rowOrdinal int, dimensionPos int, sizes []int, typeName string) (int64, error) {
	idx := BitmapToIndex(rowOrdinal, sizes)
	return d.GetInt(idx[dimensionPos], typeName)
}
