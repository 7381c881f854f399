// Package dist implements the distribution store (C3): the TPC-H text
// ".dst" format and the TPC-DS binary ".idx" / tree-text ".dst" formats,
// plus the weighted and indexed lookups every row generator draws from.
package dist

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/starschema/benchgen/internal/prng"
)

// TpchEntry is one row of a TPC-H distribution: display text plus the
// running prefix-sum weight (not the entry's own weight) that the source
// format stores, so a weighted pick can binary/linear-scan directly.
type TpchEntry struct {
	Text   string
	Weight int64
}

// TpchDistribution is a named, ordered TPC-H distribution table.
type TpchDistribution struct {
	Name string
	Max  int64
	List []TpchEntry
}

// TpchStore holds every distribution parsed from one or more .dst sources,
// keyed by lowercase name.
type TpchStore struct {
	byName map[string]*TpchDistribution
}

func NewTpchStore() *TpchStore {
	return &TpchStore{byName: make(map[string]*TpchDistribution)}
}

// Find returns the named distribution, or nil if it was never loaded.
func (s *TpchStore) Find(name string) *TpchDistribution {
	return s.byName[strings.ToLower(name)]
}

// ParseTpchText parses the BEGIN/END ".dst" text format described in
// spec.md §4.3 into a TpchStore, case-insensitive and comment/blank-line
// tolerant, grounded on original_source's distribution.cc line-oriented
// scanner.
func ParseTpchText(r io.Reader) (*TpchStore, error) {
	store := NewTpchStore()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		inDist        bool
		currentName   string
		current       *TpchDistribution
		expectedCount int64 = -1
	)

	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !inDist {
			fields := strings.Fields(line)
			if len(fields) < 2 || !strings.EqualFold(fields[0], "begin") {
				continue
			}
			currentName = strings.ToLower(fields[1])
			current = &TpchDistribution{Name: currentName}
			expectedCount = -1
			inDist = true
			continue
		}

		if startsWithFold(line, "end") {
			if expectedCount >= 0 && int64(len(current.List)) != expectedCount {
				return nil, errors.Errorf("read error on dist '%s'", currentName)
			}
			if _, exists := store.byName[currentName]; exists {
				return nil, errors.Errorf("duplicate distribution: %s", currentName)
			}
			store.byName[currentName] = current
			inDist = false
			current = nil
			currentName = ""
			expectedCount = -1
			continue
		}

		bar := strings.IndexByte(line, '|')
		if bar < 0 {
			continue
		}
		token := line[:bar]
		weightText := strings.TrimSpace(line[bar+1:])
		weight, err := strconv.ParseInt(weightText, 10, 64)
		if err != nil {
			continue
		}

		if strings.EqualFold(token, "count") {
			if weight < 0 {
				return nil, errors.Errorf("invalid distribution count for %s", currentName)
			}
			expectedCount = weight
			current.List = make([]TpchEntry, 0, weight)
			continue
		}

		if expectedCount < 0 {
			return nil, errors.Errorf("distribution count missing for %s", currentName)
		}
		if int64(len(current.List)) >= expectedCount {
			return nil, errors.Errorf("distribution entry overflow for %s", currentName)
		}

		current.Max += weight
		current.List = append(current.List, TpchEntry{Text: token, Weight: current.Max})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning tpch distribution text")
	}
	if inDist {
		return nil, errors.Errorf("unterminated distribution: %s", currentName)
	}
	return store, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, "\r\n")
}

func startsWithFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// PickIndex draws random_int(1, dist.Max, stream) and returns the 0-based
// index of the first entry whose prefix-sum weight is >= the draw (the
// weighted-pick law of spec.md §8 property 5).
func (d *TpchDistribution) PickIndex(bank *prng.Bank, streamIdx int) int {
	if len(d.List) == 0 || d.Max <= 0 {
		return -1
	}
	pick := bank.RandomInt(1, d.Max, streamIdx)
	idx := 0
	for d.List[idx].Weight < pick {
		idx++
	}
	return idx
}
