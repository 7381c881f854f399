package dist

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ParseTpcdsTree parses the tree-text ".dst" source format: a sequence of
// #include, create, set types, set weights, set names, and add directives
// building up one distribution at a time. Filesystem access for #include
// goes through afero so callers can point the compiler at a real directory,
// an in-memory fixture, or a read-only overlay without this parser caring
// which.
func ParseTpcdsTree(fs afero.Fs, path string) (*TpcdsStore, error) {
	store := NewTpcdsStore()
	if err := parseTpcdsTreeInto(fs, path, store, map[string]bool{}); err != nil {
		return nil, err
	}
	return store, nil
}

func parseTpcdsTreeInto(fs afero.Fs, path string, store *TpcdsStore, visited map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visited[abs] {
		return errors.Errorf("circular #include of %s", path)
	}
	visited[abs] = true

	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening distribution source %s", path)
	}
	defer f.Close()

	var current *TpcdsDistribution
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#include")) {
			continue
		}
		tokens, err := tokenizeTreeLine(line)
		if err != nil {
			return errors.Wrapf(err, "in %s", path)
		}
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "#include":
			if len(tokens) != 2 {
				return errors.Errorf("%s: #include needs exactly one path", path)
			}
			includePath := filepath.Join(filepath.Dir(path), tokens[1])
			if err := parseTpcdsTreeInto(fs, includePath, store, visited); err != nil {
				return err
			}

		case "create":
			if len(tokens) != 2 {
				return errors.Errorf("%s: create needs exactly one distribution name", path)
			}
			if current != nil {
				if err := store.add(current); err != nil {
					return err
				}
			}
			current = &TpcdsDistribution{Name: tokens[1]}

		case "set":
			if current == nil {
				return errors.Errorf("%s: 'set' outside of a create block", path)
			}
			if len(tokens) < 2 {
				return errors.Errorf("%s: malformed 'set' directive", path)
			}
			switch strings.ToLower(tokens[1]) {
			case "types":
				current.Types = append([]string(nil), tokens[2:]...)
			case "names":
				current.Names = append([]string(nil), tokens[2:]...)
			case "weights":
				for _, wsName := range tokens[2:] {
					current.WeightSets = append(current.WeightSets, TpcdsWeightSet{Name: wsName})
				}
			default:
				return errors.Errorf("%s: unknown 'set %s' directive", path, tokens[1])
			}

		case "add":
			if current == nil {
				return errors.Errorf("%s: 'add' outside of a create block", path)
			}
			if err := addTreeEntry(current, tokens[1:]); err != nil {
				return errors.Wrapf(err, "in %s", path)
			}

		default:
			return errors.Errorf("%s: unrecognized directive %q", path, tokens[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scanning %s", path)
	}
	if current != nil {
		if err := store.add(current); err != nil {
			return err
		}
	}
	return nil
}

// addTreeEntry splits a row's tokens into the declared type-value fields
// followed by one weight per declared weight set, matching the column
// order 'set types'/'set weights' established for the distribution.
func addTreeEntry(d *TpcdsDistribution, fields []string) error {
	numTypes := len(d.Types)
	numWeights := len(d.WeightSets)
	if len(fields) != numTypes+numWeights {
		return errors.Errorf("distribution %s: add has %d fields, want %d types + %d weights",
			d.Name, len(fields), numTypes, numWeights)
	}

	values := make([]TpcdsValue, numTypes)
	for i := 0; i < numTypes; i++ {
		values[i] = coerceTreeValue(d.Types[i], fields[i])
	}
	d.Entries = append(d.Entries, TpcdsEntry{Values: values})

	for i := 0; i < numWeights; i++ {
		w, err := strconv.ParseInt(fields[numTypes+i], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "distribution %s: weight field %d", d.Name, i)
		}
		d.WeightSets[i].Weights = append(d.WeightSets[i].Weights, w)
	}
	return nil
}

func coerceTreeValue(typeName, field string) TpcdsValue {
	if strings.EqualFold(typeName, "int") {
		if n, err := strconv.ParseInt(field, 10, 64); err == nil {
			return TpcdsValue{IsInt: true, Int: n}
		}
	}
	return TpcdsValue{Str: field}
}

// tokenizeTreeLine splits a directive line on whitespace while honoring
// double-quoted tokens, so distribution text containing spaces ("UNITED
// STATES") survives as one field.
func tokenizeTreeLine(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	haveToken := false

	flush := func() {
		if haveToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			haveToken = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			haveToken = true
		case c == ' ' || c == '\t':
			if inQuotes {
				cur.WriteByte(c)
			} else {
				flush()
			}
		default:
			cur.WriteByte(c)
			haveToken = true
		}
	}
	if inQuotes {
		return nil, errors.New("unterminated quoted token")
	}
	flush()
	return tokens, nil
}
