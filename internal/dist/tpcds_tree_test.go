package dist

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestParseTpcdsTreeBasic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dists/gender.dst", []byte(`
create gender
set types varchar
set weights uniform
add "M" 1
add "F" 1
`), 0o644))

	store, err := ParseTpcdsTree(fs, "/dists/gender.dst")
	require.NoError(t, err)

	d := store.Find("gender")
	require.NotNil(t, d)
	require.Equal(t, 2, d.Size())
	v, err := d.GetString(1, "varchar")
	require.NoError(t, err)
	require.Equal(t, "F", v)
}

func TestParseTpcdsTreeIncludeAndInt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dists/root.dst", []byte(`
#include "child.dst"
create parent
set types int
set weights uniform
add 7 1
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/dists/child.dst", []byte(`
create child
set types int
set weights uniform
add 3 1
`), 0o644))

	store, err := ParseTpcdsTree(fs, "/dists/root.dst")
	require.NoError(t, err)

	child := store.Find("child")
	require.NotNil(t, child)
	v, err := child.GetInt(0, "int")
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	parent := store.Find("parent")
	require.NotNil(t, parent)
	v, err = parent.GetInt(0, "int")
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestParseTpcdsTreeRejectsFieldCountMismatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.dst", []byte(`
create bad
set types varchar varchar
set weights uniform
add "only one"
`), 0o644))

	_, err := ParseTpcdsTree(fs, "/bad.dst")
	require.Error(t, err)
}

func TestTokenizeTreeLineHonorsQuotes(t *testing.T) {
	tokens, err := tokenizeTreeLine(`add "UNITED STATES" 42`)
	require.NoError(t, err)
	require.Equal(t, []string{"add", "UNITED STATES", "42"}, tokens)
}

func TestTokenizeTreeLineRejectsUnterminatedQuote(t *testing.T) {
	_, err := tokenizeTreeLine(`add "oops`)
	require.Error(t, err)
}
