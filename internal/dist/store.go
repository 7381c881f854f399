package dist

import (
	"io"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Loader resolves and caches distribution sources from a filesystem,
// transparently decompressing zstd-packed resources. Row generators hold
// one Loader per process and call its Tpch/Tpcds accessors rather than
// re-parsing a source file on every table open.
type Loader struct {
	fs    afero.Fs
	tpch  *lru.Cache[string, *TpchStore]
	tpcds *lru.Cache[string, *TpcdsStore]
}

// NewLoader builds a Loader over fs, caching up to cacheSize distinct
// parsed stores of each format.
func NewLoader(fs afero.Fs, cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = 8
	}
	tpchCache, err := lru.New[string, *TpchStore](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "building tpch distribution cache")
	}
	tpcdsCache, err := lru.New[string, *TpcdsStore](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "building tpcds distribution cache")
	}
	return &Loader{fs: fs, tpch: tpchCache, tpcds: tpcdsCache}, nil
}

// openMaybeZstd opens path and, if it ends in ".zst", wraps it in a zstd
// decoder so the embedded resource can ship compressed without the callers
// of ParseTpchText/ParseTpcdsTree/DecodeTpcdsIdx needing to know.
func (l *Loader) openMaybeZstd(path string) (io.ReadCloser, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening distribution resource %s", path)
	}
	if len(path) < 4 || path[len(path)-4:] != ".zst" {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "opening zstd stream %s", path)
	}
	return zstdReadCloser{dec: dec, underlying: f}, nil
}

type zstdReadCloser struct {
	dec        *zstd.Decoder
	underlying afero.File
}

func (z zstdReadCloser) Read(p []byte) (int, error) { return z.dec.Read(p) }
func (z zstdReadCloser) Close() error {
	z.dec.Close()
	return z.underlying.Close()
}

// TpchFromFile loads and caches a TPC-H text distribution source.
func (l *Loader) TpchFromFile(path string) (*TpchStore, error) {
	if cached, ok := l.tpch.Get(path); ok {
		return cached, nil
	}
	r, err := l.openMaybeZstd(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	store, err := ParseTpchText(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing tpch distribution %s", path)
	}
	l.tpch.Add(path, store)
	return store, nil
}

// TpcdsIdxFromFile loads and caches a compiled TPC-DS binary distribution.
func (l *Loader) TpcdsIdxFromFile(path string) (*TpcdsStore, error) {
	if cached, ok := l.tpcds.Get(path); ok {
		return cached, nil
	}
	r, err := l.openMaybeZstd(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading tpcds distribution %s", path)
	}
	store, err := DecodeTpcdsIdx(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding tpcds distribution %s", path)
	}
	l.tpcds.Add(path, store)
	return store, nil
}

// TpcdsTreeFromFile loads and caches a TPC-DS tree-text distribution
// source, following #include directives relative to path's directory.
func (l *Loader) TpcdsTreeFromFile(path string) (*TpcdsStore, error) {
	if cached, ok := l.tpcds.Get(path); ok {
		return cached, nil
	}
	store, err := ParseTpcdsTree(l.fs, path)
	if err != nil {
		return nil, err
	}
	l.tpcds.Add(path, store)
	return store, nil
}
