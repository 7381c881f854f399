package dist

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// The compiled ".idx" format is a trailer-indexed binary encoding of one or
// more TpcdsDistribution values, designed so a compiler (cmd/tpcds-gen-idx)
// can append distributions sequentially and only rewrite the trailer at the
// very end. Every integer is big-endian: counts, lengths, tags and offsets
// are int32; weights and int values are int64.
//
// Layout:
//
//	[distribution body]*        (one per distribution, in declaration order)
//	[trailer]
//	int32  trailerOffset         (last 4 bytes of the file)
//
// Each distribution body is:
//
//	int32 numTypes;   string  types[numTypes]
//	int32 numNames;   string  names[numNames]
//	int32 numWeightSets
//	  { string name; int32 numWeights; int64 weights[numWeights] } * numWeightSets
//	int32 numEntries
//	  { value[numTypes] } * numEntries   // value = int32 tag(0=str,1=int); payload
//
// The trailer is:
//
//	int32 numDistributions
//	  { string name; int32 bodyOffset } * numDistributions
const idxStringTag = 0xA5

func writeIdxString(w *bytes.Buffer, s string) {
	binary.Write(w, binary.BigEndian, int32(len(s)))
	w.WriteString(s)
}

func readIdxString(r *bytes.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.New("negative string length in idx stream")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// EncodeTpcdsIdx serializes a set of distributions into the binary .idx
// format, the counterpart consumed by cmd/tpcds-gen-idx when compiling a
// tree-text .dst source down to the binary form row generators load at
// runtime.
func EncodeTpcdsIdx(dists []*TpcdsDistribution) ([]byte, error) {
	var body bytes.Buffer
	offsets := make([]int32, len(dists))

	for i, d := range dists {
		offsets[i] = int32(body.Len())

		binary.Write(&body, binary.BigEndian, int32(len(d.Types)))
		for _, t := range d.Types {
			writeIdxString(&body, t)
		}
		binary.Write(&body, binary.BigEndian, int32(len(d.Names)))
		for _, n := range d.Names {
			writeIdxString(&body, n)
		}

		binary.Write(&body, binary.BigEndian, int32(len(d.WeightSets)))
		for _, ws := range d.WeightSets {
			writeIdxString(&body, ws.Name)
			binary.Write(&body, binary.BigEndian, int32(len(ws.Weights)))
			for _, w := range ws.Weights {
				binary.Write(&body, binary.BigEndian, w)
			}
		}

		binary.Write(&body, binary.BigEndian, int32(len(d.Entries)))
		for _, e := range d.Entries {
			if len(e.Values) != len(d.Types) {
				return nil, errors.Errorf("distribution %s: entry has %d values, want %d", d.Name, len(e.Values), len(d.Types))
			}
			for _, v := range e.Values {
				if v.IsInt {
					binary.Write(&body, binary.BigEndian, int32(1))
					binary.Write(&body, binary.BigEndian, v.Int)
				} else {
					binary.Write(&body, binary.BigEndian, int32(0))
					writeIdxString(&body, v.Str)
				}
			}
		}
	}

	var trailer bytes.Buffer
	binary.Write(&trailer, binary.BigEndian, int32(len(dists)))
	for i, d := range dists {
		writeIdxString(&trailer, d.Name)
		binary.Write(&trailer, binary.BigEndian, offsets[i])
	}

	trailerOffset := int32(body.Len())
	body.Write(trailer.Bytes())
	binary.Write(&body, binary.BigEndian, trailerOffset)

	return body.Bytes(), nil
}

// DecodeTpcdsIdx parses the binary .idx format into a TpcdsStore.
func DecodeTpcdsIdx(data []byte) (*TpcdsStore, error) {
	if len(data) < 4 {
		return nil, errors.New("idx stream too short")
	}
	trailerOffset := int32(binary.BigEndian.Uint32(data[len(data)-4:]))
	if trailerOffset < 0 || int(trailerOffset) >= len(data)-4 {
		return nil, errors.New("idx stream has corrupt trailer offset")
	}

	trailerReader := bytes.NewReader(data[trailerOffset : len(data)-4])
	var numDists int32
	if err := binary.Read(trailerReader, binary.BigEndian, &numDists); err != nil {
		return nil, errors.Wrap(err, "reading idx trailer count")
	}

	type entryLoc struct {
		name   string
		offset int32
	}
	locs := make([]entryLoc, 0, numDists)
	for i := int32(0); i < numDists; i++ {
		name, err := readIdxString(trailerReader)
		if err != nil {
			return nil, errors.Wrap(err, "reading idx trailer entry name")
		}
		var offset int32
		if err := binary.Read(trailerReader, binary.BigEndian, &offset); err != nil {
			return nil, errors.Wrap(err, "reading idx trailer entry offset")
		}
		locs = append(locs, entryLoc{name: name, offset: offset})
	}

	store := NewTpcdsStore()
	for _, loc := range locs {
		if loc.offset < 0 || int(loc.offset) >= len(data) {
			return nil, errors.Errorf("distribution %s has corrupt offset", loc.name)
		}
		d, err := decodeTpcdsBody(bytes.NewReader(data[loc.offset:]), loc.name)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding distribution %s", loc.name)
		}
		if err := store.add(d); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func decodeTpcdsBody(r *bytes.Reader, name string) (*TpcdsDistribution, error) {
	d := &TpcdsDistribution{Name: name}

	var numTypes int32
	if err := binary.Read(r, binary.BigEndian, &numTypes); err != nil {
		return nil, err
	}
	d.Types = make([]string, numTypes)
	for i := range d.Types {
		s, err := readIdxString(r)
		if err != nil {
			return nil, err
		}
		d.Types[i] = s
	}

	var numNames int32
	if err := binary.Read(r, binary.BigEndian, &numNames); err != nil {
		return nil, err
	}
	d.Names = make([]string, numNames)
	for i := range d.Names {
		s, err := readIdxString(r)
		if err != nil {
			return nil, err
		}
		d.Names[i] = s
	}

	var numWeightSets int32
	if err := binary.Read(r, binary.BigEndian, &numWeightSets); err != nil {
		return nil, err
	}
	d.WeightSets = make([]TpcdsWeightSet, numWeightSets)
	for i := range d.WeightSets {
		wsName, err := readIdxString(r)
		if err != nil {
			return nil, err
		}
		var numWeights int32
		if err := binary.Read(r, binary.BigEndian, &numWeights); err != nil {
			return nil, err
		}
		weights := make([]int64, numWeights)
		for j := range weights {
			if err := binary.Read(r, binary.BigEndian, &weights[j]); err != nil {
				return nil, err
			}
		}
		d.WeightSets[i] = TpcdsWeightSet{Name: wsName, Weights: weights}
	}

	var numEntries int32
	if err := binary.Read(r, binary.BigEndian, &numEntries); err != nil {
		return nil, err
	}
	d.Entries = make([]TpcdsEntry, numEntries)
	for i := range d.Entries {
		values := make([]TpcdsValue, numTypes)
		for j := range values {
			var tag int32
			if err := binary.Read(r, binary.BigEndian, &tag); err != nil {
				return nil, err
			}
			if tag == 1 {
				var iv int64
				if err := binary.Read(r, binary.BigEndian, &iv); err != nil {
					return nil, err
				}
				values[j] = TpcdsValue{IsInt: true, Int: iv}
			} else {
				sv, err := readIdxString(r)
				if err != nil {
					return nil, err
				}
				values[j] = TpcdsValue{Str: sv}
			}
		}
		d.Entries[i] = TpcdsEntry{Values: values}
	}

	return d, nil
}
