// Package text implements the string- and text-generation primitives
// shared by every suite's row generators: fixed-alphabet random strings,
// distribution-weighted word/phrase picks, phone numbers, retail prices,
// date arithmetic, and the TPC-H grammar-driven comment text pool.
package text

import (
	"strconv"
	"strings"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
)

// alphaNum is dbgen's fixed 64-symbol alphabet: each 6-bit nibble of a
// drawn 31-bit integer indexes one character, so five symbols are carved
// out of every stream draw before a new one is needed.
const alphaNum = "0123456789abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ,"

// vstrLow and vstrHigh bound a variable-length string's actual length as a
// fraction of its declared average, matching dbgen's V-string sizing.
const (
	vstrLow  = 0.4
	vstrHigh = 1.6
)

// RandomString draws a uniform-length string in [minLen, maxLen] from
// dbgen's 64-symbol alphabet, consuming one stream draw per 5 characters
// (each draw yields five 6-bit symbols packed into its low 30 bits).
func RandomString(bank *prng.Bank, minLen, maxLen, streamIdx int) string {
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	length := bank.RandomInt(int64(minLen), int64(maxLen), streamIdx)
	if length < 0 {
		length = 0
	}
	out := make([]byte, length)
	var charInt int64
	for i := int64(0); i < length; i++ {
		if i%5 == 0 {
			charInt = bank.RandomInt(0, prng.MaxLong, streamIdx)
		}
		out[i] = alphaNum[charInt&077]
		charInt >>= 6
	}
	return string(out)
}

// VariableString draws a "V-string": a random-alphabet string whose length
// varies from 0.4x to 1.6x the declared average.
func VariableString(bank *prng.Bank, avgLen, streamIdx int) string {
	minLen := int(float64(avgLen) * vstrLow)
	maxLen := int(float64(avgLen) * vstrHigh)
	return RandomString(bank, minLen, maxLen, streamIdx)
}

// PickString draws a weighted pick from a TPC-H distribution and returns
// both the chosen text and its index (-1 if the distribution is empty).
func PickString(d *dist.TpchDistribution, bank *prng.Bank, streamIdx int) (string, int) {
	if d == nil || len(d.List) == 0 {
		return "", -1
	}
	idx := d.PickIndex(bank, streamIdx)
	if idx < 0 {
		return "", -1
	}
	return d.List[idx].Text, idx
}

// AggString draws `count` distinct entries from a distribution via a
// Fisher-Yates shuffle and joins them with a single space, reproducing
// dbgen's "segments" style comma-free word lists (e.g. part names built
// from colors).
func AggString(d *dist.TpchDistribution, count int, bank *prng.Bank, streamIdx int) string {
	if d == nil || len(d.List) == 0 || count <= 0 {
		return ""
	}
	size := len(d.List)
	if count > size {
		count = size
	}
	permute := make([]int, size)
	for i := range permute {
		permute[i] = i
	}
	for i := 0; i < size; i++ {
		source := bank.RandomInt(int64(i), int64(size-1), streamIdx)
		permute[i], permute[source] = permute[source], permute[i]
	}
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = d.List[permute[i]].Text
	}
	return strings.Join(parts, " ")
}

// nationsMax bounds the nation-index modulus GeneratePhone uses to build
// the country-code prefix of a generated phone number.
const nationsMax = 90

// GeneratePhone draws three stream values (area code, exchange, number)
// and formats them against nationIndex's country code as
// "CC-AAA-EEE-NNNN", TPC-H's fixed phone number shape.
func GeneratePhone(bank *prng.Bank, nationIndex int64, streamIdx int) string {
	acode := bank.RandomInt(100, 999, streamIdx)
	exchg := bank.RandomInt(100, 999, streamIdx)
	number := bank.RandomInt(1000, 9999, streamIdx)
	countryCode := 10 + nationIndex%nationsMax
	return strconv.FormatInt(countryCode, 10) + "-" +
		strconv.FormatInt(acode, 10) + "-" +
		strconv.FormatInt(exchg, 10) + "-" +
		strconv.FormatInt(number, 10)
}

// RetailPrice is a deterministic (non-random) function of the part's
// surrogate key, spreading list prices across a fixed range without an
// extra PRNG draw.
func RetailPrice(partKey int64) int64 {
	price := int64(90000)
	price += (partKey / 10) % 20001
	price += (partKey % 1000) * 100
	return price
}

// FormatTagNumber formats a dbgen "tag#padded-number" identifier, e.g.
// Manufacturer#3 or Supplier#000000042.
func FormatTagNumber(tag string, width int, number int64) string {
	digits := strconv.FormatInt(number, 10)
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return tag + digits
}
