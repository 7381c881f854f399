// Package tpcds implements the TPC-DS row generators: the deterministic,
// draw-free dimension rows (TimeDim, IncomeBand, HouseholdDemographics,
// CustomerDemographics, CatalogPage), the slowly-changing Store dimension,
// the StoreSales/StoreReturns sales-ticket pair, and the dense
// Inventory cross-product.
package tpcds

// MakeBusinessKey formats a surrogate key as its TPC-DS business-key id
// string. The reference generator's own id-formatting routine lives outside
// the sources available to this module (it is declared but never defined in
// any file under this pack), so this reconstructs the documented contract -
// a fixed-width, deterministic function of n - as a 16-character uppercase
// code, matching the width every *_id column in the schema reserves.
func MakeBusinessKey(n int64) string {
	const width = 16
	var buf [width]byte
	v := n
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('A' + v%26)
		v /= 26
	}
	return string(buf[:])
}
