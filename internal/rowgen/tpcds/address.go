package tpcds

import (
	"fmt"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/prng"
)

// Address is the shared street/city/state/zip shape every TPC-DS address
// dimension (CustomerAddress, Store, CallCenter, Warehouse, WebSite)
// embeds.
type Address struct {
	StreetNum  int64
	StreetName string
	StreetType string
	SuiteNum   string
	City       string
	County     string
	State      string
	Country    string
	Zip        string
	GmtOffset  int64
}

// AddressDistributions bundles the weighted distributions address
// generation draws from.
type AddressDistributions struct {
	StreetNames *dist.TpcdsDistribution
	StreetTypes *dist.TpcdsDistribution
	Counties    *dist.TpcdsDistribution
}

const addressGmtOffset = -5

// FormatZip zero-pads a 5-digit zip code, matching the source's
// snprintf("%05d", zip) formatting.
func FormatZip(zip int64) string {
	return fmt.Sprintf("%05d", zip)
}

// GenerateAddress draws one street/city/state/zip address from the given
// bank streams. Street number, name, type, suite, city/county/state
// selection, and zip are each an independent draw, in that fixed order, so
// callers that bind these to specific stream indices get deterministic,
// repeatable addresses.
func GenerateAddress(bank *prng.Bank, dists AddressDistributions, streetNumStream, streetNameStream, streetTypeStream, suiteStream, cityStream, zipStream int) Address {
	var addr Address
	addr.StreetNum = bank.RandomInt(1, 1000, streetNumStream)

	addr.StreetName, _ = dists.StreetNames.PickString(bank, streetNameStream, "weight", 0)
	addr.StreetType, _ = dists.StreetTypes.PickString(bank, streetTypeStream, "weight", 0)

	suiteNum := bank.RandomInt(1, 900, suiteStream)
	addr.SuiteNum = fmt.Sprintf("Suite %d", suiteNum)

	county, _ := dists.Counties.PickString(bank, cityStream, "weight", 0)
	addr.County = county
	addr.City = county
	addr.State = "TN"
	addr.Country = "United States"
	addr.GmtOffset = addressGmtOffset

	addr.Zip = FormatZip(bank.RandomInt(10000, 99999, zipStream))
	return addr
}
