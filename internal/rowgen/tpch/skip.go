package tpch

import "github.com/starschema/benchgen/internal/prng"

// SkipPart advances every stream Part's row draws touch by skipCount rows,
// letting a generator start at an arbitrary offset instead of always
// starting from row 0 and discarding unwanted rows.
func SkipPart(bank *prng.Bank, skipCount int64) {
	if skipCount <= 0 {
		return
	}
	for s := StreamPMfg; s <= StreamPCntr; s++ {
		bank.AdvanceStream(s, skipCount)
	}
	bank.AdvanceStream(StreamPCmnt, bank.SeedBoundary(StreamPCmnt)*skipCount)
	bank.AdvanceStream(StreamPName, int64(MaxColor)*skipCount)
}

// SkipPartSupp advances PartSupp's streams, which draw SuppPerPart times
// per part row.
func SkipPartSupp(bank *prng.Bank, skipCount int64) {
	if skipCount <= 0 {
		return
	}
	for j := 0; j < SuppPerPart; j++ {
		bank.AdvanceStream(StreamPsQty, skipCount)
		bank.AdvanceStream(StreamPsScst, skipCount)
		bank.AdvanceStream(StreamPsCmnt, bank.SeedBoundary(StreamPsCmnt)*skipCount)
	}
}

// SkipSupplier advances every stream the Supplier generator draws from,
// including its "better business bureau" comment-injection streams.
func SkipSupplier(bank *prng.Bank, skipCount int64) {
	if skipCount <= 0 {
		return
	}
	bank.AdvanceStream(StreamSNtrg, skipCount)
	bank.AdvanceStream(StreamSPhne, 3*skipCount)
	bank.AdvanceStream(StreamSAbal, skipCount)
	bank.AdvanceStream(StreamSAddr, bank.SeedBoundary(StreamSAddr)*skipCount)
	bank.AdvanceStream(StreamSCmnt, bank.SeedBoundary(StreamSCmnt)*skipCount)
	bank.AdvanceStream(StreamBbbCmnt, skipCount)
	bank.AdvanceStream(StreamBbbJnk, skipCount)
	bank.AdvanceStream(StreamBbbOffset, skipCount)
	bank.AdvanceStream(StreamBbbType, skipCount)
}

// SkipCustomer advances every stream the Customer generator draws from.
func SkipCustomer(bank *prng.Bank, skipCount int64) {
	if skipCount <= 0 {
		return
	}
	bank.AdvanceStream(StreamCAddr, bank.SeedBoundary(StreamCAddr)*skipCount)
	bank.AdvanceStream(StreamCCmnt, bank.SeedBoundary(StreamCCmnt)*skipCount)
	bank.AdvanceStream(StreamCNtrg, skipCount)
	bank.AdvanceStream(StreamCPhne, 3*skipCount)
	bank.AdvanceStream(StreamCAbal, skipCount)
	bank.AdvanceStream(StreamCMseg, skipCount)
}

// SkipOrder advances every stream the Orders header draws from, not
// counting its child LineItem rows (see SkipLine).
func SkipOrder(bank *prng.Bank, skipCount int64) {
	if skipCount <= 0 {
		return
	}
	bank.AdvanceStream(StreamOLcnt, skipCount)
	bank.AdvanceStream(StreamOCkey, skipCount)
	bank.AdvanceStream(StreamOCmnt, bank.SeedBoundary(StreamOCmnt)*skipCount)
	bank.AdvanceStream(StreamOSupp, skipCount)
	bank.AdvanceStream(StreamOClrk, skipCount)
	bank.AdvanceStream(StreamOPrio, skipCount)
	bank.AdvanceStream(StreamOOdate, skipCount)
}

// SkipLine advances LineItem's streams by skipCount complete orders' worth
// of line items (always OLcntMax potential lines per order, whether or not
// they were all emitted). When child is true it also advances the two
// Orders-header streams LineItem reads per order (order date and line
// count), because a lineitem-only skip still consumes its parent's draws.
func SkipLine(bank *prng.Bank, skipCount int64, child bool) {
	if skipCount <= 0 {
		return
	}
	commentPerLine := bank.SeedBoundary(StreamLCmnt) / OLcntMax
	if commentPerLine <= 0 {
		commentPerLine = 1
	}
	for j := 0; j < OLcntMax; j++ {
		for s := StreamLQty; s <= StreamLRflg; s++ {
			bank.AdvanceStream(s, skipCount)
		}
		bank.AdvanceStream(StreamLCmnt, commentPerLine*skipCount)
	}
	if child {
		bank.AdvanceStream(StreamOOdate, skipCount)
		bank.AdvanceStream(StreamOLcnt, skipCount)
	}
}
