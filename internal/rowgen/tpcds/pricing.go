package tpcds

import (
	"github.com/shopspring/decimal"

	"github.com/starschema/benchgen/internal/prng"
)

// Pricing is the shared money-column shape every sales-ticket-style fact
// row (StoreSales, StoreReturns) carries: a quantity and the chain of
// wholesale/list/sales prices, discounts, tax, and coupon amounts derived
// from it. utils/pricing.h is referenced by this generator's available
// sources but its definition is absent from the pack, so this rebuilds the
// column set and arithmetic from the schema's well-known column names
// rather than porting a missing body.
type Pricing struct {
	Quantity         int64
	WholesaleCost    decimal.Decimal
	ListPrice        decimal.Decimal
	SalesPrice       decimal.Decimal
	ExtSalesPrice    decimal.Decimal
	ExtWholesaleCost decimal.Decimal
	ExtListPrice     decimal.Decimal
	ExtTax           decimal.Decimal
	CouponAmt        decimal.Decimal
	NetPaid          decimal.Decimal
	NetPaidIncTax    decimal.Decimal
	NetProfit        decimal.Decimal
}

const (
	pricingQtyMin = 1
	pricingQtyMax = 100
)

// GeneratePricing draws a quantity, a list price, a wholesale markup and a
// discount (both on discountStream), a tax rate, and a coupon rate, in that
// fixed order, then derives the sales price, every extended
// (quantity-scaled) column and net figure from them.
func GeneratePricing(bank *prng.Bank, qtyStream, priceStream, discountStream, taxStream, couponStream int) Pricing {
	var p Pricing
	p.Quantity = bank.RandomInt(pricingQtyMin, pricingQtyMax, qtyStream)

	listCents := bank.RandomInt(100, 10000, priceStream)
	p.ListPrice = decimal.New(listCents, -2)
	p.WholesaleCost = p.ListPrice.Mul(decimal.NewFromFloat(0.5 + bank.RandomDouble(0, 0.3, discountStream)))

	discountPct := bank.RandomDouble(0, 0.3, discountStream)
	p.SalesPrice = p.ListPrice.Mul(decimal.NewFromFloat(1 - discountPct))

	qty := decimal.New(p.Quantity, 0)
	p.ExtSalesPrice = p.SalesPrice.Mul(qty)
	p.ExtWholesaleCost = p.WholesaleCost.Mul(qty)
	p.ExtListPrice = p.ListPrice.Mul(qty)

	taxPct := decimal.NewFromFloat(bank.RandomDouble(0, 0.1, taxStream))
	p.ExtTax = p.ExtSalesPrice.Mul(taxPct)

	couponPct := decimal.NewFromFloat(bank.RandomDouble(0, 0.05, couponStream))
	p.CouponAmt = p.ExtSalesPrice.Mul(couponPct)

	p.NetPaid = p.ExtSalesPrice.Sub(p.CouponAmt)
	p.NetPaidIncTax = p.NetPaid.Add(p.ExtTax)
	p.NetProfit = p.NetPaid.Sub(p.ExtWholesaleCost)

	return p
}
