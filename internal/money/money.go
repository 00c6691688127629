// Package money converts user-entered decimal amounts into integer
// minor-unit (cent) values and derives the receipt totals. All rounding is
// half-up at the cent boundary; once amounts are in cents, everything is
// plain integer arithmetic so the subtotal+tax+shipping=total invariant
// holds exactly.
package money

import (
	"fmt"

	"receiptpro/internal/apperr"

	"github.com/shopspring/decimal"
)

// Amounts is the derived breakdown of a receipt, all values in cents except
// TaxRate which is stored as basis points (8.25% -> 825).
type Amounts struct {
	ProductPrice int64
	Quantity     int64
	TaxRate      int64
	Shipping     int64
	Subtotal     int64
	Tax          int64
	Total        int64
}

// Compute validates the decimal inputs and produces the minor-unit breakdown:
//
//	subtotal = round(price*100) * quantity
//	tax      = round(subtotal * taxRate / 100)
//	total    = subtotal + tax + shipping
//
// The same ranges are enforced at the HTTP boundary; they are re-checked here
// because the calculator is also reachable from the resend path and tests.
func Compute(price float64, quantity int64, taxRate float64, shipping float64) (Amounts, error) {
	if price < 0.01 {
		return Amounts{}, apperr.Validation("productPrice", "must be at least 0.01")
	}
	if quantity < 1 {
		return Amounts{}, apperr.Validation("quantity", "must be at least 1")
	}
	if taxRate < 0 || taxRate > 100 {
		return Amounts{}, apperr.Validation("taxRate", "must be between 0 and 100")
	}
	if shipping < 0 {
		return Amounts{}, apperr.Validation("shipping", "must not be negative")
	}

	priceCents := toCents(price)
	shippingCents := toCents(shipping)
	taxBP := toBasisPoints(taxRate)

	subtotal := priceCents * quantity
	// half-up on the basis-point product
	tax := (subtotal*taxBP + 5000) / 10000
	total := subtotal + tax + shippingCents

	return Amounts{
		ProductPrice: priceCents,
		Quantity:     quantity,
		TaxRate:      taxBP,
		Shipping:     shippingCents,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
	}, nil
}

// toCents rounds a decimal dollar amount to whole cents, half away from zero.
// decimal is used instead of float math so values like 19.99 land on 1999
// rather than 1998.9999....
func toCents(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}

func toBasisPoints(rate float64) int64 {
	return decimal.NewFromFloat(rate).Shift(2).Round(0).IntPart()
}

// FormatUSD renders cents as a display amount with exactly two decimals,
// e.g. 6992 -> "$69.92". Integer arithmetic only.
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
