package booking

import "github.com/shopspring/decimal"

// EffectivePrice applies a voucher to base. The discount is capped by
// maxDiscount and by base itself, and is dropped entirely when base is below
// minAppValue; that last check runs after capping.
func EffectivePrice(base, discountPercent, maxDiscount, minAppValue decimal.Decimal) decimal.Decimal {
	discount := base.Mul(discountPercent)
	discount = decimal.Min(discount, maxDiscount)
	discount = decimal.Min(discount, base)
	if base.LessThan(minAppValue) {
		discount = decimal.Zero
	}
	return base.Sub(discount)
}
