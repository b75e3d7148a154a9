package domain

import "github.com/shopspring/decimal"

// MaxQuantityPerProduct — жёсткий потолок количества одного продукта в продаже.
// Строки с большим количеством отклоняются целиком, а не лишаются скидки.
const MaxQuantityPerProduct = 20

var (
	discountTenPercent    = decimal.NewFromFloat(0.10)
	discountTwentyPercent = decimal.NewFromFloat(0.20)
)

// DiscountFor возвращает долю скидки по количеству:
// до 4 единиц скидки нет, 4–9 единиц — 10%, 10–20 единиц — 20%.
func DiscountFor(quantity int) decimal.Decimal {
	switch {
	case quantity < 4:
		return decimal.Zero
	case quantity <= 9:
		return discountTenPercent
	case quantity <= MaxQuantityPerProduct:
		return discountTwentyPercent
	}

	// Количества свыше потолка до расчёта цены не доходят
	return decimal.Zero
}

// PriceLine возвращает долю скидки и итог строки:
// unitPrice * (1 - discount) * quantity.
func PriceLine(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	discount := DiscountFor(quantity)
	discounted := unitPrice.Mul(decimal.NewFromInt(1).Sub(discount))
	return discount, discounted.Mul(decimal.NewFromInt(int64(quantity)))
}
