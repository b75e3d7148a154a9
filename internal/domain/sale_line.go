package domain

import "github.com/shopspring/decimal"

// SaleLine — строка продажи: количество конкретного продукта каталога,
// рассчитанная скидка и итог по строке. Цена берётся из канонической
// записи каталога, а не из запроса клиента.
type SaleLine struct {
	Product   *Product
	Quantity  int
	Discount  decimal.Decimal
	LineTotal decimal.Decimal
}

func NewSaleLine(product *Product, quantity int) SaleLine {
	return SaleLine{
		Product:  product,
		Quantity: quantity,
	}
}

// ApplyPricing рассчитывает скидку и итог строки по действующим порогам.
func (l *SaleLine) ApplyPricing() {
	l.Discount, l.LineTotal = PriceLine(l.Quantity, l.Product.UnitPrice)
}
