package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/models"
)

// Summary holds the aggregate metrics derived from the current product set.
type Summary struct {
	ProductCount int
	TotalUnits   int64
	TotalValue   decimal.Decimal
}

// Summarize computes the metrics in one pass over the product list. Money is
// accumulated as exact decimals so the displayed total matches a manual sum
// to the cent.
func Summarize(products []models.Product) Summary {
	s := Summary{
		ProductCount: len(products),
		TotalValue:   decimal.Zero,
	}
	for _, p := range products {
		s.TotalUnits += p.Quantity
		s.TotalValue = s.TotalValue.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity)))
	}
	return s
}
