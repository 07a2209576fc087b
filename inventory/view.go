package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/models"
)

// UnknownCategoryName labels a product whose category record no longer exists.
const UnknownCategoryName = "Unknown"

// ProductView is a product enriched with its category's display name.
type ProductView struct {
	ID           uint
	Name         string
	Quantity     int64
	UnitPrice    decimal.Decimal
	CategoryID   uint
	CategoryName string
}

// NewProductView maps one product to its view. A category deleted out-of-band
// resolves to the Unknown sentinel rather than a failure.
func NewProductView(p models.Product) ProductView {
	name := p.Category.Name
	if p.Category.ID == 0 && name == "" {
		name = UnknownCategoryName
	}
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		CategoryID:   p.CategoryID,
		CategoryName: name,
	}
}

func BuildViews(products []models.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views
}
