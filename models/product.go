package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a stocked item.
// It includes a name, the on-hand quantity, a unit price and the category it
// belongs to. The category association is loaded with the product so views can
// show the category name without a second round trip.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"not null"`
	Quantity   int64           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID uint            `gorm:"not null"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (p *Product) TableName() string {
	return "products"
}
