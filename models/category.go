package models

// Category represents a product grouping.
// It includes a unique code, a human-readable name and an optional description.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description string
}

func (c *Category) TableName() string {
	return "categories"
}
