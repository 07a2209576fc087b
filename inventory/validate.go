package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockroom/inventory-service/models"
)

// CategoryInput carries the fields of the category creation form.
type CategoryInput struct {
	Code        string
	Name        string
	Description string
}

// Validate trims the text fields and reports every violation at once, so the
// form can show all errors together instead of one per submit.
func (in *CategoryInput) Validate() error {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	var fields []models.FieldError
	if in.Code == "" {
		fields = append(fields, models.FieldError{Field: "code", Reason: "required"})
	}
	if in.Name == "" {
		fields = append(fields, models.FieldError{Field: "name", Reason: "required"})
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// ProductInput carries the fields of the product creation form.
type ProductInput struct {
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	CategoryID uint
}

func (in *ProductInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)

	var fields []models.FieldError
	if in.Name == "" {
		fields = append(fields, models.FieldError{Field: "name", Reason: "required"})
	}
	if in.Quantity < 0 {
		fields = append(fields, models.FieldError{Field: "quantity", Reason: "must not be negative"})
	}
	if in.UnitPrice.IsNegative() {
		fields = append(fields, models.FieldError{Field: "unit_price", Reason: "must not be negative"})
	}
	if in.CategoryID == 0 {
		fields = append(fields, models.FieldError{Field: "category_id", Reason: "required"})
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}
