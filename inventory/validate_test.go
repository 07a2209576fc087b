package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/inventory-service/models"
)

func violatedFields(t *testing.T, err error) []string {
	t.Helper()
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	fields := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		fields[i] = f.Field
	}
	return fields
}

func TestCategoryInputValidate(t *testing.T) {
	testCases := []struct {
		name           string
		input          CategoryInput
		expectedFields []string
	}{
		{
			name:  "Valid input",
			input: CategoryInput{Code: "AGD-01", Name: "Appliances", Description: "Household"},
		},
		{
			name:  "Description is optional",
			input: CategoryInput{Code: "AGD-01", Name: "Appliances"},
		},
		{
			name:           "Missing code",
			input:          CategoryInput{Name: "Appliances"},
			expectedFields: []string{"code"},
		},
		{
			name:           "All required fields missing are reported together",
			input:          CategoryInput{Description: "only a description"},
			expectedFields: []string{"code", "name"},
		},
		{
			name:           "Whitespace-only counts as empty",
			input:          CategoryInput{Code: "  ", Name: "\t"},
			expectedFields: []string{"code", "name"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if len(tc.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expectedFields, violatedFields(t, err))
		})
	}
}

func TestCategoryInputValidateTrims(t *testing.T) {
	in := CategoryInput{Code: " AGD-01 ", Name: " Appliances ", Description: " Household "}

	assert.NoError(t, in.Validate())
	assert.Equal(t, "AGD-01", in.Code)
	assert.Equal(t, "Appliances", in.Name)
	assert.Equal(t, "Household", in.Description)
}

func TestProductInputValidate(t *testing.T) {
	testCases := []struct {
		name           string
		input          ProductInput
		expectedFields []string
	}{
		{
			name:  "Valid input",
			input: ProductInput{Name: "Kettle", Quantity: 3, UnitPrice: decimal.NewFromFloat(19.99), CategoryID: 1},
		},
		{
			name:  "Zero quantity and zero price are fine",
			input: ProductInput{Name: "Kettle", CategoryID: 1},
		},
		{
			name:           "Negative quantity is rejected, not clamped",
			input:          ProductInput{Name: "Kettle", Quantity: -1, UnitPrice: decimal.NewFromFloat(19.99), CategoryID: 1},
			expectedFields: []string{"quantity"},
		},
		{
			name:           "Negative price is rejected",
			input:          ProductInput{Name: "Kettle", UnitPrice: decimal.NewFromFloat(-0.01), CategoryID: 1},
			expectedFields: []string{"unit_price"},
		},
		{
			name:           "Every violation reported at once",
			input:          ProductInput{Name: "  ", Quantity: -2, UnitPrice: decimal.NewFromFloat(-1)},
			expectedFields: []string{"name", "quantity", "unit_price", "category_id"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if len(tc.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expectedFields, violatedFields(t, err))
		})
	}
}
