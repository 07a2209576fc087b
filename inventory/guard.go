package inventory

import (
	"github.com/stockroom/inventory-service/models"
)

// DeleteCheck is the outcome of the category delete guard.
type DeleteCheck struct {
	Allowed    bool
	Dependents int
}

// CheckCategoryDelete decides whether a category may be deleted given the
// current product list. This is a read-then-decide check and is not atomic
// against concurrent inserts; the repository enforces the same rule inside a
// transaction, which is the decision that counts.
func CheckCategoryDelete(categoryID uint, products []models.Product) DeleteCheck {
	n := 0
	for _, p := range products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return DeleteCheck{Allowed: n == 0, Dependents: n}
}
