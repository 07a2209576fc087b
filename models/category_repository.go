package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) Create(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{Resource: "category " + category.Code}
		}
		return &TransportError{Op: "create category", Err: err}
	}
	return nil
}

func (r *CategoriesRepository) GetAll(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, &TransportError{Op: "list categories", Err: err}
	}
	return categories, nil
}

// Delete removes a category only when no product references it. The dependent
// count and the delete run in one transaction so a concurrent product insert
// cannot slip between the check and the delete.
func (r *CategoriesRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&Product{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
			return &TransportError{Op: "count dependent products", Err: err}
		}
		if dependents > 0 {
			return &ConflictError{Resource: "category", Dependents: int(dependents)}
		}

		res := tx.Delete(&Category{}, id)
		if res.Error != nil {
			return &TransportError{Op: "delete category", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
