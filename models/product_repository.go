package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ProductFilters narrows the product listing. Zero values mean no filtering.
type ProductFilters struct {
	CategoryCode string
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUnknownCategory
		}
		return &TransportError{Op: "create product", Err: err}
	}

	// Load the association so the caller gets the denormalized name back
	// without a second repository call.
	err := r.db.WithContext(ctx).First(&product.Category, product.CategoryID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &TransportError{Op: "load product category", Err: err}
	}
	return nil
}

// GetAll returns every product with its category loaded. The dashboard
// aggregates over the full set, so no pagination here.
func (r *ProductsRepository) GetAll(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Preload("Category").Find(&products).Error; err != nil {
		return nil, &TransportError{Op: "list products", Err: err}
	}
	return products, nil
}

func (r *ProductsRepository) GetAllWithCategory(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if filters.CategoryCode != "" {
		query = query.Where("categories.code = ?", filters.CategoryCode)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, &TransportError{Op: "count products", Err: err}
	}

	// Apply pagination
	if err := query.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, &TransportError{Op: "list products", Err: err}
	}

	return products, total, nil
}

func (r *ProductsRepository) UpdateQuantity(ctx context.Context, id uint, quantity int64) error {
	if quantity < 0 {
		return &ValidationError{Fields: []FieldError{
			{Field: "quantity", Reason: "must not be negative"},
		}}
	}

	res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return &TransportError{Op: "update product quantity", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Deleting an id that is already gone returns
// ErrProductNotFound so a stale view can prompt a refresh.
func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Product{}, id)
	if res.Error != nil {
		return &TransportError{Op: "delete product", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
