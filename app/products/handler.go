package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockroom/inventory-service/inventory"
	"github.com/stockroom/inventory-service/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

type ProductProvider interface {
	Create(ctx context.Context, product *models.Product) error
	GetAllWithCategory(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int64) error
	Delete(ctx context.Context, id uint) error
}

type ProductHandler struct {
	repo ProductProvider
	log  *zap.Logger
}

func NewProductHandler(r ProductProvider, log *zap.Logger) *ProductHandler {
	return &ProductHandler{repo: r, log: log}
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	filters := models.ProductFilters{
		CategoryCode: r.URL.Query().Get("category"),
	}

	res, total, err := h.repo.GetAllWithCategory(r.Context(), offset, limit, filters)
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	views := inventory.BuildViews(res)
	products := make([]Product, len(views))
	for i, v := range views {
		products[i] = toResponse(v)
	}

	writeJSON(w, http.StatusOK, Response{
		Total:    int(total),
		Products: products,
	})
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name       string          `json:"name"`
		Quantity   int64           `json:"quantity"`
		UnitPrice  decimal.Decimal `json:"unit_price"`
		CategoryID uint            `json:"category_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	in := inventory.ProductInput{
		Name:       input.Name,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		CategoryID: input.CategoryID,
	}
	if err := in.Validate(); err != nil {
		writeValidation(w, err)
		return
	}

	product := &models.Product{
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		CategoryID: in.CategoryID,
	}

	if err := h.repo.Create(r.Context(), product); err != nil {
		if errors.Is(err, models.ErrUnknownCategory) {
			writeError(w, http.StatusUnprocessableEntity, "Referenced category does not exist")
			return
		}
		h.log.Error("create product", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inventory.NewProductView(*product)))
}

func (h *ProductHandler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var input struct {
		Quantity int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Quantity < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "validation failed",
			"fields": []models.FieldError{
				{Field: "quantity", Reason: "must not be negative"},
			},
		})
		return
	}

	if err := h.repo.UpdateQuantity(r.Context(), uint(id), input.Quantity); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("update product quantity", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update quantity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Quantity updated successfully",
	})
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.repo.Delete(r.Context(), uint(id)); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Error("delete product", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func toResponse(v inventory.ProductView) Product {
	return Product{
		ID:           v.ID,
		Name:         v.Name,
		Quantity:     v.Quantity,
		UnitPrice:    v.UnitPrice.InexactFloat64(),
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidation(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
