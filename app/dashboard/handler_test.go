package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/stockroom/inventory-service/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	Products []models.Product
	Err      error

	calls int
}

func (m *MockProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Kettle", Quantity: 2, UnitPrice: decimal.NewFromFloat(3.50)},
		{ID: 2, Name: "Mug", Quantity: 1, UnitPrice: decimal.NewFromFloat(0.99)},
	}

	mockRepo := &MockProductRepo{Products: products}
	handler := NewDashboardHandler(mockRepo, zap.NewNop())
	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	assert.NoError(t, err)

	assert.Equal(t, 2, resp.Metrics.ProductCount)
	assert.Equal(t, int64(3), resp.Metrics.TotalUnits)
	assert.Equal(t, "7.99", resp.Metrics.TotalValue, "total must be exact, not a float accumulation")

	assert.Len(t, resp.Charts.QuantityPerProduct, 2)
	assert.Equal(t, "Kettle", resp.Charts.QuantityPerProduct[0].Label)
	assert.Equal(t, 2.0, resp.Charts.QuantityPerProduct[0].Value)

	assert.Len(t, resp.Charts.PricePerProduct, 2)
	assert.Equal(t, "Mug", resp.Charts.PricePerProduct[1].Label)
	assert.Equal(t, 0.99, resp.Charts.PricePerProduct[1].Value)
}

func TestHandleGetEmpty(t *testing.T) {
	mockRepo := &MockProductRepo{Products: []models.Product{}}
	handler := NewDashboardHandler(mockRepo, zap.NewNop())
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, httptest.NewRequest("GET", "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Metrics.ProductCount)
	assert.Equal(t, int64(0), resp.Metrics.TotalUnits)
	assert.Equal(t, "0.00", resp.Metrics.TotalValue)
	assert.Len(t, resp.Charts.QuantityPerProduct, 0)
}

func TestHandleGetRefetchesEveryCall(t *testing.T) {
	mockRepo := &MockProductRepo{Products: []models.Product{}}
	handler := NewDashboardHandler(mockRepo, zap.NewNop())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.HandleGet(rec, httptest.NewRequest("GET", "/dashboard", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3, mockRepo.calls, "metrics must be recomputed from a fresh fetch on every view")
}

func TestHandleGetRepositoryError(t *testing.T) {
	mockRepo := &MockProductRepo{Err: &models.TransportError{Op: "list products", Err: errors.New("db down")}}
	handler := NewDashboardHandler(mockRepo, zap.NewNop())
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, httptest.NewRequest("GET", "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp map[string]string
	err := json.NewDecoder(rec.Body).Decode(&errResp)
	assert.NoError(t, err)
	assert.Equal(t, "failed to get products", errResp["error"])
}
