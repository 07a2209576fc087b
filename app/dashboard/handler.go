package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockroom/inventory-service/inventory"
	"github.com/stockroom/inventory-service/models"
)

type Metrics struct {
	ProductCount int    `json:"product_count"`
	TotalUnits   int64  `json:"total_units"`
	TotalValue   string `json:"total_value"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Charts struct {
	QuantityPerProduct []ChartPoint `json:"quantity_per_product"`
	PricePerProduct    []ChartPoint `json:"price_per_product"`
}

type Response struct {
	Metrics Metrics `json:"metrics"`
	Charts  Charts  `json:"charts"`
}

type ProductProvider interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

type DashboardHandler struct {
	repo ProductProvider
	log  *zap.Logger
}

func NewDashboardHandler(r ProductProvider, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{repo: r, log: log}
}

// HandleGet recomputes the metrics and chart series from a fresh product
// fetch on every call. Reusing a previous snapshot would show stale totals.
func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.log.Error("dashboard fetch", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to get products"})
		return
	}

	summary := inventory.Summarize(products)

	charts := Charts{
		QuantityPerProduct: make([]ChartPoint, len(products)),
		PricePerProduct:    make([]ChartPoint, len(products)),
	}
	for i, p := range products {
		charts.QuantityPerProduct[i] = ChartPoint{Label: p.Name, Value: float64(p.Quantity)}
		charts.PricePerProduct[i] = ChartPoint{Label: p.Name, Value: p.UnitPrice.InexactFloat64()}
	}

	response := Response{
		Metrics: Metrics{
			ProductCount: summary.ProductCount,
			TotalUnits:   summary.TotalUnits,
			TotalValue:   summary.TotalValue.StringFixed(2),
		},
		Charts: charts,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
