package app

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stockroom/inventory-service/app/categories"
	"github.com/stockroom/inventory-service/app/dashboard"
	"github.com/stockroom/inventory-service/app/products"
)

// NewRouter wires the HTTP surface and wraps it with request logging.
func NewRouter(ch *categories.CategoryHandler, ph *products.ProductHandler, dh *dashboard.DashboardHandler, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /categories", ch.HandleGetAll)
	mux.HandleFunc("POST /categories", ch.HandleCreate)
	mux.HandleFunc("DELETE /categories/{id}", ch.HandleDelete)

	mux.HandleFunc("GET /products", ph.HandleGet)
	mux.HandleFunc("POST /products", ph.HandleCreate)
	mux.HandleFunc("PATCH /products/{id}/quantity", ph.HandleUpdateQuantity)
	mux.HandleFunc("DELETE /products/{id}", ph.HandleDelete)

	mux.HandleFunc("GET /dashboard", dh.HandleGet)

	return withRequestLog(withTimeout(mux), log)
}

// requestTimeout bounds every store round trip. A slow store surfaces as a
// deadline error wrapped in models.TransportError, never a hung request.
const requestTimeout = 10 * time.Second

func withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func withRequestLog(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}
