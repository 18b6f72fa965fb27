package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-ledger/internal/catalog"
	"github.com/frahmantamala/expense-ledger/internal/ledger"
	"github.com/frahmantamala/expense-ledger/internal/transport/middleware"
	"github.com/frahmantamala/expense-ledger/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, store Pinger, ledgerHandler *ledger.Handler, catalogHandler *catalog.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(store)

	// Apply global middleware
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Catalog routes (static reference data)
		if catalogHandler != nil {
			r.Get("/categories", catalogHandler.GetCategories)
			r.Get("/payment-methods", catalogHandler.GetPaymentMethods)
		}

		// Ledger routes
		if ledgerHandler != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Post("/", ledgerHandler.AddExpense)      // POST /expenses
				er.Delete("/", ledgerHandler.DeleteExpense) // DELETE /expenses
				er.Get("/", ledgerHandler.ListExpenses)     // GET /expenses
				er.Get("/summary", ledgerHandler.GetSummary)
				er.Get("/budget", ledgerHandler.CheckBudget)
			})
		}
	})
}
