package ledger_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-ledger/internal"
	"github.com/frahmantamala/expense-ledger/internal/ledger"
	"github.com/frahmantamala/expense-ledger/internal/transport"
)

// Mock service for handler testing
type mockLedgerService struct {
	addResult    string
	addError     error
	deleteResult string
	deleteError  error
	summaryDays  int
	summaryText  string
	summaryError error
	budgetText   string
	budgetError  error
	budgetCat    string
	budgetLimit  float64
	budgetDays   int
	records      []ledger.Record
	listError    error
}

func (m *mockLedgerService) AddExpense(dto ledger.AddExpenseDTO) (string, error) {
	return m.addResult, m.addError
}

func (m *mockLedgerService) DeleteExpense(dto ledger.DeleteExpenseDTO) (string, error) {
	return m.deleteResult, m.deleteError
}

func (m *mockLedgerService) Summary(days int) (string, error) {
	m.summaryDays = days
	return m.summaryText, m.summaryError
}

func (m *mockLedgerService) CheckBudget(category string, limit float64, days int) (string, error) {
	m.budgetCat = category
	m.budgetLimit = limit
	m.budgetDays = days
	return m.budgetText, m.budgetError
}

func (m *mockLedgerService) ListExpenses() ([]ledger.Record, error) {
	return m.records, m.listError
}

var _ = Describe("LedgerHandler", func() {
	var (
		service *mockLedgerService
		handler *ledger.Handler
	)

	BeforeEach(func() {
		service = &mockLedgerService{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = ledger.NewHandler(transport.NewBaseHandler(logger), service)
	})

	Describe("AddExpense", func() {
		It("should return 201 with the confirmation message", func() {
			service.addResult = "Gasto registrado"
			body := `{"date":"2025-01-15","category":"Food","amount":12.5,"payment_method":"cash"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.AddExpense(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["message"]).To(Equal("Gasto registrado"))
		})

		It("should return 400 for an unreadable body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader("{not json"))
			rec := httptest.NewRecorder()

			handler.AddExpense(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map validation errors to 400 with the localized message", func() {
			service.addError = internal.NewValidationError("Monto debe ser positivo.", internal.ErrCodeAmountNonPositive)
			body := `{"date":"2025-01-15","category":"Food","amount":-1,"payment_method":"cash"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.AddExpense(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Monto debe ser positivo."))
		})
	})

	Describe("DeleteExpense", func() {
		It("should map a missing expense to 404", func() {
			service.deleteError = internal.NewNotFoundError("Gasto no encontrado", internal.ErrCodeExpenseNotFound)
			body := `{"date":"2025-01-15","category":"Food","amount":10}`
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenses", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.DeleteExpense(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(rec.Body.String()).To(ContainSubstring("Gasto no encontrado"))
		})
	})

	Describe("GetSummary", func() {
		It("should default to a seven day window", func() {
			service.summaryText = "resumen"
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/summary", nil)
			rec := httptest.NewRecorder()

			handler.GetSummary(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.summaryDays).To(Equal(7))
		})

		It("should pass an explicit days value through", func() {
			service.summaryText = "resumen"
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/summary?days=90", nil)
			rec := httptest.NewRecorder()

			handler.GetSummary(rec, req)

			Expect(service.summaryDays).To(Equal(90))
		})

		It("should return 400 for a non-numeric days value", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/summary?days=week", nil)
			rec := httptest.NewRecorder()

			handler.GetSummary(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("CheckBudget", func() {
		It("should default days to 30 and forward category and limit", func() {
			service.budgetText = "presupuesto"
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/budget?category=Food&limit=200", nil)
			rec := httptest.NewRecorder()

			handler.CheckBudget(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(service.budgetCat).To(Equal("Food"))
			Expect(service.budgetLimit).To(Equal(200.0))
			Expect(service.budgetDays).To(Equal(30))
		})

		It("should return 400 when the limit is missing or unparseable", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/budget?category=Food", nil)
			rec := httptest.NewRecorder()

			handler.CheckBudget(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListExpenses", func() {
		It("should return the records as a JSON array", func() {
			service.records = []ledger.Record{
				{Date: "2025-01-15", Category: "Food", Amount: 12.5, PaymentMethod: "cash"},
			}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
			rec := httptest.NewRecorder()

			handler.ListExpenses(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var records []ledger.Record
			Expect(json.Unmarshal(rec.Body.Bytes(), &records)).To(Succeed())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Amount).To(Equal(12.5))
		})

		It("should map storage failures to 500", func() {
			service.listError = internal.NewInternalError("No se pudo acceder al archivo de gastos.", nil)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
			rec := httptest.NewRecorder()

			handler.ListExpenses(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
