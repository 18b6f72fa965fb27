package ledger

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/expense-ledger/internal/transport"
)

const (
	defaultSummaryDays = 7
	defaultBudgetDays  = 30
)

type ServiceAPI interface {
	AddExpense(dto AddExpenseDTO) (string, error)
	DeleteExpense(dto DeleteExpenseDTO) (string, error)
	Summary(days int) (string, error)
	CheckBudget(category string, limit float64, days int) (string, error)
	ListExpenses() ([]Record, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var dto AddExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.AddExpense(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"message": result})
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	var dto DeleteExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("DeleteExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.DeleteExpense(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": result})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	days := defaultSummaryDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil {
			h.Logger.Error("GetSummary: invalid days parameter", "days", daysStr)
			h.WriteError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = d
	}

	result, err := h.Service.Summary(days)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": result})
}

func (h *Handler) CheckBudget(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	limit, err := strconv.ParseFloat(r.URL.Query().Get("limit"), 64)
	if err != nil {
		h.Logger.Error("CheckBudget: invalid limit parameter", "limit", r.URL.Query().Get("limit"))
		h.WriteError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	days := defaultBudgetDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil {
			h.Logger.Error("CheckBudget: invalid days parameter", "days", daysStr)
			h.WriteError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = d
	}

	result, err := h.Service.CheckBudget(category, limit, days)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": result})
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListExpenses()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
