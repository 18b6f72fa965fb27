package catalog

import (
	"net/http"

	"github.com/frahmantamala/expense-ledger/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler(baseHandler *transport.BaseHandler) *Handler {
	return &Handler{BaseHandler: baseHandler}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, Categories())
}

func (h *Handler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, PaymentMethods())
}
