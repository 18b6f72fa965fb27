// Package catalog holds the static bilingual reference data for expense
// categories and payment methods. The tables are process-wide constants:
// they are initialized here and never mutated.
package catalog

// Entry is one catalog item as exposed over the API.
type Entry struct {
	ID      string `json:"id"`
	English string `json:"english"`
	Spanish string `json:"spanish"`
}

// Category identifiers, in canonical order. Identifiers are what gets stored
// and compared; the Spanish labels are display-only.
var categoryIDs = []string{
	"Food", "Transport", "Entertainment", "Utilities",
	"Health", "Education", "Home", "Other",
}

var categoryES = map[string]string{
	"Food":          "Comida",
	"Transport":     "Transporte",
	"Entertainment": "Entretenimiento",
	"Utilities":     "Servicios",
	"Health":        "Salud",
	"Education":     "Educación",
	"Home":          "Hogar",
	"Other":         "Otros",
}

// Payment method identifiers, in canonical order.
var paymentMethodIDs = []string{
	"cash", "card", "debit", "credit", "transfer", "digital_wallet",
}

var paymentMethodES = map[string]string{
	"cash":           "Efectivo",
	"card":           "Tarjeta",
	"debit":          "Débito",
	"credit":         "Crédito",
	"transfer":       "Transferencia",
	"digital_wallet": "Billetera Digital",
}

// IsCategory reports whether id is a valid category identifier.
func IsCategory(id string) bool {
	_, ok := categoryES[id]
	return ok
}

// IsPaymentMethod reports whether id is a valid payment method identifier.
func IsPaymentMethod(id string) bool {
	_, ok := paymentMethodES[id]
	return ok
}

// CategoryLabel returns the Spanish display label for a category, falling
// back to the raw identifier for values not in the catalog.
func CategoryLabel(id string) string {
	if label, ok := categoryES[id]; ok {
		return label
	}
	return id
}

// PaymentMethodLabel returns the Spanish display label for a payment method,
// falling back to the raw identifier.
func PaymentMethodLabel(id string) string {
	if label, ok := paymentMethodES[id]; ok {
		return label
	}
	return id
}

// CategoryLabels returns the localized labels of every valid category in
// canonical order. Used in validation messages so callers can self-correct.
func CategoryLabels() []string {
	labels := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		labels[i] = categoryES[id]
	}
	return labels
}

// PaymentMethodLabels returns the localized labels of every valid payment
// method in canonical order.
func PaymentMethodLabels() []string {
	labels := make([]string, len(paymentMethodIDs))
	for i, id := range paymentMethodIDs {
		labels[i] = paymentMethodES[id]
	}
	return labels
}

// Categories returns the full bilingual category table in canonical order.
func Categories() []Entry {
	entries := make([]Entry, len(categoryIDs))
	for i, id := range categoryIDs {
		entries[i] = Entry{ID: id, English: id, Spanish: categoryES[id]}
	}
	return entries
}

// PaymentMethods returns the full bilingual payment method table in
// canonical order.
func PaymentMethods() []Entry {
	entries := make([]Entry, len(paymentMethodIDs))
	for i, id := range paymentMethodIDs {
		entries[i] = Entry{ID: id, English: id, Spanish: paymentMethodES[id]}
	}
	return entries
}
