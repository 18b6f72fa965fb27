package ledger

import (
	"strings"

	"github.com/frahmantamala/expense-ledger/internal"
	"github.com/frahmantamala/expense-ledger/internal/catalog"
)

// AddExpenseDTO is the request payload for recording an expense.
type AddExpenseDTO struct {
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Description   string  `json:"description"`
}

// Validate runs the domain checks in fixed order: date, category, amount,
// payment method, description. The first failure wins and its message lists
// localized options where membership is involved.
func (dto AddExpenseDTO) Validate() error {
	if err := ValidateDate(dto.Date); err != nil {
		return err
	}
	if !catalog.IsCategory(dto.Category) {
		return internal.NewValidationError(
			"Categoría inválida. Use: "+strings.Join(catalog.CategoryLabels(), ", "),
			internal.ErrCodeInvalidCategory)
	}
	if err := ValidateAmount(dto.Amount); err != nil {
		return err
	}
	if !catalog.IsPaymentMethod(dto.PaymentMethod) {
		return internal.NewValidationError(
			"Método inválido. Use: "+strings.Join(catalog.PaymentMethodLabels(), ", "),
			internal.ErrCodeInvalidPaymentMethod)
	}
	if err := ValidateDescription(dto.Description); err != nil {
		return err
	}
	return nil
}

// DeleteExpenseDTO identifies the expense to remove: byte-equal date and
// category, amount within tolerance.
type DeleteExpenseDTO struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
