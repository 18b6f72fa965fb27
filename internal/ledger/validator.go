package ledger

import (
	"math"
	"time"

	"github.com/frahmantamala/expense-ledger/internal"
)

const (
	dateLayout = "2006-01-02"

	maxFutureDays     = 365
	maxPastDays       = 3650
	maxAmount         = 1_000_000
	maxDescriptionLen = 200

	// amountTolerance absorbs float formatting noise when matching a
	// stored amount against a requested one.
	amountTolerance = 0.01
)

// ValidateDate checks format (YYYY-MM-DD) and range: at most 365 days in the
// future and 3650 days in the past, relative to the current wall clock. The
// date is interpreted in the local zone so both sides of the range check use
// one clock.
func ValidateDate(value string) error {
	d, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return internal.NewValidationError("Formato inválido. Use YYYY-MM-DD.", internal.ErrCodeInvalidDateFormat)
	}
	now := time.Now()
	if d.After(now.AddDate(0, 0, maxFutureDays)) {
		return internal.NewValidationError("Fecha muy lejana en el futuro.", internal.ErrCodeDateTooFarFuture)
	}
	if d.Before(now.AddDate(0, 0, -maxPastDays)) {
		return internal.NewValidationError("Fecha muy antigua (máx 10 años).", internal.ErrCodeDateTooFarPast)
	}
	return nil
}

// ValidateAmount checks that the amount is positive, at most 1,000,000, and
// carries no more than two decimal places.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return internal.NewValidationError("Monto debe ser positivo.", internal.ErrCodeAmountNonPositive)
	}
	if amount > maxAmount {
		return internal.NewValidationError("Monto excede límite ($1,000,000).", internal.ErrCodeAmountTooLarge)
	}
	if math.Round(amount*100)/100 != amount {
		return internal.NewValidationError("Máximo 2 decimales.", internal.ErrCodeAmountTooPrecise)
	}
	return nil
}

// ValidateDescription enforces the free-text length limit.
func ValidateDescription(description string) error {
	if len([]rune(description)) > maxDescriptionLen {
		return internal.NewValidationError("Descripción muy larga (máx 200 caracteres).", internal.ErrCodeDescriptionTooLong)
	}
	return nil
}
