// Package ledger implements the expense ledger engine: validated appends,
// exact-match deletion, and time-windowed aggregation over the CSV store.
package ledger

import (
	"strconv"
	"strings"
)

// Record is one expense row as exposed over the API.
type Record struct {
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Description   string  `json:"description"`
}

// recordFromRow converts a raw CSV row into a Record. Rows with fewer than
// four columns or an unparseable amount are reported as unusable; the caller
// skips them. The date column is not interpreted here.
func recordFromRow(row []string) (Record, bool) {
	if len(row) < 4 {
		return Record{}, false
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return Record{}, false
	}
	rec := Record{
		Date:          strings.TrimSpace(row[0]),
		Category:      strings.TrimSpace(row[1]),
		Amount:        amount,
		PaymentMethod: strings.TrimSpace(row[3]),
	}
	if len(row) > 4 {
		rec.Description = strings.TrimSpace(row[4])
	}
	return rec, true
}
