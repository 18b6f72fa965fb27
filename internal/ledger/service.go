package ledger

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/frahmantamala/expense-ledger/internal"
	"github.com/frahmantamala/expense-ledger/internal/catalog"
)

// Store is the persistence contract the engine runs against.
type Store interface {
	EnsureExists() error
	Append(fields []string) error
	Scan() (header []string, rows [][]string, err error)
	Rewrite(header []string, rows [][]string) error
}

// Service orchestrates validation, sanitization and the store for writes,
// and implements windowed aggregation for reads.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (s *Service) storageError(op string, err error) error {
	s.logger.Error("ledger storage failure", "op", op, "error", err)
	return internal.NewInternalError("No se pudo acceder al archivo de gastos.", err)
}

// AddExpense validates, sanitizes and appends one expense row, returning a
// localized confirmation. No partial write happens on validation failure.
func (s *Service) AddExpense(dto AddExpenseDTO) (string, error) {
	if err := s.store.EnsureExists(); err != nil {
		return "", s.storageError("add", err)
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense rejected", "error", err, "date", dto.Date, "category", dto.Category)
		return "", err
	}

	row := []string{
		Sanitize(dto.Date),
		Sanitize(dto.Category),
		strconv.FormatFloat(dto.Amount, 'f', 2, 64),
		dto.PaymentMethod,
		Sanitize(dto.Description),
	}
	if err := s.store.Append(row); err != nil {
		return "", s.storageError("add", err)
	}

	s.logger.Info("expense recorded",
		"date", dto.Date,
		"category", dto.Category,
		"amount", dto.Amount,
		"payment_method", dto.PaymentMethod)

	var b strings.Builder
	b.WriteString("Gasto registrado:\n")
	fmt.Fprintf(&b, " • Fecha: %s\n", dto.Date)
	fmt.Fprintf(&b, " • Categoría: %s\n", catalog.CategoryLabel(dto.Category))
	fmt.Fprintf(&b, " • Monto: $%.2f\n", dto.Amount)
	fmt.Fprintf(&b, " • Método: %s", catalog.PaymentMethodLabel(dto.PaymentMethod))
	if dto.Description != "" {
		fmt.Fprintf(&b, "\n • Nota: %s", dto.Description)
	}
	return b.String(), nil
}

// DeleteExpense removes the first row whose date and category are byte-equal
// to the inputs and whose amount is within tolerance of the target. Later
// duplicates stay; rows whose amount does not parse are never matched. The
// file is rewritten without the matched row, preserving relative order.
func (s *Service) DeleteExpense(dto DeleteExpenseDTO) (string, error) {
	if err := s.store.EnsureExists(); err != nil {
		return "", s.storageError("delete", err)
	}

	header, rows, err := s.store.Scan()
	if err != nil {
		return "", s.storageError("delete", err)
	}

	found := false
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !found && len(row) >= 3 && row[0] == dto.Date && row[1] == dto.Category {
			if amount, perr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64); perr == nil &&
				math.Abs(amount-dto.Amount) < amountTolerance {
				found = true
				continue
			}
		}
		kept = append(kept, row)
	}

	label := catalog.CategoryLabel(dto.Category)
	if !found {
		return "", internal.NewNotFoundError(
			fmt.Sprintf("Gasto no encontrado: %s - %s - $%.2f", dto.Date, label, dto.Amount),
			internal.ErrCodeExpenseNotFound)
	}

	if err := s.store.Rewrite(header, kept); err != nil {
		return "", s.storageError("delete", err)
	}

	s.logger.Info("expense deleted", "date", dto.Date, "category", dto.Category, "amount", dto.Amount)
	return fmt.Sprintf("Gasto eliminado: %s - %s - $%.2f", dto.Date, label, dto.Amount), nil
}

// bucket is one accumulation entry of the per-category / per-method totals.
type bucket struct {
	id     string
	amount float64
}

// sortedBuckets flattens an accumulation map into a slice ordered by summed
// amount descending, identifier ascending on ties so output is stable.
func sortedBuckets(totals map[string]float64) []bucket {
	buckets := make([]bucket, 0, len(totals))
	for id, amount := range totals {
		buckets = append(buckets, bucket{id: id, amount: amount})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].amount != buckets[j].amount {
			return buckets[i].amount > buckets[j].amount
		}
		return buckets[i].id < buckets[j].id
	})
	return buckets
}

// Summary aggregates the expenses of the trailing days window: total, count,
// average, per-category and per-method breakdowns with percentages, and the
// five most recent records. Malformed rows are silently skipped.
func (s *Service) Summary(days int) (string, error) {
	if err := s.store.EnsureExists(); err != nil {
		return "", s.storageError("summary", err)
	}

	if days < 1 || days > 365 {
		return "", internal.NewValidationError("Días debe estar entre 1 y 365.", internal.ErrCodeDaysOutOfRange)
	}

	_, rows, err := s.store.Scan()
	if err != nil {
		return "", s.storageError("summary", err)
	}

	// row dates are parsed in the local zone so the comparison against the
	// wall-clock cutoff happens under a single clock
	cutoff := time.Now().AddDate(0, 0, -days)
	var (
		total  float64
		count  int
		byCat  = map[string]float64{}
		byPay  = map[string]float64{}
		recent []Record
	)
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(row[0]), time.Local)
		if err != nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		cat := strings.TrimSpace(row[1])
		pay := strings.TrimSpace(row[3])
		total += amount
		count++
		byCat[cat] += amount
		byPay[pay] += amount
		recent = append(recent, Record{Date: row[0], Category: cat, Amount: amount, PaymentMethod: pay})
	}

	if count == 0 {
		return fmt.Sprintf("No hay gastos en los últimos %d días.", days), nil
	}

	// lexicographic order over YYYY-MM-DD is date order
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })

	var b strings.Builder
	fmt.Fprintf(&b, "**Resumen - Últimos %d Días**\n\n", days)
	fmt.Fprintf(&b, "Total: $%.2f\n", total)
	fmt.Fprintf(&b, "Transacciones: %d\n", count)
	fmt.Fprintf(&b, "Promedio: $%.2f\n\n", total/float64(count))

	b.WriteString("**Por Categoría:**\n")
	for _, bk := range sortedBuckets(byCat) {
		fmt.Fprintf(&b, " • %s: $%.2f (%.1f%%)\n", catalog.CategoryLabel(bk.id), bk.amount, bk.amount/total*100)
	}

	b.WriteString("\n**Por Método:**\n")
	for _, bk := range sortedBuckets(byPay) {
		fmt.Fprintf(&b, " • %s: $%.2f (%.1f%%)\n", catalog.PaymentMethodLabel(bk.id), bk.amount, bk.amount/total*100)
	}

	b.WriteString("\n**Recientes:**\n")
	for i, rec := range recent {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, " • %s — %s — $%.2f\n", rec.Date, catalog.CategoryLabel(rec.Category), rec.Amount)
	}

	return b.String(), nil
}

// CheckBudget sums the category's spending over the trailing days window and
// reports it against the limit. Unlike Summary, days is not range-checked;
// degenerate windows simply yield zero spending.
func (s *Service) CheckBudget(category string, limit float64, days int) (string, error) {
	if err := s.store.EnsureExists(); err != nil {
		return "", s.storageError("budget", err)
	}

	if !catalog.IsCategory(category) {
		return "", internal.NewValidationError(
			"Categoría inválida. Use: "+strings.Join(catalog.CategoryLabels(), ", "),
			internal.ErrCodeInvalidCategory)
	}
	if err := ValidateAmount(limit); err != nil {
		reason := err.Error()
		if appErr, ok := internal.IsAppError(err); ok {
			reason = appErr.Message
		}
		return "", internal.NewValidationError("Límite inválido: "+reason, internal.ErrCodeInvalidBudgetLimit)
	}

	_, rows, err := s.store.Scan()
	if err != nil {
		return "", s.storageError("budget", err)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	var (
		spent float64
		count int
	)
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(row[0]), time.Local)
		if err != nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			continue
		}
		if !date.Before(cutoff) && strings.TrimSpace(row[1]) == category {
			spent += amount
			count++
		}
	}

	// limit > 0 is guaranteed by the amount validation above
	pct := spent / limit * 100
	remaining := limit - spent

	var status string
	switch {
	case pct < 70:
		status = "Dentro del presupuesto"
	case pct < 90:
		status = "Acercándose al límite"
	case pct < 100:
		status = "Cerca del límite"
	default:
		status = "Presupuesto excedido"
	}

	label := catalog.CategoryLabel(category)

	var b strings.Builder
	fmt.Fprintf(&b, "**Presupuesto - %s**\n\n", label)
	fmt.Fprintf(&b, "Período: %d días\n", days)
	fmt.Fprintf(&b, "Presupuesto: $%.2f\n", limit)
	fmt.Fprintf(&b, "Gastado: $%.2f (%.1f%%)\n", spent, pct)
	fmt.Fprintf(&b, "Restante: $%.2f\n", remaining)
	fmt.Fprintf(&b, "Transacciones: %d\n", count)
	fmt.Fprintf(&b, "%s\n", status)

	if pct > 80 {
		fmt.Fprintf(&b, "\nConsidera reducir gastos en %s.", label)
	}

	return b.String(), nil
}

// ListExpenses returns every parseable record in file order. Rows with fewer
// than four columns or an unparseable amount are skipped.
func (s *Service) ListExpenses() ([]Record, error) {
	if err := s.store.EnsureExists(); err != nil {
		return nil, s.storageError("list", err)
	}

	_, rows, err := s.store.Scan()
	if err != nil {
		return nil, s.storageError("list", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if rec, ok := recordFromRow(row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
