package ledger_test

import (
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-ledger/internal/ledger"
	"github.com/frahmantamala/expense-ledger/internal/storage/csvfile"
)

// End to end over the real CSV store.
var _ = Describe("LedgerService with CSV store", func() {
	var (
		path    string
		service *ledger.Service
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "expenses.csv")
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = ledger.NewService(csvfile.New(path, logger), logger)
	})

	It("should round-trip add, list and delete", func() {
		date := daysAgo(2)

		result, err := service.AddExpense(ledger.AddExpenseDTO{
			Date:          date,
			Category:      "Food",
			Amount:        12.5,
			PaymentMethod: "cash",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(ContainSubstring("Comida"))
		Expect(result).To(ContainSubstring("$12.50"))

		records, err := service.ListExpenses()
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(Equal([]ledger.Record{{
			Date: date, Category: "Food", Amount: 12.5,
			PaymentMethod: "cash", Description: "",
		}}))

		_, err = service.DeleteExpense(ledger.DeleteExpenseDTO{
			Date: date, Category: "Food", Amount: 12.50,
		})
		Expect(err).ToNot(HaveOccurred())

		records, err = service.ListExpenses()
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(BeEmpty())

		// the header row survives the rewrite
		content, readErr := os.ReadFile(path)
		Expect(readErr).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal("date,category,amount,payment_method,description\n"))
	})

	It("should persist a sanitized date and still delete by the raw input", func() {
		// a raw date cannot start with a formula prefix, but a description can
		date := daysAgo(1)
		_, err := service.AddExpense(ledger.AddExpenseDTO{
			Date:          date,
			Category:      "Other",
			Amount:        5,
			PaymentMethod: "card",
			Description:   "=SUM(A1)",
		})
		Expect(err).ToNot(HaveOccurred())

		records, err := service.ListExpenses()
		Expect(err).ToNot(HaveOccurred())
		Expect(records[0].Description).To(Equal("'=SUM(A1)"))

		_, err = service.DeleteExpense(ledger.DeleteExpenseDTO{
			Date: date, Category: "Other", Amount: 5,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("should keep a manually added malformed row out of aggregates but in the file", func() {
		_, err := service.AddExpense(ledger.AddExpenseDTO{
			Date: daysAgo(1), Category: "Food", Amount: 10, PaymentMethod: "cash",
		})
		Expect(err).ToNot(HaveOccurred())

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
		Expect(err).ToNot(HaveOccurred())
		_, err = f.WriteString("garbage,row\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Close()).To(Succeed())

		summary, err := service.Summary(7)
		Expect(err).ToNot(HaveOccurred())
		Expect(summary).To(ContainSubstring("Transacciones: 1"))

		records, err := service.ListExpenses()
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(HaveLen(1))

		// the malformed row survives an unrelated delete untouched
		_, err = service.DeleteExpense(ledger.DeleteExpenseDTO{
			Date: daysAgo(1), Category: "Food", Amount: 10,
		})
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("garbage,row"))
	})
})
