package ledger_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-ledger/internal"
	"github.com/frahmantamala/expense-ledger/internal/ledger"
)

var _ = Describe("Validator", func() {
	expectCode := func(err error, code internal.ErrorCode) {
		GinkgoHelper()
		Expect(err).To(HaveOccurred())
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(code))
	}

	Describe("ValidateDate", func() {
		It("should accept today and nearby dates", func() {
			Expect(ledger.ValidateDate(time.Now().Format("2006-01-02"))).To(Succeed())
			Expect(ledger.ValidateDate(time.Now().AddDate(0, 0, -30).Format("2006-01-02"))).To(Succeed())
			Expect(ledger.ValidateDate(time.Now().AddDate(0, 0, 30).Format("2006-01-02"))).To(Succeed())
		})

		It("should reject anything that is not YYYY-MM-DD", func() {
			for _, value := range []string{"", "2025/01/15", "15-01-2025", "2025-13-01", "2025-02-30", "yesterday"} {
				err := ledger.ValidateDate(value)
				expectCode(err, internal.ErrCodeInvalidDateFormat)
			}
		})

		It("should accept a date exactly 365 days ahead in any zone", func() {
			Expect(ledger.ValidateDate(time.Now().AddDate(0, 0, 365).Format("2006-01-02"))).To(Succeed())
		})

		It("should reject dates more than 365 days ahead", func() {
			err := ledger.ValidateDate(time.Now().AddDate(0, 0, 366).Format("2006-01-02"))
			expectCode(err, internal.ErrCodeDateTooFarFuture)
		})

		It("should reject dates more than 3650 days back", func() {
			err := ledger.ValidateDate(time.Now().AddDate(0, 0, -3651).Format("2006-01-02"))
			expectCode(err, internal.ErrCodeDateTooFarPast)
		})
	})

	Describe("ValidateAmount", func() {
		It("should accept amounts with at most two decimals up to the cap", func() {
			Expect(ledger.ValidateAmount(0.01)).To(Succeed())
			Expect(ledger.ValidateAmount(12.5)).To(Succeed())
			Expect(ledger.ValidateAmount(1_000_000)).To(Succeed())
		})

		It("should reject zero and negative amounts", func() {
			expectCode(ledger.ValidateAmount(0), internal.ErrCodeAmountNonPositive)
			expectCode(ledger.ValidateAmount(-5), internal.ErrCodeAmountNonPositive)
		})

		It("should reject amounts above one million", func() {
			expectCode(ledger.ValidateAmount(1_000_000.01), internal.ErrCodeAmountTooLarge)
		})

		It("should reject amounts that change when rounded to two decimals", func() {
			expectCode(ledger.ValidateAmount(10.123), internal.ErrCodeAmountTooPrecise)
			expectCode(ledger.ValidateAmount(0.001), internal.ErrCodeAmountTooPrecise)
		})
	})

	Describe("ValidateDescription", func() {
		It("should accept the empty string and up to 200 characters", func() {
			Expect(ledger.ValidateDescription("")).To(Succeed())
			Expect(ledger.ValidateDescription(strings.Repeat("a", 200))).To(Succeed())
		})

		It("should reject more than 200 characters", func() {
			expectCode(ledger.ValidateDescription(strings.Repeat("a", 201)), internal.ErrCodeDescriptionTooLong)
		})
	})
})

var _ = Describe("Sanitize", func() {
	It("should prepend an apostrophe to formula-like prefixes", func() {
		Expect(ledger.Sanitize("=SUM(A1:A9)")).To(Equal("'=SUM(A1:A9)"))
		Expect(ledger.Sanitize("+123")).To(Equal("'+123"))
		Expect(ledger.Sanitize("-123")).To(Equal("'-123"))
		Expect(ledger.Sanitize("@cmd")).To(Equal("'@cmd"))
		Expect(ledger.Sanitize("\tindent")).To(Equal("'\tindent"))
		Expect(ledger.Sanitize("\rreturn")).To(Equal("'\rreturn"))
	})

	It("should leave ordinary values unchanged", func() {
		Expect(ledger.Sanitize("")).To(Equal(""))
		Expect(ledger.Sanitize("lunch")).To(Equal("lunch"))
		Expect(ledger.Sanitize("2025-01-15")).To(Equal("2025-01-15"))
		Expect(ledger.Sanitize("a=b")).To(Equal("a=b"))
	})
})
