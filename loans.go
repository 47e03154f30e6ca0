package finbook

import (
	"fmt"

	"github.com/etnz/finbook/date"
	"github.com/shopspring/decimal"
)

// Loan is a borrowing with a monthly EMI repayment schedule. Creating one
// credits the principal as income and generates the EMI auto-credit; deleting
// one removes the loan and its schedule (already-materialized EMI
// transactions remain on the ledger).
type Loan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Principal   Money           `json:"principal"`
	RatePercent decimal.Decimal `json:"ratePercent"` // annual interest rate
	TermYears   int             `json:"termYears"`
	StartDate   date.Date       `json:"startDate"`
	EMI         Money           `json:"emi"`
	AccountID   string          `json:"accountId,omitempty"`
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// ComputeEMI returns the standard amortized monthly installment for a
// principal borrowed at an annual rate over a term in years:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of monthly installments.
// A zero rate degrades to principal divided by installments.
func ComputeEMI(principal Money, annualRatePercent decimal.Decimal, termYears int) (Money, error) {
	if termYears <= 0 {
		return Money{}, fmt.Errorf("loan term must be at least one year, got %d", termYears)
	}
	if annualRatePercent.IsNegative() {
		return Money{}, fmt.Errorf("interest rate cannot be negative, got %s", annualRatePercent)
	}
	n := decimal.NewFromInt(int64(termYears) * 12)
	if annualRatePercent.IsZero() {
		return Money{value: principal.value.Div(n).Round(2)}, nil
	}
	r := annualRatePercent.Div(twelve).Div(hundred)
	pow := decimal.NewFromInt(1).Add(r).Pow(n)
	emi := principal.value.Mul(r).Mul(pow).Div(pow.Sub(decimal.NewFromInt(1)))
	return Money{value: emi.Round(2)}, nil
}

// AddLoan records a loan, credits its principal as income, and schedules the
// EMI as a monthly auto-credit starting one month after the loan start date.
func (b *Book) AddLoan(l Loan) (Loan, error) {
	if !l.Principal.IsPositive() {
		return Loan{}, fmt.Errorf("loan principal must be positive, got %s", l.Principal)
	}
	emi, err := ComputeEMI(l.Principal, l.RatePercent, l.TermYears)
	if err != nil {
		return Loan{}, err
	}
	if l.ID == "" {
		l.ID = newID()
	}
	if l.StartDate.IsZero() {
		l.StartDate = date.Today()
	}
	l.EMI = emi
	b.loans = append(b.loans, l)
	if err := b.save(keyLoans); err != nil {
		return Loan{}, err
	}

	if _, err := b.AddAutoCredit(AutoCredit{
		Name:      l.Name + " EMI",
		Amount:    emi,
		Frequency: Monthly,
		NextDate:  l.StartDate.AddMonths(1).String(),
		Category:  "EMI",
		AccountID: l.AccountID,
		Origin:    Origin{Kind: OriginLoan, ID: l.ID},
	}); err != nil {
		return Loan{}, err
	}

	if _, err := b.AddTransaction(Transaction{
		Type:          Income,
		Amount:        l.Principal,
		Category:      "Loan",
		Date:          l.StartDate,
		PaymentMethod: Bank,
		Notes:         fmt.Sprintf("Loan received: %s", l.Name),
		AccountID:     l.AccountID,
	}); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// DeleteLoan removes a loan and cascades to the auto-credits it originated.
// An unknown id is a no-op.
func (b *Book) DeleteLoan(id string) error {
	var deleted bool
	b.loans = deleteByID(b.loans, id, func(l Loan) string { return l.ID }, &deleted)
	if !deleted {
		return nil
	}
	if err := b.save(keyLoans); err != nil {
		return err
	}
	return b.deleteAutoCreditsByOrigin(Origin{Kind: OriginLoan, ID: id})
}
