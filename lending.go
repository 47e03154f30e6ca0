package finbook

import (
	"fmt"

	"github.com/etnz/finbook/date"
	"github.com/rs/zerolog/log"
)

// LendingStatus tracks whether money lent out has been repaid.
type LendingStatus string

const (
	Pending LendingStatus = "Pending"
	Paid    LendingStatus = "Paid"
)

// Lending is money lent to a person. Creating one records the outgoing
// amount as an expense; marking it paid records the repayment as income.
// The Pending to Paid transition is one-way.
type Lending struct {
	ID         string        `json:"id"`
	PersonName string        `json:"personName"`
	Amount     Money         `json:"amount"`
	DateLent   date.Date     `json:"dateLent"`
	Notes      string        `json:"notes,omitempty"`
	Status     LendingStatus `json:"status"`
}

// AddLending records money lent out and the matching expense transaction.
func (b *Book) AddLending(l Lending) (Lending, error) {
	if !l.Amount.IsPositive() {
		return Lending{}, fmt.Errorf("lending amount must be positive, got %s", l.Amount)
	}
	if l.ID == "" {
		l.ID = newID()
	}
	if l.DateLent.IsZero() {
		l.DateLent = date.Today()
	}
	l.Status = Pending
	b.lendings = append(b.lendings, l)
	if err := b.save(keyLendings); err != nil {
		return Lending{}, err
	}

	_, err := b.AddTransaction(Transaction{
		Type:          Expense,
		Amount:        l.Amount,
		Category:      "Lending",
		Date:          l.DateLent,
		PaymentMethod: Cash,
		Notes:         fmt.Sprintf("Lent to %s", l.PersonName),
	})
	if err != nil {
		return Lending{}, err
	}
	return l, nil
}

// MarkLendingPaid transitions a lending to Paid and records the repayment as
// an income transaction. An already-Paid lending is left alone: repeating the
// call creates no second repayment. An unknown id is a no-op.
func (b *Book) MarkLendingPaid(id string) error {
	for i := range b.lendings {
		l := &b.lendings[i]
		if l.ID != id {
			continue
		}
		if l.Status == Paid {
			return nil
		}
		l.Status = Paid
		if err := b.save(keyLendings); err != nil {
			return err
		}
		_, err := b.AddTransaction(Transaction{
			Type:          Income,
			Amount:        l.Amount,
			Category:      "Lending Repaid",
			Date:          date.Today(),
			PaymentMethod: Cash,
			Notes:         fmt.Sprintf("Repaid by %s", l.PersonName),
		})
		return err
	}
	log.Warn().Str("lending", id).Msg("mark paid: unknown lending id")
	return nil
}
