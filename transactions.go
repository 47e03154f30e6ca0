package finbook

import (
	"slices"

	"github.com/etnz/finbook/date"
)

// TransactionType is a typed string for the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// sign returns +1 for income and -1 for expense, the multiplier for the
// effect on an account balance.
func (t TransactionType) sign() int {
	if t == Income {
		return 1
	}
	return -1
}

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	UPI  PaymentMethod = "UPI"
	Cash PaymentMethod = "Cash"
	Card PaymentMethod = "Card"
	Bank PaymentMethod = "Bank"
)

// Transaction is a single income or expense record. Transactions are
// immutable once created; corrections are made by deleting and re-adding.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        Money           `json:"amount"`
	Category      string          `json:"category"`
	Date          date.Date       `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	// AccountID links the transaction to the account whose balance it moved.
	// Empty for transactions settled outside any tracked account.
	AccountID string `json:"accountId,omitempty"`
}

// sortTransactionsDesc orders transactions by descending date, the order the
// read accessor exposes. The sort is stable so same-day transactions keep
// their insertion order.
func sortTransactionsDesc(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case b.Date.After(a.Date):
			return 1
		default:
			return 0
		}
	})
}
