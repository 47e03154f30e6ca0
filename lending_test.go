package finbook

import (
	"testing"

	"github.com/etnz/finbook/date"
)

func TestAddLending_CreatesExpense(t *testing.T) {
	b := newTestBook(t)
	l, err := b.AddLending(Lending{PersonName: "Rohan", Amount: M(2000), DateLent: date.MustParse("2025-08-01")})
	if err != nil {
		t.Fatalf("AddLending() failed: %v", err)
	}
	if l.Status != Pending {
		t.Errorf("new lending status = %q, want Pending", l.Status)
	}

	txs := b.Transactions()
	if len(txs) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(txs))
	}
	if txs[0].Type != Expense || txs[0].Category != "Lending" || !txs[0].Amount.Equal(M(2000)) {
		t.Errorf("lending transaction = %+v", txs[0])
	}
}

func TestMarkLendingPaid(t *testing.T) {
	b := newTestBook(t)
	l, err := b.AddLending(Lending{PersonName: "Rohan", Amount: M(2000), DateLent: date.MustParse("2025-08-01")})
	if err != nil {
		t.Fatalf("AddLending() failed: %v", err)
	}

	if err := b.MarkLendingPaid(l.ID); err != nil {
		t.Fatalf("MarkLendingPaid() failed: %v", err)
	}
	if got := b.Lendings()[0].Status; got != Paid {
		t.Errorf("status = %q, want Paid", got)
	}

	var repayments int
	for _, tx := range b.Transactions() {
		if tx.Category == "Lending Repaid" {
			repayments++
			if tx.Type != Income || !tx.Amount.Equal(M(2000)) {
				t.Errorf("repayment transaction = %+v", tx)
			}
		}
	}
	if repayments != 1 {
		t.Errorf("repayment count = %d, want 1", repayments)
	}

	// The transition is one-way and idempotent: repeating the call creates
	// no second repayment.
	if err := b.MarkLendingPaid(l.ID); err != nil {
		t.Fatalf("repeated MarkLendingPaid() failed: %v", err)
	}
	var after int
	for _, tx := range b.Transactions() {
		if tx.Category == "Lending Repaid" {
			after++
		}
	}
	if after != 1 {
		t.Errorf("repayment count after repeat = %d, want 1", after)
	}
}

func TestMarkLendingPaid_UnknownIsNoop(t *testing.T) {
	b := newTestBook(t)
	if err := b.MarkLendingPaid("does-not-exist"); err != nil {
		t.Errorf("unknown lending id must be a no-op, got %v", err)
	}
}

func TestAddLending_RejectsNonPositiveAmount(t *testing.T) {
	b := newTestBook(t)
	if _, err := b.AddLending(Lending{PersonName: "Rohan", Amount: M(0)}); err == nil {
		t.Error("AddLending() expected an error for zero amount")
	}
}
