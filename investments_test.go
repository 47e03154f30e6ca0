package finbook

import (
	"testing"

	"github.com/etnz/finbook/date"
	"github.com/shopspring/decimal"
)

func TestAddBullion_CreatesPurchaseExpense(t *testing.T) {
	b := newTestBook(t)
	acc := addAccount(t, b, "Savings", 500000)

	p, err := b.AddBullion(PreciousMetal{
		Name:         "Wedding bangles",
		Metal:        Gold,
		WeightGrams:  decimal.NewFromInt(20),
		PricePerGram: M(7000),
		PurchaseDate: date.MustParse("2025-07-01"),
		AccountID:    acc.ID,
	})
	if err != nil {
		t.Fatalf("AddBullion() failed: %v", err)
	}
	if !p.Cost().Equal(M(140000)) {
		t.Errorf("Cost() = %s, want %s", p.Cost(), M(140000))
	}

	txs := b.Transactions()
	if len(txs) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(txs))
	}
	if txs[0].Type != Expense || txs[0].Category != "Investment" || !txs[0].Amount.Equal(M(140000)) {
		t.Errorf("purchase transaction = %+v", txs[0])
	}
	if got, want := b.Account(acc.ID).Balance, M(360000); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
}

func TestAddFixedDeposit_CreatesPurchaseExpense(t *testing.T) {
	b := newTestBook(t)
	fd, err := b.AddFixedDeposit(FixedDeposit{
		BankName:     "SBI",
		Principal:    M(100000),
		RatePercent:  decimal.NewFromFloat(7.1),
		StartDate:    date.MustParse("2025-08-01"),
		MaturityDate: date.MustParse("2026-08-01"),
	})
	if err != nil {
		t.Fatalf("AddFixedDeposit() failed: %v", err)
	}
	if fd.ID == "" {
		t.Error("fixed deposit must be assigned an id")
	}
	txs := b.Transactions()
	if len(txs) != 1 || txs[0].Category != "Investment" || !txs[0].Amount.Equal(M(100000)) {
		t.Errorf("purchase transaction = %+v", txs)
	}
}

func TestAddRealEstate_CreatesPurchaseExpense(t *testing.T) {
	b := newTestBook(t)
	if _, err := b.AddRealEstate(RealEstate{
		Name:          "Flat 3B",
		Location:      "Pune",
		PurchasePrice: M(4500000),
		PurchaseDate:  date.MustParse("2024-01-15"),
	}); err != nil {
		t.Fatalf("AddRealEstate() failed: %v", err)
	}
	txs := b.Transactions()
	if len(txs) != 1 || txs[0].Category != "Investment" || !txs[0].Amount.Equal(M(4500000)) {
		t.Errorf("purchase transaction = %+v", txs)
	}
}

func TestNetWorth(t *testing.T) {
	b := newTestBook(t)
	acc := addAccount(t, b, "Savings", 50000)
	if _, err := b.AddBullion(PreciousMetal{Name: "Coins", Metal: Gold, WeightGrams: decimal.NewFromInt(10), PricePerGram: M(7000), PurchaseDate: date.MustParse("2025-01-01")}); err != nil {
		t.Fatalf("AddBullion() failed: %v", err)
	}
	if _, err := b.AddFixedDeposit(FixedDeposit{BankName: "SBI", Principal: M(100000), StartDate: date.MustParse("2025-01-01"), MaturityDate: date.MustParse("2026-01-01")}); err != nil {
		t.Fatalf("AddFixedDeposit() failed: %v", err)
	}
	if _, err := b.AddLoan(Loan{Name: "Bike Loan", Principal: M(80000), RatePercent: decimal.NewFromInt(10), TermYears: 2, StartDate: date.MustParse("2025-01-01"), AccountID: acc.ID}); err != nil {
		t.Fatalf("AddLoan() failed: %v", err)
	}

	nw := b.NetWorth()
	// Account holds its initial 50000 plus the loan principal credit.
	if !nw.Accounts.Equal(M(130000)) {
		t.Errorf("Accounts = %s, want %s", nw.Accounts, M(130000))
	}
	if !nw.Bullion.Equal(M(70000)) {
		t.Errorf("Bullion = %s, want %s", nw.Bullion, M(70000))
	}
	if !nw.FixedDeposits.Equal(M(100000)) {
		t.Errorf("FixedDeposits = %s, want %s", nw.FixedDeposits, M(100000))
	}
	if !nw.Loans.Equal(M(80000)) {
		t.Errorf("Loans = %s, want %s", nw.Loans, M(80000))
	}
	want := M(130000 + 70000 + 100000 - 80000)
	if !nw.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", nw.Total, want)
	}
}

func TestSummarize(t *testing.T) {
	b := newTestBook(t)
	add := func(ty TransactionType, amount float64, cat, day string) {
		t.Helper()
		if _, err := b.AddTransaction(Transaction{Type: ty, Amount: M(amount), Category: cat, Date: date.MustParse(day)}); err != nil {
			t.Fatalf("AddTransaction() failed: %v", err)
		}
	}
	add(Income, 60000, "Salary", "2025-08-01")
	add(Expense, 15000, "Housing", "2025-08-02")
	add(Expense, 4000, "Groceries", "2025-08-10")
	add(Expense, 2500, "Groceries", "2025-08-20")
	add(Expense, 999, "Housing", "2025-07-31") // outside the range

	s := b.Summarize(date.MonthOf(date.MustParse("2025-08-15")))
	if !s.Income.Equal(M(60000)) {
		t.Errorf("Income = %s, want %s", s.Income, M(60000))
	}
	if !s.Expense.Equal(M(21500)) {
		t.Errorf("Expense = %s, want %s", s.Expense, M(21500))
	}
	if !s.Net.Equal(M(38500)) {
		t.Errorf("Net = %s, want %s", s.Net, M(38500))
	}
	if len(s.ByCategory) != 2 {
		t.Fatalf("ByCategory = %+v, want 2 rows", s.ByCategory)
	}
	if s.ByCategory[0].Category != "Housing" || !s.ByCategory[0].Amount.Equal(M(15000)) {
		t.Errorf("ByCategory[0] = %+v, want Housing 15000", s.ByCategory[0])
	}
	if s.ByCategory[1].Category != "Groceries" || !s.ByCategory[1].Amount.Equal(M(6500)) {
		t.Errorf("ByCategory[1] = %+v, want Groceries 6500", s.ByCategory[1])
	}
}
