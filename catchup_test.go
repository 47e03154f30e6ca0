package finbook

import (
	"testing"

	"github.com/etnz/finbook/date"
)

func TestCatchUp_Completeness(t *testing.T) {
	b := newTestBook(t)
	acc := addAccount(t, b, "Current", 100000)
	ac, err := b.AddAutoCredit(AutoCredit{Name: "Gym", Amount: M(1200), Frequency: Monthly, NextDate: "2025-05-10", Category: "Fitness", AccountID: acc.ID})
	if err != nil {
		t.Fatalf("AddAutoCredit() failed: %v", err)
	}

	// Three months overdue: occurrences on 05-10, 06-10 and 07-10 are due,
	// 08-10 is not.
	now := date.MustParse("2025-08-09")
	added, err := b.CatchUp(now)
	if err != nil {
		t.Fatalf("CatchUp() failed: %v", err)
	}
	if added != 3 {
		t.Errorf("CatchUp() materialized %d transactions, want 3", added)
	}

	wantDates := map[string]bool{"2025-05-10": false, "2025-06-10": false, "2025-07-10": false}
	for _, tx := range b.Transactions() {
		if tx.Type != Expense || tx.Category != "Fitness" {
			t.Errorf("materialized transaction has type %q category %q", tx.Type, tx.Category)
		}
		if !tx.Amount.Equal(M(1200)) {
			t.Errorf("materialized amount = %s, want %s", tx.Amount, M(1200))
		}
		seen, known := wantDates[tx.Date.String()]
		if !known || seen {
			t.Errorf("unexpected or duplicated occurrence on %s", tx.Date)
		}
		wantDates[tx.Date.String()] = true
	}

	got := b.AutoCredits()[0]
	if got.NextDate != "2025-08-10" {
		t.Errorf("NextDate = %s, want 2025-08-10", got.NextDate)
	}
	due, err := got.NextDue()
	if err != nil {
		t.Fatalf("NextDue() failed: %v", err)
	}
	if !due.After(now) {
		t.Errorf("after catch-up the next due date %s must be after now %s", due, now)
	}

	// Balance moved once per occurrence, through the regular maintainer.
	if got, want := b.Account(acc.ID).Balance, M(100000-3*1200); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
	checkBalanceInvariant(t, b, acc.ID, M(100000))
	_ = ac
}

func TestCatchUp_Idempotence(t *testing.T) {
	dir := t.TempDir()
	b, err := load(dir)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	acc := addAccount(t, b, "Current", 50000)
	if _, err := b.AddAutoCredit(AutoCredit{Name: "Rent", Amount: M(15000), Frequency: Monthly, NextDate: "2025-07-01", Category: "Housing", AccountID: acc.ID}); err != nil {
		t.Fatalf("AddAutoCredit() failed: %v", err)
	}

	now := date.MustParse("2025-08-15")
	first, err := b.CatchUp(now)
	if err != nil {
		t.Fatalf("first CatchUp() failed: %v", err)
	}
	if first != 2 {
		t.Fatalf("first CatchUp() = %d, want 2", first)
	}
	nextDate := b.AutoCredits()[0].NextDate

	// Second run in the same session.
	second, err := b.CatchUp(now)
	if err != nil {
		t.Fatalf("second CatchUp() failed: %v", err)
	}
	if second != 0 {
		t.Errorf("second CatchUp() materialized %d transactions, want 0", second)
	}
	if got := b.AutoCredits()[0].NextDate; got != nextDate {
		t.Errorf("second CatchUp() changed NextDate from %s to %s", nextDate, got)
	}

	// And a duplicate run in a fresh session over the same stored state.
	b2, err := load(dir)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	third, err := b2.CatchUp(now)
	if err != nil {
		t.Fatalf("third CatchUp() failed: %v", err)
	}
	if third != 0 {
		t.Errorf("catch-up over already caught-up stored state materialized %d transactions, want 0", third)
	}
	if got, want := b2.Account(acc.ID).Balance, M(50000-2*15000); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
}

func TestCatchUp_OneTimeTerminality(t *testing.T) {
	b := newTestBook(t)
	if _, err := b.AddAutoCredit(AutoCredit{Name: "Annual fee", Amount: M(500), Frequency: OneTime, NextDate: "2025-01-01", Category: "Fees"}); err != nil {
		t.Fatalf("AddAutoCredit() failed: %v", err)
	}

	added, err := b.CatchUp(date.MustParse("2025-08-31"))
	if err != nil {
		t.Fatalf("CatchUp() failed: %v", err)
	}
	if added != 1 {
		t.Errorf("One-Time schedule materialized %d transactions, want exactly 1", added)
	}
	if got := b.AutoCredits()[0].NextDate; got != Terminal.String() {
		t.Errorf("NextDate = %s, want terminal %s", got, Terminal)
	}

	// It never fires again, even far in the future.
	added, err = b.CatchUp(date.MustParse("2100-01-01"))
	if err != nil {
		t.Fatalf("CatchUp() failed: %v", err)
	}
	if added != 0 {
		t.Errorf("terminal schedule materialized %d transactions, want 0", added)
	}
}

func TestCatchUp_MalformedNextDateIsSkipped(t *testing.T) {
	b := newTestBook(t)
	// Injected behind the validation: simulates a hand-edited or corrupted file.
	b.autocredits = append(b.autocredits, AutoCredit{ID: newID(), Name: "Broken", Amount: M(100), Frequency: Monthly, NextDate: "31/12/2024"})
	if _, err := b.AddAutoCredit(AutoCredit{Name: "Rent", Amount: M(15000), Frequency: Monthly, NextDate: "2025-08-01", Category: "Housing"}); err != nil {
		t.Fatalf("AddAutoCredit() failed: %v", err)
	}

	added, err := b.CatchUp(date.MustParse("2025-08-15"))
	if err != nil {
		t.Fatalf("CatchUp() failed: %v", err)
	}
	// The healthy schedule is processed, the broken one left untouched for
	// the next session.
	if added != 1 {
		t.Errorf("CatchUp() = %d, want 1", added)
	}
	for _, ac := range b.AutoCredits() {
		if ac.Name == "Broken" && ac.NextDate != "31/12/2024" {
			t.Errorf("malformed schedule was modified: NextDate = %s", ac.NextDate)
		}
	}
}

func TestCatchUp_UnknownFrequencyIsStuck(t *testing.T) {
	b := newTestBook(t)
	b.autocredits = append(b.autocredits, AutoCredit{ID: newID(), Name: "Odd", Amount: M(100), Frequency: "Fortnightly", NextDate: "2025-01-01"})

	added, err := b.CatchUp(date.MustParse("2025-08-15"))
	if err != nil {
		t.Fatalf("CatchUp() failed: %v", err)
	}
	if added != 0 {
		t.Errorf("stuck schedule materialized %d transactions, want 0", added)
	}
	if got := b.AutoCredits()[0].NextDate; got != "2025-01-01" {
		t.Errorf("stuck schedule was advanced to %s", got)
	}
}

func TestMaterializedID_Deterministic(t *testing.T) {
	due := date.MustParse("2025-05-10")
	if MaterializedID("ac-1", due) != MaterializedID("ac-1", due) {
		t.Error("same schedule and due date must derive the same identifier")
	}
	if MaterializedID("ac-1", due) == MaterializedID("ac-2", due) {
		t.Error("different schedules must derive different identifiers")
	}
	if MaterializedID("ac-1", due) == MaterializedID("ac-1", due.AddMonths(1)) {
		t.Error("different due dates must derive different identifiers")
	}
}
