package finbook

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/etnz/finbook/date"
)

func TestStore_RoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	want := []Transaction{
		{ID: "t1", Type: Income, Amount: M(60000), Category: "Salary", Date: date.MustParse("2025-08-01"), PaymentMethod: Bank, AccountID: "a1"},
		{ID: "t2", Type: Expense, Amount: M(40.50), Category: "Chai", Date: date.MustParse("2025-08-02"), PaymentMethod: Cash, Notes: "roadside"},
	}
	if err := Write(s, keyTransactions, want); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got := Read(s, keyTransactions, []Transaction{})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStore_MissingFileReturnsDefault(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	def := []Account{{ID: "a1", Name: "Wallet", Type: Wallet}}
	got := Read(s, keyAccounts, def)
	if !reflect.DeepEqual(got, def) {
		t.Errorf("Read() on missing file = %+v, want the default", got)
	}
}

func TestStore_CorruptFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, keyPrefix+keyAccounts+".json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("could not plant corrupt file: %v", err)
	}
	got := Read(s, keyAccounts, []Account{})
	if len(got) != 0 {
		t.Errorf("Read() on corrupt file = %+v, want the default", got)
	}
}

func TestStore_EmptyDirRejected(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Error("NewStore(\"\") expected an error")
	}
}

func TestStore_FilesAreNamespaced(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	if err := Write(s, keyLoans, []Loan{}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "finbook.loans.json")); err != nil {
		t.Errorf("expected namespaced file finbook.loans.json: %v", err)
	}
}
