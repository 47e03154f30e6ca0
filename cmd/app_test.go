package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// setTestBook points the global -book flag at a temporary folder.
func setTestBook(t *testing.T) {
	t.Helper()
	old := *bookPath
	*bookPath = t.TempDir()
	t.Cleanup(func() { *bookPath = old })
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing args of %q: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddAccountThenTransaction(t *testing.T) {
	setTestBook(t)

	if got := run(t, &addAccountCmd{}, "-name", "HDFC", "-balance", "1000"); got != subcommands.ExitSuccess {
		t.Fatalf("add-account exited with %v", got)
	}

	b, err := OpenBook()
	if err != nil {
		t.Fatal(err)
	}
	accounts := b.Accounts()
	if len(accounts) != 1 || accounts[0].Name != "HDFC" {
		t.Fatalf("expected one account HDFC, got %+v", accounts)
	}

	if got := run(t, &addCmd{}, "-type", "expense", "-amount", "250", "-category", "Groceries", "-account", accounts[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", got)
	}

	b, err = OpenBook()
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Account(accounts[0].ID).Balance.String(); got != "₹750.00" {
		t.Errorf("balance after expense = %s, want ₹750.00", got)
	}
}

func TestAddRejectsNegativeAmount(t *testing.T) {
	setTestBook(t)

	if got := run(t, &addCmd{}, "-type", "expense", "-amount", "-5", "-category", "Oops"); got == subcommands.ExitSuccess {
		t.Fatal("add with negative amount should not succeed")
	}

	b, err := OpenBook()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Transactions()) != 0 {
		t.Errorf("rejected transaction was recorded: %+v", b.Transactions())
	}
}

func TestLoanCommandSchedulesEMI(t *testing.T) {
	setTestBook(t)

	if got := run(t, &loanCmd{}, "-name", "Car loan", "-amount", "300000", "-rate", "9", "-years", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("loan exited with %v", got)
	}

	b, err := OpenBook()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Loans()) != 1 {
		t.Fatalf("expected one loan, got %d", len(b.Loans()))
	}
	acs := b.AutoCredits()
	if len(acs) != 1 || acs[0].Name != "Car loan EMI" {
		t.Fatalf("expected one EMI schedule, got %+v", acs)
	}
}

func TestParseAccountType(t *testing.T) {
	if _, err := parseAccountType("Bank"); err != nil {
		t.Errorf("Bank should parse: %v", err)
	}
	if _, err := parseAccountType("Piggy"); err == nil {
		t.Error("Piggy should not parse")
	}
}
