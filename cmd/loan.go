package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type loanCmd struct {
	name    string
	amount  float64
	rate    float64
	years   int
	start   string
	account string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record a loan and schedule its EMI" }
func (*loanCmd) Usage() string {
	return `fbk loan -name <name> -amount <principal> -rate <percent> -years <n> [-s <start>] [-account <id>]

  Records a loan. The EMI is computed from principal, rate and term, the
  principal is recorded as incoming money, and a monthly EMI payment is
  scheduled starting one month after the start date.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan, e.g. Car loan.")
	f.Float64Var(&c.amount, "amount", 0, "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.years, "years", 0, "Term in years.")
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.account, "account", "", "Account the loan was disbursed to.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := finbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing amount:", err)
		return subcommands.ExitUsageError
	}
	start, err := parseDateFlag(c.start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing start date:", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l, err := b.AddLoan(finbook.Loan{
		Name:        c.name,
		Principal:   principal,
		RatePercent: decimal.NewFromFloat(c.rate),
		TermYears:   c.years,
		StartDate:   start,
		AccountID:   c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded loan %q, EMI %s/month (%s)\n", l.Name, l.EMI, l.ID)
	return subcommands.ExitSuccess
}

type delLoanCmd struct{}

func (*delLoanCmd) Name() string     { return "del-loan" }
func (*delLoanCmd) Synopsis() string { return "delete a loan and its EMI schedule" }
func (*delLoanCmd) Usage() string {
	return `fbk del-loan <id>

  Deletes a loan. The EMI schedule it created goes with it; EMI payments
  already recorded stay in the book.
`
}

func (*delLoanCmd) SetFlags(f *flag.FlagSet) {}

func (c *delLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one loan id.")
		return subcommands.ExitUsageError
	}
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteLoan(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted loan %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
