package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

type lendCmd struct {
	person string
	amount float64
	date   string
	notes  string
}

func (*lendCmd) Name() string     { return "lend" }
func (*lendCmd) Synopsis() string { return "record money lent to someone" }
func (*lendCmd) Usage() string {
	return `fbk lend -to <person> -amount <amount> [-d <date>] [-notes <text>]

  Records money lent out. The outgoing amount is recorded as an expense;
  mark it repaid with 'fbk repaid' when the money comes back.
`
}

func (c *lendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.person, "to", "", "Person the money was lent to.")
	f.Float64Var(&c.amount, "amount", 0, "Amount lent.")
	f.StringVar(&c.date, "d", "", "Date of lending, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.notes, "notes", "", "Free-form note.")
}

func (c *lendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.person == "" {
		fmt.Fprintln(os.Stderr, "Error: -to is required.")
		return subcommands.ExitUsageError
	}
	amount, err := finbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing amount:", err)
		return subcommands.ExitUsageError
	}
	d, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing date:", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l, err := b.AddLending(finbook.Lending{
		PersonName: c.person,
		Amount:     amount,
		DateLent:   d,
		Notes:      c.notes,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s lent to %s (%s)\n", l.Amount, l.PersonName, l.ID)
	return subcommands.ExitSuccess
}

type repaidCmd struct{}

func (*repaidCmd) Name() string     { return "repaid" }
func (*repaidCmd) Synopsis() string { return "mark a lending as repaid" }
func (*repaidCmd) Usage() string {
	return `fbk repaid <id>

  Marks a lending as repaid and records the incoming amount. Marking a
  lending repaid twice has no effect.
`
}

func (*repaidCmd) SetFlags(f *flag.FlagSet) {}

func (c *repaidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one lending id.")
		return subcommands.ExitUsageError
	}
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.MarkLendingPaid(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked lending %s as repaid\n", f.Arg(0))
	return subcommands.ExitSuccess
}
