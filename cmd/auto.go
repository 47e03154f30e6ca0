package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/date"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

type autoAddCmd struct {
	name     string
	amount   float64
	freq     string
	next     string
	category string
	account  string
}

func (*autoAddCmd) Name() string     { return "auto-add" }
func (*autoAddCmd) Synopsis() string { return "schedule a recurring payment" }
func (*autoAddCmd) Usage() string {
	return `fbk auto-add -name <name> -amount <amount> -freq <frequency> [-next <date>] [-category <category>] [-account <id>]

  Schedules a recurring payment. On every due date an expense transaction is
  generated automatically, the next time the book is opened.
  Frequency is one of Monthly, Quarterly, Yearly or One-Time.
`
}

func (c *autoAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the payment, e.g. Rent or Netflix.")
	f.Float64Var(&c.amount, "amount", 0, "Amount due on each occurrence.")
	f.StringVar(&c.freq, "freq", string(finbook.Monthly), "Recurrence: Monthly, Quarterly, Yearly or One-Time.")
	f.StringVar(&c.next, "next", "", "First due date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.category, "category", "", "Category for the generated transactions.")
	f.StringVar(&c.account, "account", "", "Account the payments settle against.")
}

func (c *autoAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := finbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing amount:", err)
		return subcommands.ExitUsageError
	}
	freq, err := finbook.ParseFrequency(c.freq)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	next, err := parseDateFlag(c.next)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing next date:", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ac, err := b.AddAutoCredit(finbook.AutoCredit{
		Name:      c.name,
		Amount:    amount,
		Frequency: freq,
		NextDate:  next.String(),
		Category:  c.category,
		AccountID: c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Scheduled %q every %s, next due %s (%s)\n", ac.Name, ac.Frequency, ac.NextDate, ac.ID)
	return subcommands.ExitSuccess
}

type autoDelCmd struct{}

func (*autoDelCmd) Name() string     { return "auto-del" }
func (*autoDelCmd) Synopsis() string { return "remove a recurring payment" }
func (*autoDelCmd) Usage() string {
	return `fbk auto-del <id>

  Removes a recurring payment. Transactions it already generated stay in
  the book.
`
}

func (*autoDelCmd) SetFlags(f *flag.FlagSet) {}

func (c *autoDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one schedule id.")
		return subcommands.ExitUsageError
	}
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteAutoCredit(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed schedule %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type scheduleCmd struct{}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "list recurring payments and their next due date" }
func (*scheduleCmd) Usage() string {
	return `fbk schedule

  Lists all recurring payments with their next due date, flagging the ones
  that need attention.
`
}

func (*scheduleCmd) SetFlags(f *flag.FlagSet) {}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AutoCredits(b.AutoCredits(), date.Today()))
	return subcommands.ExitSuccess
}
