package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook/date"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	start string
	date  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expense and net over a period" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-s <start_date>] [-d <end_date>]

  Displays total income, total expense and the net over the period, with a
  per-category breakdown of the expenses. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Defaults to the first day of the month.")
	f.StringVar(&c.date, "d", "", "The end date for the range. Defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	endDate, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	startDate := date.MonthOf(endDate).From
	if c.start != "" {
		startDate, err = date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(b.Summarize(date.NewRange(startDate, endDate))))

	return subcommands.ExitSuccess
}

type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the current net worth" }
func (*networthCmd) Usage() string {
	return `fbk networth

  Displays the net worth: account balances plus investments held at cost,
  minus outstanding loan principal.
`
}

func (*networthCmd) SetFlags(f *flag.FlagSet) {}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NetWorth(b.NetWorth()))
	return subcommands.ExitSuccess
}
