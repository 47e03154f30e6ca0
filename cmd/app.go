// Package cmd implements the CLI application to manage a book of accounts.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&addCmd{}, "transactions")
	c.Register(&delTxCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&autoAddCmd{}, "schedules")
	c.Register(&autoDelCmd{}, "schedules")
	c.Register(&scheduleCmd{}, "schedules")

	c.Register(&loanCmd{}, "obligations")
	c.Register(&delLoanCmd{}, "obligations")
	c.Register(&insuranceCmd{}, "obligations")
	c.Register(&delInsuranceCmd{}, "obligations")

	c.Register(&lendCmd{}, "lending")
	c.Register(&repaidCmd{}, "lending")

	c.Register(&bullionCmd{}, "investments")
	c.Register(&fdCmd{}, "investments")
	c.Register(&estateCmd{}, "investments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&networthCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookPath = flag.String("book", defaultBookPath(), "Path to the book folder")

func defaultBookPath() string {
	if p := os.Getenv(EnvBookPath); p != "" {
		return p
	}
	return ".finbook"
}

// OpenBook is the central function to open the book. Opening catches up
// overdue recurring payments, so every command sees an up to date book.
func OpenBook() (*finbook.Book, error) {
	b, err := finbook.Open(*bookPath)
	if err != nil {
		return nil, fmt.Errorf("could not open book %q: %w", *bookPath, err)
	}
	return b, nil
}
