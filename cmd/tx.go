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

// addCmd records a one-off income or expense.
type addCmd struct {
	typ      string
	amount   float64
	category string
	date     string
	method   string
	account  string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fbk add -type income|expense -amount <amount> -category <category> [-d <date>] [-via <method>] [-account <id>] [-notes <text>]

  Records a transaction. When -account is given the account balance moves
  by the signed amount.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(finbook.Expense), "Transaction type: income or expense.")
	f.Float64Var(&c.amount, "amount", 0, "Amount, strictly positive.")
	f.StringVar(&c.category, "category", "", "Category, e.g. Groceries or Salary.")
	f.StringVar(&c.date, "d", "", "Date of the transaction, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.method, "via", string(finbook.UPI), "Payment method: UPI, Cash, Card or Bank.")
	f.StringVar(&c.account, "account", "", "Account the transaction settles against.")
	f.StringVar(&c.notes, "notes", "", "Free-form note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	tx, err := b.AddTransaction(finbook.Transaction{
		Type:          finbook.TransactionType(c.typ),
		Amount:        amount,
		Category:      c.category,
		Date:          d,
		PaymentMethod: finbook.PaymentMethod(c.method),
		Notes:         c.notes,
		AccountID:     c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s (%s)\n", tx.Type, tx.Amount, tx.ID)
	return subcommands.ExitSuccess
}

type delTxCmd struct{}

func (*delTxCmd) Name() string     { return "del-tx" }
func (*delTxCmd) Synopsis() string { return "delete a transaction and revert its balance effect" }
func (*delTxCmd) Usage() string {
	return `fbk del-tx <id>

  Deletes the transaction with the given id. If it settled against an
  account, the balance moves back.
`
}

func (*delTxCmd) SetFlags(f *flag.FlagSet) {}

func (c *delTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteTransaction(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type txCmd struct {
	start string
	date  string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `fbk tx [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the book, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range. Defaults to today.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// If no range flag is provided, use the full history.
	useFullRange := p.start == "" && p.date == ""

	var periodRange date.Range
	if !useFullRange {
		endDate, err := parseDateFlag(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
		startDate := date.MonthOf(endDate).From
		if p.start != "" {
			startDate, err = date.Parse(p.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		periodRange = date.NewRange(startDate, endDate)
	}

	var transactions []finbook.Transaction
	for _, tx := range b.Transactions() {
		if useFullRange || periodRange.Contains(tx.Date) {
			transactions = append(transactions, tx)
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}

// parseDateFlag parses a date flag value, empty meaning today.
func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
