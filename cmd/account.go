package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	name    string
	typ     string
	balance float64
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new bank account or wallet" }
func (*addAccountCmd) Usage() string {
	return `fbk add-account -name <name> [-type Bank|Wallet] [-balance <amount>]

  Creates a balance-carrying account. Transactions recorded against it move
  its balance.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account.")
	f.StringVar(&c.typ, "type", string(finbook.BankAccount), "Account type: Bank or Wallet.")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	typ, err := parseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	balance, err := finbook.ParseAmount(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing balance:", err)
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := b.AddAccount(finbook.Account{Name: c.name, Type: typ, Balance: balance})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q (%s)\n", a.Name, a.ID)
	return subcommands.ExitSuccess
}

func parseAccountType(s string) (finbook.AccountType, error) {
	switch finbook.AccountType(s) {
	case finbook.BankAccount, finbook.Wallet:
		return finbook.AccountType(s), nil
	}
	return "", fmt.Errorf("unknown account type %q, expected Bank or Wallet", s)
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts with their balance" }
func (*accountsCmd) Usage() string {
	return `fbk accounts

  Lists all accounts with their current balance.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(b.Accounts()))
	return subcommands.ExitSuccess
}
