package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

type insuranceCmd struct {
	name    string
	kind    string
	premium float64
	freq    string
	next    string
	account string
}

func (*insuranceCmd) Name() string     { return "insurance" }
func (*insuranceCmd) Synopsis() string { return "record a policy and schedule its premium" }
func (*insuranceCmd) Usage() string {
	return `fbk insurance -name <name> -kind Life|Health|Vehicle -premium <amount> -freq <frequency> [-next <date>] [-account <id>]

  Records an insurance policy and schedules its premium as a recurring
  payment.
`
}

func (c *insuranceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the policy.")
	f.StringVar(&c.kind, "kind", string(finbook.Life), "Policy kind: Life, Health or Vehicle.")
	f.Float64Var(&c.premium, "premium", 0, "Premium amount due on each occurrence.")
	f.StringVar(&c.freq, "freq", string(finbook.Yearly), "Premium recurrence: Monthly, Quarterly, Yearly or One-Time.")
	f.StringVar(&c.next, "next", "", "Next premium due date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.account, "account", "", "Account the premiums settle against.")
}

func (c *insuranceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	premium, err := finbook.ParseAmount(c.premium)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing premium:", err)
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
	ins, err := b.AddInsurance(finbook.Insurance{
		Name:            c.name,
		Kind:            finbook.InsuranceKind(c.kind),
		PremiumAmount:   premium,
		Frequency:       freq,
		NextPremiumDate: next,
		AccountID:       c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s policy %q, premium %s %s (%s)\n", ins.Kind, ins.Name, ins.PremiumAmount, ins.Frequency, ins.ID)
	return subcommands.ExitSuccess
}

type delInsuranceCmd struct{}

func (*delInsuranceCmd) Name() string     { return "del-insurance" }
func (*delInsuranceCmd) Synopsis() string { return "delete a policy and its premium schedule" }
func (*delInsuranceCmd) Usage() string {
	return `fbk del-insurance <id>

  Deletes an insurance policy. The premium schedule it created goes with
  it; premiums already paid stay in the book.
`
}

func (*delInsuranceCmd) SetFlags(f *flag.FlagSet) {}

func (c *delInsuranceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one policy id.")
		return subcommands.ExitUsageError
	}
	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := b.DeleteInsurance(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted policy %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
