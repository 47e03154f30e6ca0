package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type bullionCmd struct {
	name    string
	metal   string
	weight  float64
	price   float64
	date    string
	account string
}

func (*bullionCmd) Name() string     { return "bullion" }
func (*bullionCmd) Synopsis() string { return "record a gold or silver purchase" }
func (*bullionCmd) Usage() string {
	return `fbk bullion -name <name> -metal Gold|Silver -weight <grams> -price <per_gram> [-d <date>] [-account <id>]

  Records a bullion purchase. The total cost (weight times price per gram)
  is recorded as an investment expense.
`
}

func (c *bullionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the holding, e.g. Wedding bangles.")
	f.StringVar(&c.metal, "metal", string(finbook.Gold), "Metal: Gold or Silver.")
	f.Float64Var(&c.weight, "weight", 0, "Weight in grams.")
	f.Float64Var(&c.price, "price", 0, "Purchase price per gram.")
	f.StringVar(&c.date, "d", "", "Purchase date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.account, "account", "", "Account the purchase settles against.")
}

func (c *bullionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := finbook.ParseAmount(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing price:", err)
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
	p, err := b.AddBullion(finbook.PreciousMetal{
		Name:         c.name,
		Metal:        finbook.Metal(c.metal),
		WeightGrams:  decimal.NewFromFloat(c.weight),
		PricePerGram: price,
		PurchaseDate: d,
		AccountID:    c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %sg of %s for %s (%s)\n", p.WeightGrams, p.Metal, p.Cost(), p.ID)
	return subcommands.ExitSuccess
}

type fdCmd struct {
	bank     string
	amount   float64
	rate     float64
	start    string
	maturity string
	account  string
}

func (*fdCmd) Name() string     { return "fd" }
func (*fdCmd) Synopsis() string { return "record a fixed deposit" }
func (*fdCmd) Usage() string {
	return `fbk fd -bank <name> -amount <principal> -rate <percent> [-s <start>] [-maturity <date>] [-account <id>]

  Records a fixed deposit. The principal is recorded as an investment
  expense.
`
}

func (c *fdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "Bank holding the deposit.")
	f.Float64Var(&c.amount, "amount", 0, "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date, YYYY-MM-DD.")
	f.StringVar(&c.account, "account", "", "Account the deposit settles against.")
}

func (c *fdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	var maturity date.Date
	if c.maturity != "" {
		maturity, err = date.Parse(c.maturity)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing maturity date:", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fd, err := b.AddFixedDeposit(finbook.FixedDeposit{
		BankName:     c.bank,
		Principal:    principal,
		RatePercent:  decimal.NewFromFloat(c.rate),
		StartDate:    start,
		MaturityDate: maturity,
		AccountID:    c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded fixed deposit of %s at %s (%s)\n", fd.Principal, fd.BankName, fd.ID)
	return subcommands.ExitSuccess
}

type estateCmd struct {
	name     string
	location string
	price    float64
	date     string
	account  string
}

func (*estateCmd) Name() string     { return "estate" }
func (*estateCmd) Synopsis() string { return "record a real estate purchase" }
func (*estateCmd) Usage() string {
	return `fbk estate -name <name> -price <amount> [-location <place>] [-d <date>] [-account <id>]

  Records a property purchase. The price is recorded as an investment
  expense.
`
}

func (c *estateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the property.")
	f.StringVar(&c.location, "location", "", "Where the property is.")
	f.Float64Var(&c.price, "price", 0, "Purchase price.")
	f.StringVar(&c.date, "d", "", "Purchase date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.account, "account", "", "Account the purchase settles against.")
}

func (c *estateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := finbook.ParseAmount(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing price:", err)
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
	re, err := b.AddRealEstate(finbook.RealEstate{
		Name:          c.name,
		Location:      c.location,
		PurchasePrice: price,
		PurchaseDate:  d,
		AccountID:     c.account,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded property %q for %s (%s)\n", re.Name, re.PurchasePrice, re.ID)
	return subcommands.ExitSuccess
}
