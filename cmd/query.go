package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query over the book" }
func (*queryCmd) Usage() string {
	return `fbk query <jsonpath>

  Runs a JSONPath expression over the whole book and prints the result as
  JSON. The book is a single object with the collections as top-level keys:
  accounts, transactions, autocredits, lendings, bullion, fixedDeposits,
  realEstate, insurances, loans.

Usage Examples:
# All expense amounts of the book.
$ fbk query '$.transactions[?(@.type=="expense")].amount'

# Names of overdue people.
$ fbk query '$.lendings[?(@.status=="Pending")].personName'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}

	b, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Round-trip through JSON so the query sees the persisted shape of the
	// book, not the Go structs.
	state := map[string]any{
		"accounts":      b.Accounts(),
		"transactions":  b.Transactions(),
		"autocredits":   b.AutoCredits(),
		"lendings":      b.Lendings(),
		"bullion":       b.Bullion(),
		"fixedDeposits": b.FixedDeposits(),
		"realEstate":    b.RealEstate(),
		"insurances":    b.Insurances(),
		"loans":         b.Loans(),
	}
	raw, err := json.Marshal(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating query: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))

	return subcommands.ExitSuccess
}
