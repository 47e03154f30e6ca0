package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// Summary renders an income/expense aggregate over a date range, with the
// expense breakdown per category.
func Summary(s finbook.Summary) string {
	doc := md.NewMarkdown(io.Discard)

	doc.H1(fmt.Sprintf("Summary %s to %s", s.Range.From, s.Range.To))
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", s.Income.String()},
			{"Expense", s.Expense.String()},
			{"Net", s.Net.String()},
		},
	})

	if len(s.ByCategory) > 0 {
		doc.H2("Expenses by category")
		table := md.TableSet{Header: []string{"Category", "Amount"}}
		for _, c := range s.ByCategory {
			table.Rows = append(table.Rows, []string{c.Category, c.Amount.String()})
		}
		doc.Table(table)
	}

	return doc.String()
}

// NetWorth renders the net worth aggregate.
func NetWorth(nw finbook.NetWorth) string {
	doc := md.NewMarkdown(io.Discard)

	doc.H1("Net worth")
	doc.Table(md.TableSet{
		Header: []string{"Component", "Amount"},
		Rows: [][]string{
			{"Accounts", nw.Accounts.String()},
			{"Bullion (at cost)", nw.Bullion.String()},
			{"Fixed deposits", nw.FixedDeposits.String()},
			{"Real estate (at cost)", nw.RealEstate.String()},
			{"Loans", nw.Loans.Neg().String()},
			{"Total", nw.Total.String()},
		},
	})
	doc.PlainText("Investments are valued at purchase cost; the tracker carries no market data.")

	return doc.String()
}
