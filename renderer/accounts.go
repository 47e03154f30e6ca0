package renderer

import (
	"io"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// Accounts renders accounts and their balances.
func Accounts(accounts []finbook.Account) string {
	doc := md.NewMarkdown(io.Discard)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"ID", "Name", "Type", "Balance"}}
	var total finbook.Money
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{shortID(a.ID), a.Name, string(a.Type), a.Balance.String()})
		total = total.Add(a.Balance)
	}
	table.Rows = append(table.Rows, []string{"", "Total", "", total.String()})
	doc.Table(table)

	return doc.String()
}
