package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// Transactions renders a transaction listing, most recent first.
func Transactions(txs []finbook.Transaction) string {
	doc := md.NewMarkdown(io.Discard)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Date", "Category", "Amount", "Method", "Notes"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			shortID(tx.ID),
			tx.Date.String(),
			tx.Category,
			signedAmount(tx),
			string(tx.PaymentMethod),
			tx.Notes,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transactions.", len(txs)))

	return doc.String()
}
