// Package renderer builds markdown reports over a finbook book. The CLI
// renders the markdown to the terminal; the strings themselves stay plain
// markdown so they can also be piped or saved.
package renderer

import "github.com/etnz/finbook"

// shortID keeps identifiers readable in tables while staying unambiguous
// enough to paste into a delete command.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func signedAmount(tx finbook.Transaction) string {
	if tx.Type == finbook.Income {
		return "+" + tx.Amount.String()
	}
	return "-" + tx.Amount.String()
}
