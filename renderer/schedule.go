package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/date"
	md "github.com/nao1215/markdown"
)

// AutoCredits renders the recurring payment schedules. Schedules due at or
// before now are listed in a separate overdue section; after a regular Open
// that section stays empty, so it only shows up when catch-up was bypassed
// or a schedule is stuck.
func AutoCredits(acs []finbook.AutoCredit, now date.Date) string {
	doc := md.NewMarkdown(io.Discard)

	doc.H1("Recurring payments")
	if len(acs) == 0 {
		doc.PlainText("No recurring payments scheduled.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"ID", "Name", "Amount", "Frequency", "Next due", "Category"}}
	for _, ac := range acs {
		next := ac.NextDate
		if next == finbook.Terminal.String() {
			next = "done"
		}
		table.Rows = append(table.Rows, []string{
			shortID(ac.ID), ac.Name, ac.Amount.String(), string(ac.Frequency), next, ac.Category,
		})
	}
	doc.Table(table)

	var buf bytes.Buffer
	io.WriteString(&buf, doc.String())

	ConditionalBlock(&buf, func(w io.Writer) bool {
		sub := md.NewMarkdown(io.Discard)
		stuck := md.TableSet{Header: []string{"Name", "Due", "Amount"}}
		for _, ac := range acs {
			due, err := ac.NextDue()
			if err != nil {
				stuck.Rows = append(stuck.Rows, []string{ac.Name, ac.NextDate + " (unparseable)", ac.Amount.String()})
				continue
			}
			if !due.After(now) {
				stuck.Rows = append(stuck.Rows, []string{ac.Name, due.String(), ac.Amount.String()})
			}
		}
		if len(stuck.Rows) == 0 {
			return false
		}
		sub.H2("Needs attention")
		sub.Table(stuck)
		io.WriteString(w, sub.String())
		return true
	})

	return buf.String()
}
