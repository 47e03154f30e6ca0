package finbook

import (
	"sort"

	"github.com/etnz/finbook/date"
)

// NetWorth is a point-in-time aggregate of everything the book tracks.
// Investments are valued at cost: the tracker deliberately carries no market
// data, so purchase cost is the only honest number available.
type NetWorth struct {
	Accounts      Money
	Bullion       Money
	FixedDeposits Money
	RealEstate    Money
	Loans         Money // outstanding principal, counted as a liability
	Total         Money
}

// NetWorth aggregates account balances and investment costs, less loan
// principal.
func (b *Book) NetWorth() NetWorth {
	var nw NetWorth
	for _, a := range b.accounts {
		nw.Accounts = nw.Accounts.Add(a.Balance)
	}
	for _, p := range b.bullion {
		nw.Bullion = nw.Bullion.Add(p.Cost())
	}
	for _, fd := range b.fixedDeposits {
		nw.FixedDeposits = nw.FixedDeposits.Add(fd.Principal)
	}
	for _, re := range b.realEstate {
		nw.RealEstate = nw.RealEstate.Add(re.PurchasePrice)
	}
	for _, l := range b.loans {
		nw.Loans = nw.Loans.Add(l.Principal)
	}
	nw.Total = nw.Accounts.Add(nw.Bullion).Add(nw.FixedDeposits).Add(nw.RealEstate).Sub(nw.Loans)
	return nw
}

// CategoryTotal is one row of a summary breakdown.
type CategoryTotal struct {
	Category string
	Amount   Money
}

// Summary aggregates the transactions of a date range.
type Summary struct {
	Range   date.Range
	Income  Money
	Expense Money
	Net     Money
	// ByCategory breaks expenses down per category, largest first.
	ByCategory []CategoryTotal
}

// Summarize aggregates income and expenses over a date range.
func (b *Book) Summarize(r date.Range) Summary {
	s := Summary{Range: r}
	byCategory := make(map[string]Money)
	for _, tx := range b.transactions {
		if !r.Contains(tx.Date) {
			continue
		}
		if tx.Type == Income {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expense)
	for cat, amount := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.Amount.Equal(b.Amount) {
			return a.Category < b.Category
		}
		return b.Amount.LessThan(a.Amount)
	})
	return s
}
