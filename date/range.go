package date

import "time"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns a Range between from and to, inclusive.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// MonthOf returns the range covering the whole calendar month of d.
func MonthOf(d Date) Range {
	first := New(d.Year(), d.Month(), 1)
	return Range{From: first, To: first.AddMonths(1).Add(-1)}
}

// YearOf returns the range covering the whole calendar year of d.
func YearOf(d Date) Range {
	first := New(d.Year(), time.January, 1)
	return Range{From: first, To: first.AddYears(1).Add(-1)}
}
