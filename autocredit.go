package finbook

import "github.com/etnz/finbook/date"

// OriginKind tags the entity that generated an auto-credit, if any.
type OriginKind string

const (
	// OriginNone marks an auto-credit the user created directly.
	OriginNone      OriginKind = ""
	OriginLoan      OriginKind = "loan"
	OriginInsurance OriginKind = "insurance"
)

// Origin is an explicit reference to the entity whose creation generated an
// auto-credit (a loan's EMI schedule, an insurance policy's premium).
// Cascading deletes resolve through this reference. Earlier versions of the
// tracker matched schedules by derived name ("<loan> EMI"), which collides
// as soon as two entities derive the same name.
type Origin struct {
	Kind OriginKind `json:"kind,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// AutoCredit is a recurring obligation (EMI, SIP, rent, premium) that
// materializes into an expense transaction on each due date.
type AutoCredit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    Money     `json:"amount"`
	Frequency Frequency `json:"frequency"`
	// NextDate is the next occurrence due, in ISO-8601 form. It is kept as a
	// raw string so one unparseable schedule degrades to a skipped schedule,
	// not a lost collection. After catch-up it is never in the past, except
	// that One-Time schedules park at Terminal once fired.
	NextDate  string `json:"nextDate"`
	Category  string `json:"category"`
	AccountID string `json:"accountId,omitempty"`
	Origin    Origin `json:"origin,omitzero"`
}

// NextDue parses the next due date of the schedule.
func (a AutoCredit) NextDue() (date.Date, error) {
	return date.Parse(a.NextDate)
}
