package finbook

import (
	"fmt"

	"github.com/etnz/finbook/date"
)

// InsuranceKind categorizes a policy.
type InsuranceKind string

const (
	Life    InsuranceKind = "Life"
	Health  InsuranceKind = "Health"
	Vehicle InsuranceKind = "Vehicle"
)

// Insurance is a policy whose premium is collected on a recurring schedule.
// Creating one generates the premium auto-credit; deleting one cascades to
// that schedule.
type Insurance struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Kind            InsuranceKind `json:"kind"`
	PremiumAmount   Money         `json:"premiumAmount"`
	Frequency       Frequency     `json:"frequency"`
	NextPremiumDate date.Date     `json:"nextPremiumDate"`
	AccountID       string        `json:"accountId,omitempty"`
}

// AddInsurance records a policy and schedules its premium as an auto-credit.
func (b *Book) AddInsurance(ins Insurance) (Insurance, error) {
	if !ins.PremiumAmount.IsPositive() {
		return Insurance{}, fmt.Errorf("premium amount must be positive, got %s", ins.PremiumAmount)
	}
	if !ins.Frequency.Valid() {
		return Insurance{}, fmt.Errorf("unknown premium frequency %q", string(ins.Frequency))
	}
	if ins.ID == "" {
		ins.ID = newID()
	}
	if ins.NextPremiumDate.IsZero() {
		ins.NextPremiumDate = date.Today()
	}
	b.insurances = append(b.insurances, ins)
	if err := b.save(keyInsurances); err != nil {
		return Insurance{}, err
	}

	if _, err := b.AddAutoCredit(AutoCredit{
		Name:      ins.Name + " Premium",
		Amount:    ins.PremiumAmount,
		Frequency: ins.Frequency,
		NextDate:  ins.NextPremiumDate.String(),
		Category:  "Insurance",
		AccountID: ins.AccountID,
		Origin:    Origin{Kind: OriginInsurance, ID: ins.ID},
	}); err != nil {
		return Insurance{}, err
	}
	return ins, nil
}

// DeleteInsurance removes a policy and cascades to the premium auto-credits
// it originated. An unknown id is a no-op.
func (b *Book) DeleteInsurance(id string) error {
	var deleted bool
	b.insurances = deleteByID(b.insurances, id, func(i Insurance) string { return i.ID }, &deleted)
	if !deleted {
		return nil
	}
	if err := b.save(keyInsurances); err != nil {
		return err
	}
	return b.deleteAutoCreditsByOrigin(Origin{Kind: OriginInsurance, ID: id})
}
