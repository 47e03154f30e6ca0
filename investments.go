package finbook

import (
	"fmt"

	"github.com/etnz/finbook/date"
	"github.com/shopspring/decimal"
)

// Metal identifies the precious metal of a bullion holding.
type Metal string

const (
	Gold   Metal = "Gold"
	Silver Metal = "Silver"
)

// PreciousMetal is a bullion purchase. Its creation records the purchase as
// an expense transaction.
type PreciousMetal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Metal        Metal           `json:"metal"`
	WeightGrams  decimal.Decimal `json:"weightGrams"`
	PricePerGram Money           `json:"pricePerGram"`
	PurchaseDate date.Date       `json:"purchaseDate"`
	AccountID    string          `json:"accountId,omitempty"`
}

// Cost returns the total purchase cost of the holding.
func (p PreciousMetal) Cost() Money { return p.PricePerGram.Mul(p.WeightGrams) }

// FixedDeposit is a term deposit. Its creation records the principal as an
// expense transaction.
type FixedDeposit struct {
	ID           string          `json:"id"`
	BankName     string          `json:"bankName"`
	Principal    Money           `json:"principal"`
	RatePercent  decimal.Decimal `json:"ratePercent"`
	StartDate    date.Date       `json:"startDate"`
	MaturityDate date.Date       `json:"maturityDate"`
	AccountID    string          `json:"accountId,omitempty"`
}

// RealEstate is a property holding. Its creation records the purchase price
// as an expense transaction.
type RealEstate struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PurchasePrice Money     `json:"purchasePrice"`
	PurchaseDate  date.Date `json:"purchaseDate"`
	AccountID     string    `json:"accountId,omitempty"`
}

// AddBullion records a bullion purchase and its purchase-expense transaction.
// The id is assigned here; pass the record with an empty ID.
func (b *Book) AddBullion(p PreciousMetal) (PreciousMetal, error) {
	cost := p.Cost()
	if !cost.IsPositive() {
		return PreciousMetal{}, fmt.Errorf("bullion cost must be positive, got %s", cost)
	}
	if p.ID == "" {
		p.ID = newID()
	}
	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = date.Today()
	}
	b.bullion = append(b.bullion, p)
	if err := b.save(keyBullion); err != nil {
		return PreciousMetal{}, err
	}

	_, err := b.AddTransaction(Transaction{
		Type:          Expense,
		Amount:        cost,
		Category:      "Investment",
		Date:          p.PurchaseDate,
		PaymentMethod: Bank,
		Notes:         fmt.Sprintf("%s purchase: %s", p.Metal, p.Name),
		AccountID:     p.AccountID,
	})
	if err != nil {
		return PreciousMetal{}, err
	}
	return p, nil
}

// AddFixedDeposit records a fixed deposit and its principal as an expense.
func (b *Book) AddFixedDeposit(fd FixedDeposit) (FixedDeposit, error) {
	if !fd.Principal.IsPositive() {
		return FixedDeposit{}, fmt.Errorf("deposit principal must be positive, got %s", fd.Principal)
	}
	if fd.ID == "" {
		fd.ID = newID()
	}
	if fd.StartDate.IsZero() {
		fd.StartDate = date.Today()
	}
	b.fixedDeposits = append(b.fixedDeposits, fd)
	if err := b.save(keyFixedDeposits); err != nil {
		return FixedDeposit{}, err
	}

	_, err := b.AddTransaction(Transaction{
		Type:          Expense,
		Amount:        fd.Principal,
		Category:      "Investment",
		Date:          fd.StartDate,
		PaymentMethod: Bank,
		Notes:         fmt.Sprintf("Fixed deposit at %s", fd.BankName),
		AccountID:     fd.AccountID,
	})
	if err != nil {
		return FixedDeposit{}, err
	}
	return fd, nil
}

// AddRealEstate records a property purchase and its purchase-expense transaction.
func (b *Book) AddRealEstate(re RealEstate) (RealEstate, error) {
	if !re.PurchasePrice.IsPositive() {
		return RealEstate{}, fmt.Errorf("purchase price must be positive, got %s", re.PurchasePrice)
	}
	if re.ID == "" {
		re.ID = newID()
	}
	if re.PurchaseDate.IsZero() {
		re.PurchaseDate = date.Today()
	}
	b.realEstate = append(b.realEstate, re)
	if err := b.save(keyRealEstate); err != nil {
		return RealEstate{}, err
	}

	_, err := b.AddTransaction(Transaction{
		Type:          Expense,
		Amount:        re.PurchasePrice,
		Category:      "Investment",
		Date:          re.PurchaseDate,
		PaymentMethod: Bank,
		Notes:         fmt.Sprintf("Property purchase: %s", re.Name),
		AccountID:     re.AccountID,
	})
	if err != nil {
		return RealEstate{}, err
	}
	return re, nil
}
