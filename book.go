package finbook

import (
	"fmt"
	"slices"

	"github.com/etnz/finbook/date"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Book is the in-memory state of the tracker and its sole mutation surface.
// All entity collections are loaded from the store on Open and written back
// through it after every operation; nothing else touches persistence.
//
// A Book is meant for a single-threaded session. Consistency across
// concurrent sessions on the same directory is last-writer-wins.
type Book struct {
	store *Store

	transactions  []Transaction
	accounts      []Account
	autocredits   []AutoCredit
	lendings      []Lending
	bullion       []PreciousMetal
	fixedDeposits []FixedDeposit
	realEstate    []RealEstate
	insurances    []Insurance
	loans         []Loan
}

// Open loads the book from dir and catches up overdue auto-credit
// occurrences before returning. Callers must not accept user input before
// Open completes: catch-up runs exactly once per session, here.
func Open(dir string) (*Book, error) {
	b, err := load(dir)
	if err != nil {
		return nil, err
	}
	if _, err := b.CatchUp(date.Today()); err != nil {
		return nil, fmt.Errorf("could not catch up schedules: %w", err)
	}
	return b, nil
}

// load reads all collections without running catch-up.
func load(dir string) (*Book, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	b := &Book{store: store}
	b.transactions = Read(store, keyTransactions, []Transaction{})
	b.accounts = Read(store, keyAccounts, []Account{})
	b.autocredits = Read(store, keyAutoCredits, []AutoCredit{})
	b.lendings = Read(store, keyLendings, []Lending{})
	b.bullion = Read(store, keyBullion, []PreciousMetal{})
	b.fixedDeposits = Read(store, keyFixedDeposits, []FixedDeposit{})
	b.realEstate = Read(store, keyRealEstate, []RealEstate{})
	b.insurances = Read(store, keyInsurances, []Insurance{})
	b.loans = Read(store, keyLoans, []Loan{})
	return b, nil
}

// newID returns a fresh random identifier for a user-created entity.
// Materialized transactions use deterministic identifiers instead, see catchup.go.
func newID() string { return uuid.NewString() }

// save writes one collection back to the store.
func (b *Book) save(key string) error {
	switch key {
	case keyTransactions:
		return Write(b.store, key, b.transactions)
	case keyAccounts:
		return Write(b.store, key, b.accounts)
	case keyAutoCredits:
		return Write(b.store, key, b.autocredits)
	case keyLendings:
		return Write(b.store, key, b.lendings)
	case keyBullion:
		return Write(b.store, key, b.bullion)
	case keyFixedDeposits:
		return Write(b.store, key, b.fixedDeposits)
	case keyRealEstate:
		return Write(b.store, key, b.realEstate)
	case keyInsurances:
		return Write(b.store, key, b.insurances)
	case keyLoans:
		return Write(b.store, key, b.loans)
	default:
		return fmt.Errorf("unknown collection key %q", key)
	}
}

// deleteByID removes the first element whose id matches, reporting whether a
// deletion happened. Deleting a non-existent id is a no-op, not an error.
func deleteByID[T any](list []T, id string, idOf func(T) string, deleted *bool) []T {
	return slices.DeleteFunc(list, func(v T) bool {
		if *deleted || idOf(v) != id {
			return false
		}
		*deleted = true
		return true
	})
}

// Read accessors. They return copies: mutating the result does not affect
// the book.

// Transactions returns all transactions ordered by descending date.
func (b *Book) Transactions() []Transaction {
	txs := slices.Clone(b.transactions)
	sortTransactionsDesc(txs)
	return txs
}

// Accounts returns all accounts in insertion order.
func (b *Book) Accounts() []Account { return slices.Clone(b.accounts) }

// AutoCredits returns all auto-credits in insertion order.
func (b *Book) AutoCredits() []AutoCredit { return slices.Clone(b.autocredits) }

// Lendings returns all lendings in insertion order.
func (b *Book) Lendings() []Lending { return slices.Clone(b.lendings) }

// Bullion returns all bullion holdings in insertion order.
func (b *Book) Bullion() []PreciousMetal { return slices.Clone(b.bullion) }

// FixedDeposits returns all fixed deposits in insertion order.
func (b *Book) FixedDeposits() []FixedDeposit { return slices.Clone(b.fixedDeposits) }

// RealEstate returns all property holdings in insertion order.
func (b *Book) RealEstate() []RealEstate { return slices.Clone(b.realEstate) }

// Insurances returns all insurance policies in insertion order.
func (b *Book) Insurances() []Insurance { return slices.Clone(b.insurances) }

// Loans returns all loans in insertion order.
func (b *Book) Loans() []Loan { return slices.Clone(b.loans) }

// Account returns the account with this id, or nil if unknown.
func (b *Book) Account(id string) *Account {
	for i := range b.accounts {
		if b.accounts[i].ID == id {
			return &b.accounts[i]
		}
	}
	return nil
}

// AddAccount creates an account. The id is assigned here; pass the record
// with an empty ID. The given balance becomes the account's initial balance.
func (b *Book) AddAccount(a Account) (Account, error) {
	if a.Name == "" {
		return Account{}, fmt.Errorf("account name cannot be empty")
	}
	if a.ID == "" {
		a.ID = newID()
	}
	b.accounts = append(b.accounts, a)
	if err := b.save(keyAccounts); err != nil {
		return Account{}, err
	}
	return a, nil
}

// AddTransaction inserts a transaction and applies its balance effect to the
// linked account, if any. Amounts must be positive and finite; direction is
// carried by the type.
func (b *Book) AddTransaction(tx Transaction) (Transaction, error) {
	if tx.Type != Income && tx.Type != Expense {
		return Transaction{}, fmt.Errorf("unknown transaction type %q", string(tx.Type))
	}
	if !tx.Amount.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction amount must be positive, got %s", tx.Amount)
	}
	if tx.ID == "" {
		tx.ID = newID()
	}
	if tx.Date.IsZero() {
		tx.Date = date.Today()
	}
	if tx.PaymentMethod == "" {
		tx.PaymentMethod = Cash
	}
	b.transactions = append(b.transactions, tx)
	b.applyBalance(tx.AccountID, tx.Type, tx.Amount)
	if err := b.save(keyTransactions); err != nil {
		return Transaction{}, err
	}
	if err := b.save(keyAccounts); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect on
// the linked account, if any. An unknown id is a no-op.
func (b *Book) DeleteTransaction(id string) error {
	for i := range b.transactions {
		if b.transactions[i].ID != id {
			continue
		}
		tx := b.transactions[i]
		b.transactions = slices.Delete(b.transactions, i, i+1)
		b.revertBalance(tx.AccountID, tx.Type, tx.Amount)
		if err := b.save(keyTransactions); err != nil {
			return err
		}
		return b.save(keyAccounts)
	}
	return nil
}

// AddAutoCredit schedules a recurring obligation. The next due date must be
// a valid ISO date and the frequency one of the recognized values.
func (b *Book) AddAutoCredit(ac AutoCredit) (AutoCredit, error) {
	if !ac.Amount.IsPositive() {
		return AutoCredit{}, fmt.Errorf("auto-credit amount must be positive, got %s", ac.Amount)
	}
	if !ac.Frequency.Valid() {
		return AutoCredit{}, fmt.Errorf("unknown frequency %q", string(ac.Frequency))
	}
	if _, err := date.Parse(ac.NextDate); err != nil {
		return AutoCredit{}, fmt.Errorf("invalid next due date: %w", err)
	}
	if ac.ID == "" {
		ac.ID = newID()
	}
	b.autocredits = append(b.autocredits, ac)
	if err := b.save(keyAutoCredits); err != nil {
		return AutoCredit{}, err
	}
	return ac, nil
}

// DeleteAutoCredit removes a schedule. Transactions it already materialized
// remain on the ledger. An unknown id is a no-op.
func (b *Book) DeleteAutoCredit(id string) error {
	var deleted bool
	b.autocredits = deleteByID(b.autocredits, id, func(a AutoCredit) string { return a.ID }, &deleted)
	if !deleted {
		return nil
	}
	return b.save(keyAutoCredits)
}

// deleteAutoCreditsByOrigin removes every schedule originated by the given
// entity. Finding none is not an error: the schedule may have been deleted
// directly by the user.
func (b *Book) deleteAutoCreditsByOrigin(origin Origin) error {
	var matched bool
	b.autocredits = slices.DeleteFunc(b.autocredits, func(a AutoCredit) bool {
		if a.Origin == origin {
			matched = true
			return true
		}
		return false
	})
	if !matched {
		log.Warn().Str("kind", string(origin.Kind)).Str("id", origin.ID).
			Msg("cascade found no auto-credit to delete")
		return nil
	}
	return b.save(keyAutoCredits)
}
