package finbook

import "github.com/rs/zerolog/log"

// The balance maintainer: the single code path that moves an account balance
// when a transaction referencing it is added or removed. Both direct
// operations and catch-up materialization go through here, so the two can
// never drift apart.

// applyBalance applies the balance delta of a transaction to its account:
// income adds, expense subtracts. An empty or unknown account id is a no-op
// with a warning; it must not fail the enclosing operation.
func (b *Book) applyBalance(accountID string, t TransactionType, amount Money) {
	if accountID == "" {
		return
	}
	acc := b.Account(accountID)
	if acc == nil {
		log.Warn().Str("account", accountID).Msg("transaction references unknown account, balance unchanged")
		return
	}
	if t.sign() > 0 {
		acc.Balance = acc.Balance.Add(amount)
	} else {
		acc.Balance = acc.Balance.Sub(amount)
	}
}

// revertBalance is the exact inverse of applyBalance, used when a
// transaction is deleted.
func (b *Book) revertBalance(accountID string, t TransactionType, amount Money) {
	if t == Income {
		b.applyBalance(accountID, Expense, amount)
	} else {
		b.applyBalance(accountID, Income, amount)
	}
}
