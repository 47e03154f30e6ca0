package finbook

import (
	"fmt"

	"github.com/etnz/finbook/date"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// materializationNS is the UUIDv5 namespace for materialized transactions.
// A materialized transaction's identifier is a pure function of its schedule
// and due date, which is what makes catch-up idempotent: re-running over the
// same stored state regenerates the same identifiers and the deduplication
// against the ledger drops them all.
var materializationNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("finbook.org/autocredit"))

// MaterializedID returns the deterministic transaction identifier for one
// occurrence of a schedule.
func MaterializedID(autoCreditID string, due date.Date) string {
	return uuid.NewSHA1(materializationNS, []byte(autoCreditID+"|"+due.String())).String()
}

// CatchUp materializes every auto-credit occurrence due at or before now and
// advances each schedule until its next due date is in the future (or
// terminal, for One-Time schedules). It returns the number of transactions
// actually committed.
//
// Open runs this exactly once per session before any user input. Idempotence
// rests on the deterministic occurrence identifiers, not on locking: a
// duplicate invocation finds every occurrence already on the ledger and
// commits nothing.
func (b *Book) CatchUp(now date.Date) (int, error) {
	existing := make(map[string]bool, len(b.transactions))
	for _, tx := range b.transactions {
		existing[tx.ID] = true
	}

	var pending []Transaction
	var advanced bool
	for i := range b.autocredits {
		ac := &b.autocredits[i]
		cursor, err := ac.NextDue()
		if err != nil {
			// Left unmodified: retried next session until the user fixes it.
			log.Warn().Str("schedule", ac.Name).Str("nextDate", ac.NextDate).
				Msg("unparseable due date, schedule skipped")
			continue
		}
		if !ac.Frequency.Valid() {
			// A stuck schedule must never be silently advanced.
			if !cursor.After(now) {
				log.Warn().Str("schedule", ac.Name).Str("frequency", string(ac.Frequency)).
					Msg("unknown frequency on an overdue schedule, schedule stuck")
			}
			continue
		}

		start := cursor
		for !cursor.After(now) {
			pending = append(pending, b.materialize(ac, cursor))
			next, err := ac.Frequency.Next(cursor)
			if err != nil {
				return 0, fmt.Errorf("could not advance schedule %q: %w", ac.Name, err)
			}
			cursor = next
		}
		if cursor != start {
			ac.NextDate = cursor.String()
			advanced = true
		}
	}

	// Commit only the occurrences not already on the ledger, and apply their
	// balance deltas through the same maintainer as direct operations.
	added := 0
	for _, tx := range pending {
		if existing[tx.ID] {
			continue
		}
		existing[tx.ID] = true
		b.transactions = append(b.transactions, tx)
		b.applyBalance(tx.AccountID, tx.Type, tx.Amount)
		added++
		log.Debug().Str("transaction", tx.ID).Str("on", tx.Date.String()).
			Msg("materialized overdue occurrence")
	}

	if added > 0 {
		if err := b.save(keyTransactions); err != nil {
			return added, err
		}
		if err := b.save(keyAccounts); err != nil {
			return added, err
		}
	}
	if advanced {
		if err := b.save(keyAutoCredits); err != nil {
			return added, err
		}
	}
	return added, nil
}

// materialize synthesizes the expense transaction for one due occurrence of
// a schedule.
func (b *Book) materialize(ac *AutoCredit, due date.Date) Transaction {
	category := ac.Category
	if category == "" {
		category = "Auto Payment"
	}
	return Transaction{
		ID:            MaterializedID(ac.ID, due),
		Type:          Expense,
		Amount:        ac.Amount,
		Category:      category,
		Date:          due,
		PaymentMethod: Bank,
		Notes:         ac.Name,
		AccountID:     ac.AccountID,
	}
}
