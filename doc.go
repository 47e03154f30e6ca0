// Package finbook provides the ledger engine for a local-first personal
// finance tracker. It records income and expense transactions against
// accounts, tracks investments (bullion, fixed deposits, real estate),
// loans, insurance policies and money lent to others, and keeps recurring
// obligations ("auto-credits") up to date.
//
// The core functionalities include:
//   - Ledger Operations: the single mutation surface over all entity
//     collections. Every creation or deletion maintains the cross-entity
//     invariants (account balances, origin-linked cascades).
//   - Catch-Up Processing: on open, every auto-credit whose next due date
//     has passed is materialized into one expense transaction per missed
//     occurrence, and its schedule is advanced. Materialized transactions
//     carry deterministic identifiers, so repeated runs are idempotent.
//   - Balance Maintenance: account balances always equal their initial
//     balance plus the signed sum of live transactions referencing them.
//   - Data Persistence: each collection is stored as a JSON array in its
//     own namespaced file under the book directory. A corrupt or missing
//     file degrades to an empty collection, never to a fatal error.
//
// This package serves as the foundational logic for the `fbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package finbook
