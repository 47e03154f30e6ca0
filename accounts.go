package finbook

// AccountType distinguishes bank accounts from cash wallets.
type AccountType string

const (
	BankAccount AccountType = "Bank"
	Wallet      AccountType = "Wallet"
)

// Account is a balance-carrying container for transactions.
//
// Invariant: Balance equals the account's initial balance plus the signed
// sum of all live transactions referencing it. Only ledger operations move
// it; there is no delete-account operation.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Money       `json:"balance"`
}
