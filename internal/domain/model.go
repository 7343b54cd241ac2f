package domain

import "time"

type StatementType string

const (
	Deposit  StatementType = "deposit"
	Withdraw StatementType = "withdraw"
)

func (t StatementType) Valid() bool {
	return t == Deposit || t == Withdraw
}

type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Statement is a single append-only ledger entry. Amount is always
// positive; the direction comes from Type.
type Statement struct {
	ID          string
	UserID      string
	Amount      int64
	Description string
	Type        StatementType
	CreatedAt   time.Time
}

type Balance struct {
	Current    int64
	Statements []Statement
}
