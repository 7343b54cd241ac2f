package domain

import "math"

// BalanceOf derives the balance from a statement history: the sum of
// deposits minus the sum of withdrawals. The balance is never stored,
// it is recomputed from the ledger every time.
func BalanceOf(statements []Statement) int64 {
	var balance int64
	for _, s := range statements {
		switch s.Type {
		case Deposit:
			balance += s.Amount
		case Withdraw:
			balance -= s.Amount
		}
	}

	return balance
}

// Cents converts a decimal amount to integer minor units, rounding half
// away from zero. Amounts are kept in minor units everywhere inside the
// service so balance accumulation never touches floating point.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Decimal converts minor units back to the decimal representation used
// on the wire.
func Decimal(cents int64) float64 {
	return float64(cents) / 100
}
