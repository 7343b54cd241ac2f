package dto

import "github.com/denilsonpy/finapi/internal/domain"

/**
  {
      "balance": 10,
      "statement": [ ... ]
  }
*/

type Balance struct {
	Balance   float64     `json:"balance"`
	Statement []Statement `json:"statement"`
}

func NewBalance(balance domain.Balance) Balance {
	statements := make([]Statement, len(balance.Statements))
	for i, s := range balance.Statements {
		statements[i] = NewStatement(s)
	}

	return Balance{
		Balance:   domain.Decimal(balance.Current),
		Statement: statements,
	}
}
