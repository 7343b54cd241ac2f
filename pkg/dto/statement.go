package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denilsonpy/finapi/internal/domain"
)

/**
  {
      "amount": 10,
      "description": "Home"
  }
*/

type StatementRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func (s StatementRequest) IsValid() error {
	var amountErr, descriptionErr error

	if s.Amount <= 0 {
		amountErr = fmt.Errorf("amount must be positive")
	}

	if strings.TrimSpace(s.Description) == "" {
		descriptionErr = fmt.Errorf("description is required")
	}

	return errors.Join(amountErr, descriptionErr)
}

/**
  {
      "id": "...",
      "user_id": "...",
      "amount": 10,
      "description": "Home",
      "type": "deposit",
      "created_at": "2024-01-15T10:00:00Z"
  }
*/

type Statement struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	CreatedAt   string  `json:"created_at"`
}

func NewStatement(statement domain.Statement) Statement {
	return Statement{
		ID:          statement.ID,
		UserID:      statement.UserID,
		Amount:      domain.Decimal(statement.Amount),
		Description: statement.Description,
		Type:        string(statement.Type),
		CreatedAt:   statement.CreatedAt.Format(time.RFC3339),
	}
}
