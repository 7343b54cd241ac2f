package service

import (
	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/logger"
)

type StatementRepository interface {
	CreateStatement(userID string, amount int64, description string, statementType domain.StatementType) (*domain.Statement, error)
	StatementByID(id string) (*domain.Statement, error)
	StatementsByUser(userID string) ([]domain.Statement, error)
}

type userRepository interface {
	UserByID(id string) (*domain.User, error)
}

type StatementService struct {
	users      userRepository
	statements StatementRepository
}

func NewStatementService(users userRepository, statements StatementRepository) *StatementService {
	return &StatementService{
		users:      users,
		statements: statements,
	}
}

// Create appends a statement to the user's ledger. Withdrawals are
// checked against the derived balance first; a failed withdrawal writes
// nothing.
func (s *StatementService) Create(userID string, amount int64, description string, statementType domain.StatementType) (*domain.Statement, error) {
	if !statementType.Valid() {
		return nil, domain.ErrInvalidStatementType
	}

	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.users.UserByID(userID); err != nil {
		return nil, err
	}

	if statementType == domain.Withdraw {
		history, err := s.statements.StatementsByUser(userID)
		if err != nil {
			return nil, err
		}

		if amount > domain.BalanceOf(history) {
			logger.Log.Warn("insufficient funds", logger.String("user_id", userID), logger.Int64("amount", amount))
			return nil, domain.ErrInsufficientFunds
		}
	}

	return s.statements.CreateStatement(userID, amount, description, statementType)
}

// Balance returns the derived balance together with the full ordered
// statement history.
func (s *StatementService) Balance(userID string) (*domain.Balance, error) {
	if _, err := s.users.UserByID(userID); err != nil {
		return nil, err
	}

	history, err := s.statements.StatementsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &domain.Balance{
		Current:    domain.BalanceOf(history),
		Statements: history,
	}, nil
}

// Operation returns a single statement. A statement owned by another
// user is reported as not found rather than revealing its existence.
func (s *StatementService) Operation(userID, statementID string) (*domain.Statement, error) {
	if _, err := s.users.UserByID(userID); err != nil {
		return nil, err
	}

	statement, err := s.statements.StatementByID(statementID)
	if err != nil {
		return nil, err
	}

	if statement.UserID != userID {
		logger.Log.Warn(
			"statement belongs to another user",
			logger.String("statement_id", statementID),
			logger.String("user_id", userID),
		)
		return nil, domain.ErrStatementNotFound
	}

	return statement, nil
}
