// Package memory provides a mutex-guarded in-memory implementation of
// the user and statement repositories. It backs the service when no
// database is configured and is the storage used by the unit tests.
package memory

import (
	"sync"
	"time"

	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/google/uuid"
)

type Store struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	userIDByEmail map[string]string
	statements    map[string]domain.Statement
	// statement IDs per user, in insertion order
	history map[string][]string
}

func New() *Store {
	return &Store{
		users:         make(map[string]domain.User),
		userIDByEmail: make(map[string]string),
		statements:    make(map[string]domain.Statement),
		history:       make(map[string][]string),
	}
}

func (s *Store) CreateUser(name, email, hashedPassword string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userIDByEmail[email]; ok {
		return nil, domain.ErrUserExists
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
	}

	s.users[user.ID] = user
	s.userIDByEmail[email] = user.ID

	return &user, nil
}

func (s *Store) UserByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return &user, nil
}

func (s *Store) UserByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	user := s.users[id]

	return &user, nil
}

func (s *Store) CreateStatement(userID string, amount int64, description string, statementType domain.StatementType) (*domain.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	statement := domain.Statement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Type:        statementType,
		CreatedAt:   time.Now().UTC(),
	}

	s.statements[statement.ID] = statement
	s.history[userID] = append(s.history[userID], statement.ID)

	return &statement, nil
}

func (s *Store) StatementByID(id string) (*domain.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statement, ok := s.statements[id]
	if !ok {
		return nil, domain.ErrStatementNotFound
	}

	return &statement, nil
}

// StatementsByUser returns a snapshot of the user's ledger in insertion
// order. An unknown user simply has an empty history.
func (s *Store) StatementsByUser(userID string) ([]domain.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.history[userID]
	statements := make([]domain.Statement, 0, len(ids))
	for _, id := range ids {
		statements = append(statements, s.statements[id])
	}

	return statements, nil
}
