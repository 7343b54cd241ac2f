package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Postgres struct {
	DB *sql.DB
}

func New(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

func (p *Postgres) CreateUser(name, email, hashedPassword string) (*domain.User, error) {
	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	err := p.DB.QueryRow(
		"INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4) RETURNING created_at",
		user.ID, user.Name, user.Email, user.Password,
	).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			logger.Log.Warn("user already exists", logger.String("email", email))
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &user, nil
}

func (p *Postgres) UserByID(id string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT id, name, email, password, created_at FROM users WHERE id = $1", id)

	return scanUser(row)
}

func (p *Postgres) UserByEmail(email string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT id, name, email, password, created_at FROM users WHERE email = $1", email)

	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &user, nil
}

func (p *Postgres) CreateStatement(userID string, amount int64, description string, statementType domain.StatementType) (*domain.Statement, error) {
	statement := domain.Statement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Type:        statementType,
	}

	err := p.DB.QueryRow(
		"INSERT INTO statements (id, user_id, amount, description, type) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		statement.ID, statement.UserID, statement.Amount, statement.Description, string(statement.Type),
	).Scan(&statement.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error creating statement: %w", err)
	}

	return &statement, nil
}

func (p *Postgres) StatementByID(id string) (*domain.Statement, error) {
	row := p.DB.QueryRow("SELECT id, user_id, amount, description, type, created_at FROM statements WHERE id = $1", id)

	var statement domain.Statement
	err := row.Scan(&statement.ID, &statement.UserID, &statement.Amount, &statement.Description, &statement.Type, &statement.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("error fetching statement: %w", err)
	}

	return &statement, nil
}

func (p *Postgres) StatementsByUser(userID string) ([]domain.Statement, error) {
	rows, err := p.DB.Query(
		"SELECT id, user_id, amount, description, type, created_at FROM statements WHERE user_id = $1 ORDER BY created_at, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching statements: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var statements []domain.Statement
	for rows.Next() {
		var statement domain.Statement
		err := rows.Scan(&statement.ID, &statement.UserID, &statement.Amount, &statement.Description, &statement.Type, &statement.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning statement: %w", err)
		}
		statements = append(statements, statement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over statements: %w", err)
	}

	return statements, nil
}
