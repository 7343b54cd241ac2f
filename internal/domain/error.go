package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrIncorrectCredentials = errors.New("incorrect email or password")
	ErrStatementNotFound    = errors.New("statement not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidStatementType = errors.New("invalid statement type")
	ErrInvalidAmount        = errors.New("amount must be positive")
)
