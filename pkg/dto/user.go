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
      "name": "Hilda Caldwell",
      "email": "ulja@colrike.bf",
      "password": "2584357327"
  }
*/

type Register struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r Register) IsValid() error {
	var nameErr, emailErr, passwordErr error

	if strings.TrimSpace(r.Name) == "" {
		nameErr = fmt.Errorf("name is required")
	}

	if strings.TrimSpace(r.Email) == "" {
		emailErr = fmt.Errorf("email is required")
	}

	if strings.TrimSpace(r.Password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(nameErr, emailErr, passwordErr)
}

// User is the external representation of a user. The password hash is
// deliberately absent.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func NewUser(user domain.User) User {
	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

/**
  {
      "token": "<jwt>",
      "user": { "id": "...", "name": "...", "email": "..." }
  }
*/

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
