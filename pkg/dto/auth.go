package dto

import (
	"errors"
	"fmt"
	"strings"
)

/**
  {
      "email": "nos@ri.qa",
      "password": "58670410"
  }
*/

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) IsValid() error {
	var emailErr, passwordErr error

	if strings.TrimSpace(c.Email) == "" {
		emailErr = fmt.Errorf("email is required")
	}

	if strings.TrimSpace(c.Password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(emailErr, passwordErr)
}
