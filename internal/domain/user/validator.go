package user

import (
	"fmt"
	"strings"
)

// Validator checks registration and login input. Registration deliberately
// enforces no password-strength or enrollment-id format policy.
type Validator interface {
	ValidateRegister(username, password, enrollmentID string) error
	ValidateLogin(username string) error
}

type BasicValidator struct{}

func NewValidator() *BasicValidator {
	return &BasicValidator{}
}

func (v *BasicValidator) ValidateRegister(username, password, _ string) error {
	if err := v.ValidateLogin(username); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}

func (v *BasicValidator) ValidateLogin(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username must not be empty")
	}
	return nil
}
