package user

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	MinPasswordLen = 8
	MaxEmailLen    = 254
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) ValidationResult
	ValidatePassword(password string) error
}

// ValidationResult keeps the outcome plus every problem found, so the
// caller can show them all at once.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

type CredentialValidator struct {
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewCredentialValidator создает новый валидатор
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialValidator) ValidateRegister(email, password string) error {
	if res := v.ValidateEmail(email); !res.IsValid {
		return fmt.Errorf("email validation failed: %s", res.Errors[0])
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateEmail проверяет формат адреса.
func (v *CredentialValidator) ValidateEmail(email string) ValidationResult {
	var errs []string

	if email == "" {
		errs = append(errs, "email is required")
	} else {
		if len(email) > MaxEmailLen {
			errs = append(errs, fmt.Sprintf("email must be at most %d characters", MaxEmailLen))
		}
		if !emailRe.MatchString(email) {
			errs = append(errs, "please enter a valid email address")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidatePassword валидирует пароль
func (v *CredentialValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}

		if hasLower && hasUpper && hasDigit && hasSpecial {
			break
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if v.requireSpecialChar && !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
