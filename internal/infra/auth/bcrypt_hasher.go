// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"mesauth/config"
	domainerrors "mesauth/internal/domain/errors"
	"mesauth/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinLength = 8
	defaultMaxLength = 128
)

// defaultForbiddenWords are always rejected in addition to the configured list.
var defaultForbiddenWords = []string{"password", "admin", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := cfg.PasswordStrength
	if policy == nil {
		policy = &config.PasswordStrengthConfig{
			MinLength:        defaultMinLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
			MaxLength:        defaultMaxLength,
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies a candidate password against the
// configured policy. Each failure carries the specific cause as details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.policy.MinLength
	if minLength <= 0 {
		minLength = defaultMinLength
	}
	maxLength := h.policy.MaxLength
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must be at least " + strconv.Itoa(minLength) + " characters long")
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must be at most " + strconv.Itoa(maxLength) + " characters long")
	}
	if h.policy.RequireUppercase && !hasUppercase(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLowercase(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumbers(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !hasSpecialChars(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one special character")
	}
	if containsForbiddenWords(password, append(defaultForbiddenWords, h.policy.ForbiddenWords...)) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password contains forbidden words")
	}

	return nil
}

func hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if word == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
