// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. Every authenticated request
// resolves to exactly one User, and its Role drives all authorization checks.
type User struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username            string    // Unique login identifier.
	Email               string    // Contact email address.
	FirstName           string    // Given name.
	LastName            string    // Family name.
	Role                Role      // Role determining the user's capabilities.
	EmployeeID          string    // Employee ID from the HR system, may be empty.
	Department          string    // The user's department.
	Phone               string    // Contact phone number.
	PasswordHash        string    // bcrypt hash of the password. Never serialized or logged.
	Active              bool      // Soft-deactivation flag. Users are never hard-deleted.
	LastLoginIP         string    // IP address of the last successful login.
	FailedLoginAttempts int       // Consecutive failed login attempts since the last success.
	CreatedAt           time.Time // Timestamp of when this account was created.
	UpdatedAt           time.Time // Timestamp of the last modification to this account.
}

// FullName returns the user's display name, falling back to the username
// when no name fields are set.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}

	return full
}
