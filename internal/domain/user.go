package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of actor roles
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleProvider
	RoleAdmin
)

// ParseRole converts a token/database value into a Role. "user" is accepted
// as the legacy name of the customer role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer", "user":
		return RoleCustomer, nil
	case "provider", "stylist":
		return RoleProvider, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleUnknown, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleProvider:
		return "provider"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

// CancelParty returns the party recorded when an actor with this role cancels
func (r Role) CancelParty() CancelParty {
	switch r {
	case RoleProvider:
		return CancelledByStylist
	case RoleAdmin:
		return CancelledByAdmin
	}
	return CancelledByCustomer
}

// UserStatus статус учётной записи
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusLocked   UserStatus = "locked"
	UserStatusInactive UserStatus = "inactive"
)

// ProfileStatus статус профиля стилиста
type ProfileStatus string

const (
	ProfileDraft           ProfileStatus = "draft"
	ProfilePendingApproval ProfileStatus = "pending_approval"
	ProfileApproved        ProfileStatus = "approved"
	ProfileRejected        ProfileStatus = "rejected"
	ProfileSuspended       ProfileStatus = "suspended"
)

// User is an account of a customer, a stylist or an admin
type User struct {
	ID              string
	PhoneNumber     string
	FirstName       *string
	LastName        *string
	Role            Role
	Status          UserStatus
	IsPhoneVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins first and last name, skipping missing parts
func (u *User) FullName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	return strings.Join(parts, " ")
}

// Stylist is an approved stylist: the user together with the profile
type Stylist struct {
	User
	ProfileID    string
	BusinessName string
	SalonAddress *string
	Status       ProfileStatus
}

// DisplayName returns the business name, falling back to the user's name
func (s *Stylist) DisplayName() string {
	if s.BusinessName != "" {
		return s.BusinessName
	}
	return s.FullName()
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
