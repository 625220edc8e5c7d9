package models

import (
	"strings"
	"time"
)

// Role controls what a user is allowed to do.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleGuest  Role = "guest"
)

// AccountStatus tracks admin approval of an account.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)

// User represents a customer account. Accounts start inactive and become
// active only after the email OTP is confirmed.
type User struct {
	BaseModel
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	MobileNo     string `gorm:"uniqueIndex" json:"mobile_no"`
	PasswordHash string `json:"-"`

	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`

	Role     Role          `gorm:"type:varchar(16);default:'guest'" json:"role"`
	Status   AccountStatus `gorm:"type:varchar(16);default:'pending'" json:"status"`
	IsActive bool          `json:"is_active"`

	LastLogin          *time.Time `json:"last_login,omitempty"`
	LoginAttempts      int        `json:"-"`
	AccountLockedUntil *time.Time `json:"-"`

	Orders []Order `json:"orders,omitempty"`
}

// FullName joins first and last name, dropping the separator when the last
// name is empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
