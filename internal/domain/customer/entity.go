// internal/domain/customer/entity.go
package customer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
)

var (
	ErrInvalidCustomer = errors.New("customer: invalid")
	ErrInvalidStatus   = errors.New("customer: invalid status")
	ErrNotFound        = errors.New("customer: not found")
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

// Toggle flips Active and Inactive.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Customer is an admin customer record.
type Customer struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Email       string          `json:"email" yaml:"email"`
	Phone       string          `json:"phone" yaml:"phone"`
	JoinedDate  string          `json:"joinedDate" yaml:"joinedDate"`
	TotalOrders int             `json:"totalOrders" yaml:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent" yaml:"totalSpent"`
	Status      Status          `json:"status" yaml:"status"`
	Address     string          `json:"address" yaml:"address"`
}

// Normalize trims fields and fills defaults (status Active, joined today).
func (c *Customer) Normalize(today string) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.JoinedDate = strings.TrimSpace(c.JoinedDate)
	if c.JoinedDate == "" {
		c.JoinedDate = today
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
}

// Validate requires name and email.
func (c Customer) Validate() error {
	if c.Name == "" || c.Email == "" || c.TotalOrders < 0 || c.TotalSpent.IsNegative() {
		return ErrInvalidCustomer
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Matches applies the admin list filter: name and email case-insensitively,
// phone as a plain substring.
func (c Customer) Matches(f common.Filter) bool {
	if !common.MatchesStatus(f.Status, string(c.Status)) {
		return false
	}
	q := strings.TrimSpace(f.SearchQuery)
	return common.MatchesQuery(q, c.Name, c.Email) || strings.Contains(c.Phone, q)
}
