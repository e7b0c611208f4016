// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
)

var (
	ErrInvalidOrder  = errors.New("order: invalid")
	ErrInvalidStatus = errors.New("order: invalid status")
	ErrNotFound      = errors.New("order: not found")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// IDPrefix is the fixed prefix of order ids ("ORD-001").
const IDPrefix = "ORD-"

// DateLayout is the calendar date format used for order dates.
const DateLayout = "2006-01-02"

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus accepts a status in any letter case.
func ParseStatus(s string) (Status, error) {
	for _, st := range []Status{StatusPending, StatusShipped, StatusDelivered, StatusCancelled} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

type OrderItem struct {
	ProductName string          `json:"productName" yaml:"productName"`
	Quantity    int             `json:"quantity" yaml:"quantity"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
}

// Order is an admin order record.
type Order struct {
	ID            string          `json:"id" yaml:"id"`
	CustomerName  string          `json:"customerName" yaml:"customerName"`
	CustomerEmail string          `json:"customerEmail" yaml:"customerEmail"`
	Date          string          `json:"date" yaml:"date"`
	Total         decimal.Decimal `json:"total" yaml:"total"`
	Status        Status          `json:"status" yaml:"status"`
	Items         []OrderItem     `json:"items" yaml:"items"`
}

// Normalize trims fields and fills defaults (status Pending, date today).
func (o *Order) Normalize(today string) {
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.CustomerEmail = strings.TrimSpace(o.CustomerEmail)
	o.Date = strings.TrimSpace(o.Date)
	if o.Date == "" {
		o.Date = today
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
}

// Validate requires customer name, email and a positive total.
func (o Order) Validate() error {
	if o.CustomerName == "" || o.CustomerEmail == "" || !o.Total.IsPositive() {
		return ErrInvalidOrder
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	for _, it := range o.Items {
		if it.Quantity < 0 || it.Price.IsNegative() {
			return ErrInvalidOrder
		}
	}
	return nil
}

// Matches applies the admin list filter (customer name, id, email).
func (o Order) Matches(f common.Filter) bool {
	return common.MatchesStatus(f.Status, string(o.Status)) &&
		common.MatchesQuery(f.SearchQuery, o.CustomerName, o.ID, o.CustomerEmail)
}

// NextID returns ORD-%03d of the largest numeric suffix among ids plus one.
// Ids that do not parse are ignored.
func NextID(ids []string) string {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, IDPrefix))
		if err != nil || !strings.HasPrefix(id, IDPrefix) {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", IDPrefix, max+1)
}
