// internal/domain/notification/entity.go
package notification

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("notification: not found")

type Type string

const (
	TypePayment  Type = "payment"
	TypeContract Type = "contract"
	TypeMessage  Type = "message"
	TypeSecurity Type = "security"
	TypeInfo     Type = "info"
)

// Notification is one entry of the user's notification feed.
// Date is a display label ("10 minutes ago"), not a timestamp.
type Notification struct {
	ID      int    `json:"id" yaml:"id"`
	Type    Type   `json:"type" yaml:"type"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Date    string `json:"date" yaml:"date"`
	IsRead  bool   `json:"isRead" yaml:"isRead"`
}

// UnreadCount counts entries not yet read.
func UnreadCount(list []Notification) int {
	n := 0
	for _, it := range list {
		if !it.IsRead {
			n++
		}
	}
	return n
}

type Repository interface {
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id int) error
	// MarkAllRead returns how many entries changed.
	MarkAllRead(ctx context.Context) (int, error)
}
