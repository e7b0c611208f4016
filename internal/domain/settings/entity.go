// internal/domain/settings/entity.go
package settings

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidSettings        = errors.New("settings: invalid")
	ErrPasswordMismatch       = errors.New("settings: new password and confirmation do not match")
	ErrPasswordTooShort       = errors.New("settings: new password is too short")
	ErrCurrentPasswordInvalid = errors.New("settings: current password is incorrect")
)

// MinPasswordLength is the shortest accepted new password.
const MinPasswordLength = 6

var backupFrequencies = map[string]struct{}{"daily": {}, "weekly": {}, "monthly": {}}

type Profile struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
}

type NotificationPrefs struct {
	EmailNotifications bool `json:"emailNotifications" yaml:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications" yaml:"smsNotifications"`
	PaymentReminders   bool `json:"paymentReminders" yaml:"paymentReminders"`
	ContractExpiry     bool `json:"contractExpiry" yaml:"contractExpiry"`
	MaintenanceAlerts  bool `json:"maintenanceAlerts" yaml:"maintenanceAlerts"`
}

type System struct {
	Language        string `json:"language" yaml:"language"`
	Timezone        string `json:"timezone" yaml:"timezone"`
	Currency        string `json:"currency" yaml:"currency"`
	BackupFrequency string `json:"backupFrequency" yaml:"backupFrequency"`
}

// Settings is the admin account configuration. The password hash never leaves the server.
type Settings struct {
	Profile       Profile           `json:"profile" yaml:"profile"`
	Notifications NotificationPrefs `json:"notifications" yaml:"notifications"`
	System        System            `json:"system" yaml:"system"`

	PasswordHash      string     `json:"-" yaml:"-"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty" yaml:"-"`
	UpdatedAt         time.Time  `json:"updatedAt" yaml:"-"`
}

// PasswordChange carries the security form. All empty means no change.
type PasswordChange struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
	Confirm string `json:"confirmPassword"`
}

func (pc PasswordChange) Requested() bool {
	return pc.New != "" || pc.Confirm != ""
}

// Validate checks confirmation and length of a requested change.
func (pc PasswordChange) Validate() error {
	if !pc.Requested() {
		return nil
	}
	if pc.New != pc.Confirm {
		return ErrPasswordMismatch
	}
	if len([]rune(pc.New)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Normalize trims text fields and lower-cases the backup frequency.
func (s *Settings) Normalize() {
	s.Profile.FirstName = strings.TrimSpace(s.Profile.FirstName)
	s.Profile.LastName = strings.TrimSpace(s.Profile.LastName)
	s.Profile.Email = strings.TrimSpace(s.Profile.Email)
	s.Profile.Phone = strings.TrimSpace(s.Profile.Phone)
	s.System.Language = strings.TrimSpace(s.System.Language)
	s.System.Timezone = strings.TrimSpace(s.System.Timezone)
	s.System.Currency = strings.ToUpper(strings.TrimSpace(s.System.Currency))
	s.System.BackupFrequency = strings.ToLower(strings.TrimSpace(s.System.BackupFrequency))
}

func (s Settings) Validate() error {
	if s.Profile.Email != "" {
		if _, err := mail.ParseAddress(s.Profile.Email); err != nil {
			return ErrInvalidSettings
		}
	}
	if s.System.BackupFrequency != "" {
		if _, ok := backupFrequencies[s.System.BackupFrequency]; !ok {
			return ErrInvalidSettings
		}
	}
	if c := s.System.Currency; c != "" && len(c) != 3 {
		return ErrInvalidSettings
	}
	return nil
}

type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
