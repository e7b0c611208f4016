package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordChange_Validate(t *testing.T) {
	tests := []struct {
		name string
		pc   PasswordChange
		want error
	}{
		{"no change", PasswordChange{}, nil},
		{"current only is no change", PasswordChange{Current: "old"}, nil},
		{"mismatch", PasswordChange{New: "abcdef", Confirm: "abcdeg"}, ErrPasswordMismatch},
		{"confirm without new", PasswordChange{Confirm: "abcdef"}, ErrPasswordMismatch},
		{"too short", PasswordChange{New: "abc", Confirm: "abc"}, ErrPasswordTooShort},
		{"ok at minimum", PasswordChange{New: "abcdef", Confirm: "abcdef"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pc.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSettings_NormalizeValidate(t *testing.T) {
	s := Settings{
		Profile: Profile{Email: " lavina@example.com "},
		System:  System{Currency: "thb", BackupFrequency: " Daily "},
	}
	s.Normalize()
	assert.Equal(t, "THB", s.System.Currency)
	assert.Equal(t, "daily", s.System.BackupFrequency)
	assert.NoError(t, s.Validate())

	s.System.BackupFrequency = "hourly"
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)

	s.System.BackupFrequency = "weekly"
	s.Profile.Email = "not-an-email"
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
}
