package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	m, err := New(" Ann ", "ann@example.com", " hello ", now)
	require.NoError(t, err)
	assert.Equal(t, "Ann", m.Name)
	assert.Equal(t, "hello", m.Message)
	assert.Equal(t, "[contact] message from Ann", m.Subject())
	assert.Contains(t, m.Body(), "Email: ann@example.com")
	assert.Contains(t, m.Body(), "2026-05-06T07:08:09Z")

	for _, tc := range [][3]string{
		{"", "a@b.c", "x"},
		{"a", "", "x"},
		{"a", "a@b.c", " "},
		{"a", "not-an-address", "x"},
	} {
		_, err := New(tc[0], tc[1], tc[2], now)
		assert.ErrorIs(t, err, ErrInvalidMessage, tc)
	}
}
