package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []TransactionStatus{
		StatusPending, StatusSuccess, StatusFailed,
		StatusRefunding, StatusRefunded, StatusSuspicious,
	}

	allowed := map[TransactionStatus]map[TransactionStatus]bool{
		StatusPending:   {StatusSuccess: true, StatusFailed: true},
		StatusSuccess:   {StatusRefunding: true, StatusSuspicious: true},
		StatusRefunding: {StatusRefunded: true, StatusSuccess: true},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			expected := allowed[from][to]
			assert.Equal(t, expected, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(StatusFailed))
	assert.True(t, Terminal(StatusRefunded))
	assert.True(t, Terminal(StatusSuspicious))

	assert.False(t, Terminal(StatusPending))
	assert.False(t, Terminal(StatusSuccess))
	assert.False(t, Terminal(StatusRefunding))
}

func TestUserName(t *testing.T) {
	u := User{FirstName: "Alice", LastName: "Ahmed"}
	assert.Equal(t, "Alice Ahmed", u.Name())
}
