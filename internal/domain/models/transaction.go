package models

import (
	"github.com/shopspring/decimal"
	"time"
)

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "Pending"
	StatusSuccess    TransactionStatus = "Success"
	StatusFailed     TransactionStatus = "Failed"
	StatusRefunding  TransactionStatus = "Refunding"
	StatusRefunded   TransactionStatus = "Refunded"
	StatusSuspicious TransactionStatus = "Suspicious"
)

type TransactionType string

const (
	TypeSend    TransactionType = "Send"
	TypeReceive TransactionType = "Receive"
)

type Transaction struct {
	ID                string            `db:"id"`
	Status            TransactionStatus `db:"status"`
	Type              TransactionType   `db:"type"`
	Amount            decimal.Decimal   `db:"amount"`
	SenderAccountID   string            `db:"sender_account_id"`
	ReceiverAccountID string            `db:"receiver_account_id"`
	CreatedAt         time.Time         `db:"created_at"`
}

// allowedTransitions is the whole state machine. Failed and Refunded are
// terminal; Suspicious accepts no automated follow-up.
var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:   {StatusSuccess, StatusFailed},
	StatusSuccess:   {StatusRefunding, StatusSuspicious},
	StatusRefunding: {StatusRefunded, StatusSuccess},
}

// CanTransition reports whether a transaction may move between the two states.
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted from status.
func Terminal(status TransactionStatus) bool {
	return len(allowedTransitions[status]) == 0
}
