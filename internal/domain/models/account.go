package models

import (
	"github.com/shopspring/decimal"
	"time"
)

type LimitType string

const (
	LimitDaily  LimitType = "Daily"
	LimitWeekly LimitType = "Weekly"
)

// Limit is a rolling cap on outgoing spend, reset at EndDate.
type Limit struct {
	Type    LimitType       `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Spent   decimal.Decimal `json:"spent"`
	EndDate time.Time       `json:"endDate"`
}

// Remaining returns how much the account may still spend in the window.
func (l Limit) Remaining() decimal.Decimal {
	return l.Amount.Sub(l.Spent)
}

// Account mirrors the record owned by the account service. Balance and
// limit mutations go through the gateway; a local copy is never durable.
type Account struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Balance       decimal.Decimal `json:"balance"`
	WrongPinCount int             `json:"wrongPinCount"`
	Limit         Limit           `json:"limit"`
}
