package models

import "github.com/shopspring/decimal"

type TransferState string

const (
	TransferInitiated          TransferState = "Initiated"
	TransferDebitApplied       TransferState = "DebitApplied"
	TransferCommitted          TransferState = "Committed"
	TransferCompensationNeeded TransferState = "CompensationNeeded"
	TransferCompensated        TransferState = "Compensated"
)

// TransferIntent tracks one balance movement across the two independent
// account mutations. The debit always lands before the credit; if the
// credit fails the intent records whether the compensating credit back
// to the sender succeeded.
type TransferIntent struct {
	SenderAccountID   string
	ReceiverAccountID string
	Amount            decimal.Decimal
	State             TransferState
}

func NewTransferIntent(senderAccID, receiverAccID string, amount decimal.Decimal) *TransferIntent {
	return &TransferIntent{
		SenderAccountID:   senderAccID,
		ReceiverAccountID: receiverAccID,
		Amount:            amount,
		State:             TransferInitiated,
	}
}
