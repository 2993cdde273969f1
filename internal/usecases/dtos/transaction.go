package dtos

import (
	"time"

	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/shopspring/decimal"
)

type SendMoneyDTO struct {
	ReceiverData string          `json:"receiverData"`
	Amount       decimal.Decimal `json:"amount"`
	PIN          string          `json:"PIN"`
	AccountID    string          `json:"accountId,omitempty"`
}

type RequestReceiveMoneyDTO struct {
	SenderData string          `json:"senderData"`
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"accountId,omitempty"`
}

type ConfirmReceiveDTO struct {
	PIN       string `json:"PIN"`
	AccountID string `json:"accountId,omitempty"`
}

type RequestRefundDTO struct {
	TransactionID string `json:"transactionId"`
	Reason        string `json:"reason"`
}

type TransactionIDDTO struct {
	TransactionID string `json:"transactionId"`
}

type ChangeDefaultAccountDTO struct {
	AccountID string `json:"accountId"`
}

type CheckNoOfTriesDTO struct {
	Account *models.Account `json:"account"`
	User    *models.User    `json:"user"`
}

// PartyView is the resolved owner of one side of a transaction.
type PartyView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TransactionView is a transaction joined with both resolved parties, as
// returned by history and admin listings.
type TransactionView struct {
	ID        string                   `json:"id"`
	Status    models.TransactionStatus `json:"status"`
	Type      models.TransactionType   `json:"type"`
	Amount    decimal.Decimal          `json:"amount"`
	CreatedAt time.Time                `json:"createdAt"`
	Sender    PartyView                `json:"sender"`
	Receiver  PartyView                `json:"receiver"`
}
