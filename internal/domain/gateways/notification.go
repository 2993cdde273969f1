package gateways

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/shopspring/decimal"
)

// NotificationGateway signals transaction events to the notification
// service. Calls sit on the critical path: a failure surfaces to the
// caller as an error, but the transfer it reports on is never rolled
// back. LowBalance is the one exception, logged and swallowed by the
// interactor.
type NotificationGateway interface {
	SendOrReceive(ctx context.Context, sender, receiver *models.User, transactionID string, amount decimal.Decimal) error
	ReceiveRequest(ctx context.Context, sender, receiver *models.User, transactionID string, amount decimal.Decimal) error
	RejectSend(ctx context.Context, senderEmail, receiverAccountID, transactionID string) error
	RequestRefund(ctx context.Context, user *models.User, transaction *models.Transaction, reason string, admins []models.User) error
	ApproveRefund(ctx context.Context, transaction *models.Transaction, sender, receiver *models.User) error
	RejectRefund(ctx context.Context, transaction *models.Transaction, senderID string, receiver *models.User) error
	LowBalance(ctx context.Context, accountID, userID string) error
}

// MailGateway delivers email through the mail service. Used directly for
// suspicious-transaction reports and wrong-PIN recovery links.
type MailGateway interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}
