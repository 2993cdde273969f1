package gateways

import (
	"context"
	"net/http"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/shopspring/decimal"
)

type NotificationGatewayImpl struct {
	*serviceClient
}

func NewNotificationGateway(baseURL string) gateways.NotificationGateway {
	return &NotificationGatewayImpl{serviceClient: newServiceClient("notification", baseURL)}
}

func (g *NotificationGatewayImpl) SendOrReceive(ctx context.Context, sender, receiver *models.User, transactionID string, amount decimal.Decimal) error {
	payload := map[string]interface{}{
		"sender":        sender,
		"receiver":      receiver,
		"transactionId": transactionID,
		"amount":        amount,
	}
	return g.notify(ctx, "/sendOrReceive", payload)
}

func (g *NotificationGatewayImpl) ReceiveRequest(ctx context.Context, sender, receiver *models.User, transactionID string, amount decimal.Decimal) error {
	payload := map[string]interface{}{
		"sender":        sender,
		"receiver":      receiver,
		"transactionId": transactionID,
		"amount":        amount,
	}
	return g.notify(ctx, "/receiveRequest", payload)
}

func (g *NotificationGatewayImpl) RejectSend(ctx context.Context, senderEmail, receiverAccountID, transactionID string) error {
	payload := map[string]interface{}{
		"email":         senderEmail,
		"accReceiverId": receiverAccountID,
		"transactionId": transactionID,
	}
	return g.notify(ctx, "/rejectSend", payload)
}

func (g *NotificationGatewayImpl) RequestRefund(ctx context.Context, user *models.User, transaction *models.Transaction, reason string, admins []models.User) error {
	payload := map[string]interface{}{
		"user":        user,
		"transaction": transaction,
		"reason":      reason,
		"admins":      admins,
	}
	return g.notify(ctx, "/requestRefund", payload)
}

func (g *NotificationGatewayImpl) ApproveRefund(ctx context.Context, transaction *models.Transaction, sender, receiver *models.User) error {
	payload := map[string]interface{}{
		"transaction": transaction,
		"sender":      sender,
		"receiver":    receiver,
	}
	return g.notify(ctx, "/approveRefund", payload)
}

func (g *NotificationGatewayImpl) RejectRefund(ctx context.Context, transaction *models.Transaction, senderID string, receiver *models.User) error {
	payload := map[string]interface{}{
		"transaction": transaction,
		"sender":      senderID,
		"receiver":    receiver,
	}
	return g.notify(ctx, "/rejectRefund", payload)
}

func (g *NotificationGatewayImpl) LowBalance(ctx context.Context, accountID, userID string) error {
	payload := map[string]interface{}{
		"accountId": accountID,
		"userId":    userID,
	}
	return g.notify(ctx, "/low-balance", payload)
}

func (g *NotificationGatewayImpl) notify(ctx context.Context, path string, payload interface{}) error {
	status, message, err := g.do(ctx, http.MethodPost, path, payload, nil)
	if err != nil {
		return err
	}
	if status != remoteOK {
		return apperrors.NewExternalServiceError("notification", message)
	}
	return nil
}
