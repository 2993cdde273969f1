package interactor

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
)

// RequestRefund opens the refund lifecycle on a settled transaction. No
// funds move; the transaction waits in Refunding for an admin decision.
func (i *TransactionInteractor) RequestRefund(ctx context.Context, user *models.User, dto *dtos.RequestRefundDTO) error {
	transaction, err := i.transactions.GetByID(ctx, dto.TransactionID)
	if err != nil {
		return err
	}

	if err = i.checkTransactionOwner(ctx, transaction, user); err != nil {
		return err
	}
	if err = i.checkForRefund(transaction, true); err != nil {
		return err
	}

	admins, err := i.users.GetAllAdmins(ctx)
	if err != nil {
		return err
	}

	if err = i.notifications.RequestRefund(ctx, user, transaction, dto.Reason, admins); err != nil {
		return err
	}

	return i.setStatus(ctx, transaction, models.StatusRefunding)
}

// ApproveRefund reverses the original transfer. The reversal debit goes
// through the same guarded delta as any other debit: if the receiver can
// no longer cover the amount, the refund is blocked and the transaction
// stays Refunding for the admin to retry or reject.
func (i *TransactionInteractor) ApproveRefund(ctx context.Context, transactionID string) error {
	transaction, err := i.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if err = i.checkForRefund(transaction, false); err != nil {
		return err
	}

	senderAccount, err := i.accounts.GetAccount(ctx, transaction.SenderAccountID)
	if err != nil {
		return err
	}
	receiverAccount, err := i.accounts.GetAccount(ctx, transaction.ReceiverAccountID)
	if err != nil {
		return err
	}

	sender, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: senderAccount.UserID})
	if err != nil {
		return err
	}
	receiver, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: receiverAccount.UserID})
	if err != nil {
		return err
	}

	// Inverse of the original movement: the receiver is debited.
	if err = i.moveBalance(ctx, receiverAccount.ID, senderAccount.ID, transaction.Amount); err != nil {
		return err
	}

	if err = i.setStatus(ctx, transaction, models.StatusRefunded); err != nil {
		return err
	}

	return i.notifications.ApproveRefund(ctx, transaction, sender, receiver)
}

// RejectRefund reverts a Refunding transaction back to Success without
// moving funds.
func (i *TransactionInteractor) RejectRefund(ctx context.Context, transactionID string) error {
	transaction, err := i.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if err = i.checkForRefund(transaction, false); err != nil {
		return err
	}

	senderAccount, err := i.accounts.GetAccount(ctx, transaction.SenderAccountID)
	if err != nil {
		return err
	}
	receiverAccount, err := i.accounts.GetAccount(ctx, transaction.ReceiverAccountID)
	if err != nil {
		return err
	}

	receiver, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: receiverAccount.UserID})
	if err != nil {
		return err
	}

	if err = i.setStatus(ctx, transaction, models.StatusSuccess); err != nil {
		return err
	}

	return i.notifications.RejectRefund(ctx, transaction, senderAccount.UserID, receiver)
}
