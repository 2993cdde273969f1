package interactor

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
	"github.com/shopspring/decimal"
)

var lowBalanceThreshold = decimal.NewFromInt(200)

// SendMoney executes an instantaneous transfer: PIN, balance and limit
// checks, the guarded two-step balance movement, then a Success/Send
// record and notifications to both parties.
func (i *TransactionInteractor) SendMoney(ctx context.Context, sender *models.User, dto *dtos.SendMoneyDTO) (*models.Transaction, error) {
	if !dto.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	senderAccount, err := i.resolveActingAccount(ctx, sender, dto.AccountID, gateways.AsOwner)
	if err != nil {
		return nil, err
	}

	if err = i.accounts.CheckPIN(ctx, sender, senderAccount, dto.PIN); err != nil {
		return nil, err
	}

	if dto.Amount.GreaterThan(senderAccount.Balance) {
		return nil, apperrors.NewInsufficientFundsError()
	}

	if err = i.accounts.CheckLimit(ctx, dto.Amount, senderAccount); err != nil {
		return nil, err
	}

	receiver, err := i.users.FindUser(ctx, gateways.FindUserQuery{EmailOrMobile: dto.ReceiverData})
	if err != nil {
		return nil, err
	}

	// Self-send is rejected on user identity, before any record exists.
	if receiver.ID == sender.ID {
		return nil, apperrors.NewValidationError("You can't send to your self")
	}

	receiverAccount, err := i.accounts.CheckDefaultAccount(ctx, receiver, gateways.AsReceiver)
	if err != nil {
		return nil, err
	}

	if err = i.moveBalance(ctx, senderAccount.ID, receiverAccount.ID, dto.Amount); err != nil {
		return nil, err
	}

	transaction, err := i.transactions.Create(ctx, senderAccount.ID, receiverAccount.ID, dto.Amount, models.TypeSend, models.StatusSuccess)
	if err != nil {
		i.logger.Error().Err(err).
			Str("sender_account_id", senderAccount.ID).
			Str("receiver_account_id", receiverAccount.ID).
			Str("amount", dto.Amount.String()).
			Msg("balances moved but transaction record was not created, manual reconciliation required")
		return nil, err
	}

	i.afterOutgoingTransfer(ctx, senderAccount, dto.Amount)

	if err = i.notifications.SendOrReceive(ctx, sender, receiver, transaction.ID, transaction.Amount); err != nil {
		return nil, err
	}

	return transaction, nil
}

// RequestReceiveMoney creates a Pending pull request. No funds move until
// the nominal sender confirms.
func (i *TransactionInteractor) RequestReceiveMoney(ctx context.Context, receiver *models.User, dto *dtos.RequestReceiveMoneyDTO) (*models.Transaction, error) {
	if !dto.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	receiverAccount, err := i.resolveActingAccount(ctx, receiver, dto.AccountID, gateways.AsReceiver)
	if err != nil {
		return nil, err
	}

	sender, err := i.users.FindUser(ctx, gateways.FindUserQuery{EmailOrMobile: dto.SenderData})
	if err != nil {
		return nil, err
	}

	if sender.ID == receiver.ID {
		return nil, apperrors.NewValidationError("You can't request money from your self")
	}

	senderAccount, err := i.accounts.CheckDefaultAccount(ctx, sender, gateways.AsSender)
	if err != nil {
		return nil, err
	}

	transaction, err := i.transactions.Create(ctx, senderAccount.ID, receiverAccount.ID, dto.Amount, models.TypeReceive, models.StatusPending)
	if err != nil {
		return nil, err
	}

	if err = i.notifications.ReceiveRequest(ctx, sender, receiver, transaction.ID, transaction.Amount); err != nil {
		return nil, err
	}

	return transaction, nil
}

// ConfirmReceive settles a pending pull request: the nominal sender
// authorizes with their PIN and the same guarded balance movement as
// SendMoney runs, then the request flips to Success. Confirming an
// already-settled request fails the status guard, so a retried confirm
// can never move funds twice.
func (i *TransactionInteractor) ConfirmReceive(ctx context.Context, sender *models.User, transactionID string, dto *dtos.ConfirmReceiveDTO) (*models.Transaction, error) {
	transaction, err := i.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err = i.checkTransactionStatus(transaction); err != nil {
		return nil, err
	}
	if err = i.checkTransactionOwner(ctx, transaction, sender); err != nil {
		return nil, err
	}

	senderAccount, err := i.resolveActingAccount(ctx, sender, dto.AccountID, gateways.AsOwner)
	if err != nil {
		return nil, err
	}

	if err = i.accounts.CheckPIN(ctx, sender, senderAccount, dto.PIN); err != nil {
		return nil, err
	}

	if transaction.Amount.GreaterThan(senderAccount.Balance) {
		return nil, apperrors.NewInsufficientFundsError()
	}

	if err = i.accounts.CheckLimit(ctx, transaction.Amount, senderAccount); err != nil {
		return nil, err
	}

	receiverAccount, err := i.accounts.GetAccount(ctx, transaction.ReceiverAccountID)
	if err != nil {
		return nil, err
	}
	receiver, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: receiverAccount.UserID})
	if err != nil {
		return nil, err
	}

	if err = i.moveBalance(ctx, senderAccount.ID, receiverAccount.ID, transaction.Amount); err != nil {
		return nil, err
	}

	if err = i.setStatus(ctx, transaction, models.StatusSuccess); err != nil {
		return nil, err
	}

	i.afterOutgoingTransfer(ctx, senderAccount, transaction.Amount)

	if err = i.notifications.SendOrReceive(ctx, sender, receiver, transaction.ID, transaction.Amount); err != nil {
		return nil, err
	}

	return transaction, nil
}

// RejectReceive closes a pending pull request without moving funds.
func (i *TransactionInteractor) RejectReceive(ctx context.Context, sender *models.User, transactionID string) error {
	transaction, err := i.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if err = i.checkTransactionStatus(transaction); err != nil {
		return err
	}
	if err = i.checkTransactionOwner(ctx, transaction, sender); err != nil {
		return err
	}

	if err = i.setStatus(ctx, transaction, models.StatusFailed); err != nil {
		return err
	}

	return i.notifications.RejectSend(ctx, sender.Email, transaction.ReceiverAccountID, transaction.ID)
}

// moveBalance is the cross-service transfer: debit first, credit second.
// On credit failure it credits the sender back; only when that
// compensation also fails is money left in flight, and the intent is
// logged for manual reconciliation.
func (i *TransactionInteractor) moveBalance(ctx context.Context, senderAccountID, receiverAccountID string, amount decimal.Decimal) error {
	intent := models.NewTransferIntent(senderAccountID, receiverAccountID, amount)

	if err := i.accounts.Debit(ctx, senderAccountID, amount); err != nil {
		return err
	}
	intent.State = models.TransferDebitApplied

	if err := i.accounts.Credit(ctx, receiverAccountID, amount); err != nil {
		if compErr := i.accounts.Credit(ctx, senderAccountID, amount); compErr != nil {
			intent.State = models.TransferCompensationNeeded
			i.logger.Error().Err(compErr).
				Str("sender_account_id", senderAccountID).
				Str("receiver_account_id", receiverAccountID).
				Str("amount", amount.String()).
				Str("transfer_state", string(intent.State)).
				Msg("credit and compensation both failed, money in flight, manual reconciliation required")
			return err
		}
		intent.State = models.TransferCompensated
		i.logger.Warn().
			Str("sender_account_id", senderAccountID).
			Str("receiver_account_id", receiverAccountID).
			Str("amount", amount.String()).
			Str("transfer_state", string(intent.State)).
			Msg("receiver credit failed, sender debit compensated")
		return err
	}

	intent.State = models.TransferCommitted
	i.logger.Debug().
		Str("sender_account_id", senderAccountID).
		Str("receiver_account_id", receiverAccountID).
		Str("amount", amount.String()).
		Str("transfer_state", string(intent.State)).
		Msg("transfer committed")
	return nil
}

// afterOutgoingTransfer applies the sender-side bookkeeping: the limit
// window consumes the amount, and a balance dropping under the threshold
// raises a low-balance notification. Failures here never undo the
// transfer; they are logged and swallowed.
func (i *TransactionInteractor) afterOutgoingTransfer(ctx context.Context, senderAccount *models.Account, amount decimal.Decimal) {
	if err := i.accounts.AddLimitSpent(ctx, senderAccount.ID, amount); err != nil {
		i.logger.Error().Err(err).Str("account_id", senderAccount.ID).Msg("failed to add limit spent")
	}

	if senderAccount.Balance.Sub(amount).LessThan(lowBalanceThreshold) {
		if err := i.notifications.LowBalance(ctx, senderAccount.ID, senderAccount.UserID); err != nil {
			i.logger.Error().Err(err).Str("account_id", senderAccount.ID).Msg("failed to send low balance notification")
		}
	}
}
