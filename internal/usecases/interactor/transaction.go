package interactor

import (
	"context"

	"github.com/instapay/transaction-service/internal/config"
	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/instapay/transaction-service/internal/domain/repositories"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/rs/zerolog"
)

// TransactionInteractor drives the transaction state machine. It is the
// only component allowed to decide status transitions; the store persists
// whatever it is told.
type TransactionInteractor struct {
	transactions  repositories.TransactionRepository
	accounts      gateways.AccountGateway
	users         gateways.UserGateway
	notifications gateways.NotificationGateway
	mail          gateways.MailGateway
	auth          config.Auth
	logger        *zerolog.Logger
}

func NewTransactionInteractor(
	transactions repositories.TransactionRepository,
	accounts gateways.AccountGateway,
	users gateways.UserGateway,
	notifications gateways.NotificationGateway,
	mail gateways.MailGateway,
	auth config.Auth,
) *TransactionInteractor {
	l := log.GetLogger()
	return &TransactionInteractor{
		transactions:  transactions,
		accounts:      accounts,
		users:         users,
		notifications: notifications,
		mail:          mail,
		auth:          auth,
		logger:        &l,
	}
}

// resolveActingAccount picks the explicitly requested account, verifying
// ownership, or falls back to the user's default account.
func (i *TransactionInteractor) resolveActingAccount(ctx context.Context, user *models.User, accountID string, role gateways.AccountOwnership) (*models.Account, error) {
	if accountID != "" {
		return i.accounts.GetAccountByID(ctx, user.ID, accountID, role)
	}
	return i.accounts.CheckDefaultAccount(ctx, user, role)
}

// checkTransactionStatus guards confirm/reject: only Pending requests may
// be resolved. A second confirm of the same request fails here.
func (i *TransactionInteractor) checkTransactionStatus(transaction *models.Transaction) error {
	if transaction.Status != models.StatusPending {
		return apperrors.NewConflictError("This transaction was closed")
	}
	return nil
}

// checkTransactionOwner resolves the transaction's sender account to its
// owning user. Transactions only record account ids, so ownership is one
// gateway hop away.
func (i *TransactionInteractor) checkTransactionOwner(ctx context.Context, transaction *models.Transaction, actingUser *models.User) error {
	senderAccount, err := i.accounts.GetAccount(ctx, transaction.SenderAccountID)
	if err != nil {
		return err
	}
	if senderAccount.UserID != actingUser.ID {
		return apperrors.NewForbiddenError("You aren't the sender of this transaction")
	}
	return nil
}

// checkForRefund guards the refund lifecycle. End users may only open a
// refund on a settled transaction; admins may only resolve one already in
// flight.
func (i *TransactionInteractor) checkForRefund(transaction *models.Transaction, endUser bool) error {
	if endUser {
		if transaction.Status == models.StatusRefunding {
			return apperrors.NewConflictError("You already request to refund, wait for admin to approve")
		}
		if transaction.Status == models.StatusRefunded {
			return apperrors.NewConflictError("This transaction already refunded before")
		}
		if !models.CanTransition(transaction.Status, models.StatusRefunding) {
			return apperrors.NewConflictError("This transaction can't be refunded")
		}
		return nil
	}

	if transaction.Status != models.StatusRefunding {
		return apperrors.NewConflictError("Transaction already solved before")
	}
	return nil
}

// setStatus validates the transition against the state machine before
// touching the store.
func (i *TransactionInteractor) setStatus(ctx context.Context, transaction *models.Transaction, to models.TransactionStatus) error {
	if !models.CanTransition(transaction.Status, to) {
		return apperrors.NewConflictError("This transaction was closed")
	}
	if err := i.transactions.SetStatus(ctx, transaction.ID, to); err != nil {
		return err
	}
	transaction.Status = to
	return nil
}

// ChangeDefaultAccount switches the user's implicit account after an
// ownership check through the account service.
func (i *TransactionInteractor) ChangeDefaultAccount(ctx context.Context, user *models.User, accountID string) error {
	if user.DefaultAccountID == accountID {
		return apperrors.NewConflictError("It's already the default account")
	}

	account, err := i.accounts.GetAccountByID(ctx, user.ID, accountID, gateways.AsOwner)
	if err != nil {
		return err
	}

	user.DefaultAccountID = account.ID
	return i.users.UpdateUser(ctx, user)
}
