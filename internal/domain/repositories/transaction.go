package repositories

import (
	"context"
	"time"

	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/shopspring/decimal"
)

const UniqueViolationError = "23505"

// TransactionRepository owns persistence of transaction records. Records
// are append-only; SetStatus is the only sanctioned mutation and does not
// validate transition legality - the interactor does, against the state
// machine in models.
type TransactionRepository interface {
	Create(ctx context.Context, senderAccID, receiverAccID string, amount decimal.Decimal, txType models.TransactionType, status models.TransactionStatus) (*models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	FindByAccountIDs(ctx context.Context, accountIDs []string) ([]models.Transaction, error)
	FindAll(ctx context.Context) ([]models.Transaction, error)
	SetStatus(ctx context.Context, id string, status models.TransactionStatus) error
	FailStalePending(ctx context.Context, cutoff time.Time) ([]string, error)
}
