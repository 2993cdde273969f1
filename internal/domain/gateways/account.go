package gateways

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/shopspring/decimal"
)

type AccountOwnership string

const (
	AsOwner    AccountOwnership = "owner"
	AsSender   AccountOwnership = "sender"
	AsReceiver AccountOwnership = "receiver"
)

// AccountGateway is the typed contract to the account service. Balance
// deltas are applied server-side as single conditional increments; Debit
// fails with InsufficientFunds rather than letting a balance go negative.
type AccountGateway interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string, role AccountOwnership) (*models.Account, error)
	CheckDefaultAccount(ctx context.Context, user *models.User, role AccountOwnership) (*models.Account, error)
	CheckPIN(ctx context.Context, user *models.User, account *models.Account, pin string) error
	CheckLimit(ctx context.Context, amount decimal.Decimal, account *models.Account) error
	Debit(ctx context.Context, accountID string, amount decimal.Decimal) error
	Credit(ctx context.Context, accountID string, amount decimal.Decimal) error
	AddLimitSpent(ctx context.Context, accountID string, amount decimal.Decimal) error
	UpdateAccount(ctx context.Context, account *models.Account) error
	GetManyAccounts(ctx context.Context, ids []string) ([]models.Account, error)
	GetAccountsByUser(ctx context.Context, userID string) ([]models.Account, error)
}
