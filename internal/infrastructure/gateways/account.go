package gateways

import (
	"context"
	"net/http"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/shopspring/decimal"
)

type AccountGatewayImpl struct {
	*serviceClient
}

func NewAccountGateway(baseURL string) gateways.AccountGateway {
	return &AccountGatewayImpl{serviceClient: newServiceClient("account", baseURL)}
}

func (g *AccountGatewayImpl) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account := &models.Account{}
	status, message, err := g.do(ctx, http.MethodPost, "/getAccount", map[string]string{"accountId": accountID}, account)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewNotFoundError(message)
	}
	return account, nil
}

func (g *AccountGatewayImpl) GetAccountByID(ctx context.Context, userID, accountID string, role gateways.AccountOwnership) (*models.Account, error) {
	account := &models.Account{}
	payload := map[string]string{"userId": userID, "accountId": accountID, "errMsg": string(role)}
	status, message, err := g.do(ctx, http.MethodPost, "/getAccountById", payload, account)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewNotFoundError(message)
	}
	return account, nil
}

func (g *AccountGatewayImpl) CheckDefaultAccount(ctx context.Context, user *models.User, role gateways.AccountOwnership) (*models.Account, error) {
	account := &models.Account{}
	payload := map[string]interface{}{"user": user, "errMsg": string(role)}
	status, message, err := g.do(ctx, http.MethodPost, "/checkDefaultAcc", payload, account)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewNotFoundError(message)
	}
	return account, nil
}

// CheckPIN verifies the account PIN remotely. A rejection means the PIN
// did not match; the remote side owns the wrong-PIN counter.
func (g *AccountGatewayImpl) CheckPIN(ctx context.Context, user *models.User, account *models.Account, pin string) error {
	payload := map[string]interface{}{"user": user, "account": account, "pin": pin}
	status, message, err := g.do(ctx, http.MethodPost, "/checkPIN", payload, nil)
	if err != nil {
		return err
	}
	switch status {
	case remoteRejected:
		return apperrors.NewInvalidPINError()
	case remoteMissing:
		return apperrors.NewNotFoundError(message)
	}
	return nil
}

// CheckLimit asks the account service whether the spend fits the rolling
// limit window. On rejection the error carries the remaining allowance
// computed from the account snapshot already in hand.
func (g *AccountGatewayImpl) CheckLimit(ctx context.Context, amount decimal.Decimal, account *models.Account) error {
	payload := map[string]interface{}{"amount": amount, "account": account}
	status, message, err := g.do(ctx, http.MethodPost, "/checkLimit", payload, nil)
	if err != nil {
		return err
	}
	switch status {
	case remoteRejected:
		return apperrors.NewLimitExceededError(string(account.Limit.Type), account.Limit.Remaining().String())
	case remoteMissing:
		return apperrors.NewNotFoundError(message)
	}
	return nil
}

// Debit applies balance -= amount as a single server-side conditional
// decrement. The account service rejects a debit that would go negative.
func (g *AccountGatewayImpl) Debit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return g.applyDelta(ctx, accountID, amount.Neg())
}

// Credit applies balance += amount server-side.
func (g *AccountGatewayImpl) Credit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return g.applyDelta(ctx, accountID, amount)
}

func (g *AccountGatewayImpl) applyDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
	payload := map[string]interface{}{"accountId": accountID, "delta": delta}
	status, message, err := g.do(ctx, http.MethodPost, "/applyBalanceDelta", payload, nil)
	if err != nil {
		return err
	}
	switch status {
	case remoteRejected:
		return apperrors.NewInsufficientFundsError()
	case remoteMissing:
		return apperrors.NewNotFoundError(message)
	}
	return nil
}

// AddLimitSpent increments the account's limit.spent after a completed
// outgoing transfer.
func (g *AccountGatewayImpl) AddLimitSpent(ctx context.Context, accountID string, amount decimal.Decimal) error {
	payload := map[string]interface{}{"accountId": accountID, "delta": amount}
	status, message, err := g.do(ctx, http.MethodPost, "/applyLimitSpentDelta", payload, nil)
	if err != nil {
		return err
	}
	if status != remoteOK {
		return apperrors.NewExternalServiceError("account", message)
	}
	return nil
}

func (g *AccountGatewayImpl) UpdateAccount(ctx context.Context, account *models.Account) error {
	status, message, err := g.do(ctx, http.MethodPut, "/updateAccount", account, nil)
	if err != nil {
		return err
	}
	if status != remoteOK {
		return apperrors.NewExternalServiceError("account", message)
	}
	return nil
}

func (g *AccountGatewayImpl) GetManyAccounts(ctx context.Context, ids []string) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(ids))
	status, message, err := g.do(ctx, http.MethodPost, "/many-by-ids", map[string][]string{"ids": ids}, &accounts)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewExternalServiceError("account", message)
	}
	return accounts, nil
}

func (g *AccountGatewayImpl) GetAccountsByUser(ctx context.Context, userID string) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	status, message, err := g.do(ctx, http.MethodPost, "/user-accounts", map[string]string{"userId": userID}, &accounts)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewExternalServiceError("account", message)
	}
	return accounts, nil
}
