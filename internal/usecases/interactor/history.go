package interactor

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
)

// GetHistory returns every transaction touching one of the user's
// accounts, each side resolved to its owning user.
func (i *TransactionInteractor) GetHistory(ctx context.Context, user *models.User) ([]dtos.TransactionView, error) {
	accounts, err := i.accounts.GetAccountsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("No accounts found for this user")
	}

	accountIDs := make([]string, 0, len(accounts))
	for _, account := range accounts {
		accountIDs = append(accountIDs, account.ID)
	}

	transactions, err := i.transactions.FindByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, apperrors.NewNotFoundError("No transactions yet")
	}

	return i.resolveParties(ctx, transactions)
}

// GetAllTransactions is the unscoped admin listing with the same join.
func (i *TransactionInteractor) GetAllTransactions(ctx context.Context) ([]dtos.TransactionView, error) {
	transactions, err := i.transactions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return i.resolveParties(ctx, transactions)
}

// resolveParties performs the batched cross-service join: one account
// batch fetch, one user batch fetch, then projection through id maps.
// This keeps the gateway call count constant regardless of result size.
func (i *TransactionInteractor) resolveParties(ctx context.Context, transactions []models.Transaction) ([]dtos.TransactionView, error) {
	accountIDSet := make(map[string]struct{})
	for _, t := range transactions {
		accountIDSet[t.SenderAccountID] = struct{}{}
		accountIDSet[t.ReceiverAccountID] = struct{}{}
	}
	accountIDs := make([]string, 0, len(accountIDSet))
	for id := range accountIDSet {
		accountIDs = append(accountIDs, id)
	}

	accounts, err := i.accounts.GetManyAccounts(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	accountMap := make(map[string]models.Account, len(accounts))
	userIDSet := make(map[string]struct{})
	for _, account := range accounts {
		accountMap[account.ID] = account
		userIDSet[account.UserID] = struct{}{}
	}
	userIDs := make([]string, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	users, err := i.users.GetManyUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[string]models.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	views := make([]dtos.TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, dtos.TransactionView{
			ID:        t.ID,
			Status:    t.Status,
			Type:      t.Type,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
			Sender:    partyView(accountMap, userMap, t.SenderAccountID),
			Receiver:  partyView(accountMap, userMap, t.ReceiverAccountID),
		})
	}

	return views, nil
}

func partyView(accountMap map[string]models.Account, userMap map[string]models.User, accountID string) dtos.PartyView {
	account, ok := accountMap[accountID]
	if !ok {
		return dtos.PartyView{}
	}
	user, ok := userMap[account.UserID]
	if !ok {
		return dtos.PartyView{}
	}
	return dtos.PartyView{
		ID:    user.ID,
		Name:  user.Name(),
		Email: user.Email,
	}
}
