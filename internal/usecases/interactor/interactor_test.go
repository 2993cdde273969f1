package interactor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/instapay/transaction-service/internal/config"
	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/shopspring/decimal"
)

// In-memory fakes for the repository and the four collaborating services.
// Balances actually move inside fakeAccountGateway so the tests can assert
// conservation instead of just call counts.

type fakeTransactionRepository struct {
	mu           sync.Mutex
	transactions map[string]*models.Transaction
	createErr    error
	setStatusErr error
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[string]*models.Transaction)}
}

func (r *fakeTransactionRepository) Create(_ context.Context, senderAccID, receiverAccID string, amount decimal.Decimal, txType models.TransactionType, status models.TransactionStatus) (*models.Transaction, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	transaction := &models.Transaction{
		ID:                uuid.New().String(),
		Status:            status,
		Type:              txType,
		Amount:            amount,
		SenderAccountID:   senderAccID,
		ReceiverAccountID: receiverAccID,
		CreatedAt:         time.Now(),
	}
	r.transactions[transaction.ID] = transaction
	return transaction, nil
}

func (r *fakeTransactionRepository) GetByID(_ context.Context, id string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("invalid transaction id")
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeTransactionRepository) FindByAccountIDs(_ context.Context, accountIDs []string) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		ids[id] = struct{}{}
	}
	var result []models.Transaction
	for _, transaction := range r.transactions {
		if _, ok := ids[transaction.SenderAccountID]; ok {
			result = append(result, *transaction)
			continue
		}
		if _, ok := ids[transaction.ReceiverAccountID]; ok {
			result = append(result, *transaction)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindAll(_ context.Context) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		result = append(result, *transaction)
	}
	return result, nil
}

func (r *fakeTransactionRepository) SetStatus(_ context.Context, id string, status models.TransactionStatus) error {
	if r.setStatusErr != nil {
		return r.setStatusErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	transaction, ok := r.transactions[id]
	if !ok {
		return apperrors.NewNotFoundError("invalid transaction id")
	}
	transaction.Status = status
	return nil
}

func (r *fakeTransactionRepository) FailStalePending(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, transaction := range r.transactions {
		if transaction.Status == models.StatusPending && transaction.CreatedAt.Before(cutoff) {
			transaction.Status = models.StatusFailed
			ids = append(ids, transaction.ID)
		}
	}
	return ids, nil
}

func (r *fakeTransactionRepository) status(id string) models.TransactionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transactions[id].Status
}

type fakeAccountGateway struct {
	mu        sync.Mutex
	accounts  map[string]*models.Account
	pin       string
	creditErr map[string]error
	debitErr  map[string]error
}

func newFakeAccountGateway(pin string, accounts ...*models.Account) *fakeAccountGateway {
	g := &fakeAccountGateway{
		accounts:  make(map[string]*models.Account),
		pin:       pin,
		creditErr: make(map[string]error),
		debitErr:  make(map[string]error),
	}
	for _, account := range accounts {
		g.accounts[account.ID] = account
	}
	return g
}

func (g *fakeAccountGateway) GetAccount(_ context.Context, accountID string) (*models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	account, ok := g.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("account not found")
	}
	copied := *account
	return &copied, nil
}

func (g *fakeAccountGateway) GetAccountByID(ctx context.Context, userID, accountID string, _ gateways.AccountOwnership) (*models.Account, error) {
	account, err := g.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, apperrors.NewForbiddenError("account does not belong to user")
	}
	return account, nil
}

func (g *fakeAccountGateway) CheckDefaultAccount(ctx context.Context, user *models.User, _ gateways.AccountOwnership) (*models.Account, error) {
	return g.GetAccount(ctx, user.DefaultAccountID)
}

func (g *fakeAccountGateway) CheckPIN(_ context.Context, _ *models.User, _ *models.Account, pin string) error {
	if pin != g.pin {
		return apperrors.NewInvalidPINError()
	}
	return nil
}

func (g *fakeAccountGateway) CheckLimit(_ context.Context, amount decimal.Decimal, account *models.Account) error {
	remaining := account.Limit.Remaining()
	if amount.GreaterThan(remaining) {
		return apperrors.NewLimitExceededError(string(account.Limit.Type), remaining.String())
	}
	return nil
}

func (g *fakeAccountGateway) Debit(_ context.Context, accountID string, amount decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.debitErr[accountID]; err != nil {
		return err
	}
	account, ok := g.accounts[accountID]
	if !ok {
		return apperrors.NewNotFoundError("account not found")
	}
	if amount.GreaterThan(account.Balance) {
		return apperrors.NewInsufficientFundsError()
	}
	account.Balance = account.Balance.Sub(amount)
	return nil
}

func (g *fakeAccountGateway) Credit(_ context.Context, accountID string, amount decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.creditErr[accountID]; err != nil {
		return err
	}
	account, ok := g.accounts[accountID]
	if !ok {
		return apperrors.NewNotFoundError("account not found")
	}
	account.Balance = account.Balance.Add(amount)
	return nil
}

func (g *fakeAccountGateway) AddLimitSpent(_ context.Context, accountID string, amount decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	account, ok := g.accounts[accountID]
	if !ok {
		return apperrors.NewNotFoundError("account not found")
	}
	account.Limit.Spent = account.Limit.Spent.Add(amount)
	return nil
}

func (g *fakeAccountGateway) UpdateAccount(_ context.Context, account *models.Account) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	copied := *account
	g.accounts[account.ID] = &copied
	return nil
}

func (g *fakeAccountGateway) GetManyAccounts(_ context.Context, ids []string) ([]models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	result := make([]models.Account, 0, len(ids))
	for _, id := range ids {
		if account, ok := g.accounts[id]; ok {
			result = append(result, *account)
		}
	}
	return result, nil
}

func (g *fakeAccountGateway) GetAccountsByUser(_ context.Context, userID string) ([]models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var result []models.Account
	for _, account := range g.accounts {
		if account.UserID == userID {
			result = append(result, *account)
		}
	}
	return result, nil
}

func (g *fakeAccountGateway) balance(accountID string) decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accounts[accountID].Balance
}

func (g *fakeAccountGateway) limitSpent(accountID string) decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accounts[accountID].Limit.Spent
}

type fakeUserGateway struct {
	mu          sync.Mutex
	users       map[string]*models.User
	updateCalls int
}

func newFakeUserGateway(users ...*models.User) *fakeUserGateway {
	g := &fakeUserGateway{users: make(map[string]*models.User)}
	for _, user := range users {
		g.users[user.ID] = user
	}
	return g
}

func (g *fakeUserGateway) FindUser(_ context.Context, query gateways.FindUserQuery) (*models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, user := range g.users {
		if query.ID != "" && user.ID == query.ID {
			copied := *user
			return &copied, nil
		}
		if query.Email != "" && user.Email == query.Email {
			copied := *user
			return &copied, nil
		}
		if query.EmailOrMobile != "" && user.Email == query.EmailOrMobile {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (g *fakeUserGateway) GetAllAdmins(_ context.Context) ([]models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var admins []models.User
	for _, user := range g.users {
		if user.Role == models.RoleAdmin {
			admins = append(admins, *user)
		}
	}
	return admins, nil
}

func (g *fakeUserGateway) UpdateUser(_ context.Context, user *models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	copied := *user
	g.users[user.ID] = &copied
	return nil
}

func (g *fakeUserGateway) GetManyUsers(_ context.Context, ids []string) ([]models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	result := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := g.users[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

type fakeNotificationGateway struct {
	mu             sync.Mutex
	sendOrReceive  int
	receiveRequest int
	rejectSend     int
	requestRefund  int
	approveRefund  int
	rejectRefund   int
	lowBalance     int
}

func (g *fakeNotificationGateway) SendOrReceive(_ context.Context, _, _ *models.User, _ string, _ decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sendOrReceive++
	return nil
}

func (g *fakeNotificationGateway) ReceiveRequest(_ context.Context, _, _ *models.User, _ string, _ decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.receiveRequest++
	return nil
}

func (g *fakeNotificationGateway) RejectSend(_ context.Context, _, _, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejectSend++
	return nil
}

func (g *fakeNotificationGateway) RequestRefund(_ context.Context, _ *models.User, _ *models.Transaction, _ string, _ []models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requestRefund++
	return nil
}

func (g *fakeNotificationGateway) ApproveRefund(_ context.Context, _ *models.Transaction, _, _ *models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.approveRefund++
	return nil
}

func (g *fakeNotificationGateway) RejectRefund(_ context.Context, _ *models.Transaction, _ string, _ *models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejectRefund++
	return nil
}

func (g *fakeNotificationGateway) LowBalance(_ context.Context, _, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lowBalance++
	return nil
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type fakeMailGateway struct {
	mu   sync.Mutex
	sent []sentMail
}

func (g *fakeMailGateway) SendEmail(_ context.Context, to, subject, html string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

// fixture wires two regular users with one account each, plus one admin,
// through an interactor backed entirely by the fakes above.
type fixture struct {
	interactor    *TransactionInteractor
	repo          *fakeTransactionRepository
	accounts      *fakeAccountGateway
	users         *fakeUserGateway
	notifications *fakeNotificationGateway
	mail          *fakeMailGateway
	authConfig    config.Auth

	alice        *models.User
	bob          *models.User
	admin        *models.User
	aliceAccount *models.Account
	bobAccount   *models.Account
}

const testPIN = "1234"

func newFixture() *fixture {
	log.Init("test")

	aliceAccount := &models.Account{
		ID:      "acc-alice",
		UserID:  "user-alice",
		Balance: decimal.NewFromInt(1000),
		Limit: models.Limit{
			Type:    models.LimitDaily,
			Amount:  decimal.NewFromInt(5000),
			EndDate: time.Now().Add(24 * time.Hour),
		},
	}
	bobAccount := &models.Account{
		ID:      "acc-bob",
		UserID:  "user-bob",
		Balance: decimal.NewFromInt(500),
		Limit: models.Limit{
			Type:    models.LimitDaily,
			Amount:  decimal.NewFromInt(5000),
			EndDate: time.Now().Add(24 * time.Hour),
		},
	}
	alice := &models.User{
		ID:               "user-alice",
		FirstName:        "Alice",
		LastName:         "Ahmed",
		Email:            "alice@example.com",
		Role:             models.RoleUser,
		DefaultAccountID: aliceAccount.ID,
	}
	bob := &models.User{
		ID:               "user-bob",
		FirstName:        "Bob",
		LastName:         "Bakr",
		Email:            "bob@example.com",
		Role:             models.RoleUser,
		DefaultAccountID: bobAccount.ID,
	}
	admin := &models.User{
		ID:        "user-admin",
		FirstName: "Ad",
		LastName:  "Min",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
	}

	repo := newFakeTransactionRepository()
	accounts := newFakeAccountGateway(testPIN, aliceAccount, bobAccount)
	users := newFakeUserGateway(alice, bob, admin)
	notifications := &fakeNotificationGateway{}
	mail := &fakeMailGateway{}

	auth := config.Auth{
		JWTSecret:         "secret",
		ExceedTriesSecret: "exceed-secret",
		ResetBaseURL:      "http://localhost:3000/account/verifyAccountUser",
	}

	return &fixture{
		interactor:    NewTransactionInteractor(repo, accounts, users, notifications, mail, auth),
		repo:          repo,
		accounts:      accounts,
		users:         users,
		notifications: notifications,
		mail:          mail,
		authConfig:    auth,
		alice:         alice,
		bob:           bob,
		admin:         admin,
		aliceAccount:  aliceAccount,
		bobAccount:    bobAccount,
	}
}
