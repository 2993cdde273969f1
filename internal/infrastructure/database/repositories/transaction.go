package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/instapay/transaction-service/internal/domain/repositories"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type TransactionRepositoryImpl struct {
	db     *pgxpool.Pool
	logger *zerolog.Logger
}

// NewTransactionRepositoryImpl creates new instance of TransactionRepositoryImpl.
func NewTransactionRepositoryImpl(db *pgxpool.Pool) repositories.TransactionRepository {
	l := log.GetLogger()
	return &TransactionRepositoryImpl{
		db:     db,
		logger: &l,
	}
}

const insertTransaction = `
INSERT INTO transactions (id, status, type, amount, sender_account_id, receiver_account_id)
VALUES ($1, $2, $3, $4::NUMERIC(12,2), $5, $6)
RETURNING created_at;`

// Create persists a new immutable transaction record.
func (r *TransactionRepositoryImpl) Create(ctx context.Context, senderAccID, receiverAccID string, amount decimal.Decimal, txType models.TransactionType, status models.TransactionStatus) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	transaction := &models.Transaction{
		ID:                uuid.New().String(),
		Status:            status,
		Type:              txType,
		Amount:            amount,
		SenderAccountID:   senderAccID,
		ReceiverAccountID: receiverAccID,
	}

	err := r.db.QueryRow(
		ctx,
		insertTransaction,
		transaction.ID,
		transaction.Status,
		transaction.Type,
		transaction.Amount,
		transaction.SenderAccountID,
		transaction.ReceiverAccountID,
	).Scan(&transaction.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == repositories.UniqueViolationError {
			return nil, apperrors.NewConflictError("transaction already exists")
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	return transaction, nil
}

const selectTransaction = `
SELECT id, status, type, amount, sender_account_id, receiver_account_id, created_at
FROM transactions`

// GetByID returns the transaction or a NotFound error if absent.
func (r *TransactionRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	err := r.db.QueryRow(ctx, selectTransaction+" WHERE id = $1", id).Scan(
		&transaction.ID,
		&transaction.Status,
		&transaction.Type,
		&transaction.Amount,
		&transaction.SenderAccountID,
		&transaction.ReceiverAccountID,
		&transaction.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invalid transaction id")
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return transaction, nil
}

// FindByAccountIDs returns every transaction where one of the accounts is
// sender or receiver, newest first.
func (r *TransactionRepositoryImpl) FindByAccountIDs(ctx context.Context, accountIDs []string) ([]models.Transaction, error) {
	rows, err := r.db.Query(
		ctx,
		selectTransaction+" WHERE sender_account_id = ANY($1) OR receiver_account_id = ANY($1) ORDER BY created_at DESC",
		accountIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindAll returns the entire transaction set, newest first.
func (r *TransactionRepositoryImpl) FindAll(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx, selectTransaction+" ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("find all transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// SetStatus is the only mutation path for transaction records. Transition
// legality is the caller's responsibility.
func (r *TransactionRepositoryImpl) SetStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	tag, err := r.db.Exec(ctx, "UPDATE transactions SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("set transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invalid transaction id")
	}
	return nil
}

const failStalePending = `
UPDATE transactions
SET status = 'Failed'
WHERE status = 'Pending' AND created_at < $1
RETURNING id;`

// FailStalePending fails receive requests that were never confirmed or
// rejected before the cutoff and returns their ids.
func (r *TransactionRepositoryImpl) FailStalePending(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, failStalePending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fail stale pending: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.ID,
			&t.Status,
			&t.Type,
			&t.Amount,
			&t.SenderAccountID,
			&t.ReceiverAccountID,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
