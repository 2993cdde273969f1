package interactor

import (
	"context"
	"time"

	"github.com/instapay/transaction-service/internal/domain/repositories"
	"github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/rs/zerolog"
)

// ExpireRequestsInteractor fails Pending receive requests nobody has
// confirmed or rejected within the configured window, so abandoned pull
// requests do not stay open forever.
type ExpireRequestsInteractor struct {
	transactionRepository repositories.TransactionRepository
	maxAge                time.Duration
	logger                *zerolog.Logger
}

func NewExpireRequestsInteractor(transactionRepository repositories.TransactionRepository, maxAge time.Duration) *ExpireRequestsInteractor {
	l := log.GetLogger()
	return &ExpireRequestsInteractor{
		transactionRepository: transactionRepository,
		maxAge:                maxAge,
		logger:                &l,
	}
}

// Execute fails every stale pending request and logs the affected ids.
func (e *ExpireRequestsInteractor) Execute(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-e.maxAge)
	ids, err := e.transactionRepository.FailStalePending(ctx, cutoff)
	if err != nil {
		e.logger.Error().Err(err).Msg(errors.ErrFailedExpireStaleRequests)
		return err
	}

	for _, id := range ids {
		e.logger.Info().Str("transaction_id", id).Msg("stale receive request failed")
	}

	return nil
}
