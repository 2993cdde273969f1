package interactor

import (
	"context"
	"testing"

	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledTransfer(t *testing.T, f *fixture, amount int64) *models.Transaction {
	t.Helper()
	transaction, err := f.interactor.SendMoney(context.Background(), f.alice, &dtos.SendMoneyDTO{
		ReceiverData: f.bob.Email,
		Amount:       decimal.NewFromInt(amount),
		PIN:          testPIN,
	})
	require.NoError(t, err)
	return transaction
}

func TestRequestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the refund lifecycle", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)

		err := f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{
			TransactionID: transaction.ID,
			Reason:        "wrong receiver",
		})
		require.NoError(t, err)

		assert.Equal(t, models.StatusRefunding, f.repo.status(transaction.ID))
		assert.Equal(t, 1, f.notifications.requestRefund)
		assert.True(t, f.accounts.balance("acc-alice").Equal(decimal.NewFromInt(700)), "no funds move on request")
	})

	t.Run("only the sender may request a refund", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)

		err := f.interactor.RequestRefund(ctx, f.bob, &dtos.RequestRefundDTO{TransactionID: transaction.ID})

		var forbiddenErr *apperrors.ForbiddenError
		assert.True(t, apperrors.As(err, &forbiddenErr))
	})

	t.Run("double request conflicts", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))

		err := f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID})

		var conflictErr *apperrors.ConflictError
		require.True(t, apperrors.As(err, &conflictErr))
		assert.Equal(t, "You already request to refund, wait for admin to approve", conflictErr.Message)
	})

	t.Run("pending transaction cannot be refunded", func(t *testing.T) {
		f := newFixture()
		request, err := f.interactor.RequestReceiveMoney(ctx, f.bob, &dtos.RequestReceiveMoneyDTO{
			SenderData: f.alice.Email,
			Amount:     decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		err = f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: request.ID})

		var conflictErr *apperrors.ConflictError
		require.True(t, apperrors.As(err, &conflictErr))
		assert.Equal(t, "This transaction can't be refunded", conflictErr.Message)
	})
}

func TestApproveRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("approve reverses the original movement", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))

		err := f.interactor.ApproveRefund(ctx, transaction.ID)
		require.NoError(t, err)

		assert.Equal(t, models.StatusRefunded, f.repo.status(transaction.ID))
		assert.True(t, f.accounts.balance("acc-alice").Equal(decimal.NewFromInt(1000)), "refund must restore the sender")
		assert.True(t, f.accounts.balance("acc-bob").Equal(decimal.NewFromInt(500)), "refund must restore the receiver")
		assert.Equal(t, 1, f.notifications.approveRefund)
	})

	t.Run("receiver shortfall blocks the refund", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))

		// The receiver spends the money before the admin decides.
		require.NoError(t, f.accounts.Debit(ctx, "acc-bob", decimal.NewFromInt(700)))

		err := f.interactor.ApproveRefund(ctx, transaction.ID)

		var fundsErr *apperrors.InsufficientFundsError
		require.True(t, apperrors.As(err, &fundsErr))
		assert.Equal(t, models.StatusRefunding, f.repo.status(transaction.ID), "a blocked refund stays open for the admin")
	})

	t.Run("approve without an open refund conflicts", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)

		err := f.interactor.ApproveRefund(ctx, transaction.ID)

		var conflictErr *apperrors.ConflictError
		require.True(t, apperrors.As(err, &conflictErr))
		assert.Equal(t, "Transaction already solved before", conflictErr.Message)
	})

	t.Run("second approve conflicts", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))
		require.NoError(t, f.interactor.ApproveRefund(ctx, transaction.ID))

		err := f.interactor.ApproveRefund(ctx, transaction.ID)

		var conflictErr *apperrors.ConflictError
		require.True(t, apperrors.As(err, &conflictErr))
		assert.True(t, f.accounts.balance("acc-alice").Equal(decimal.NewFromInt(1000)), "a refund can only be applied once")
	})
}

func TestRejectRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("reject reverts to Success without moving funds", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))

		err := f.interactor.RejectRefund(ctx, transaction.ID)
		require.NoError(t, err)

		assert.Equal(t, models.StatusSuccess, f.repo.status(transaction.ID))
		assert.True(t, f.accounts.balance("acc-alice").Equal(decimal.NewFromInt(700)))
		assert.True(t, f.accounts.balance("acc-bob").Equal(decimal.NewFromInt(800)))
		assert.Equal(t, 1, f.notifications.rejectRefund)
	})

	t.Run("rejected refund may be requested again", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))
		require.NoError(t, f.interactor.RejectRefund(ctx, transaction.ID))

		err := f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusRefunding, f.repo.status(transaction.ID))
	})

	t.Run("refunded transaction is terminal", func(t *testing.T) {
		f := newFixture()
		transaction := settledTransfer(t, f, 300)
		require.NoError(t, f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID}))
		require.NoError(t, f.interactor.ApproveRefund(ctx, transaction.ID))

		err := f.interactor.RequestRefund(ctx, f.alice, &dtos.RequestRefundDTO{TransactionID: transaction.ID})

		var conflictErr *apperrors.ConflictError
		require.True(t, apperrors.As(err, &conflictErr))
		assert.Equal(t, "This transaction already refunded before", conflictErr.Message)
	})
}
