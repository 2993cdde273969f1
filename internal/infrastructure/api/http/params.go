package http

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/models"
)

const TransactionIDParam = "transactionId"

type contextKey string

const currentUserKey contextKey = "currentUser"

// WithCurrentUser stashes the authenticated user in the request context.
func WithCurrentUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated user stored by the auth middleware.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok
}
