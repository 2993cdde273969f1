package gateways

import (
	"context"

	"github.com/instapay/transaction-service/internal/domain/models"
)

// FindUserQuery selects exactly one lookup key. EmailOrMobile covers the
// free-form receiver identifier typed by the paying user.
type FindUserQuery struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	EmailOrMobile string `json:"emailOrMobile,omitempty"`
}

type UserGateway interface {
	FindUser(ctx context.Context, query FindUserQuery) (*models.User, error)
	GetAllAdmins(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	GetManyUsers(ctx context.Context, ids []string) ([]models.User, error)
}
