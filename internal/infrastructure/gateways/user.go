package gateways

import (
	"context"
	"net/http"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
)

type UserGatewayImpl struct {
	*serviceClient
}

func NewUserGateway(baseURL string) gateways.UserGateway {
	return &UserGatewayImpl{serviceClient: newServiceClient("user", baseURL)}
}

func (g *UserGatewayImpl) FindUser(ctx context.Context, query gateways.FindUserQuery) (*models.User, error) {
	user := &models.User{}
	status, message, err := g.do(ctx, http.MethodPost, "/findUser", query, user)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewNotFoundError(message)
	}
	return user, nil
}

func (g *UserGatewayImpl) GetAllAdmins(ctx context.Context) ([]models.User, error) {
	admins := make([]models.User, 0)
	status, message, err := g.do(ctx, http.MethodGet, "/getAllAdmins", nil, &admins)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewNotFoundError(message)
	}
	return admins, nil
}

func (g *UserGatewayImpl) UpdateUser(ctx context.Context, user *models.User) error {
	status, message, err := g.do(ctx, http.MethodPut, "/updateUserMicroservice", user, nil)
	if err != nil {
		return err
	}
	if status != remoteOK {
		return apperrors.NewExternalServiceError("user", message)
	}
	return nil
}

func (g *UserGatewayImpl) GetManyUsers(ctx context.Context, ids []string) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	status, message, err := g.do(ctx, http.MethodPost, "/many-by-ids", map[string][]string{"ids": ids}, &users)
	if err != nil {
		return nil, err
	}
	if status != remoteOK {
		return nil, apperrors.NewExternalServiceError("user", message)
	}
	return users, nil
}
