package di

import (
	"strconv"
	"time"

	"github.com/instapay/transaction-service/internal/config"
	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/infrastructure/api/handlers"
	"github.com/instapay/transaction-service/internal/infrastructure/database/repositories"
	gatewaysimpl "github.com/instapay/transaction-service/internal/infrastructure/gateways"
	"github.com/instapay/transaction-service/internal/usecases/interactor"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	TransactionHandler       *handlers.TransactionHandler
	AdminHandler             *handlers.AdminHandler
	InternalHandler          *handlers.InternalHandler
	ExpireRequestsInteractor *interactor.ExpireRequestsInteractor
	UserGateway              gateways.UserGateway
	JWTSecret                string
}

// NewContainer creates a new Container instance.
func NewContainer(db *pgxpool.Pool, cfg *config.Config) *Container {
	transactionRepository := repositories.NewTransactionRepositoryImpl(db)

	accountGateway := gatewaysimpl.NewAccountGateway(cfg.Gateways.AccountServiceURL)
	userGateway := gatewaysimpl.NewUserGateway(cfg.Gateways.UserServiceURL)
	notificationGateway := gatewaysimpl.NewNotificationGateway(cfg.Gateways.NotificationServiceURL)
	mailGateway := gatewaysimpl.NewMailGateway(cfg.Gateways.MailServiceURL)

	transactionInteractor := interactor.NewTransactionInteractor(
		transactionRepository,
		accountGateway,
		userGateway,
		notificationGateway,
		mailGateway,
		cfg.Auth,
	)

	maxAgeHours, err := strconv.Atoi(cfg.Process.MaxPending)
	if err != nil {
		maxAgeHours = 72
	}
	expireRequestsInteractor := interactor.NewExpireRequestsInteractor(
		transactionRepository,
		time.Duration(maxAgeHours)*time.Hour,
	)

	return &Container{
		TransactionHandler:       handlers.NewTransactionHandler(transactionInteractor),
		AdminHandler:             handlers.NewAdminHandler(transactionInteractor),
		InternalHandler:          handlers.NewInternalHandler(transactionInteractor),
		ExpireRequestsInteractor: expireRequestsInteractor,
		UserGateway:              userGateway,
		JWTSecret:                cfg.Auth.JWTSecret,
	}
}
