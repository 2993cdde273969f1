package main

import (
	"context"

	"github.com/instapay/transaction-service/internal/app"
	"github.com/instapay/transaction-service/internal/config"
	"github.com/instapay/transaction-service/internal/di"
	"github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/internal/infrastructure/api/routers"
	"github.com/instapay/transaction-service/internal/infrastructure/database/db_client"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/joho/godotenv"
)

const (
	appName = "transaction-service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = godotenv.Load()
	cfg := config.Load()

	log.Init(appName, log.WithConsoleLogger())
	logger := log.GetLogger()

	pgClient := db_client.NewPGClient(cfg.PostgreSQL)
	db, err := pgClient.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToConnectToTheDatabase)
	}

	container := di.NewContainer(db, cfg)

	expiry := app.NewExpireRequestsProcess(container.ExpireRequestsInteractor, cfg.Process)
	go expiry.Run(ctx)

	router := routers.NewRouter(container)
	service := app.NewService(cfg)
	service.Run(ctx, router)
}
