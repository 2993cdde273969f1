package routers

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/instapay/transaction-service/internal/di"
	"github.com/instapay/transaction-service/internal/domain/models"
	http2 "github.com/instapay/transaction-service/internal/infrastructure/api/http"
	"github.com/instapay/transaction-service/internal/infrastructure/api/middlewares"
)

func NewRouter(container *di.Container) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)

	router.Route("/api/v1/transaction", func(r chi.Router) {
		r.Use(middlewares.AuthenticationMiddleware(container.UserGateway, container.JWTSecret))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthorizationMiddleware(models.RoleUser))
			th := container.TransactionHandler
			r.Post("/send-money", th.SendMoney)
			r.Get("/history", th.GetHistory)
			r.Patch("/change-default", th.ChangeDefaultAccount)
			r.Post("/request-receive-money", th.RequestReceiveMoney)
			r.Post(fmt.Sprintf("/confirm-receive/{%s}", http2.TransactionIDParam), th.ConfirmReceive)
			r.Post(fmt.Sprintf("/reject-receive/{%s}", http2.TransactionIDParam), th.RejectReceive)
			r.Post("/request-refund", th.RequestRefund)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.AuthorizationMiddleware(models.RoleAdmin))
			ah := container.AdminHandler
			r.Get("/", ah.GetAllTransactions)
			r.Post("/suspicious", ah.SuspiciousTransaction)
			r.Post("/approve-refund", ah.ApproveRefund)
			r.Post("/reject-refund", ah.RejectRefund)
		})
	})

	// Trusted network only; the account service calls this during its
	// PIN-check path.
	router.Post("/internal/transaction/check-no-of-tries", container.InternalHandler.CheckNoOfTries)

	return router
}
