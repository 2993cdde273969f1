package middlewares

import (
	"net/http"

	"github.com/instapay/transaction-service/internal/domain/models"
	"github.com/instapay/transaction-service/internal/errors"
	http2 "github.com/instapay/transaction-service/internal/infrastructure/api/http"
)

// AuthorizationMiddleware restricts a route group to one role.
func AuthorizationMiddleware(role models.UserRole) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := http2.CurrentUser(r.Context())
			if !ok || user.Role != role {
				errors.HandleHTTPError(w, errors.NewForbiddenError("You aren't allowed to do this action"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
