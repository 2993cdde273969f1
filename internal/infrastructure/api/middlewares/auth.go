package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/errors"
	http2 "github.com/instapay/transaction-service/internal/infrastructure/api/http"
	"github.com/instapay/transaction-service/pkg/log"
)

// AuthenticationMiddleware validates the bearer token and resolves the
// acting user through the user service.
func AuthenticationMiddleware(users gateways.UserGateway, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.GetLogger()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				errors.HandleHTTPError(w, errors.NewForbiddenError("Missing or malformed token"))
				return
			}

			token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Error().Err(err).Msg("invalid token")
				errors.HandleHTTPError(w, errors.NewForbiddenError("Invalid or expired token"))
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				errors.HandleHTTPError(w, errors.NewForbiddenError("Invalid token claims"))
				return
			}
			userID, _ := claims["id"].(string)
			if userID == "" {
				errors.HandleHTTPError(w, errors.NewForbiddenError("Invalid token claims"))
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			user, err := users.FindUser(ctx, gateways.FindUserQuery{ID: userID})
			if err != nil {
				logger.Error().Err(err).Str("user_id", userID).Msg("failed to resolve acting user")
				errors.HandleHTTPError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(http2.WithCurrentUser(r.Context(), user)))
		})
	}
}
