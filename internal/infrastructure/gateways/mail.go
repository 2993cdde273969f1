package gateways

import (
	"context"
	"net/http"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	apperrors "github.com/instapay/transaction-service/internal/errors"
)

type MailGatewayImpl struct {
	*serviceClient
}

func NewMailGateway(baseURL string) gateways.MailGateway {
	return &MailGatewayImpl{serviceClient: newServiceClient("mail", baseURL)}
}

func (g *MailGatewayImpl) SendEmail(ctx context.Context, to, subject, html string) error {
	payload := map[string]string{
		"to":      to,
		"subject": subject,
		"html":    html,
	}
	status, message, err := g.do(ctx, http.MethodPost, "", payload, nil)
	if err != nil {
		return err
	}
	if status != remoteOK {
		return apperrors.NewExternalServiceError("mail", message)
	}
	return nil
}
