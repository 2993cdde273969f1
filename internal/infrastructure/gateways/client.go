package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/rs/zerolog"
)

const requestTimeout = 30 * time.Second

// serviceClient is the shared JSON-over-HTTP plumbing for the account,
// user, notification and mail gateways. Transport failures and remote
// errors come back as a typed ExternalServiceError carrying the remote
// message, never as raw transport errors.
type serviceClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func newServiceClient(service, baseURL string) *serviceClient {
	l := log.GetLogger()
	return &serviceClient{
		service: service,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: &l,
	}
}

// remoteError is the error body shape shared by the collaborating services.
type remoteError struct {
	Message string `json:"message"`
}

type remoteStatus int

const (
	remoteOK remoteStatus = iota
	remoteRejected
	remoteMissing
)

// do sends one JSON request and decodes the response into out (when out is
// non-nil). The returned remoteStatus distinguishes business rejections
// (4xx) from missing resources (404) so callers can map them onto their
// endpoint's error kind; any other failure is already an ExternalServiceError.
func (c *serviceClient) do(ctx context.Context, method, path string, payload, out interface{}) (remoteStatus, string, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return remoteOK, "", fmt.Errorf("marshal %s request: %w", c.service, err)
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return remoteOK, "", apperrors.NewExternalServiceError(c.service, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("service", c.service).Str("path", path).Msg("gateway request failed")
		return remoteOK, "", apperrors.NewExternalServiceError(c.service, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		message := readRemoteMessage(resp.Body)
		c.logger.Error().Str("service", c.service).Str("path", path).Int("status_code", resp.StatusCode).Str("remote_message", message).Msg("gateway returned server error")
		return remoteOK, "", apperrors.NewExternalServiceError(c.service, message)
	}

	if resp.StatusCode == http.StatusNotFound {
		return remoteMissing, readRemoteMessage(resp.Body), nil
	}

	if resp.StatusCode >= 400 {
		return remoteRejected, readRemoteMessage(resp.Body), nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return remoteOK, "", apperrors.NewExternalServiceError(c.service, fmt.Sprintf("decode response: %v", err))
		}
	}

	return remoteOK, "", nil
}

func readRemoteMessage(body io.Reader) string {
	var remote remoteError
	if err := json.NewDecoder(body).Decode(&remote); err != nil || remote.Message == "" {
		return "unexpected response"
	}
	return remote.Message
}
