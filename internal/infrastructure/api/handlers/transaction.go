package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/instapay/transaction-service/internal/errors"
	http2 "github.com/instapay/transaction-service/internal/infrastructure/api/http"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
	"github.com/instapay/transaction-service/internal/usecases/interactor"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/rs/zerolog"
)

const requestTimeout = 30 * time.Second

type TransactionHandler struct {
	interactor *interactor.TransactionInteractor
	logger     *zerolog.Logger
}

func NewTransactionHandler(interactor *interactor.TransactionInteractor) *TransactionHandler {
	logger := log.GetLogger()
	return &TransactionHandler{interactor: interactor, logger: &logger}
}

func (h *TransactionHandler) SendMoney(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	var dto dtos.SendMoneyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	transaction, err := h.interactor.SendMoney(ctx, user, &dto)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to send money")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Done, check you notification section", transaction)
}

func (h *TransactionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	history, err := h.interactor.GetHistory(ctx, user)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to get history")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "done", history)
}

func (h *TransactionHandler) ChangeDefaultAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	var dto dtos.ChangeDefaultAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.ChangeDefaultAccount(ctx, user, dto.AccountID); err != nil {
		h.logger.Error().Err(err).Msg("failed to change default account")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Changed", nil)
}

func (h *TransactionHandler) RequestReceiveMoney(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	var dto dtos.RequestReceiveMoneyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	transaction, err := h.interactor.RequestReceiveMoney(ctx, user, &dto)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to request receive money")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Done, check you notification section", transaction)
}

func (h *TransactionHandler) ConfirmReceive(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	transactionID := chi.URLParam(r, http2.TransactionIDParam)

	var dto dtos.ConfirmReceiveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	transaction, err := h.interactor.ConfirmReceive(ctx, user, transactionID, &dto)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to confirm receive")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Done, check you notification section", transaction)
}

func (h *TransactionHandler) RejectReceive(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	transactionID := chi.URLParam(r, http2.TransactionIDParam)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.RejectReceive(ctx, user, transactionID); err != nil {
		h.logger.Error().Err(err).Msg("failed to reject receive")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "done", nil)
}

func (h *TransactionHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	user, ok := http2.CurrentUser(r.Context())
	if !ok {
		errors.HandleHTTPError(w, errors.NewForbiddenError("Not authenticated"))
		return
	}

	var dto dtos.RequestRefundDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.RequestRefund(ctx, user, &dto); err != nil {
		h.logger.Error().Err(err).Msg("failed to request refund")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Waiting for admin to aprove", nil)
}
