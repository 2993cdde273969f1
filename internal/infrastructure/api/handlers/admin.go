package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/instapay/transaction-service/internal/errors"
	"github.com/instapay/transaction-service/internal/usecases/dtos"
	"github.com/instapay/transaction-service/internal/usecases/interactor"
	"github.com/instapay/transaction-service/pkg/log"
	"github.com/rs/zerolog"
)

// AdminHandler covers the administrator surface: unscoped listing,
// suspicious flagging and refund resolution.
type AdminHandler struct {
	interactor *interactor.TransactionInteractor
	logger     *zerolog.Logger
}

func NewAdminHandler(interactor *interactor.TransactionInteractor) *AdminHandler {
	logger := log.GetLogger()
	return &AdminHandler{interactor: interactor, logger: &logger}
}

func (h *AdminHandler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	transactions, err := h.interactor.GetAllTransactions(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list transactions")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "done", transactions)
}

func (h *AdminHandler) SuspiciousTransaction(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeTransactionID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.SuspiciousTransaction(ctx, dto.TransactionID); err != nil {
		h.logger.Error().Err(err).Msg("failed to report suspicious transaction")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Reported", nil)
}

func (h *AdminHandler) ApproveRefund(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeTransactionID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.ApproveRefund(ctx, dto.TransactionID); err != nil {
		h.logger.Error().Err(err).Msg("failed to approve refund")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Refunded", nil)
}

func (h *AdminHandler) RejectRefund(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeTransactionID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.RejectRefund(ctx, dto.TransactionID); err != nil {
		h.logger.Error().Err(err).Msg("failed to reject refund")
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "Rejected", nil)
}

func (h *AdminHandler) decodeTransactionID(w http.ResponseWriter, r *http.Request) (*dtos.TransactionIDDTO, bool) {
	var dto dtos.TransactionIDDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return nil, false
	}
	if dto.TransactionID == "" {
		errors.HandleHTTPError(w, errors.NewValidationError("transactionId is required"))
		return nil, false
	}
	return &dto, true
}
