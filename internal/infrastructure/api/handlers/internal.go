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

// InternalHandler serves routes reachable only inside the service
// network. The account service calls CheckNoOfTries on its PIN-check
// path.
type InternalHandler struct {
	interactor *interactor.TransactionInteractor
	logger     *zerolog.Logger
}

func NewInternalHandler(interactor *interactor.TransactionInteractor) *InternalHandler {
	logger := log.GetLogger()
	return &InternalHandler{interactor: interactor, logger: &logger}
}

func (h *InternalHandler) CheckNoOfTries(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CheckNoOfTriesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewValidationError(errors.ErrInvalidRequestBody))
		return
	}
	if dto.Account == nil || dto.User == nil {
		errors.HandleHTTPError(w, errors.NewValidationError("account and user are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.interactor.CheckNoOfTries(ctx, dto.Account, dto.User); err != nil {
		errors.HandleHTTPError(w, err)
		return
	}

	respond(w, "done", nil)
}
