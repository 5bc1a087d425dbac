package return_next_action_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/pkg/factory/next_action"
	"fulfillment/internal/service/returns"
	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
	actions *next_action.ActionFactory
}

func New(log handlerLogger, service Service, actions *next_action.ActionFactory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		actions: actions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	returnCase, err := h.service.GetReturn(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, returns.ErrReturnNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "return case not found")
		case errors.Is(err, returns.ErrInvalidReturnID):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	action, err := h.actions.ReturnAction(returnCase.Status)
	if err != nil {
		switch {
		case errors.Is(err, next_action.ErrNoNextAction):
			httperr.Write(w, http.StatusConflict, httperr.KindInvalidState, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	actionDTO := dto.NextAction{
		Action:            action.Name,
		Target:            action.ReturnTarget.String(),
		RequiresCondition: action.RequiresCondition,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(actionDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
