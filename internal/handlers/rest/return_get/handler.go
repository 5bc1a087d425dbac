package return_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/returns"
	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	returnEntity, err := h.service.GetReturn(r.Context(), id)
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

	returnDTO := toReturnDTO(returnEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(returnDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toReturnDTO(returnEntity *entities.ReturnCase) dto.ReturnCase {
	returnDTO := dto.ReturnCase{
		ID:               returnEntity.ID,
		OriginShipmentID: returnEntity.OriginShipmentRef,
		Status:           returnEntity.Status.String(),
		Reason:           returnEntity.Reason,
		Items:            make([]dto.ReturnItem, len(returnEntity.Items)),
		ReceivedDate:     returnEntity.ReceivedDate,
		RefundAmount:     returnEntity.RefundAmount,
		CreatedAt:        returnEntity.CreatedAt,
		UpdatedAt:        returnEntity.UpdatedAt,
	}
	if returnEntity.ConditionStatus != nil {
		condition := returnEntity.ConditionStatus.String()
		returnDTO.ConditionStatus = &condition
	}
	for i, item := range returnEntity.Items {
		returnDTO.Items[i] = dto.ReturnItem{
			ItemCode: item.ItemCode,
			Quantity: item.Quantity,
		}
	}
	return returnDTO
}
