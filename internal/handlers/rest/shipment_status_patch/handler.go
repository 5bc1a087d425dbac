package shipment_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

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

	var statusUpdateDTO dto.ShipmentStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "malformed JSON body")
		return
	}
	if err := validate.Struct(statusUpdateDTO); err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		return
	}

	shipmentEntity, err := h.service.Transition(r.Context(), id, entities.ShipmentStatusType(statusUpdateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "shipment not found")
		case errors.Is(err, shipment.ErrInvalidShipmentID),
			errors.Is(err, shipment.ErrInvalidStatus):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, shipment.ErrIllegalTransition):
			httperr.Write(w, http.StatusConflict, httperr.KindIllegalTransition, err.Error())
		case errors.Is(err, shipment.ErrPlanIncomplete):
			httperr.Write(w, http.StatusConflict, httperr.KindInvalidState, err.Error())
		case errors.Is(err, shipment.ErrConcurrentModification):
			httperr.Write(w, http.StatusConflict, httperr.KindConcurrentModification, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	shipmentDTO := dto.ShipmentSummary{
		ID:            shipmentEntity.ID,
		SalesOrderRef: shipmentEntity.SalesOrderRef,
		CustomerRef:   shipmentEntity.CustomerRef,
		Status:        shipmentEntity.Status.String(),
		Priority:      shipmentEntity.Priority.String(),
		CreatedAt:     shipmentEntity.CreatedAt,
		UpdatedAt:     shipmentEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
