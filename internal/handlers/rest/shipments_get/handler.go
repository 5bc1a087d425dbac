package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
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
	filter := entities.ShipmentFilter{}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		statusType := entities.ShipmentStatusType(statusStr)
		if !statusType.IsValid() {
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "unknown status filter")
			return
		}
		filter.Status = &statusType
	}
	if customerRef := r.URL.Query().Get("customer"); customerRef != "" {
		filter.CustomerRef = &customerRef
	}

	shipmentEntities, err := h.service.GetShipments(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatus):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	shipmentDTOs := make([]dto.ShipmentSummary, len(shipmentEntities))
	for i, shipmentEntity := range shipmentEntities {
		shipmentDTOs[i].ID = shipmentEntity.ID
		shipmentDTOs[i].SalesOrderRef = shipmentEntity.SalesOrderRef
		shipmentDTOs[i].CustomerRef = shipmentEntity.CustomerRef
		shipmentDTOs[i].Status = shipmentEntity.Status.String()
		shipmentDTOs[i].Priority = shipmentEntity.Priority.String()
		shipmentDTOs[i].CreatedAt = shipmentEntity.CreatedAt
		shipmentDTOs[i].UpdatedAt = shipmentEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
