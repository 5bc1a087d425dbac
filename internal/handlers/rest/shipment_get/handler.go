package shipment_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/planning"
	"fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log         handlerLogger
	service     Service
	planService PlanService
}

func New(log handlerLogger, service Service, planService PlanService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		service:     service,
		planService: planService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	shipmentEntity, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "shipment not found")
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	shipmentDTO := dto.Shipment{
		ID:            shipmentEntity.ID,
		SalesOrderRef: shipmentEntity.SalesOrderRef,
		CustomerRef:   shipmentEntity.CustomerRef,
		Status:        shipmentEntity.Status.String(),
		Priority:      shipmentEntity.Priority.String(),
		Items:         make([]dto.ShipmentItem, len(shipmentEntity.Items)),
		CreatedAt:     shipmentEntity.CreatedAt,
		UpdatedAt:     shipmentEntity.UpdatedAt,
	}
	for i, item := range shipmentEntity.Items {
		shipmentDTO.Items[i] = dto.ShipmentItem{
			ItemCode:    item.ItemCode,
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Warehouse:   item.Warehouse,
		}
	}

	// План и слепок адресов присутствуют не на каждой стадии
	planEntity, err := h.planService.GetPlan(r.Context(), id)
	switch {
	case err == nil:
		shipmentDTO.Plan = &dto.Plan{
			ShipmentID:            planEntity.ShipmentID,
			PlannedDispatchDate:   planEntity.PlannedDispatchDate,
			EstimatedDeliveryDate: planEntity.EstimatedDeliveryDate,
			Transporter:           planEntity.Transporter,
			VehicleNumber:         planEntity.VehicleNumber,
			DriverName:            planEntity.DriverName,
			DriverContact:         planEntity.DriverContact,
			PackingStatus:         planEntity.PackingStatus.String(),
			SpecialInstructions:   planEntity.SpecialInstructions,
			CreatedAt:             planEntity.CreatedAt,
			UpdatedAt:             planEntity.UpdatedAt,
		}
	case errors.Is(err, planning.ErrPlanNotFound):
	default:
		httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		return
	}

	snapshotEntity, err := h.planService.GetSnapshot(r.Context(), id)
	switch {
	case err == nil:
		shipmentDTO.Snapshot = &dto.AddressSnapshot{
			ShipmentID:      snapshotEntity.ShipmentID,
			CustomerName:    snapshotEntity.CustomerName,
			CustomerPhone:   snapshotEntity.CustomerPhone,
			CustomerEmail:   snapshotEntity.CustomerEmail,
			ShippingAddress: snapshotEntity.ShippingAddress,
			BillingAddress:  snapshotEntity.BillingAddress,
			CapturedAt:      snapshotEntity.CapturedAt,
		}
	case errors.Is(err, planning.ErrSnapshotNotFound):
	default:
		httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		return
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
