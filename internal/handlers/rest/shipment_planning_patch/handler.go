package shipment_planning_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/planning"
	"fulfillment/internal/service/shipment"
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

	var planUpdateDTO dto.PlanUpdate
	err := json.NewDecoder(r.Body).Decode(&planUpdateDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "malformed JSON body")
		return
	}

	planModify := entities.ShipmentPlanModify{
		PlannedDispatchDate:   planUpdateDTO.PlannedDispatchDate,
		EstimatedDeliveryDate: planUpdateDTO.EstimatedDeliveryDate,
		Transporter:           planUpdateDTO.Transporter,
		VehicleNumber:         planUpdateDTO.VehicleNumber,
		DriverName:            planUpdateDTO.DriverName,
		DriverContact:         planUpdateDTO.DriverContact,
		SpecialInstructions:   planUpdateDTO.SpecialInstructions,
	}
	if planUpdateDTO.PackingStatus != nil {
		packingStatus := entities.PackingStatusType(*planUpdateDTO.PackingStatus)
		planModify.PackingStatus = &packingStatus
	}

	planEntity, err := h.service.SavePlan(r.Context(), id, planModify)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "shipment not found")
		case errors.Is(err, planning.ErrInvalidShipmentID),
			errors.Is(err, planning.ErrMissingRequiredFields),
			errors.Is(err, planning.ErrInvalidPackingStatus):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, planning.ErrInvalidState):
			httperr.Write(w, http.StatusConflict, httperr.KindInvalidState, err.Error())
		case errors.Is(err, planning.ErrCustomerNotFound):
			httperr.Write(w, http.StatusConflict, httperr.KindInvalidState, err.Error())
		case errors.Is(err, shipment.ErrConcurrentModification):
			httperr.Write(w, http.StatusConflict, httperr.KindConcurrentModification, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	planDTO := dto.Plan{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(planDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
