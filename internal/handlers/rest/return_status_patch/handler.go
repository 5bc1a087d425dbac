package return_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/returns"
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

	var statusUpdateDTO dto.ReturnStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "malformed JSON body")
		return
	}
	if err := validate.Struct(statusUpdateDTO); err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		return
	}

	target := entities.ReturnStatusType(statusUpdateDTO.Status)

	// приемка — отдельная ветка с атомарной фиксацией условий
	var returnEntity *entities.ReturnCase
	if target == entities.ReturnReceived {
		returnEntity, err = h.receive(r, id, statusUpdateDTO)
	} else {
		returnEntity, err = h.service.Transition(r.Context(), id, target)
	}
	if err != nil {
		switch {
		case errors.Is(err, returns.ErrReturnNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "return case not found")
		case errors.Is(err, returns.ErrInvalidReturnID),
			errors.Is(err, returns.ErrInvalidStatus),
			errors.Is(err, returns.ErrInvalidCondition),
			errors.Is(err, returns.ErrConditionRequired),
			errors.Is(err, returns.ErrMissingRequiredFields):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, returns.ErrIllegalTransition):
			httperr.Write(w, http.StatusConflict, httperr.KindIllegalTransition, err.Error())
		case errors.Is(err, returns.ErrConcurrentModification):
			httperr.Write(w, http.StatusConflict, httperr.KindConcurrentModification, err.Error())
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

func (h *Handler) receive(r *http.Request, id string, statusUpdateDTO dto.ReturnStatusUpdate) (*entities.ReturnCase, error) {
	if statusUpdateDTO.ConditionStatus == nil || statusUpdateDTO.ReceivedDate == nil {
		return nil, returns.ErrConditionRequired
	}

	condition := entities.ConditionStatusType(*statusUpdateDTO.ConditionStatus)
	return h.service.Receive(r.Context(), id, condition, *statusUpdateDTO.ReceivedDate, statusUpdateDTO.RefundAmount)
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
