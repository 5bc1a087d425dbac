package returns_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/dto"
	"fulfillment/internal/handlers/rest/httperr"
	"fulfillment/internal/service/returns"
	"fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
	"github.com/go-playground/validator/v10"
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
	var returnCreateDTO dto.ReturnCreate
	err := json.NewDecoder(r.Body).Decode(&returnCreateDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "malformed JSON body")
		return
	}
	if err := validate.Struct(returnCreateDTO); err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		return
	}

	items := make([]entities.ReturnItem, len(returnCreateDTO.Items))
	for i, item := range returnCreateDTO.Items {
		items[i] = entities.ReturnItem{
			ItemCode: item.ItemCode,
			Quantity: item.Quantity,
		}
	}

	returnEntity, err := h.service.Initiate(r.Context(), returnCreateDTO.OriginShipmentID, returnCreateDTO.Reason, items)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, "origin shipment not found")
		case errors.Is(err, returns.ErrMissingRequiredFields),
			errors.Is(err, returns.ErrInvalidItems):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, returns.ErrInvalidOrigin):
			httperr.Write(w, http.StatusConflict, httperr.KindInvalidOrigin, err.Error())
		case errors.Is(err, returns.ErrQuantityExceeded):
			httperr.Write(w, http.StatusConflict, httperr.KindQuantityExceeded, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	returnDTO := toReturnDTO(returnEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
