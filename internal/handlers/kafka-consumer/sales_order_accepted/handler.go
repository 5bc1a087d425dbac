package sales_order_accepted

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/entities"
	shipmentservice "fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
	"github.com/IBM/sarama"
)

// acceptedEvent — событие модуля продаж о принятом заказе.
type acceptedEvent struct {
	SalesOrderID string              `json:"sales_order_id"`
	CustomerID   string              `json:"customer_id"`
	Priority     string              `json:"priority"`
	Items        []acceptedEventItem `json:"items"`
}

type acceptedEventItem struct {
	ItemCode    string `json:"item_code"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
	Warehouse   string `json:"warehouse"`
}

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("sales_order.accepted: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("sales_order.accepted: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если нужно прервать ConsumeClaim.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event acceptedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("sales_order.accepted handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("sales_order", event.SalesOrderID),
		logger.NewField("customer", event.CustomerID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("sales_order.accepted processing")

	items := make([]entities.ShipmentItem, len(event.Items))
	for i, item := range event.Items {
		items[i] = entities.ShipmentItem{
			ItemCode:    item.ItemCode,
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Warehouse:   item.Warehouse,
		}
	}

	shipmentModify := entities.ShipmentModify{
		SalesOrderRef: &event.SalesOrderID,
		CustomerRef:   &event.CustomerID,
		Items:         items,
	}
	if event.Priority != "" {
		priority := entities.PriorityType(event.Priority)
		shipmentModify.Priority = &priority
	}

	shipmentOrder, err := h.shipmentService.CreateShipment(ctx, shipmentModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("sales_order.accepted handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrShipmentExists):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("sales_order.accepted handler duplicate event for sales order")

		case errors.Is(err, shipmentservice.ErrMissingRequiredFields),
			errors.Is(err, shipmentservice.ErrInvalidItems),
			errors.Is(err, shipmentservice.ErrInvalidPriority):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("sales_order.accepted handler invalid event payload")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("sales_order.accepted handler failed to create shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("shipment", shipmentOrder.ID),
		logger.NewField("sales_order", shipmentOrder.SalesOrderRef),
		logger.NewField("status", shipmentOrder.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("sales_order.accepted: processed")

	sess.MarkMessage(message, "")
	return false
}
