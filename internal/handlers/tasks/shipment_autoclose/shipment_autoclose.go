package shipment_autoclose

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Service interface {
	CloseDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ShipmentAutoclose закрывает отгрузки, доставленные дольше age назад.
type ShipmentAutoclose struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	age      time.Duration
}

func NewShipmentAutoclose(log logger.Logger, service Service, interval, age time.Duration) *ShipmentAutoclose {
	return &ShipmentAutoclose{
		log:      log,
		service:  service,
		interval: interval,
		age:      age,
	}
}

func (s *ShipmentAutoclose) TTL() time.Duration {
	return s.interval
}

func (s *ShipmentAutoclose) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.age)
	closed, err := s.service.CloseDeliveredBefore(ctxWithTimeout, cutoff)

	if closed > 0 {
		s.log.With(
			logger.NewField("closed_shipments", closed),
		).Info("shipment autoclose")
	}

	return err
}

func (s *ShipmentAutoclose) Info() string {
	return "shipment autoclose"
}
