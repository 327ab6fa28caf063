package worker

import (
	"context"
	"tripdesk/config"
	"tripdesk/infras/kafka"
	dto "tripdesk/internal/domains/inventory/model/dto"
	bookingService "tripdesk/internal/domains/booking/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes inventory reprice events and propagates the new prices
// into the booking files that consume the repriced item.
type Worker struct {
	cfg      *config.Config
	broker   kafka.Client
	bookings bookingService.Booking
}

func New(cfg *config.Config, broker kafka.Client, bookings bookingService.Booking) *Worker {
	return &Worker{
		cfg:      cfg,
		broker:   broker,
		bookings: bookings,
	}
}

func (w *Worker) Run(ctx context.Context) {
	topic := w.cfg.Kafka.Topic.InventoryRepriced

	log.Info().Str("topic", topic).Msg("Starting reprice worker.")

	w.broker.Consume(ctx, w.cfg.Kafka.ConsumerGroup, topic, w.handleRepriced)
}

func (w *Worker) handleRepriced(msg kafkaGo.Message) {
	ctx := context.Background()

	decoded, err := kafka.DecodeKafkaMessage[dto.RepricedEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode reprice event")

		return
	}

	event, ok := decoded.Value.(dto.RepricedEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected reprice event payload")

		return
	}

	result, err := w.bookings.RepriceForInventory(ctx, event.ItemID, event.CostPrice, event.SellingPrice)
	if err != nil {
		log.Error().Err(err).Str("item_id", event.ItemID).Msg("failed to reprice bookings")

		return
	}

	log.Info().
		Str("item_id", event.ItemID).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("Repriced bookings for inventory item.")
}
