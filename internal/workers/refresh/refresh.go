package refresh

import (
	"context"
	"fmt"
	"roomcal/config"
	"roomcal/infras/kafka"
	"roomcal/infras/otel"
	bookingDto "roomcal/internal/domains/booking/model/dto"
	bookingService "roomcal/internal/domains/booking/service"
	"roomcal/shared/constant"
	"roomcal/shared/timezone"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker keeps the cached booking set fresh. A cron schedule reloads it periodically, and
// booking-submitted events from other instances drop and reload it right away.
type Worker struct {
	bookings bookingService.Booking
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel

	cron   *cron.Cron
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(bookings bookingService.Booking, kafka kafka.Client, cfg *config.Config, otel otel.Otel) *Worker {
	return &Worker{
		bookings: bookings,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
		cron:     cron.New(cron.WithLocation(timezone.GetLocation())),
	}
}

// Start schedules the refresh job and the event consumer. Both stop on Close.
func (w *Worker) Start(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)

	if w.cfg.Refresh.Enable {
		if _, err := w.cron.AddFunc(w.cfg.Refresh.Cron, func() { w.RunOnce(ctx) }); err != nil {
			w.cancel()

			return fmt.Errorf("invalid refresh schedule %q: %w", w.cfg.Refresh.Cron, err)
		}

		w.cron.Start()

		log.Info().Str("schedule", w.cfg.Refresh.Cron).Msg("Booking refresh scheduled.")
	}

	if w.kafka.Enabled() {
		w.wg.Add(1)

		go func() {
			defer w.wg.Done()

			w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topic, w.HandleMessage)
		}()

		log.Info().Str("topic", w.cfg.Kafka.Topic).Msg("Listening for submitted bookings.")
	}

	return nil
}

// RunOnce reloads the booking set into the cache. Failures are logged and retried on the next tick.
func (w *Worker) RunOnce(ctx context.Context) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".Refresh")
	defer scope.End()

	bookings, err := w.bookings.Refresh(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("scheduled booking refresh failed")

		return
	}

	log.Debug().Int("count", len(bookings)).Msg("booking set refreshed")
}

// HandleMessage reacts to a submitted booking by dropping the cached set and reloading it.
func (w *Worker) HandleMessage(ctx context.Context, msg kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingSubmitted")
	defer scope.End()

	event, err := kafka.DecodeKafkaMessage[bookingDto.SubmittedEvent](msg)
	if err != nil {
		scope.TraceError(err)

		return
	}

	scope.SetAttributes(map[string]any{
		"booking.room": event.Room,
		"booking.date": event.Date,
	})

	w.bookings.Invalidate(ctx)
	w.RunOnce(ctx)
}

// Close stops the schedule and the consumer, waiting for running jobs to finish.
func (w *Worker) Close() error {
	if w.cancel != nil {
		w.cancel()
	}

	<-w.cron.Stop().Done()
	w.wg.Wait()

	return nil
}
