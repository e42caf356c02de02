package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"cinema/infras/kafka"
	"cinema/infras/otel"
	"cinema/shared/constant"
	"cinema/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	ScreeningScheduled   Type = "screening.scheduled"
	SeatReserved         Type = "seat.reserved"
	ReservationCancelled Type = "reservation.cancelled"
)

const headerType = "type"

// Event is published after the change it describes has been committed.
type Event struct {
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func New(eventType Type, key string, payload any) Event {
	return Event{
		Type:       eventType,
		Key:        key,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	otel   otel.Otel
}

// NewPublisher returns a Kafka backed publisher, or a publisher that only logs when client is nil.
func NewPublisher(client kafka.Client, otl otel.Otel) Publisher {
	if client == nil {
		return &logPublisher{}
	}

	return &kafkaPublisher{client: client, otel: otl}
}

func (p *kafkaPublisher) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		scope.AddEvent(string(evt.Type))

		messages = append(messages, kafka.Message{
			Key:     evt.Key,
			Value:   evt,
			Headers: map[string]string{headerType: string(evt.Type)},
		})
	}

	if err = p.client.SendMessages(ctx, messages...); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}

type logPublisher struct{}

func (p *logPublisher) Publish(_ context.Context, events ...Event) error {
	for _, evt := range events {
		log.Debug().Str("type", string(evt.Type)).Str("key", evt.Key).Msg("event not published, kafka disabled")
	}

	return nil
}
