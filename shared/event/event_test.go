package event_test

import (
	"cinema/infras/kafka"
	kafkaMocks "cinema/infras/kafka/mocks"
	otelMocks "cinema/infras/otel/mocks"
	"cinema/shared/event"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.NewPublisher(client, otelMocks.NewOtel())

	reserved := event.New(event.SeatReserved, "screening-1", map[string]string{"seat_id": "room:0:0"})

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "screening-1", messages[0].Key)
			assert.Equal(t, "seat.reserved", messages[0].Headers["type"])
			assert.Equal(t, reserved, messages[0].Value)

			return nil
		})

	require.NoError(t, publisher.Publish(context.Background(), reserved))
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.NewPublisher(client, otelMocks.NewOtel())

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	err := publisher.Publish(context.Background(), event.New(event.ScreeningScheduled, "s1", nil))
	assert.ErrorContains(t, err, "broker unreachable")
}

func TestNilClientPublisher(t *testing.T) {
	publisher := event.NewPublisher(nil, otelMocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), event.New(event.ReservationCancelled, "r1", nil)))
}
