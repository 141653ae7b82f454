package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppuranik79/Meeting-Room-Booking/pkg/kafka"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func testEvent() BookingCreated {
	return BookingCreated{
		BookingID: "507f1f77bcf86cd799439022",
		RoomID:    "507f1f77bcf86cd799439011",
		RoomName:  "12-seater Conference",
		Date:      "2024-06-10",
		StartTime: "14:00",
		EndTime:   "15:00",
		Email:     "alice@example.com",
	}
}

type mockPublisher struct {
	published  []kafka.Message
	publishErr error
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, msg)
	return nil
}

type mockMailer struct {
	sent    []EmailMessage
	sendErr error
}

func (m *mockMailer) Send(ctx context.Context, email EmailMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, email)
	return nil
}

func TestOperatorAlert(t *testing.T) {
	email := testEvent().OperatorAlert("operator@example.com")

	assert.Equal(t, "operator@example.com", email.To)
	assert.Equal(t, "New Booking: 12-seater Conference on 2024-06-10", email.Subject)
	for _, line := range []string{
		"Room: 12-seater Conference",
		"Date: 2024-06-10",
		"Time: 14:00-15:00",
		"Booked by: alice@example.com",
	} {
		assert.Contains(t, email.Body, line)
	}
}

func TestBookerConfirmation(t *testing.T) {
	email := testEvent().BookerConfirmation()

	assert.Equal(t, "alice@example.com", email.To)
	assert.Equal(t, "Booking Confirmed: 12-seater Conference on 2024-06-10", email.Subject)
	assert.Contains(t, email.Body, "Booking ID: 507f1f77bcf86cd799439022")
}

func TestKafkaDispatcher_Publish(t *testing.T) {
	publisher := &mockPublisher{}
	dispatcher := NewKafkaDispatcher(publisher, "reservations", testLogger())

	err := dispatcher.DispatchBookingCreated(context.Background(), testEvent())
	require.NoError(t, err)
	require.Len(t, publisher.published, 1)

	msg := publisher.published[0]
	assert.Equal(t, "507f1f77bcf86cd799439022", msg.Key)
	assert.Equal(t, EventBookingCreated, msg.GetEventType())
	assert.NotEmpty(t, msg.GetEventID())

	var decoded BookingCreated
	require.NoError(t, msg.DecodeValue(&decoded))
	assert.Equal(t, testEvent(), decoded)
}

func TestKafkaDispatcher_PublishFailure(t *testing.T) {
	publisher := &mockPublisher{publishErr: errors.New("broker down")}
	dispatcher := NewKafkaDispatcher(publisher, "reservations", testLogger())

	err := dispatcher.DispatchBookingCreated(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestEmailHandler_SendsBothEmails(t *testing.T) {
	mailer := &mockMailer{}
	handler := NewEmailHandler(mailer, "operator@example.com", testLogger())

	msg := kafka.NewMessage().
		WithKey("507f1f77bcf86cd799439022").
		WithValue(testEvent()).
		WithEventType(EventBookingCreated).
		Build()

	require.NoError(t, handler(context.Background(), msg))
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "operator@example.com", mailer.sent[0].To)
	assert.Equal(t, "alice@example.com", mailer.sent[1].To)
}

func TestEmailHandler_BadPayloadIsPermanent(t *testing.T) {
	mailer := &mockMailer{}
	handler := NewEmailHandler(mailer, "operator@example.com", testLogger())

	msg := kafka.Message{
		Key:     "k",
		Value:   []byte("{not json"),
		Headers: map[string]string{},
	}

	err := handler(context.Background(), msg)
	require.Error(t, err)
	assert.Equal(t, kafka.ErrorTypePermanent, kafka.ClassifyError(err))
	assert.Empty(t, mailer.sent)
}

func TestEmailHandler_SendFailureIsTransient(t *testing.T) {
	mailer := &mockMailer{sendErr: errors.New("smtp: connection refused")}
	handler := NewEmailHandler(mailer, "operator@example.com", testLogger())

	msg := kafka.NewMessage().
		WithKey("507f1f77bcf86cd799439022").
		WithValue(testEvent()).
		Build()

	err := handler(context.Background(), msg)
	require.Error(t, err)
	assert.Equal(t, kafka.ErrorTypeTransient, kafka.ClassifyError(err))
}
