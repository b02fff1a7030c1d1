package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentCompletedEvent struct {
	PaymentID   string    `json:"paymentId"`
	TrainerID   string    `json:"trainerId"`
	UserID      string    `json:"userId"`
	PtTimes     string    `json:"ptTimes"`
	PaymentType string    `json:"paymentType"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

type PaymentEventPublisher interface {
	PublishPaymentCompleted(ctx context.Context, event PaymentCompletedEvent) error
}

type kafkaPaymentEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPaymentEventPublisher(writer *kafka.Writer) PaymentEventPublisher {
	return &kafkaPaymentEventPublisher{writer: writer}
}

// PublishPaymentCompleted keys messages by user so one user's events stay ordered.
func (p *kafkaPaymentEventPublisher) PublishPaymentCompleted(ctx context.Context, event PaymentCompletedEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment completed event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("pt.payment.completed")},
		},
	})
}

type noopPaymentEventPublisher struct{}

func NewNoopPaymentEventPublisher() PaymentEventPublisher {
	return noopPaymentEventPublisher{}
}

func (noopPaymentEventPublisher) PublishPaymentCompleted(context.Context, PaymentCompletedEvent) error {
	return nil
}
