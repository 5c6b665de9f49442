// Package notify publishes customer notifications to a message exchange.
// Delivery is best effort: callers log publish failures and move on, the
// surrounding business transaction never depends on them.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Notifier interface {
	PaymentConfirmation(ctx context.Context, email, name string, amount float64) error
	ConfirmationCode(ctx context.Context, email, name, code string) error
}

type paymentConfirmationMessage struct {
	Type     string    `json:"type"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Occurred time.Time `json:"occurred"`
}

type confirmationCodeMessage struct {
	Type     string    `json:"type"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Occurred time.Time `json:"occurred"`
}

type amqpNotifier struct {
	channel  *amqp.Channel
	exchange string
}

func NewAMQPNotifier(channel *amqp.Channel, exchange string) Notifier {
	return &amqpNotifier{
		channel:  channel,
		exchange: exchange,
	}
}

func (n *amqpNotifier) PaymentConfirmation(ctx context.Context, email, name string, amount float64) error {
	return n.publish(ctx, "payment.confirmation", paymentConfirmationMessage{
		Type:     "payment_confirmation",
		Email:    email,
		Name:     name,
		Amount:   amount,
		Occurred: time.Now(),
	})
}

func (n *amqpNotifier) ConfirmationCode(ctx context.Context, email, name, code string) error {
	return n.publish(ctx, "user.confirmation-code", confirmationCodeMessage{
		Type:     "confirmation_code",
		Email:    email,
		Name:     name,
		Code:     code,
		Occurred: time.Now(),
	})
}

func (n *amqpNotifier) publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return n.channel.PublishWithContext(ctx,
		n.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

// Nop drops every notification. Used when no broker is configured and in
// tests.
type Nop struct{}

func (Nop) PaymentConfirmation(context.Context, string, string, float64) error { return nil }
func (Nop) ConfirmationCode(context.Context, string, string, string) error    { return nil }
