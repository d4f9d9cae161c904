package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

const routingKeyPrefix = "reservation."

// Channel часть *amqp091.Channel, нужная издателю
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher публикует уведомления в topic exchange с ключом reservation.<event>
type Publisher struct {
	ch       Channel
	exchange string
	conn     *amqp091.Connection
	now      func() time.Time
}

// NewPublisher создает издателя поверх готового канала
func NewPublisher(ch Channel, exchange string) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Dial подключается к брокеру и объявляет durable topic exchange
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	p := NewPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// RoutingKey ключ маршрутизации для события
func RoutingKey(event domain.NotificationEvent) string {
	return routingKeyPrefix + string(event)
}

// Send публикует уведомление как persistent JSON сообщение
func (p *Publisher) Send(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = p.now()
	}

	body, err := json.Marshal(newMessage(n))
	if err != nil {
		return fmt.Errorf("%w: marshal message: %v", ErrPublish, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(n.Event), false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    n.ID,
		Timestamp:    n.CreatedAt,
		Type:         string(n.Event),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: reservation=%s event=%s: %v", ErrPublish, n.ReservationID, n.Event, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
