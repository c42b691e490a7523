// Package notifier publica eventos do ciclo de vida das reservas num
// exchange AMQP, para o pipeline de notificações da plataforma (emails,
// push e dashboard do dono). A publicação é best-effort: falhas são
// registadas e devolvidas, mas nunca interrompem o pedido principal.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kumbila/reservation-service/internal/domain"
)

// Routing keys dos eventos publicados
const (
	KeyReservationConfirmed = "reservation.confirmed"
	KeyReservationCancelled = "reservation.cancelled"
	KeyCheckinPerformed     = "reservation.checkin"
	KeyCheckoutPerformed    = "reservation.checkout"
)

// Event payload JSON publicado no exchange
type Event struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	SpaceID       uuid.UUID `json:"space_id"`
	RenterID      uuid.UUID `json:"renter_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Logger interface mínima de logging usada pelo publisher
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher publica eventos num exchange topic durável
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      Logger
}

// NewPublisher liga ao broker e declara o exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notifier: dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("notifier: channel open failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("notifier: exchange declare failed: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

// Close fecha o canal e a ligação ao broker
func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// PublishReservationEvent publica um evento de ciclo de vida da reserva.
// Mensagens persistentes; o erro é devolvido para logging mas o chamador
// não deve falhar o pedido por causa dele.
func (p *Publisher) PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error {
	event := Event{
		Type:          key,
		ReservationID: res.ID,
		SpaceID:       res.SpaceID,
		RenterID:      res.RenterID,
		OwnerID:       res.OwnerID,
		Status:        string(res.Status),
		OccurredAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notifier: marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("notifier: publish %s for reservation=%s failed: %v", key, res.ID, err)
		return fmt.Errorf("notifier: publish failed: %w", err)
	}

	p.log.Info("notifier: published %s for reservation=%s", key, res.ID)
	return nil
}

// NopPublisher publisher nulo usado quando as notificações estão desligadas
type NopPublisher struct{}

func (NopPublisher) PublishReservationEvent(ctx context.Context, key string, res *domain.Reservation) error {
	return nil
}
