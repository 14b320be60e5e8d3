// README: Kafka publisher for negotiation lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"fareline/internal/modules/negotiation"
)

// KafkaPublisher emits one message per negotiation transition, keyed by
// negotiation id so a partition sees its transitions in order. A nil
// *KafkaPublisher satisfies the service's Publisher wiring when brokers are
// not configured; callers construct it only when they are.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: topic, Balancer: &kafka.LeastBytes{}})
	return &KafkaPublisher{writer: w}
}

type transitionMessage struct {
	NegotiationID string    `json:"negotiation_id"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	ActorType     string    `json:"actor_type"`
	ActorID       string    `json:"actor_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (p *KafkaPublisher) PublishTransition(ctx context.Context, e negotiation.Event) error {
	msg := transitionMessage{
		NegotiationID: string(e.NegotiationID),
		FromStatus:    string(e.FromStatus),
		ToStatus:      string(e.ToStatus),
		ActorType:     e.ActorType,
		OccurredAt:    e.CreatedAt,
	}
	if e.ActorID != nil {
		msg.ActorID = string(*e.ActorID)
	}
	b, _ := json.Marshal(msg)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.NegotiationID), Value: b})
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
