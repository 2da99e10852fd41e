package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"techblog/internal/ports/models"

	"github.com/segmentio/kafka-go"
)

// VotePublisher writes vote transitions to the reputation topic, keyed by
// target id so transitions for one target stay ordered.
type VotePublisher struct {
	writer *kafka.Writer
}

func NewVotePublisher(brokers []string, topic string) *VotePublisher {
	return &VotePublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *VotePublisher) Publish(ctx context.Context, msg models.VoteTransitionMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal vote transition: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.TargetID),
		Value: value,
	})
}

func (p *VotePublisher) Close() error {
	return p.writer.Close()
}

// NewTransitionReader builds the consumer used by the reputation worker.
func NewTransitionReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}
