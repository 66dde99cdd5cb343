// README: Kafka writer for the booking journal topic.
package infra

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter hashes on the message key so one session's events stay ordered.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
