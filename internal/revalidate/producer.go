package revalidate

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, key []byte, value []byte) error
	Close() error
}

// KafkaProducer publishes revalidation events to a Kafka topic. The
// rendering frontend consumes them to mark cached pages stale.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer stands in when no brokers are configured, e.g. in
// local development.
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	log.Println("No Kafka brokers configured, revalidation events go to the console")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, key []byte, value []byte) error {
	log.Printf("REVALIDATE %s: %s", string(key), string(value))
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
