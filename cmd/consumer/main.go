package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/swiftparcel/tracker/internal/config"
	"github.com/swiftparcel/tracker/internal/revalidate"
)

const groupID = "revalidation-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	brokers := cfg.KafkaBrokers
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	log.Println("Starting revalidation consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          cfg.RevalidationTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Println("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic '%s' on brokers %v", cfg.RevalidationTopic, brokers)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping consumer.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("Context cancelled, exiting message loop.")
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var event revalidate.Event
			if err := json.Unmarshal(m.Value, &event); err != nil {
				log.Printf("Skipping malformed event at offset %d: %v", m.Offset, err)
				continue
			}

			log.Printf("REVALIDATE path=%s event_id=%s occurred_at=%s partition=%d offset=%d",
				event.Path, event.ID, event.OccurredAt.Format(time.RFC3339), m.Partition, m.Offset)
		}
	}
}
