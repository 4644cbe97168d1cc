package config

import (
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/events"
)

// EventConfig holds configuration for exam event publishing
type EventConfig struct {
	Enabled      bool   `env:"EVENTS_ENABLED"`
	Publisher    string `env:"EVENTS_PUBLISHER"` // kafka or mock
	KafkaBrokers string `env:"KAFKA_BROKERS" validate:"required_if=Enabled true Publisher kafka,omitempty,broker_list"`
	ExamTopic    string `env:"EXAM_EVENTS_TOPIC" validate:"required_if=Enabled true Publisher kafka"`
}

// GetKafkaBrokers returns Kafka brokers as a slice
func (c *EventConfig) GetKafkaBrokers() []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, using mock publisher")
		return events.NewMockEventPublisher(logger), nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.ExamTopic)

		return events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.ExamTopic,
			Logger:       logger,
		})
	case "mock":
		logger.Info("Using mock event publisher")
		return events.NewMockEventPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to mock", "publisher", c.Publisher)
		return events.NewMockEventPublisher(logger), nil
	}
}
