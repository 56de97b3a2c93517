package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/kritsada-dev/tickethub/internal/config"
	"github.com/kritsada-dev/tickethub/internal/logger"
)

// LowStockAlert is the record published when an event's remaining inventory
// drops to or below the low-stock threshold.
type LowStockAlert struct {
	EventID    string    `json:"event_id"`
	EventSlug  string    `json:"event_slug"`
	TotalStock int       `json:"total_stock"`
	Threshold  int       `json:"threshold"`
	ObservedAt time.Time `json:"observed_at"`
}

// Publisher publishes low-stock alerts to Kafka.
type Publisher interface {
	PublishLowStock(ctx context.Context, alert LowStockAlert) error
	Close()
}

// KafkaPublisher implements Publisher using franz-go.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	log    *logger.Logger
}

// NewKafkaPublisher creates a Kafka publisher for low-stock alerts
func NewKafkaPublisher(cfg config.KafkaConfig, log *logger.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{
		client: client,
		topic:  cfg.LowStockTopic,
		log:    log,
	}, nil
}

// PublishLowStock publishes an alert record keyed by event ID. Delivery is
// asynchronous; failures are logged, not returned to the request path.
func (p *KafkaPublisher) PublishLowStock(ctx context.Context, alert LowStockAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(alert.EventID),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.log.Error("failed to publish low-stock alert",
				zap.String("event_id", alert.EventID),
				zap.Error(err),
			)
		}
	})
	return nil
}

// Close flushes and closes the underlying client
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

// NopPublisher discards alerts; used when Kafka is disabled.
type NopPublisher struct{}

// PublishLowStock discards the alert
func (NopPublisher) PublishLowStock(context.Context, LowStockAlert) error { return nil }

// Close is a no-op
func (NopPublisher) Close() {}
