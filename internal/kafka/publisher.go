package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// batchKey — общий ключ всех пакетов: одна партиция сохраняет порядок reset/regions/orders.
var batchKey = []byte("ledger")

// writer — минимальный контракт над kafka.Writer (для подмены в тестах).
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — параметры записи в топик пакетов реестра.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher — запись канонических пакетов реестра в Kafka.
type Publisher struct {
	writer writer
	topic  string
	log    ports.Logger
}

// NewPublisher — синхронный writer с подтверждением от всех реплик.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
		WriteTimeout: wt,
	}
	return &Publisher{writer: w, topic: cfg.Topic, log: log}
}

// Publish — кодирует пакеты в канонический JSON и пишет их одним вызовом.
func (p *Publisher) Publish(ctx context.Context, batches ...*domain.Batch) error {
	payloads := make([][]byte, 0, len(batches))
	for _, b := range batches {
		raw, err := validate.EncodeBatch(b)
		if err != nil {
			return fmt.Errorf("encode batch kind=%s: %w", b.Kind, err)
		}
		payloads = append(payloads, raw)
	}
	return p.PublishRaw(ctx, payloads...)
}

// PublishRaw — пишет уже закодированные пакеты в исходном порядке.
func (p *Publisher) PublishRaw(ctx context.Context, payloads ...[]byte) error {
	if len(payloads) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(payloads))
	for _, raw := range payloads {
		msgs = append(msgs, kafka.Message{Key: batchKey, Value: raw})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.log.Errorf(ctx, "publish failed topic=%s count=%d: %v", p.topic, len(msgs), err)
		return fmt.Errorf("publish batches: %w", err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic).Add(float64(len(msgs)))
	p.log.Infof(ctx, "published batches topic=%s count=%d", p.topic, len(msgs))
	return nil
}

// Close — сбрасывает буферы и закрывает writer.
func (p *Publisher) Close() error { return p.writer.Close() }
