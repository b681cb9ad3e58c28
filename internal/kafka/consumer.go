package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// batchApplier — разбор конверта пакета и применение к реестру.
type batchApplier interface {
	ApplyFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — последовательно применяет пакеты из топика.
// Следующее сообщение не читается, пока текущее не применено или не отброшено:
// порядок пакетов в партиции равен порядку изменений реестра.
type Consumer struct {
	reader         reader
	service        batchApplier
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	rnd            *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор; оффсеты коммитятся вручную.
func NewConsumer(cfg *ConsumerConfig, service batchApplier, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return &Consumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: c.ProcessTimeout,
		retryInitial:   c.RetryInitial,
		retryMax:       c.RetryMax,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл чтения до отмены контекста. Возвращает ctx.Err().
//
// Исход применения пакета:
//   - успех: коммит;
//   - невалидный пакет или повтор id: предупреждение и коммит;
//   - прочая ошибка: повтор того же сообщения с backoff, без коммита.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "ledger consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	fetchBackoff := newBackoff(c.retryInitial, c.retryMax, c.rnd)
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := fetchBackoff.Next()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		fetchBackoff.Reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.applyUntilSettled(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
		c.commit(ctx, &msg)
	}
}

// Close — закрывает reader; повторные вызовы безопасны.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
