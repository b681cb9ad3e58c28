package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/pkg/ctxmeta"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// applyUntilSettled — применяет пакет, повторяя временные ошибки.
// true — оффсет можно коммитить; false — контекст отменён.
func (c *Consumer) applyUntilSettled(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctx = ctxmeta.WithSource(ctx, ctxmeta.SourceKafka)
	ctx = ctxmeta.WithRequestID(ctx, fmt.Sprintf("%s/%d/%d", topic, msg.Partition, msg.Offset))

	retry := newBackoff(c.retryInitial, c.retryMax, c.rnd)
	for attempt := 1; ; attempt++ {
		err := c.applyOnce(ctx, msg.Value)
		switch {
		case err == nil:
			metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
			if attempt > 1 {
				c.log.Infof(ctx, "batch offset=%d applied after %d attempts", msg.Offset, attempt)
			}
			return true
		case isPermanent(err):
			metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
			c.log.Warnf(ctx, "rejected batch partition=%d offset=%d: %v (skipped)", msg.Partition, msg.Offset, err)
			return true
		}

		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		if ctx.Err() != nil {
			return false
		}
		wait := retry.Next()
		c.log.Warnf(ctx, "apply failed offset=%d attempt=%d: %v (retry in %s)", msg.Offset, attempt, err, wait)
		if !sleepCtx(ctx, wait) {
			return false
		}
	}
}

func (c *Consumer) applyOnce(ctx context.Context, raw []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()
	return c.service.ApplyFromMessage(ctx, raw)
}

// isPermanent — невалидный пакет или повтор id: реестр не изменился и не изменится.
func isPermanent(err error) bool {
	return errors.Is(err, validate.ErrInvalidBatch) || errors.Is(err, domain.ErrDuplicateKey)
}

// commit — ошибка коммита только логируется.
func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}
