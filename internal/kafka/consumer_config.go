package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры чтения топика пакетов реестра.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (регистр и пробелы не важны)

	ProcessTimeout time.Duration // таймаут применения одного пакета
	RetryInitial   time.Duration // начальная пауза backoff
	RetryMax       time.Duration // верхняя граница backoff
}

// Значения по умолчанию для незаданных таймаутов.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// Validate — проверка обязательных полей до подключения к брокеру.
func (c *ConsumerConfig) Validate() error {
	var errs []error
	if len(nonEmpty(c.Brokers)) == 0 {
		errs = append(errs, errors.New("kafka: brokers are required"))
	}
	if strings.TrimSpace(c.Topic) == "" {
		errs = append(errs, errors.New("kafka: topic is required"))
	}
	if strings.TrimSpace(c.GroupID) == "" {
		errs = append(errs, errors.New("kafka: group id is required"))
	}
	return errors.Join(errs...)
}

// withDefaults — копия конфига с подставленными таймаутами.
func (c *ConsumerConfig) withDefaults() ConsumerConfig {
	out := *c
	if out.ProcessTimeout <= 0 {
		out.ProcessTimeout = defaultProcessTimeout
	}
	if out.RetryInitial <= 0 {
		out.RetryInitial = defaultRetryInitial
	}
	if out.RetryMax <= 0 {
		out.RetryMax = defaultRetryMax
	}
	return out
}

// ReaderConfig — конфигурация kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        nonEmpty(c.Brokers),
		GroupID:        strings.TrimSpace(c.GroupID),
		Topic:          strings.TrimSpace(c.Topic),
		CommitInterval: 0,
	}

	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	} else {
		rc.StartOffset = kafka.LastOffset
	}
	return rc
}

// nonEmpty — брокеры без пробелов и пустых элементов.
func nonEmpty(brokers []string) []string {
	out := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
