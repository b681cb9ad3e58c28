package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Gunvolt24/gift_ledger/internal/kafka"
	"github.com/Gunvolt24/gift_ledger/pkg/logger"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// CLI-приложение для валидации пакетов реестра и (опционально) публикации валидных в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	brokers := flag.String("brokers", "", "comma-separated Kafka brokers; if set, valid batches are published")
	topic := flag.String("topic", "ledger-batches", "Kafka topic for published batches")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format := validate.InputFormat(*formatStr)
	path := *inputPath
	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	var valid bytes.Buffer
	summary, err := validate.ValidateFile(ctx, validate.NewBatchValidator(), path, format, io.MultiWriter(os.Stdout, &valid))
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)

	if strings.TrimSpace(*brokers) == "" {
		return
	}
	n, err := publish(ctx, strings.Split(*brokers, ","), *topic, &valid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "publish: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "published %d batches to %s\n", n, *topic)
}

// publish — отправляет канонические строки пакетов в топик одним вызовом (порядок сохраняется).
func publish(ctx context.Context, brokers []string, topic string, lines io.Reader) (int, error) {
	logg, cleanup, err := logger.NewZapLogger(false)
	if err != nil {
		return 0, err
	}
	defer func() { _ = cleanup() }()

	var payloads [][]byte
	scanner := bufio.NewScanner(lines)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		if line := bytes.TrimSpace(scanner.Bytes()); len(line) > 0 {
			payloads = append(payloads, bytes.Clone(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	pub := kafka.NewPublisher(&kafka.PublisherConfig{
		Brokers:      brokers,
		Topic:        topic,
		WriteTimeout: 10 * time.Second,
	}, logg)
	defer func() { _ = pub.Close() }()

	if err := pub.PublishRaw(ctx, payloads...); err != nil {
		return 0, err
	}
	return len(payloads), nil
}
