package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of ledger batches fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of ledger batches applied successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of ledger batches failed to apply",
		},
		[]string{"topic"},
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of ledger batches published to Kafka",
		},
		[]string{"topic"},
	)
)

var (
	LedgerWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_writes_total",
			Help: "Ledger write operations by outcome",
		},
		[]string{"op", "result"}, // op: reset|regions|orders; result: ok|duplicate|error
	)
	LedgerRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_rows",
			Help: "Number of rows currently held by the ledger",
		},
		[]string{"entity"}, // region|order
	)
	ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_report_duration_seconds",
			Help:    "Time spent computing a report from a ledger snapshot",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"report"}, // totals|top_gifts|orders_total|popular
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Report cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|error
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of reports currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в глобальном реестре (один раз за процесс).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesPublished,
			LedgerWrites, LedgerRows, ReportDuration,
			CacheOps, CacheSize,
		)
	})
}
