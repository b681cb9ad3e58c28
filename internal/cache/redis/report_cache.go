package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

// Проверка, что ReportCache удовлетворяет интерфейсу ports.ReportCache.
var _ ports.ReportCache = (*ReportCache)(nil)

const keyPrefix = "ledger:report:"

// client — подмножество *redis.Client, нужное кэшу (для подмены в тестах).
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// ReportCache — кэш отчётов в Redis, общий для нескольких реплик сервиса.
// Значения — JSON; ключ содержит поколение реестра.
type ReportCache struct {
	client client
	ttl    time.Duration
}

// NewReportCache — ttl <= 0 означает хранение без истечения.
func NewReportCache(c client, ttl time.Duration) *ReportCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ReportCache{client: c, ttl: ttl}
}

// NewClient — клиент Redis с проверкой соединения (fail-fast).
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *ReportCache) GetTotals(ctx context.Context, version domain.Version) ([]domain.RegionTotal, bool) {
	var totals []domain.RegionTotal
	if !c.load(ctx, totalsKey(version), &totals) {
		return nil, false
	}
	return totals, true
}

func (c *ReportCache) SetTotals(ctx context.Context, version domain.Version, totals []domain.RegionTotal) error {
	return c.store(ctx, totalsKey(version), totals)
}

func (c *ReportCache) GetTopGifts(ctx context.Context, version domain.Version, k int) ([]domain.RegionTopGifts, bool) {
	var rows []domain.RegionTopGifts
	if !c.load(ctx, topGiftsKey(version, k), &rows) {
		return nil, false
	}
	return rows, true
}

func (c *ReportCache) SetTopGifts(ctx context.Context, version domain.Version, k int, rows []domain.RegionTopGifts) error {
	return c.store(ctx, topGiftsKey(version, k), rows)
}

// load — true только при успешном чтении и декодировании.
// Ошибки Redis считаются промахом: кэш не должен ломать чтение отчётов.
func (c *ReportCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return false
	case err != nil:
		metrics.CacheOps.WithLabelValues("error").Inc()
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return true
}

func (c *ReportCache) store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return err
	}
	return nil
}

func totalsKey(version domain.Version) string {
	return keyPrefix + version.Key() + ":totals"
}

func topGiftsKey(version domain.Version, k int) string {
	if k < 1 {
		k = 0
	}
	return keyPrefix + version.Key() + ":top:" + strconv.Itoa(k)
}
