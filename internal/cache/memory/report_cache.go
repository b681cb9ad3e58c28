package memory

import (
	"container/list"
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ports.ReportCache.
var _ ports.ReportCache = (*LRUCacheTTL)(nil)

type entry struct {
	key       string
	value     any // []domain.RegionTotal | []domain.RegionTopGifts
	expiresAt time.Time
}

// LRUCacheTTL — LRU-кэш отчётов с TTL. Ключ включает версию реестра (эпоха + поколение),
// поэтому после любой записи старые отчёты просто перестают запрашиваться
// и вытесняются по LRU/TTL.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	cache map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — capacity <= 0 превращается в 1; ttl <= 0 — без истечения.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) GetTotals(_ context.Context, version domain.Version) ([]domain.RegionTotal, bool) {
	v, ok := c.get(totalsKey(version))
	if !ok {
		return nil, false
	}
	totals, ok := v.([]domain.RegionTotal)
	if !ok {
		return nil, false
	}
	return cloneTotals(totals), true
}

func (c *LRUCacheTTL) SetTotals(_ context.Context, version domain.Version, totals []domain.RegionTotal) error {
	c.set(totalsKey(version), cloneTotals(totals))
	return nil
}

func (c *LRUCacheTTL) GetTopGifts(_ context.Context, version domain.Version, k int) ([]domain.RegionTopGifts, bool) {
	v, ok := c.get(topGiftsKey(version, k))
	if !ok {
		return nil, false
	}
	rows, ok := v.([]domain.RegionTopGifts)
	if !ok {
		return nil, false
	}
	return cloneTopGifts(rows), true
}

func (c *LRUCacheTTL) SetTopGifts(_ context.Context, version domain.Version, k int, rows []domain.RegionTopGifts) error {
	c.set(topGiftsKey(version, k), cloneTopGifts(rows))
	return nil
}

// get — значение по ключу с продлением TTL и переносом в голову списка.
func (c *LRUCacheTTL) get(key string) (any, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.value, true
}

func (c *LRUCacheTTL) set(key string, value any) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		value:     value,
		expiresAt: c.expiryFrom(now),
	})
	c.cache[key] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

func totalsKey(version domain.Version) string {
	return version.Key() + ":totals"
}

// topGiftsKey — все k < 1 дают одинаковый отчёт и делят один ключ.
func topGiftsKey(version domain.Version, k int) string {
	if k < 1 {
		k = 0
	}
	return version.Key() + ":top:" + strconv.Itoa(k)
}
