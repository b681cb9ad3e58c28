package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.cache, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok || now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(c.ll.Len()))
			continue
		}
		return
	}
}

// cloneTotals — копия отчёта, чтобы внешние изменения не отражались на кэше.
func cloneTotals(totals []domain.RegionTotal) []domain.RegionTotal {
	if totals == nil {
		return nil
	}
	return append(make([]domain.RegionTotal, 0, len(totals)), totals...)
}

// cloneTopGifts — глубокая копия: списки подарков тоже копируются.
func cloneTopGifts(rows []domain.RegionTopGifts) []domain.RegionTopGifts {
	if rows == nil {
		return nil
	}
	out := make([]domain.RegionTopGifts, len(rows))
	for i := range rows {
		out[i] = domain.RegionTopGifts{
			Region:   rows[i].Region,
			TopGifts: append(make([]string, 0, len(rows[i].TopGifts)), rows[i].TopGifts...),
		}
	}
	return out
}
