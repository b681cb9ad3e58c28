package ports

import (
	"context"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// ReportCache — кэш результатов отчётов, ключ — версия реестра (эпоха + поколение).
// Требования к реализации: потокобезопасность; возврат копий.
type ReportCache interface {
	GetTotals(ctx context.Context, version domain.Version) ([]domain.RegionTotal, bool)
	SetTotals(ctx context.Context, version domain.Version, totals []domain.RegionTotal) error

	GetTopGifts(ctx context.Context, version domain.Version, k int) ([]domain.RegionTopGifts, bool)
	SetTopGifts(ctx context.Context, version domain.Version, k int, rows []domain.RegionTopGifts) error
}
