package ports

import (
	"context"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// LedgerService — операции реестра, доступные транспортному слою.
type LedgerService interface {
	Reset(ctx context.Context) error
	InsertRegions(ctx context.Context, regions []domain.Region) error
	InsertOrders(ctx context.Context, orders []domain.Order) error

	RegionTotals(ctx context.Context) ([]domain.RegionTotal, error)
	TopGifts(ctx context.Context, k int) ([]domain.RegionTopGifts, error)

	OrdersTotal(ctx context.Context) (int64, error)
	// PopularGift — (name, true) или ("", false), если заказов нет.
	PopularGift(ctx context.Context) (string, bool, error)
}
