package ports

import (
	"context"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// LedgerStore — единственный владелец регионов и заказов.
// Требования к реализации: записи сериализованы одной границей блокировки,
// чтение никогда не видит частично применённый пакет.
type LedgerStore interface {
	// Reset — удалить всё и создать пустые коллекции (идемпотентно).
	Reset(ctx context.Context) error

	// InsertRegions — вставить пакет регионов целиком или ничего (DuplicateKeyError).
	InsertRegions(ctx context.Context, regions []domain.Region) error

	// InsertOrders — то же для заказов; region_id не проверяется.
	InsertOrders(ctx context.Context, orders []domain.Order) error

	// Snapshot — согласованная копия реестра вместе с номером поколения.
	Snapshot(ctx context.Context) (domain.Snapshot, error)

	// Version — эпоха экземпляра и текущее поколение (растёт при каждой записи).
	Version(ctx context.Context) (domain.Version, error)
}
