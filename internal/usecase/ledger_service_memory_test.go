package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/gift_ledger/internal/cache/memory"
	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/repo/memory"
	"github.com/Gunvolt24/gift_ledger/internal/usecase"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// Сквозная проверка: кэш отчётов не отдаёт результат, устаревший после записи.
func TestLedgerService_CacheInvalidatedByWrite(t *testing.T) {
	ctx := context.Background()
	svc := usecase.NewLedgerService(
		memory.NewLedgerStore(),
		cachemem.NewLRUCacheTTL(16, time.Minute),
		noopLogger{},
		validate.NewBatchValidator(),
	)

	require.NoError(t, svc.InsertRegions(ctx, []domain.Region{{ID: 1, Name: "North Pole"}}))
	require.NoError(t, svc.InsertOrders(ctx, []domain.Order{{ID: 1, RegionID: 1, GiftName: "Doll", Quantity: 2}}))

	first, err := svc.RegionTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTotal{{Region: "North Pole", Total: 2}}, first)

	require.NoError(t, svc.InsertOrders(ctx, []domain.Order{{ID: 2, RegionID: 1, GiftName: "Doll", Quantity: 3}}))

	second, err := svc.RegionTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTotal{{Region: "North Pole", Total: 5}}, second)

	require.NoError(t, svc.Reset(ctx))
	top, err := svc.TopGifts(ctx, 3)
	require.NoError(t, err)
	require.Empty(t, top)
}

// Две реплики с собственными in-memory реестрами и общим кэшем: одинаковые поколения
// не приводят к чужим отчётам.
func TestLedgerService_SharedCacheSeparateStores(t *testing.T) {
	ctx := context.Background()
	shared := cachemem.NewLRUCacheTTL(16, time.Minute)
	a := usecase.NewLedgerService(memory.NewLedgerStore(), shared, noopLogger{}, validate.NewBatchValidator())
	b := usecase.NewLedgerService(memory.NewLedgerStore(), shared, noopLogger{}, validate.NewBatchValidator())

	require.NoError(t, a.InsertRegions(ctx, []domain.Region{{ID: 1, Name: "Europe"}}))
	require.NoError(t, a.InsertOrders(ctx, []domain.Order{{ID: 1, RegionID: 1, GiftName: "Doll", Quantity: 13}}))
	totalsA, err := a.RegionTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTotal{{Region: "Europe", Total: 13}}, totalsA)
	topA, err := a.TopGifts(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTopGifts{{Region: "Europe", TopGifts: []string{"Doll"}}}, topA)

	// у B столько же записей, то есть то же поколение
	require.NoError(t, b.InsertRegions(ctx, []domain.Region{{ID: 1, Name: "Asia"}}))
	require.NoError(t, b.InsertOrders(ctx, []domain.Order{{ID: 1, RegionID: 1, GiftName: "Drone", Quantity: 1}}))

	totalsB, err := b.RegionTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTotal{{Region: "Asia", Total: 1}}, totalsB)
	topB, err := b.TopGifts(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.RegionTopGifts{{Region: "Asia", TopGifts: []string{"Drone"}}}, topB)
}
