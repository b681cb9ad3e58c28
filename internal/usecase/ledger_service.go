package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/internal/report"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

// Проверка, что LedgerService удовлетворяет интерфейсу ports.LedgerService.
var _ ports.LedgerService = (*LedgerService)(nil)

// LedgerService — прикладная логика реестра (без знаний о транспорте).
type LedgerService struct {
	store     ports.LedgerStore    // единственный владелец данных
	cache     ports.ReportCache    // кэш отчётов по поколению
	log       ports.Logger         // прямой доступ к логгеру
	validator ports.BatchValidator // проверка полей перед записью
}

// NewLedgerService — DI-конструктор.
func NewLedgerService(
	store ports.LedgerStore,
	cache ports.ReportCache,
	log ports.Logger,
	validator ports.BatchValidator,
) *LedgerService {
	return &LedgerService{
		store:     store,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// Reset — очистить реестр.
func (s *LedgerService) Reset(ctx context.Context) (err error) {
	ctx, span := startSpan(ctx, "ledger.reset")
	defer func() { endSpan(span, err) }()

	if err := s.store.Reset(ctx); err != nil {
		s.log.Errorf(ctx, "store.Reset failed err=%v", err)
		return fmt.Errorf("reset ledger: %w", err)
	}
	s.log.Infof(ctx, "ledger reset")
	return nil
}

// InsertRegions — проверить и вставить пакет регионов целиком.
func (s *LedgerService) InsertRegions(ctx context.Context, regions []domain.Region) (err error) {
	ctx, span := startSpan(ctx, "ledger.insert_regions", attribute.Int("ledger.batch_size", len(regions)))
	defer func() { endSpan(span, err) }()

	if err := s.validator.ValidateRegions(ctx, regions); err != nil {
		s.log.Warnf(ctx, "regions batch rejected err=%v", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.store.InsertRegions(ctx, regions); err != nil {
		s.logWriteError(ctx, "InsertRegions", err)
		return fmt.Errorf("insert regions: %w", err)
	}
	s.log.Infof(ctx, "regions inserted count=%d", len(regions))
	return nil
}

// InsertOrders — проверить и вставить пакет заказов целиком.
func (s *LedgerService) InsertOrders(ctx context.Context, orders []domain.Order) (err error) {
	ctx, span := startSpan(ctx, "ledger.insert_orders", attribute.Int("ledger.batch_size", len(orders)))
	defer func() { endSpan(span, err) }()

	if err := s.validator.ValidateOrders(ctx, orders); err != nil {
		s.log.Warnf(ctx, "orders batch rejected err=%v", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.store.InsertOrders(ctx, orders); err != nil {
		s.logWriteError(ctx, "InsertOrders", err)
		return fmt.Errorf("insert orders: %w", err)
	}
	s.log.Infof(ctx, "orders inserted count=%d", len(orders))
	return nil
}

// RegionTotals — суммы заказов по регионам: из кэша текущей версии
// или пересчёт по снимку с записью в кэш.
func (s *LedgerService) RegionTotals(ctx context.Context) (_ []domain.RegionTotal, err error) {
	ctx, span := startSpan(ctx, "ledger.region_totals")
	defer func() { endSpan(span, err) }()

	ver, err := s.store.Version(ctx)
	if err != nil {
		s.log.Errorf(ctx, "store.Version failed err=%v", err)
		return nil, fmt.Errorf("region totals: %w", err)
	}
	span.SetAttributes(
		attribute.String("ledger.epoch", ver.Epoch),
		attribute.Int64("ledger.generation", int64(ver.Generation)),
	)
	if totals, found := s.cache.GetTotals(ctx, ver); found {
		span.SetAttributes(attribute.Bool("ledger.cache_hit", true))
		s.log.Debugf(ctx, "report cache hit totals version=%s", ver.Key())
		return totals, nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("region totals: %w", err)
	}

	start := time.Now()
	totals := report.RegionTotals(snap)
	metrics.ReportDuration.WithLabelValues("totals").Observe(time.Since(start).Seconds())

	if setErr := s.cache.SetTotals(ctx, snap.Version, totals); setErr != nil {
		s.log.Warnf(ctx, "cache.SetTotals failed version=%s err=%v", snap.Version.Key(), setErr)
	}
	return totals, nil
}

// TopGifts — топ-k подарков каждого региона (k < 1 — пустые списки).
func (s *LedgerService) TopGifts(ctx context.Context, k int) (_ []domain.RegionTopGifts, err error) {
	ctx, span := startSpan(ctx, "ledger.top_gifts", attribute.Int("ledger.k", k))
	defer func() { endSpan(span, err) }()

	ver, err := s.store.Version(ctx)
	if err != nil {
		s.log.Errorf(ctx, "store.Version failed err=%v", err)
		return nil, fmt.Errorf("top gifts: %w", err)
	}
	span.SetAttributes(
		attribute.String("ledger.epoch", ver.Epoch),
		attribute.Int64("ledger.generation", int64(ver.Generation)),
	)
	if rows, found := s.cache.GetTopGifts(ctx, ver, k); found {
		span.SetAttributes(attribute.Bool("ledger.cache_hit", true))
		s.log.Debugf(ctx, "report cache hit top k=%d version=%s", k, ver.Key())
		return rows, nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("top gifts: %w", err)
	}

	start := time.Now()
	rows := report.TopGifts(snap, k)
	metrics.ReportDuration.WithLabelValues("top_gifts").Observe(time.Since(start).Seconds())

	if setErr := s.cache.SetTopGifts(ctx, snap.Version, k, rows); setErr != nil {
		s.log.Warnf(ctx, "cache.SetTopGifts failed version=%s k=%d err=%v", snap.Version.Key(), k, setErr)
	}
	return rows, nil
}

// OrdersTotal — сумма количеств всех заказов.
func (s *LedgerService) OrdersTotal(ctx context.Context) (int64, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("orders total: %w", err)
	}
	return report.OrdersTotal(snap), nil
}

// PopularGift — самый заказываемый подарок; ("", false), если заказов нет.
func (s *LedgerService) PopularGift(ctx context.Context) (string, bool, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", false, fmt.Errorf("popular gift: %w", err)
	}
	name, ok := report.PopularGift(snap)
	return name, ok, nil
}

// ApplyFromMessage — применить пакет, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий разбор конверта (неизвестные и отсутствующие поля -> validate.ErrInvalidBatch);
//  2. проверка полей и запись целиком через соответствующую операцию.
func (s *LedgerService) ApplyFromMessage(ctx context.Context, raw []byte) error {
	batch, err := validate.DecodeBatch(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid batch message err=%v", err)
		return err
	}

	switch batch.Kind {
	case domain.BatchReset:
		return s.Reset(ctx)
	case domain.BatchRegions:
		return s.InsertRegions(ctx, batch.Regions)
	case domain.BatchOrders:
		return s.InsertOrders(ctx, batch.Orders)
	default:
		// DecodeBatch уже отсеял неизвестные виды
		return fmt.Errorf("%w: unknown kind %q", validate.ErrInvalidBatch, batch.Kind)
	}
}

func (s *LedgerService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.log.Errorf(ctx, "store.Snapshot failed err=%v", err)
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func (s *LedgerService) logWriteError(ctx context.Context, op string, err error) {
	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		s.log.Warnf(ctx, "store.%s rejected: duplicate %s id=%d", op, dup.Entity, dup.ID)
		return
	}
	s.log.Errorf(ctx, "store.%s failed err=%v", op, err)
}

var tracer = otel.Tracer("github.com/Gunvolt24/gift_ledger/internal/usecase")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan — дубликат и невалидный пакет не считаются сбоем спана.
func endSpan(span trace.Span, err error) {
	switch {
	case err == nil:
	case errors.Is(err, validate.ErrInvalidBatch), errors.Is(err, domain.ErrDuplicateKey):
		span.SetAttributes(attribute.String("ledger.rejected", err.Error()))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
