package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

// Проверка, что LedgerStore удовлетворяет интерфейсу ports.LedgerStore.
var _ ports.LedgerStore = (*LedgerStore)(nil)

// LedgerStore — реестр регионов и заказов в памяти процесса.
// Одна RWMutex на экземпляр: записи эксклюзивны, чтения видят только завершённые пакеты.
// epoch различает экземпляры: поколение каждого начинается с нуля.
type LedgerStore struct {
	mu sync.RWMutex

	epoch      string
	generation uint64
	regions    map[int64]domain.Region
	orders     map[int64]domain.Order
}

// NewLedgerStore — конструктор пустого реестра.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		epoch:   uuid.NewString(),
		regions: make(map[int64]domain.Region),
		orders:  make(map[int64]domain.Order),
	}
}

// Reset — отбрасывает все записи и начинает новое поколение.
func (s *LedgerStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regions = make(map[int64]domain.Region)
	s.orders = make(map[int64]domain.Order)
	s.generation++

	metrics.LedgerWrites.WithLabelValues("reset", "ok").Inc()
	s.reportRows()
	return nil
}

// InsertRegions — вставка пакета «всё или ничего».
// Сначала проверяются все id (в пакете и в реестре), потом применяется запись.
func (s *LedgerStore) InsertRegions(_ context.Context, regions []domain.Region) error {
	if id, dup := domain.FirstDuplicateRegion(regions); dup {
		metrics.LedgerWrites.WithLabelValues("regions", "duplicate").Inc()
		return &domain.DuplicateKeyError{Entity: domain.EntityRegion, ID: id}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range regions {
		if _, exists := s.regions[regions[i].ID]; exists {
			metrics.LedgerWrites.WithLabelValues("regions", "duplicate").Inc()
			return &domain.DuplicateKeyError{Entity: domain.EntityRegion, ID: regions[i].ID}
		}
	}
	for i := range regions {
		s.regions[regions[i].ID] = regions[i]
	}
	s.generation++

	metrics.LedgerWrites.WithLabelValues("regions", "ok").Inc()
	s.reportRows()
	return nil
}

// InsertOrders — то же для заказов; существование региона не проверяется.
func (s *LedgerStore) InsertOrders(_ context.Context, orders []domain.Order) error {
	if id, dup := domain.FirstDuplicateOrder(orders); dup {
		metrics.LedgerWrites.WithLabelValues("orders", "duplicate").Inc()
		return &domain.DuplicateKeyError{Entity: domain.EntityOrder, ID: id}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range orders {
		if _, exists := s.orders[orders[i].ID]; exists {
			metrics.LedgerWrites.WithLabelValues("orders", "duplicate").Inc()
			return &domain.DuplicateKeyError{Entity: domain.EntityOrder, ID: orders[i].ID}
		}
	}
	for i := range orders {
		s.orders[orders[i].ID] = orders[i]
	}
	s.generation++

	metrics.LedgerWrites.WithLabelValues("orders", "ok").Inc()
	s.reportRows()
	return nil
}

// Snapshot — копия текущего состояния; вызывающий может свободно её менять.
func (s *LedgerStore) Snapshot(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Snapshot{
		Version: s.version(),
		Regions: make([]domain.Region, 0, len(s.regions)),
		Orders:  make([]domain.Order, 0, len(s.orders)),
	}
	for _, r := range s.regions {
		snap.Regions = append(snap.Regions, r)
	}
	for _, o := range s.orders {
		snap.Orders = append(snap.Orders, o)
	}
	return snap, nil
}

// Version — эпоха экземпляра и текущее поколение.
func (s *LedgerStore) Version(_ context.Context) (domain.Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version(), nil
}

func (s *LedgerStore) version() domain.Version {
	return domain.Version{Epoch: s.epoch, Generation: s.generation}
}

// reportRows — обновить gauge размеров (вызывается под write-lock).
func (s *LedgerStore) reportRows() {
	metrics.LedgerRows.WithLabelValues(domain.EntityRegion).Set(float64(len(s.regions)))
	metrics.LedgerRows.WithLabelValues(domain.EntityOrder).Set(float64(len(s.orders)))
}
