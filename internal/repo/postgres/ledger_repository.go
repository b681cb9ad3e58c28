package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/metrics"
)

// Проверка, что LedgerRepository удовлетворяет интерфейсу LedgerStore.
var _ ports.LedgerStore = (*LedgerRepository)(nil)

// ledgerLockKey — ключ advisory-блокировки, сериализующей все записи в реестр.
const ledgerLockKey int64 = 20231218

// uniqueViolation — SQLSTATE нарушения уникальности.
const uniqueViolation = "23505"

// resetSQL — DELETE, не DROP/CREATE: снимок REPEATABLE READ видит пустые таблицы
// только вместе с поколением, в котором они опустели.
const resetSQL = `DELETE FROM orders; DELETE FROM regions;`

// duplicateIDRe — id из Detail нарушения PRIMARY KEY: "Key (id)=(5) already exists."
var duplicateIDRe = regexp.MustCompile(`\(id\)=\((-?\d+)\)`)

// LedgerRepository — реестр на Postgres (pgxpool).
// Каждая запись — одна транзакция под advisory-блокировкой; чтение — снимок REPEATABLE READ.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository — конструктор LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository { return &LedgerRepository{pool: pool} }

// Reset — удаляет все регионы и заказы и увеличивает поколение; эпоха базы сохраняется.
func (r *LedgerRepository) Reset(ctx context.Context) error {
	err := r.write(ctx, func(tx pgx.Tx) error {
		// Без аргументов pgx идёт через simple protocol — несколько выражений допустимы.
		if _, err := tx.Exec(ctx, resetSQL); err != nil {
			return fmt.Errorf("delete rows: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.LedgerWrites.WithLabelValues("reset", "error").Inc()
		return domain.NewStorageError("reset", err)
	}
	metrics.LedgerWrites.WithLabelValues("reset", "ok").Inc()
	return nil
}

// InsertRegions — вставка пакета регионов в одной транзакции (COPY).
func (r *LedgerRepository) InsertRegions(ctx context.Context, regions []domain.Region) error {
	if id, dup := domain.FirstDuplicateRegion(regions); dup {
		metrics.LedgerWrites.WithLabelValues("regions", "duplicate").Inc()
		return &domain.DuplicateKeyError{Entity: domain.EntityRegion, ID: id}
	}

	ids := make([]int64, len(regions))
	for i := range regions {
		ids[i] = regions[i].ID
	}

	err := r.write(ctx, func(tx pgx.Tx) error {
		if err := firstExisting(ctx, tx, "regions", domain.EntityRegion, ids); err != nil {
			return err
		}
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"regions"}, []string{"id", "name"},
			pgx.CopyFromSlice(len(regions), func(i int) ([]any, error) {
				return []any{regions[i].ID, regions[i].Name}, nil
			}),
		)
		if err != nil {
			return mapUniqueViolation(err, domain.EntityRegion)
		}
		return nil
	})
	return r.finishInsert("regions", err)
}

// InsertOrders — вставка пакета заказов; region_id не проверяется.
func (r *LedgerRepository) InsertOrders(ctx context.Context, orders []domain.Order) error {
	if id, dup := domain.FirstDuplicateOrder(orders); dup {
		metrics.LedgerWrites.WithLabelValues("orders", "duplicate").Inc()
		return &domain.DuplicateKeyError{Entity: domain.EntityOrder, ID: id}
	}

	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	err := r.write(ctx, func(tx pgx.Tx) error {
		if err := firstExisting(ctx, tx, "orders", domain.EntityOrder, ids); err != nil {
			return err
		}
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"orders"}, []string{"id", "region_id", "gift_name", "quantity"},
			pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
				o := &orders[i]
				return []any{o.ID, o.RegionID, o.GiftName, o.Quantity}, nil
			}),
		)
		if err != nil {
			return mapUniqueViolation(err, domain.EntityOrder)
		}
		return nil
	})
	return r.finishInsert("orders", err)
}

// Snapshot — читает версию, регионы и заказы из одного снимка БД.
func (r *LedgerRepository) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return snap, domain.NewStorageError("snapshot", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if snap.Version, err = selectVersion(ctx, tx); err != nil {
		return snap, domain.NewStorageError("snapshot", err)
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM regions`)
	if err != nil {
		return snap, domain.NewStorageError("snapshot", fmt.Errorf("select regions: %w", err))
	}
	snap.Regions, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Region, error) {
		var reg domain.Region
		scanErr := row.Scan(&reg.ID, &reg.Name)
		return reg, scanErr
	})
	if err != nil {
		return snap, domain.NewStorageError("snapshot", fmt.Errorf("scan regions: %w", err))
	}

	rows, err = tx.Query(ctx, `SELECT id, region_id, gift_name, quantity FROM orders`)
	if err != nil {
		return snap, domain.NewStorageError("snapshot", fmt.Errorf("select orders: %w", err))
	}
	snap.Orders, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var o domain.Order
		scanErr := row.Scan(&o.ID, &o.RegionID, &o.GiftName, &o.Quantity)
		return o, scanErr
	})
	if err != nil {
		return snap, domain.NewStorageError("snapshot", fmt.Errorf("scan orders: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return snap, domain.NewStorageError("snapshot", fmt.Errorf("commit: %w", err))
	}
	return snap, nil
}

// Version — эпоха базы и текущее поколение реестра.
func (r *LedgerRepository) Version(ctx context.Context) (domain.Version, error) {
	v, err := selectVersion(ctx, r.pool)
	if err != nil {
		return v, domain.NewStorageError("version", err)
	}
	return v, nil
}

// rowQuerier — общий QueryRow у пула и транзакции.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func selectVersion(ctx context.Context, q rowQuerier) (domain.Version, error) {
	var v domain.Version
	if err := q.QueryRow(ctx, `SELECT epoch, generation FROM ledger_meta WHERE id = 1`).Scan(&v.Epoch, &v.Generation); err != nil {
		return v, fmt.Errorf("select version: %w", err)
	}
	return v, nil
}

// write — выполняет fn в транзакции под advisory-блокировкой и увеличивает поколение.
func (r *LedgerRepository) write(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
		return fmt.Errorf("lock ledger: %w", err)
	}
	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE ledger_meta SET generation = generation + 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("bump generation: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// finishInsert — метрики и классификация ошибки вставки.
func (r *LedgerRepository) finishInsert(op string, err error) error {
	switch {
	case err == nil:
		metrics.LedgerWrites.WithLabelValues(op, "ok").Inc()
		return nil
	case errors.Is(err, domain.ErrDuplicateKey):
		metrics.LedgerWrites.WithLabelValues(op, "duplicate").Inc()
		return err
	default:
		metrics.LedgerWrites.WithLabelValues(op, "error").Inc()
		return domain.NewStorageError("insert "+op, err)
	}
}

// firstExisting — DuplicateKeyError для первого (в порядке пакета) id, уже лежащего в таблице.
func firstExisting(ctx context.Context, tx pgx.Tx, table, entity string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	rows, err := tx.Query(ctx, `SELECT id FROM `+pgx.Identifier{table}.Sanitize()+` WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("select existing %s: %w", table, err)
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("scan existing %s: %w", table, err)
	}
	if len(existing) == 0 {
		return nil
	}

	present := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; ok {
			return &domain.DuplicateKeyError{Entity: entity, ID: id}
		}
	}
	return nil
}

// mapUniqueViolation — нарушение PRIMARY KEY превращаем в DuplicateKeyError с id из Detail.
func mapUniqueViolation(err error, entity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		id, _ := duplicateID(pgErr.Detail)
		return &domain.DuplicateKeyError{Entity: entity, ID: id}
	}
	return fmt.Errorf("copy %s: %w", entity, err)
}

// duplicateID — id из Detail; false, если формат не распознан.
func duplicateID(detail string) (int64, bool) {
	m := duplicateIDRe.FindStringSubmatch(detail)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
