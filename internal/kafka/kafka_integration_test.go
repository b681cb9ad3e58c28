//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/gift_ledger/internal/cache/memory"
	"github.com/Gunvolt24/gift_ledger/internal/domain"
	ikafka "github.com/Gunvolt24/gift_ledger/internal/kafka"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
	pgrepo "github.com/Gunvolt24/gift_ledger/internal/repo/postgres"
	"github.com/Gunvolt24/gift_ledger/internal/testutil"
	"github.com/Gunvolt24/gift_ledger/internal/usecase"
	"github.com/Gunvolt24/gift_ledger/pkg/logger"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) Пакеты из Kafka применяются по порядку, отчёт совпадает с эталоном
func TestKafka_Batches_Applied_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))
	startConsumer(t, st, topic, group, st.svc)

	pub := newPublisher(t, st, topic)
	require.NoError(t, pub.Publish(st.ctx,
		&domain.Batch{Kind: domain.BatchReset},
		&domain.Batch{Kind: domain.BatchRegions, Regions: testutil.PoleRegions()},
		&domain.Batch{Kind: domain.BatchOrders, Orders: testutil.PoleOrders()},
	))

	waitOrders(t, st, len(testutil.PoleOrders()))

	rows, err := st.svc.TopGifts(st.ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, len(testutil.PoleRegions()))
}

// 2) Не-JSON и невалидный пакет пропускаются, следующий валидный — применяется
func TestKafka_Skip_Invalid_Then_ApplyValid_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-invalid-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))
	startConsumer(t, st, topic, group, st.svc)

	pub := newPublisher(t, st, topic)
	require.NoError(t, pub.PublishRaw(st.ctx,
		[]byte("not-a-json"),
		[]byte(`{"kind":"regions","regions":[{"id":1,"name":""}]}`),
		[]byte(`{"kind":"regions","regions":[{"id":1,"name":"Asia"}]}`),
	))

	waitRegions(t, st, 1)
	snap, err := st.repo.Snapshot(st.ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Region{{ID: 1, Name: "Asia"}}, snap.Regions)
}

// 3) Повтор пакета с теми же id отклоняется целиком и коммитится; реестр не меняется
func TestKafka_DuplicateBatch_Skipped_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-dup-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))
	startConsumer(t, st, topic, group, st.svc)

	regions := &domain.Batch{Kind: domain.BatchRegions, Regions: []domain.Region{{ID: 1, Name: "Asia"}}}
	orders := &domain.Batch{Kind: domain.BatchOrders, Orders: []domain.Order{{ID: 1, RegionID: 1, GiftName: "Doll", Quantity: 2}}}

	pub := newPublisher(t, st, topic)
	require.NoError(t, pub.Publish(st.ctx, regions, regions, orders))

	// заказ после дубликата применился => дубликат не застрял в ретраях
	waitOrders(t, st, 1)
	snap, err := st.repo.Snapshot(st.ctx)
	require.NoError(t, err)
	require.Len(t, snap.Regions, 1)
}

// 4) Временная ошибка => оффсет не коммитится, пакет перечитывается той же группой
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	st := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(st.kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(st.ctx, st.kf.Brokers[0], topic))

	pub := newPublisher(t, st, topic)
	require.NoError(t, pub.PublishRaw(st.ctx, []byte(`{"kind":"regions","regions":[{"id":7,"name":"Europe"}]}`)))

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	consumerFail := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        st.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 300 * time.Millisecond,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFailApplier{}, st.log)

	runCtx1, cancelRun1 := context.WithCancel(st.ctx)
	go func() { _ = consumerFail.Run(runCtx1) }()
	time.Sleep(2 * time.Second)
	cancelRun1()
	_ = consumerFail.Close()

	// Фаза 2: нормальный сервис в той же группе перехватывает некоммиченное
	startConsumer(t, st, topic, group, st.svc)
	waitRegions(t, st, 1)
}

// -----------------функции-помощники-----------------

type stack struct {
	ctx  context.Context
	repo *pgrepo.LedgerRepository
	svc  *usecase.LedgerService
	log  ports.Logger
	kf   *testutil.KafkaEnv
}

func newStack(t *testing.T) *stack {
	t.Helper()

	// Длинный контекст — на контейнеры
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "ledger-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// Короткий контекст — сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	repo := pgrepo.NewLedgerRepository(pool)
	svc := usecase.NewLedgerService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg, validate.NewBatchValidator())
	return &stack{ctx: ctx, repo: repo, svc: svc, log: logg, kf: kf}
}

type applier interface {
	ApplyFromMessage(ctx context.Context, raw []byte) error
}

func startConsumer(t *testing.T, st *stack, topic, group string, svc applier) {
	t.Helper()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        st.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, st.log)

	runCtx, cancelRun := context.WithCancel(st.ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)
}

func newPublisher(t *testing.T, st *stack, topic string) *ikafka.Publisher {
	t.Helper()
	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{Brokers: st.kf.Brokers, Topic: topic}, st.log)
	t.Cleanup(func() { _ = pub.Close() })
	return pub
}

func waitRegions(t *testing.T, st *stack, n int) {
	t.Helper()
	waitSnapshot(t, st, func(s domain.Snapshot) bool { return len(s.Regions) >= n })
}

func waitOrders(t *testing.T, st *stack, n int) {
	t.Helper()
	waitSnapshot(t, st, func(s domain.Snapshot) bool { return len(s.Orders) >= n })
}

func waitSnapshot(t *testing.T, st *stack, done func(domain.Snapshot) bool) {
	t.Helper()
	deadline := time.Now().Add(25 * time.Second)
	for {
		snap, err := st.repo.Snapshot(st.ctx)
		require.NoError(t, err)
		if done(snap) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("ledger not updated in time: regions=%d orders=%d", len(snap.Regions), len(snap.Orders))
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

type alwaysTempFailApplier struct{}

func (alwaysTempFailApplier) ApplyFromMessage(context.Context, []byte) error {
	return tempNetErr{}
}
