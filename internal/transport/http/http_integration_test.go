//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/gift_ledger/internal/cache/memory"
	"github.com/Gunvolt24/gift_ledger/internal/domain"
	pgrepo "github.com/Gunvolt24/gift_ledger/internal/repo/postgres"
	"github.com/Gunvolt24/gift_ledger/internal/testutil"
	rest "github.com/Gunvolt24/gift_ledger/internal/transport/http"
	"github.com/Gunvolt24/gift_ledger/internal/usecase"
	"github.com/Gunvolt24/gift_ledger/pkg/logger"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

const (
	worldRegionsJSON = `[{"id":1,"name":"North Pole"},{"id":2,"name":"Europe"},{"id":3,"name":"North America"},` +
		`{"id":4,"name":"South America"},{"id":5,"name":"Africa"},{"id":6,"name":"Asia"},{"id":7,"name":"Oceania"}]`
	worldOrdersJSON = `[{"id":1,"region_id":2,"gift_name":"Board Game","quantity":5},` +
		`{"id":2,"region_id":2,"gift_name":"Origami Set","quantity":8},` +
		`{"id":3,"region_id":3,"gift_name":"Action Figure","quantity":12},` +
		`{"id":4,"region_id":4,"gift_name":"Teddy Bear","quantity":10},` +
		`{"id":5,"region_id":2,"gift_name":"Yarn Ball","quantity":6},` +
		`{"id":6,"region_id":3,"gift_name":"Art Set","quantity":3},` +
		`{"id":7,"region_id":5,"gift_name":"Robot Lego Kit","quantity":5},` +
		`{"id":8,"region_id":6,"gift_name":"Drone","quantity":9}]`
)

// 1) Полный сценарий поверх Postgres: reset -> regions -> orders -> отчёты
func TestHTTP_WorldScenario_Postgres_TC(t *testing.T) {
	ts := newPostgresServer(t)

	mustPost(t, ts, "/reset", "", http.StatusOK)
	mustPost(t, ts, "/regions", worldRegionsJSON, http.StatusOK)
	mustPost(t, ts, "/orders", worldOrdersJSON, http.StatusOK)

	var totals []domain.RegionTotal
	mustGetJSON(t, ts, "/regions/total", &totals)
	require.Equal(t, []domain.RegionTotal{
		{Region: "Africa", Total: 5},
		{Region: "Asia", Total: 9},
		{Region: "Europe", Total: 19},
		{Region: "North America", Total: 15},
		{Region: "South America", Total: 10},
	}, totals)

	var top []domain.RegionTopGifts
	mustGetJSON(t, ts, "/regions/top_list/1", &top)
	require.Len(t, top, 7)
	require.Equal(t, domain.RegionTopGifts{Region: "Europe", TopGifts: []string{"Origami Set"}}, top[2])
	require.Equal(t, domain.RegionTopGifts{Region: "Oceania", TopGifts: []string{}}, top[5])
}

// 2) Повтор id -> 409, реестр неизменен; после reset id снова свободны
func TestHTTP_Duplicate_409_Postgres_TC(t *testing.T) {
	ts := newPostgresServer(t)

	mustPost(t, ts, "/regions", `[{"id":1,"name":"Asia"}]`, http.StatusOK)
	body := mustPost(t, ts, "/regions", `[{"id":2,"name":"Africa"},{"id":1,"name":"Asia"}]`, http.StatusConflict)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	require.EqualValues(t, 1, got["id"])

	var top []domain.RegionTopGifts
	mustGetJSON(t, ts, "/regions/top_list/3", &top)
	require.Len(t, top, 1)

	mustPost(t, ts, "/reset", "", http.StatusOK)
	mustPost(t, ts, "/regions", `[{"id":1,"name":"Asia"}]`, http.StatusOK)
}

// 3) /ping, /metrics и 404 с JSON-ошибкой
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	h := rest.NewHandler(noOpService{}, noopLogger{}, time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])
}

// 4) Таймаут запросов: Handler с коротким таймаутом должен вернуть 500
func TestHTTP_Totals_Timeout_500_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(slowService{}, logg, 10*time.Millisecond)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/regions/total")
	require.NoError(t, err)
	defer resp.Body.Close()

	// slowService вернёт ctx.Err() по таймауту
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "internal server error", got["error"])
}

// --- функции помощники ---

func newPostgresServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewLedgerRepository(pg.Pool)
	svc := usecase.NewLedgerService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg, validate.NewBatchValidator())

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, logg, 5*time.Second), "", ""))
	t.Cleanup(ts.Close)
	return ts
}

func mustPost(t *testing.T, ts *httptest.Server, path, body string, wantStatus int) []byte {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw := readAll(t, resp.Body)
	require.Equal(t, wantStatus, resp.StatusCode, "body=%s", raw)
	return raw
}

func mustGetJSON(t *testing.T, ts *httptest.Server, path string, dst any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// noOpService — простая заглушка для роутера, где неважно, что вернёт бизнес-логика.
type noOpService struct{}

func (noOpService) Reset(context.Context) error                          { return nil }
func (noOpService) InsertRegions(context.Context, []domain.Region) error { return nil }
func (noOpService) InsertOrders(context.Context, []domain.Order) error   { return nil }
func (noOpService) RegionTotals(context.Context) ([]domain.RegionTotal, error) {
	return nil, nil
}
func (noOpService) TopGifts(context.Context, int) ([]domain.RegionTopGifts, error) {
	return nil, nil
}
func (noOpService) OrdersTotal(context.Context) (int64, error)          { return 0, nil }
func (noOpService) PopularGift(context.Context) (string, bool, error) { return "", false, nil }

// slowService — чтение отчётов ждёт ctx.Done() и возвращает ошибку контекста.
type slowService struct{ noOpService }

func (slowService) RegionTotals(ctx context.Context) ([]domain.RegionTotal, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
