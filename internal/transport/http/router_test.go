package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports/mocks"
	rest "github.com/Gunvolt24/gift_ledger/internal/transport/http"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockLedgerService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLedgerService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "", "test")
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReset_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Reset(gomock.Any()).Return(nil)

	w := serve(r, http.MethodPost, "/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReset_StorageFault_500(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Reset(gomock.Any()).Return(domain.NewStorageError("reset", errors.New("disk full")))

	w := serve(r, http.MethodPost, "/reset", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestInsertRegions_OK(t *testing.T) {
	svc, r := newRouter(t)
	want := []domain.Region{{ID: 1, Name: "North Pole"}, {ID: 2, Name: "South Pole"}}
	svc.EXPECT().InsertRegions(gomock.Any(), want).Return(nil)

	w := serve(r, http.MethodPost, "/regions", `[{"id":1,"name":"North Pole"},{"id":2,"name":"South Pole"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestInsertRegions_MalformedBody_400(t *testing.T) {
	_, r := newRouter(t)
	// сервис не должен вызываться

	for _, body := range []string{`{`, `[{"id":1}]`, `[{"id":1,"name":"A","extra":true}]`, `[]x`} {
		w := serve(r, http.MethodPost, "/regions", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, w.Code)
		}
	}
}

func TestInsertBatch_BodyTooLarge_413(t *testing.T) {
	_, r := newRouter(t)
	// пробелы — валидный JSON-префикс: ошибка именно из-за размера, а не синтаксиса
	huge := strings.Repeat(" ", 32<<20+1)

	for _, path := range []string{"/regions", "/orders"} {
		w := serve(r, http.MethodPost, path, huge)
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("%s: want 413, got %d", path, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != `{"error":"request body too large"}` {
			t.Fatalf("%s: unexpected body: %s", path, got)
		}
	}
}

func TestInsertRegions_ValidationError_400(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().InsertRegions(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("validation failed: %w", validate.ErrInvalidBatch))

	w := serve(r, http.MethodPost, "/regions", `[{"id":1,"name":""}]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestInsertOrders_Duplicate_409(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().InsertOrders(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("insert orders: %w", &domain.DuplicateKeyError{Entity: domain.EntityOrder, ID: 3}))

	w := serve(r, http.MethodPost, "/orders", `[{"id":3,"region_id":1,"gift_name":"Doll","quantity":1}]`)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Error string `json:"error"`
		ID    int64  `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 3 || got.Error == "" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestRegionTotals_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().RegionTotals(gomock.Any()).Return([]domain.RegionTotal{{Region: "Asia", Total: 9}}, nil)

	w := serve(r, http.MethodGet, "/regions/total", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `[{"region":"Asia","total":9}]` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestRegionTotals_EmptyIsArray(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().RegionTotals(gomock.Any()).Return(nil, nil)

	w := serve(r, http.MethodGet, "/regions/total", "")
	if got := strings.TrimSpace(w.Body.String()); got != `[]` {
		t.Fatalf("want [], got %s", got)
	}
}

func TestTopList_PassesK(t *testing.T) {
	tests := []struct {
		path string
		k    int
	}{
		{"/regions/top_list/2", 2},
		{"/regions/top_list/0", 0},
		// отрицательные k сводятся к 0, огромные — к верхней границе
		{"/regions/top_list/-5", 0},
		{"/regions/top_list/10000", 10000},
		{"/regions/top_list/2147483647", 10000},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().TopGifts(gomock.Any(), tt.k).
				Return([]domain.RegionTopGifts{{Region: "Asia", TopGifts: []string{}}}, nil)

			w := serve(r, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("want 200, got %d", w.Code)
			}
			if got := strings.TrimSpace(w.Body.String()); got != `[{"region":"Asia","top_gifts":[]}]` {
				t.Fatalf("unexpected body: %s", got)
			}
		})
	}
}

func TestTopList_NonInteger_400(t *testing.T) {
	_, r := newRouter(t)

	for _, path := range []string{"/regions/top_list/abc", "/regions/top_list/1.5", "/regions/top_list/99999999999"} {
		w := serve(r, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", path, w.Code)
		}
	}
}

func TestOrdersTotal_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().OrdersTotal(gomock.Any()).Return(int64(58), nil)

	w := serve(r, http.MethodGet, "/orders/total", "")
	if got := strings.TrimSpace(w.Body.String()); got != `{"total":58}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestPopularGift(t *testing.T) {
	svc, r := newRouter(t)
	gomock.InOrder(
		svc.EXPECT().PopularGift(gomock.Any()).Return("Toy Train", true, nil),
		svc.EXPECT().PopularGift(gomock.Any()).Return("", false, nil),
	)

	if got := strings.TrimSpace(serve(r, http.MethodGet, "/orders/popular", "").Body.String()); got != `{"popular":"Toy Train"}` {
		t.Fatalf("unexpected body: %s", got)
	}
	if got := strings.TrimSpace(serve(r, http.MethodGet, "/orders/popular", "").Body.String()); got != `{"popular":null}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/no-such-route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodPost, "/regions/total", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
