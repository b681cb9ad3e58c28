package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/pkg/validate"
)

func TestBatchValidator_Regions(t *testing.T) {
	v := validate.NewBatchValidator()
	ctx := context.Background()

	if err := v.ValidateRegions(ctx, []domain.Region{{ID: 1, Name: "Europe"}}); err != nil {
		t.Fatalf("expected valid regions, got: %v", err)
	}
	if err := v.ValidateRegions(ctx, nil); err != nil {
		t.Fatalf("empty batch must be valid, got: %v", err)
	}

	err := v.ValidateRegions(ctx, []domain.Region{{ID: 1, Name: "Asia"}, {ID: 2, Name: "  "}})
	if !errors.Is(err, validate.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "regions[1].name") {
		t.Fatalf("error must point at regions[1], got %q", err.Error())
	}
}

func TestBatchValidator_Orders(t *testing.T) {
	v := validate.NewBatchValidator()
	ctx := context.Background()

	type testCase struct {
		name    string
		orders  []domain.Order
		wantErr bool
	}

	cases := []testCase{
		{name: "valid", orders: []domain.Order{{ID: 1, RegionID: 1, GiftName: "Doll", Quantity: 2}}},
		{name: "negative quantity is accepted", orders: []domain.Order{{ID: 1, RegionID: 1, GiftName: "Doll", Quantity: -3}}},
		{name: "dangling region is accepted", orders: []domain.Order{{ID: 1, RegionID: 999, GiftName: "Doll", Quantity: 1}}},
		{name: "empty gift name", orders: []domain.Order{{ID: 1, RegionID: 1, GiftName: "", Quantity: 1}}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateOrders(ctx, tc.orders)
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
			if tc.wantErr && !errors.Is(err, validate.ErrInvalidBatch) {
				t.Fatalf("expected ErrInvalidBatch, got %v", err)
			}
		})
	}
}

func TestValidateBatch_UnknownKind(t *testing.T) {
	err := validate.ValidateBatch(context.Background(), validate.NewBatchValidator(), &domain.Batch{Kind: "drop"})
	if !errors.Is(err, validate.ErrInvalidBatch) {
		t.Fatalf("expected ErrInvalidBatch, got %v", err)
	}
}
