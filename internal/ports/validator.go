package ports

import (
	"context"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

type BatchValidator interface {
	ValidateRegions(ctx context.Context, regions []domain.Region) error
	ValidateOrders(ctx context.Context, orders []domain.Order) error
}
