package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
)

// Проверка, что BatchValidator удовлетворяет интерфейсу ports.BatchValidator.
var _ ports.BatchValidator = (*BatchValidator)(nil)

// ErrInvalidBatch — базовая (sentinel error) ошибка формы входных данных.
var ErrInvalidBatch = errors.New("invalid batch")

// BatchValidator — проверка полей регионов и заказов перед записью.
// Отрицательные количества и ссылки на несуществующие регионы допустимы:
// их судьбу решают отчёты, а не граница приёма.
type BatchValidator struct{}

// NewBatchValidator — конструктор BatchValidator.
func NewBatchValidator() *BatchValidator { return &BatchValidator{} }

// ValidateRegions — у каждого региона должно быть непустое имя.
func (v *BatchValidator) ValidateRegions(_ context.Context, regions []domain.Region) error {
	for i := range regions {
		if strings.TrimSpace(regions[i].Name) == "" {
			return fmt.Errorf("%w: regions[%d].name обязателен", ErrInvalidBatch, i)
		}
	}
	return nil
}

// ValidateOrders — у каждого заказа должно быть непустое название подарка.
func (v *BatchValidator) ValidateOrders(_ context.Context, orders []domain.Order) error {
	for i := range orders {
		if strings.TrimSpace(orders[i].GiftName) == "" {
			return fmt.Errorf("%w: orders[%d].gift_name обязателен", ErrInvalidBatch, i)
		}
	}
	return nil
}

// ValidateBatch — проверка конверта по его виду.
func ValidateBatch(ctx context.Context, validator ports.BatchValidator, batch *domain.Batch) error {
	switch batch.Kind {
	case domain.BatchReset:
		return nil
	case domain.BatchRegions:
		return validator.ValidateRegions(ctx, batch.Regions)
	case domain.BatchOrders:
		return validator.ValidateOrders(ctx, batch.Orders)
	default:
		return fmt.Errorf("%w: неизвестный вид пакета %q", ErrInvalidBatch, batch.Kind)
	}
}
