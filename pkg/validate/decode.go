package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
)

// Проводные DTO: указатели отличают отсутствующее поле от нулевого значения.
type regionWire struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type orderWire struct {
	ID       *int64  `json:"id"`
	RegionID *int64  `json:"region_id"`
	GiftName *string `json:"gift_name"`
	Quantity *int64  `json:"quantity"`
}

type batchWire struct {
	Kind    *string         `json:"kind"`
	Regions json.RawMessage `json:"regions"`
	Orders  json.RawMessage `json:"orders"`
}

// batchOut — канонический вид конверта: только поля, относящиеся к виду пакета.
type batchOut struct {
	Kind    string           `json:"kind"`
	Regions *[]domain.Region `json:"regions,omitempty"`
	Orders  *[]domain.Order  `json:"orders,omitempty"`
}

// decodeStrict — один JSON-документ без неизвестных полей и без хвоста.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %v", ErrInvalidBatch, err)
	}
	// гарантируем отсутствие данных после документа
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: invalid json: trailing data", ErrInvalidBatch)
	}
	return nil
}

// DecodeRegions — строгий разбор массива регионов `[{id,name}]`.
func DecodeRegions(raw []byte) ([]domain.Region, error) {
	var wire *[]regionWire
	if err := decodeStrict(raw, &wire); err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, fmt.Errorf("%w: ожидается массив регионов", ErrInvalidBatch)
	}

	regions := make([]domain.Region, 0, len(*wire))
	for i, w := range *wire {
		if w.ID == nil {
			return nil, fmt.Errorf("%w: regions[%d].id обязателен", ErrInvalidBatch, i)
		}
		if w.Name == nil {
			return nil, fmt.Errorf("%w: regions[%d].name обязателен", ErrInvalidBatch, i)
		}
		regions = append(regions, domain.Region{ID: *w.ID, Name: *w.Name})
	}
	return regions, nil
}

// DecodeOrders — строгий разбор массива заказов `[{id,region_id,gift_name,quantity}]`.
func DecodeOrders(raw []byte) ([]domain.Order, error) {
	var wire *[]orderWire
	if err := decodeStrict(raw, &wire); err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, fmt.Errorf("%w: ожидается массив заказов", ErrInvalidBatch)
	}

	orders := make([]domain.Order, 0, len(*wire))
	for i, w := range *wire {
		switch {
		case w.ID == nil:
			return nil, fmt.Errorf("%w: orders[%d].id обязателен", ErrInvalidBatch, i)
		case w.RegionID == nil:
			return nil, fmt.Errorf("%w: orders[%d].region_id обязателен", ErrInvalidBatch, i)
		case w.GiftName == nil:
			return nil, fmt.Errorf("%w: orders[%d].gift_name обязателен", ErrInvalidBatch, i)
		case w.Quantity == nil:
			return nil, fmt.Errorf("%w: orders[%d].quantity обязателен", ErrInvalidBatch, i)
		}
		orders = append(orders, domain.Order{
			ID:       *w.ID,
			RegionID: *w.RegionID,
			GiftName: *w.GiftName,
			Quantity: *w.Quantity,
		})
	}
	return orders, nil
}

// DecodeBatch — строгий разбор конверта {"kind": ..., "regions"|"orders": [...]}.
// Поле данных, не относящееся к виду пакета, допускается только как null.
func DecodeBatch(raw []byte) (*domain.Batch, error) {
	var wire batchWire
	if err := decodeStrict(raw, &wire); err != nil {
		return nil, err
	}
	if wire.Kind == nil {
		return nil, fmt.Errorf("%w: kind обязателен", ErrInvalidBatch)
	}

	batch := &domain.Batch{Kind: *wire.Kind}
	var err error
	switch batch.Kind {
	case domain.BatchReset:
		if present(wire.Regions) || present(wire.Orders) {
			return nil, fmt.Errorf("%w: reset не принимает данных", ErrInvalidBatch)
		}
	case domain.BatchRegions:
		if present(wire.Orders) {
			return nil, fmt.Errorf("%w: пакет regions не принимает orders", ErrInvalidBatch)
		}
		if batch.Regions, err = DecodeRegions(wire.Regions); err != nil {
			return nil, err
		}
	case domain.BatchOrders:
		if present(wire.Regions) {
			return nil, fmt.Errorf("%w: пакет orders не принимает regions", ErrInvalidBatch)
		}
		if batch.Orders, err = DecodeOrders(wire.Orders); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: неизвестный вид пакета %q", ErrInvalidBatch, batch.Kind)
	}
	return batch, nil
}

// ValidateBatchFromJSON — разбор конверта и проверка его содержимого.
func ValidateBatchFromJSON(ctx context.Context, validator ports.BatchValidator, raw []byte) (*domain.Batch, error) {
	batch, err := DecodeBatch(raw)
	if err != nil {
		return nil, err
	}
	if err := ValidateBatch(ctx, validator, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// EncodeBatch — канонический компактный JSON конверта; DecodeBatch принимает его обратно.
func EncodeBatch(batch *domain.Batch) ([]byte, error) {
	out := batchOut{Kind: batch.Kind}
	switch batch.Kind {
	case domain.BatchRegions:
		regions := batch.Regions
		if regions == nil {
			regions = []domain.Region{}
		}
		out.Regions = &regions
	case domain.BatchOrders:
		orders := batch.Orders
		if orders == nil {
			orders = []domain.Order{}
		}
		out.Orders = &orders
	}
	return json.Marshal(out)
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
