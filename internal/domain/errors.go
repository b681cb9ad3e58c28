package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey — запись с таким id уже есть в текущем поколении реестра.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStorageFault — сбой хранилища; всегда фатален для вызова.
	ErrStorageFault = errors.New("ledger storage fault")
)

// Сущности для DuplicateKeyError.
const (
	EntityRegion = "region"
	EntityOrder  = "order"
)

// DuplicateKeyError — пакет отклонён целиком из-за повторного id.
type DuplicateKeyError struct {
	Entity string
	ID     int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s id=%d", ErrDuplicateKey, e.Entity, e.ID)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// StorageError — обёртка над ошибкой хранилища с именем операции.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorageFault, e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorageFault }

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError — nil-безопасный конструктор StorageError.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// FirstDuplicateRegion — первый повторяющийся id внутри пакета регионов.
func FirstDuplicateRegion(regions []Region) (int64, bool) {
	seen := make(map[int64]struct{}, len(regions))
	for i := range regions {
		if _, ok := seen[regions[i].ID]; ok {
			return regions[i].ID, true
		}
		seen[regions[i].ID] = struct{}{}
	}
	return 0, false
}

// FirstDuplicateOrder — первый повторяющийся id внутри пакета заказов.
func FirstDuplicateOrder(orders []Order) (int64, bool) {
	seen := make(map[int64]struct{}, len(orders))
	for i := range orders {
		if _, ok := seen[orders[i].ID]; ok {
			return orders[i].ID, true
		}
		seen[orders[i].ID] = struct{}{}
	}
	return 0, false
}
