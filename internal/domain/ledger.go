package domain

import "strconv"

// Region — именованная группа, на которую ссылаются заказы.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Order — количество подарков с одним названием, отнесённое к региону.
// RegionID — мягкая ссылка: регион может отсутствовать в реестре.
type Order struct {
	ID       int64  `json:"id"`
	RegionID int64  `json:"region_id"`
	GiftName string `json:"gift_name"`
	Quantity int64  `json:"quantity"`
}

// RegionTotal — строка отчёта «сумма заказов по региону».
type RegionTotal struct {
	Region string `json:"region"`
	Total  int64  `json:"total"`
}

// RegionTopGifts — строка рейтинга подарков региона (в порядке ранга).
type RegionTopGifts struct {
	Region   string   `json:"region"`
	TopGifts []string `json:"top_gifts"`
}

// Version — версия содержимого реестра.
// Epoch различает экземпляры хранилища (процесс с памятью, база Postgres),
// Generation растёт при каждой успешной записи (reset/insert) в пределах эпохи.
type Version struct {
	Epoch      string
	Generation uint64
}

// Key — ключ версии для кэшей отчётов: "<epoch>:<generation>".
func (v Version) Key() string {
	return v.Epoch + ":" + strconv.FormatUint(v.Generation, 10)
}

// Snapshot — неизменяемое состояние реестра на момент чтения.
type Snapshot struct {
	Version Version
	Regions []Region
	Orders  []Order
}

// Виды пакетов, приходящих из брокера.
const (
	BatchReset   = "reset"
	BatchRegions = "regions"
	BatchOrders  = "orders"
)

// Batch — конверт пакетной записи в реестр.
type Batch struct {
	Kind    string   `json:"kind"`
	Regions []Region `json:"regions,omitempty"`
	Orders  []Order  `json:"orders,omitempty"`
}
