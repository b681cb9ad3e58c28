package testutil

import (
	"fmt"
	"math/rand"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// PoleRegions — регионы эталонного сценария рейтинга.
func PoleRegions() []domain.Region {
	return []domain.Region{
		{ID: 1, Name: "North Pole"},
		{ID: 2, Name: "South Pole"},
		{ID: 3, Name: "Kiribati"},
		{ID: 4, Name: "Baker Island"},
	}
}

// PoleOrders — заказы к PoleRegions: South Pole Doll=8/Toy Train=8/Teddy Bear=6,
// Kiribati Action Figure=12/Teddy Bear=3/Toy Train=3, Baker Island Board Game=10.
func PoleOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, RegionID: 2, GiftName: "Toy Train", Quantity: 5},
		{ID: 2, RegionID: 2, GiftName: "Toy Train", Quantity: 3},
		{ID: 3, RegionID: 2, GiftName: "Doll", Quantity: 8},
		{ID: 4, RegionID: 3, GiftName: "Toy Train", Quantity: 3},
		{ID: 5, RegionID: 2, GiftName: "Teddy Bear", Quantity: 6},
		{ID: 6, RegionID: 3, GiftName: "Action Figure", Quantity: 12},
		{ID: 7, RegionID: 4, GiftName: "Board Game", Quantity: 10},
		{ID: 8, RegionID: 3, GiftName: "Teddy Bear", Quantity: 1},
		{ID: 9, RegionID: 3, GiftName: "Teddy Bear", Quantity: 2},
	}
}

// RandomOrders — n заказов с id начиная с firstID по regions случайным регионам
// (часть ссылается на несуществующий регион 0).
func RandomOrders(rnd *rand.Rand, firstID int64, n, regions, gifts int) []domain.Order {
	out := make([]domain.Order, n)
	for i := range out {
		out[i] = domain.Order{
			ID:       firstID + int64(i),
			RegionID: int64(rnd.Intn(regions + 1)),
			GiftName: fmt.Sprintf("gift-%03d", rnd.Intn(gifts)),
			Quantity: int64(rnd.Intn(20)),
		}
	}
	return out
}

// NumberedRegions — n регионов с id 1..n и именами region-001...
func NumberedRegions(n int) []domain.Region {
	out := make([]domain.Region, n)
	for i := range out {
		out[i] = domain.Region{ID: int64(i + 1), Name: fmt.Sprintf("region-%03d", i+1)}
	}
	return out
}
