package report

import "github.com/Gunvolt24/gift_ledger/internal/domain"

// OrdersTotal — сумма quantity по всем заказам, включая заказы без региона.
// Пустой реестр даёт 0.
func OrdersTotal(snap domain.Snapshot) int64 {
	var total int64
	for i := range snap.Orders {
		total += snap.Orders[i].Quantity
	}
	return total
}

// PopularGift — подарок с наибольшей суммой quantity по всем заказам.
// При равенстве выигрывает меньшее по алфавиту название; false — заказов нет.
func PopularGift(snap domain.Snapshot) (string, bool) {
	if len(snap.Orders) == 0 {
		return "", false
	}
	sums := make(map[string]int64)
	for i := range snap.Orders {
		sums[snap.Orders[i].GiftName] += snap.Orders[i].Quantity
	}
	top := rankGifts(sums, 1)
	return top[0], true
}
