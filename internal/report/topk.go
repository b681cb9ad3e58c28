package report

import (
	"sort"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// giftTotal — сумма количества по одному подарку внутри региона.
type giftTotal struct {
	name  string
	total int64
}

// TopGifts — k самых заказываемых подарков для каждого региона.
//
// Каждый регион реестра попадает в результат ровно один раз, строки
// упорядочены по имени региона (при равных именах — по id).
// При k < 1 все регионы возвращаются с пустым списком без учёта заказов.
// Иначе подарки региона ранжируются по сумме quantity (убыв.), при равенстве —
// по названию (возр.); берутся первые k в порядке ранга. Регион без заказов
// получает пустой список, заказы с неизвестным region_id отбрасываются.
func TopGifts(snap domain.Snapshot, k int) []domain.RegionTopGifts {
	regions := sortedRegions(snap.Regions)
	out := make([]domain.RegionTopGifts, len(regions))

	if k < 1 {
		for i := range regions {
			out[i] = domain.RegionTopGifts{Region: regions[i].Name, TopGifts: []string{}}
		}
		return out
	}

	perRegion := make(map[int64]map[string]int64, len(regions))
	for i := range regions {
		perRegion[regions[i].ID] = make(map[string]int64)
	}
	for i := range snap.Orders {
		gifts, ok := perRegion[snap.Orders[i].RegionID]
		if !ok {
			continue
		}
		gifts[snap.Orders[i].GiftName] += snap.Orders[i].Quantity
	}

	for i := range regions {
		out[i] = domain.RegionTopGifts{
			Region:   regions[i].Name,
			TopGifts: rankGifts(perRegion[regions[i].ID], k),
		}
	}
	return out
}

// rankGifts — первые k названий из сумм по подаркам в порядке ранга.
func rankGifts(sums map[string]int64, k int) []string {
	ranked := make([]giftTotal, 0, len(sums))
	for name, total := range sums {
		ranked = append(ranked, giftTotal{name: name, total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	names := make([]string, len(ranked))
	for i := range ranked {
		names[i] = ranked[i].name
	}
	return names
}

// sortedRegions — копия списка регионов, упорядоченная по (name, id).
func sortedRegions(regions []domain.Region) []domain.Region {
	out := append([]domain.Region(nil), regions...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
