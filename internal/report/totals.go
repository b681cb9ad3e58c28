package report

import (
	"sort"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
)

// RegionTotals — сумма количеств заказов по имени региона.
// Внутреннее соединение orders → regions по region_id: регионы без заказов
// не попадают в отчёт, заказы без региона игнорируются.
// Регионы с одинаковым именем сливаются в одну строку. Порядок — по имени.
func RegionTotals(snap domain.Snapshot) []domain.RegionTotal {
	names := regionNames(snap.Regions)

	sums := make(map[string]int64)
	for i := range snap.Orders {
		name, ok := names[snap.Orders[i].RegionID]
		if !ok {
			continue
		}
		sums[name] += snap.Orders[i].Quantity
	}

	out := make([]domain.RegionTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, domain.RegionTotal{Region: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// regionNames — индекс id → имя.
func regionNames(regions []domain.Region) map[int64]string {
	names := make(map[int64]string, len(regions))
	for i := range regions {
		names[regions[i].ID] = regions[i].Name
	}
	return names
}
