package dashboard

import (
	"strconv"

	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/kitchen"
	"github.com/kiwari-pos/dinein/internal/receipt"
)

type KPI struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

type RecentOrder struct {
	ID     string `json:"id"`
	Table  string `json:"table"`
	Total  int64  `json:"total"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

type CategoryShare struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

type Link struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

type Dashboard struct {
	KPIs          []KPI           `json:"kpis"`
	RecentOrders  []RecentOrder   `json:"recent_orders"`
	CategoryShare []CategoryShare `json:"category_share"`
	QuickAccess   []Link          `json:"quick_access"`
	Kitchen       kitchen.Counts  `json:"kitchen"`
}

// Sales figures are sample numbers until orders are recorded somewhere.
const (
	sampleOrderCount   = 148
	sampleRevenue      = 12450000
	sampleBestSeller   = "Salmon Don"
	sampleBestSellerQt = 32
)

// Build assembles the owner dashboard. Table usage and kitchen counts are
// live; the sales KPIs are sample figures.
func Build(tables []catalog.Table, counts kitchen.Counts) Dashboard {
	used, total := TablesInUse(tables)
	usage := "0%"
	if total > 0 {
		usage = strconv.Itoa(used*100/total) + "%"
	}

	return Dashboard{
		KPIs: []KPI{
			{Label: "Total Order", Value: strconv.Itoa(sampleOrderCount), Change: "+12%", Icon: "receipt_long"},
			{Label: "Pendapatan", Value: receipt.FormatRupiah(sampleRevenue), Change: "+8%", Icon: "account_balance_wallet"},
			{Label: "Menu Terlaris", Value: sampleBestSeller, Change: strconv.Itoa(sampleBestSellerQt) + " porsi", Icon: "local_fire_department"},
			{Label: "Meja Terpakai", Value: strconv.Itoa(used) + "/" + strconv.Itoa(total), Change: usage, Icon: "table_restaurant"},
		},
		RecentOrders: []RecentOrder{
			{ID: "ORD-148", Table: "T-05", Total: 245000, Status: "Selesai", Time: "14:32"},
			{ID: "ORD-147", Table: "T-01", Total: 185000, Status: "Dimasak", Time: "14:28"},
			{ID: "ORD-146", Table: "T-08", Total: 320000, Status: "Siap", Time: "14:15"},
			{ID: "ORD-145", Table: "T-03", Total: 128000, Status: "Selesai", Time: "13:55"},
			{ID: "ORD-144", Table: "T-10", Total: 95000, Status: "Selesai", Time: "13:40"},
		},
		CategoryShare: []CategoryShare{
			{Label: "Makanan", Percent: 45},
			{Label: "Minuman", Percent: 30},
			{Label: "Snack", Percent: 25},
		},
		QuickAccess: []Link{
			{Label: "Kasir", Icon: "point_of_sale", Path: "/cashier"},
			{Label: "Dapur", Icon: "soup_kitchen", Path: "/kitchen"},
			{Label: "Meja", Icon: "table_restaurant", Path: "/tables"},
			{Label: "Menu", Icon: "restaurant_menu", Path: "/menu"},
			{Label: "Struk", Icon: "receipt", Path: "/receipt"},
			{Label: "Design", Icon: "palette", Path: "/design-system"},
		},
		Kitchen: counts,
	}
}

// TablesInUse counts tables that are occupied or reserved.
func TablesInUse(tables []catalog.Table) (used, total int) {
	byStatus := catalog.CountByStatus(tables)
	return byStatus[catalog.TableOccupied] + byStatus[catalog.TableReserved], len(tables)
}
