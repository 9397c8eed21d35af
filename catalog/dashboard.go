package catalog

import (
	"math"
	"strings"

	"superapp/models"

	"github.com/dustin/go-humanize"
)

// BuildSummary computes the dashboard counters over the current list. The
// transaction and revenue figures are the console's placeholder estimates:
// round(count*0.8) transactions and price*round(stock*0.2) revenue per
// product. They stand in for real transaction data that was never wired up.
func BuildSummary(list []models.Product) models.DashboardSummary {
	total := len(list)

	transactions := int(math.Round(float64(total) * 0.8))
	if transactions < 0 {
		transactions = 0
	}

	var revenue float64
	for _, p := range list {
		revenue += p.Price * math.Round(float64(p.Stock)*0.2)
	}

	return models.DashboardSummary{
		TotalProducts:     total,
		TotalTransactions: transactions,
		TotalRevenue:      revenue,
		TotalRevenueText:  FormatRupiah(revenue),
	}
}

// BuildChartData emits one bar per product: label is the name, value the
// stock level.
func BuildChartData(list []models.Product) models.ChartSeries {
	series := models.ChartSeries{
		Labels: make([]string, 0, len(list)),
		Values: make([]float64, 0, len(list)),
	}
	for _, p := range list {
		series.Labels = append(series.Labels, p.Name)
		series.Values = append(series.Values, float64(p.Stock))
	}
	return series
}

// FormatRupiah renders an amount with id-ID thousand separators, "Rp 25.000".
func FormatRupiah(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Rp 0"
	}
	return "Rp " + strings.Replace(humanize.Commaf(v), ",", ".", -1)
}
