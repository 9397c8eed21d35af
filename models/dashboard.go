package models

// DashboardSummary carries the three counter cards. Transactions and revenue
// are the console's placeholder estimates, not real transaction data.
type DashboardSummary struct {
	TotalProducts     int     `json:"total_products"`
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRevenueText  string  `json:"total_revenue_text"`
}

type DashboardResponse struct {
	Summary DashboardSummary `json:"summary"`
	Chart   ChartPayload     `json:"chart"`
}
