package catalog

import (
	"sort"
	"strconv"
	"strings"

	"superapp/models"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var sortKeys = map[string]bool{
	"name":  true,
	"price": true,
	"stock": true,
}

// TableQuery is the ephemeral view state for one render. It is never
// persisted; reloading the table starts from the defaults again.
type TableQuery struct {
	Search  string
	SortBy  string
	SortDir string
	Page    int
	PerPage int
}

// Normalize maps unknown sort keys to name, unknown directions to asc, and
// non-positive page/perPage values to their defaults.
func (q TableQuery) Normalize(defaultPerPage int) TableQuery {
	if !sortKeys[q.SortBy] {
		q.SortBy = "name"
	}
	if q.SortDir != SortDesc {
		q.SortDir = SortAsc
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
		if q.PerPage < 1 {
			q.PerPage = DefaultPerPage
		}
	}
	return q
}

// BuildTablePage filters, sorts and slices the full list into one visible
// page. The requested page is clamped into [1, totalPages] and the clamped
// value is returned, so repeated renders with the same inputs are stable.
func BuildTablePage(list []models.Product, q TableQuery) models.ProductList {
	filtered := filterProducts(list, q.Search)
	sortProducts(filtered, q.SortBy, q.SortDir)

	total := len(filtered)
	totalPages := (total + q.PerPage - 1) / q.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * q.PerPage
	end := start + q.PerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	rows := make([]models.ProductRow, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, models.ProductRow{Product: filtered[i], Rank: i + 1})
	}

	return models.ProductList{
		Products:   rows,
		Page:       page,
		PerPage:    q.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// filterProducts keeps a product when its name contains the query
// case-insensitively, or the decimal rendering of its price or stock does.
func filterProducts(list []models.Product, search string) []models.Product {
	out := make([]models.Product, 0, len(list))
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return append(out, list...)
	}
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(formatAmount(p.Price), q) ||
			strings.Contains(strconv.Itoa(p.Stock), q) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(list []models.Product, sortBy, sortDir string) {
	dir := 1
	if sortDir == SortDesc {
		dir = -1
	}
	sort.SliceStable(list, func(i, j int) bool {
		return compareProducts(list[i], list[j], sortBy)*dir < 0
	})
}

func compareProducts(a, b models.Product, key string) int {
	switch key {
	case "price":
		return compareFloat(a.Price, b.Price)
	case "stock":
		return compareFloat(float64(a.Stock), float64(b.Stock))
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
