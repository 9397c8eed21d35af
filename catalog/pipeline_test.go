package catalog

import (
	"encoding/json"
	"fmt"
	"testing"

	"superapp/models"

	"gotest.tools/assert"
)

func makeProducts(n int) []models.Product {
	list := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, models.Product{
			Id:    fmt.Sprintf("p_%d", i),
			Name:  fmt.Sprintf("Product %02d", i),
			Price: float64(1000 * (i + 1)),
			Stock: i,
		})
	}
	return list
}

func TestPaginationProperties(t *testing.T) {
	for n := 0; n <= 7; n++ {
		for perPage := 1; perPage <= 4; perPage++ {
			list := makeProducts(n)
			first := BuildTablePage(list, TableQuery{Page: 1, PerPage: perPage}.Normalize(6))

			wantPages := (n + perPage - 1) / perPage
			if wantPages < 1 {
				wantPages = 1
			}
			assert.Equal(t, wantPages, first.TotalPages)
			assert.Equal(t, n, first.Total)

			// the page slices partition the whole list
			seen := 0
			for page := 1; page <= first.TotalPages; page++ {
				out := BuildTablePage(list, TableQuery{Page: page, PerPage: perPage}.Normalize(6))
				for _, row := range out.Products {
					seen++
					assert.Equal(t, seen, row.Rank)
				}
			}
			assert.Equal(t, n, seen)
		}
	}
}

func TestPageClampingAndIdempotence(t *testing.T) {
	list := makeProducts(5)

	out := BuildTablePage(list, TableQuery{Page: 99, PerPage: 2}.Normalize(6))
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 3, out.Page)
	assert.Equal(t, 1, len(out.Products))

	// rendering again with the clamped page yields the identical page
	again := BuildTablePage(list, TableQuery{Page: out.Page, PerPage: 2}.Normalize(6))
	a, _ := json.Marshal(out)
	b, _ := json.Marshal(again)
	assert.Equal(t, string(a), string(b))

	// below the lower bound clamps to 1
	out = BuildTablePage(list, TableQuery{Page: -3, PerPage: 2}.Normalize(6))
	assert.Equal(t, 1, out.Page)
}

func TestSortPrice(t *testing.T) {
	list := []models.Product{
		{Id: "a", Name: "A", Price: 300},
		{Id: "b", Name: "B", Price: 100},
		{Id: "c", Name: "C", Price: 200},
	}

	asc := BuildTablePage(list, TableQuery{SortBy: "price", SortDir: "asc", Page: 1, PerPage: 10}.Normalize(6))
	desc := BuildTablePage(list, TableQuery{SortBy: "price", SortDir: "desc", Page: 1, PerPage: 10}.Normalize(6))

	assert.Equal(t, 3, len(asc.Products))
	for i := range asc.Products {
		// descending is the exact reverse for all-distinct prices
		assert.Equal(t, asc.Products[i].Id, desc.Products[len(desc.Products)-1-i].Id)
	}
	assert.Equal(t, "b", asc.Products[0].Id)
	assert.Equal(t, "a", asc.Products[2].Id)
}

func TestSortStability(t *testing.T) {
	list := []models.Product{
		{Id: "first", Name: "Z", Price: 100},
		{Id: "second", Name: "A", Price: 100},
		{Id: "third", Name: "M", Price: 100},
	}

	out := BuildTablePage(list, TableQuery{SortBy: "price", SortDir: "asc", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, "first", out.Products[0].Id)
	assert.Equal(t, "second", out.Products[1].Id)
	assert.Equal(t, "third", out.Products[2].Id)
}

func TestFilter(t *testing.T) {
	list := []models.Product{
		{Id: "a", Name: "Kopi Gayo", Price: 25000, Stock: 50},
		{Id: "b", Name: "Teh Hitam", Price: 18000, Stock: 30},
	}

	// exact name match
	out := BuildTablePage(list, TableQuery{Search: "Kopi Gayo", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "a", out.Products[0].Id)

	// case-insensitive substring
	out = BuildTablePage(list, TableQuery{Search: "hitam", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "b", out.Products[0].Id)

	// price and stock are matched textually
	out = BuildTablePage(list, TableQuery{Search: "2500", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, 1, out.Total)
	out = BuildTablePage(list, TableQuery{Search: "30", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, 1, out.Total)

	// nothing matches
	out = BuildTablePage(list, TableQuery{Search: "zzz", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, 0, len(out.Products))
	assert.Equal(t, 1, out.TotalPages)
}

func TestPriceSortScenario(t *testing.T) {
	list := []models.Product{
		{Id: "a", Name: "Kopi Gayo", Price: 25000, Stock: 50},
		{Id: "b", Name: "Teh Hitam", Price: 18000, Stock: 30},
	}

	out := BuildTablePage(list, TableQuery{SortBy: "price", SortDir: "asc", Page: 1, PerPage: 10}.Normalize(6))
	assert.Equal(t, "Teh Hitam", out.Products[0].Name)
	assert.Equal(t, "Kopi Gayo", out.Products[1].Name)

	// page size 1, page 2 shows exactly the second-cheapest product
	out = BuildTablePage(list, TableQuery{SortBy: "price", SortDir: "asc", Page: 2, PerPage: 1}.Normalize(6))
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 1, len(out.Products))
	assert.Equal(t, "Kopi Gayo", out.Products[0].Name)
	assert.Equal(t, 2, out.Products[0].Rank)
}

func TestNormalize(t *testing.T) {
	q := TableQuery{SortBy: "bogus", SortDir: "sideways", Page: 0, PerPage: 0}.Normalize(6)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, SortAsc, q.SortDir)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 6, q.PerPage)

	q = TableQuery{SortBy: "stock", SortDir: "desc", Page: 3, PerPage: 12}.Normalize(6)
	assert.Equal(t, "stock", q.SortBy)
	assert.Equal(t, SortDesc, q.SortDir)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 12, q.PerPage)
}
