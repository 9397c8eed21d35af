package models

// Product is persisted exactly as exported: the JSON names are part of the
// export/import wire format.
type Product struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Img       string  `json:"img,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ProductRow is a product augmented with its 1-based rank across the whole
// filtered list, for the table's numbering column.
type ProductRow struct {
	Product
	Rank int `json:"rank"`
}

type ProductList struct {
	Products   []ProductRow `json:"products"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
}
