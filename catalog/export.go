package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strconv"

	"superapp/models"
)

var ErrNotAnArray = errors.New("invalid-file-must-be-an-array")

// ExportJSON renders the list as the pretty-printed array the console
// downloads; re-importing it reproduces the list exactly.
func ExportJSON(list []models.Product) ([]byte, error) {
	if list == nil {
		list = []models.Product{}
	}
	return json.MarshalIndent(list, "", "  ")
}

var csvHeader = []string{"id", "name", "price", "stock", "createdAt"}

// ExportCSV writes one quoted row per product under a fixed header, values
// embedded as-is.
func ExportCSV(list []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, p := range list {
		record := []string{p.Id, p.Name, formatAmount(p.Price), strconv.Itoa(p.Stock), p.CreatedAt}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseImport accepts only a top-level JSON array. Row-level type mismatches
// are coerced to zero values rather than rejected; anything that is not an
// array aborts the import with no state change.
func ParseImport(data []byte) ([]models.Product, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, ErrNotAnArray
	}
	list := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		var p models.Product
		_ = json.Unmarshal(row, &p)
		list = append(list, p)
	}
	return list, nil
}
