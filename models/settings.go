package models

type Settings struct {
	PerPage int `json:"perPage"`
}
