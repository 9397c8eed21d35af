package catalog

import (
	"context"
	"errors"
	"time"

	"superapp/models"
	"superapp/store"

	"github.com/gofrs/uuid"
)

const DefaultPerPage = 6

var ErrProductNotFound = errors.New("product-not-found")

// Repository materializes the product list from the store on demand and writes
// the whole list back after every mutation.
type Repository struct {
	Store *store.Store
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{Store: s}
}

func (r *Repository) All(ctx context.Context) []models.Product {
	var list []models.Product
	r.Store.Load(ctx, store.KeyProducts, &list)
	return list
}

func (r *Repository) ReplaceAll(ctx context.Context, list []models.Product) error {
	if list == nil {
		list = []models.Product{}
	}
	return r.Store.Save(ctx, store.KeyProducts, list)
}

// Upsert overwrites the record matching p.Id in place, keeping its creation
// timestamp. An empty id creates a new record, prepended with a fresh id and
// the current timestamp. A non-empty id that is no longer in the list is
// reported as ErrProductNotFound without mutating anything.
func (r *Repository) Upsert(ctx context.Context, p models.Product) (models.Product, error) {
	list := r.All(ctx)

	if p.Id != "" {
		for i := range list {
			if list[i].Id == p.Id {
				p.CreatedAt = list[i].CreatedAt
				list[i] = p
				return p, r.ReplaceAll(ctx, list)
			}
		}
		return models.Product{}, ErrProductNotFound
	}

	p.Id = NewProductId()
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	list = append([]models.Product{p}, list...)
	return p, r.ReplaceAll(ctx, list)
}

// DeleteByID is a no-op when the id is absent.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	list := r.All(ctx)
	kept := make([]models.Product, 0, len(list))
	for _, p := range list {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.ReplaceAll(ctx, kept)
}

func NewProductId() string {
	return "p_" + uuid.Must(uuid.NewV4()).String()
}

// EnsureInitialData seeds the sample catalog and default settings on first
// boot; existing records are left alone.
func (r *Repository) EnsureInitialData(ctx context.Context) error {
	var list []models.Product
	if !r.Store.Load(ctx, store.KeyProducts, &list) {
		if err := r.ReplaceAll(ctx, SampleProducts()); err != nil {
			return err
		}
	}
	var settings models.Settings
	if !r.Store.Load(ctx, store.KeySettings, &settings) {
		if err := r.SaveSettings(ctx, models.Settings{PerPage: DefaultPerPage}); err != nil {
			return err
		}
	}
	return nil
}

func SampleProducts() []models.Product {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.Product{
		{Id: NewProductId(), Name: "Kopi Gayo", Price: 25000, Stock: 50, CreatedAt: now},
		{Id: NewProductId(), Name: "Teh Hitam", Price: 18000, Stock: 30, CreatedAt: now},
		{Id: NewProductId(), Name: "Gula Aren", Price: 12000, Stock: 70, CreatedAt: now},
	}
}

// Settings falls back to the default page size when the record is absent,
// corrupt, or holds a non-positive value.
func (r *Repository) Settings(ctx context.Context) models.Settings {
	settings := models.Settings{PerPage: DefaultPerPage}
	r.Store.Load(ctx, store.KeySettings, &settings)
	if settings.PerPage < 1 {
		settings.PerPage = DefaultPerPage
	}
	return settings
}

func (r *Repository) SaveSettings(ctx context.Context, settings models.Settings) error {
	return r.Store.Save(ctx, store.KeySettings, settings)
}
