package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

type memProductRepo struct {
	nextID   int64
	products map[int64]*product.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*product.Product{}}
}

func (r *memProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(ctx context.Context, f product.ListFilter) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		if f.Category != "" && f.Category != "Todos" && p.Category != f.Category {
			continue
		}
		if f.Search != "" &&
			!strings.Contains(p.Name, f.Search) &&
			!strings.Contains(p.Description, f.Search) &&
			!strings.Contains(p.Category, f.Search) {
			continue
		}
		if f.MinPrice >= 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice >= 0 && p.Price > f.MaxPrice {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) LoadSnapshot(ctx context.Context, ids []int64) (map[int64]product.Snapshot, error) {
	out := map[int64]product.Snapshot{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = product.Snapshot{Price: p.Price, Stock: p.Stock}
		}
	}
	return out, nil
}

func (r *memProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *memProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Update(ctx context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(ctx context.Context, id, stock int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Stock = stock
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Delete(ctx context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

type countingCache struct {
	invalidations int
}

func (c *countingCache) Invalidate(ctx context.Context) { c.invalidations++ }

func TestProductServiceCreateDefaults(t *testing.T) {
	repo := newMemProductRepo()
	cache := &countingCache{}
	svc := NewProductService(repo, cache)

	p := &product.Product{Name: "Monitor", Category: "Monitores", Price: 29999, Stock: 15}
	require.NoError(t, svc.Create(context.Background(), p))

	assert.Equal(t, DefaultProductImage, p.Image)
	assert.Equal(t, 1, cache.invalidations)
}

func TestProductServiceValidation(t *testing.T) {
	svc := NewProductService(newMemProductRepo(), nil)
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &product.Product{Price: 100, Stock: 1}), "missing name")
	assert.Error(t, svc.Create(ctx, &product.Product{Name: "x", Price: -1, Stock: 1}), "negative price")
	assert.Error(t, svc.Create(ctx, &product.Product{Name: "x", Price: 1, Stock: -1}), "negative stock")

	_, err := svc.UpdateStock(ctx, 1, -5)
	assert.Error(t, err)
}

func TestProductServiceListFilters(t *testing.T) {
	repo := newMemProductRepo()
	svc := NewProductService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &product.Product{Name: "Teclado RGB", Category: "Periféricos", Price: 8999, Stock: 3}))
	require.NoError(t, svc.Create(ctx, &product.Product{Name: "Mouse Pro", Category: "Periféricos", Price: 4999, Stock: 5}))
	require.NoError(t, svc.Create(ctx, &product.Product{Name: "Monitor 27", Category: "Monitores", Price: 29999, Stock: 2}))

	byCategory, err := svc.List(ctx, product.ListFilter{Category: "Periféricos", MinPrice: -1, MaxPrice: -1})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byPrice, err := svc.List(ctx, product.ListFilter{MinPrice: 5000, MaxPrice: 30000})
	require.NoError(t, err)
	assert.Len(t, byPrice, 2)

	bySearch, err := svc.List(ctx, product.ListFilter{Search: "Mouse", MinPrice: -1, MaxPrice: -1})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Mouse Pro", bySearch[0].Name)

	names, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monitores", "Periféricos"}, names)
}

func TestProductServiceWritesInvalidateCache(t *testing.T) {
	repo := newMemProductRepo()
	cache := &countingCache{}
	svc := NewProductService(repo, cache)
	ctx := context.Background()

	p := &product.Product{Name: "SSD", Category: "Almacenamiento", Price: 12999, Stock: 20}
	require.NoError(t, svc.Create(ctx, p))
	p.Price = 11999
	require.NoError(t, svc.Update(ctx, p))
	_, err := svc.UpdateStock(ctx, p.ID, 25)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, p.ID))

	assert.Equal(t, 4, cache.invalidations)
}
