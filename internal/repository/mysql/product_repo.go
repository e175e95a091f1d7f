package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, f product.ListFilter) ([]*product.Product, error) {
	query := r.db.WithContext(ctx)
	if f.Category != "" && f.Category != "Todos" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		// 按名称/描述/分类模糊匹配
		like := "%" + f.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like)
	}
	if f.MinPrice >= 0 {
		query = query.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice >= 0 {
		query = query.Where("price <= ?", f.MaxPrice)
	}

	var list []*product.Product
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) LoadSnapshot(ctx context.Context, ids []int64) (map[int64]product.Snapshot, error) {
	var rows []product.Product
	if err := r.db.WithContext(ctx).
		Select("id", "price", "stock").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]product.Snapshot, len(rows))
	for _, row := range rows {
		out[row.ID] = product.Snapshot{Price: row.Price, Stock: row.Stock}
	}
	return out, nil
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *productRepo) Create(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) UpdateStock(ctx context.Context, id, stock int64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	p.Stock = stock
	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&product.Product{}, id).Error
}
