package service

import (
	"context"
	"errors"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

// DefaultProductImage 创建商品未指定图片时使用的占位图
const DefaultProductImage = "/generic-product-display.png"

// ProductService 商品服务
type ProductService struct {
	repo  product.Repository
	cache ProductListCache
}

// ProductListCache 商品列表缓存，写操作后失效。可以为 nil。
type ProductListCache interface {
	Invalidate(ctx context.Context)
}

// NewProductService 创建商品服务，cache 可以为 nil
func NewProductService(repo product.Repository, cache ProductListCache) *ProductService {
	return &ProductService{repo: repo, cache: cache}
}

// GetByID 查询单个商品
func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List 按过滤条件查询商品列表
func (s *ProductService) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	return s.repo.List(ctx, filter)
}

// Categories 返回商品中出现过的去重分类名
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Create 创建商品，价格和库存必须非负
func (s *ProductService) Create(ctx context.Context, p *product.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.Image == "" {
		p.Image = DefaultProductImage
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update 更新商品信息
func (s *ProductService) Update(ctx context.Context, p *product.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateStock 只更新库存（后台补录用）
func (s *ProductService) UpdateStock(ctx context.Context, id, stock int64) (*product.Product, error) {
	if stock < 0 {
		return nil, errors.New("stock must be non-negative")
	}
	p, err := s.repo.UpdateStock(ctx, id, stock)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func validateProduct(p *product.Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if p.Stock < 0 {
		return errors.New("stock must be non-negative")
	}
	return nil
}
