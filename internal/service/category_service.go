package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/category"
)

// ErrCategoryExists 同名分类已存在
var ErrCategoryExists = errors.New("category already exists")

// CategoryService 分类服务
type CategoryService struct {
	repo category.Repository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo category.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetByID 查询单个分类
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll 按名称升序返回全部分类
func (s *CategoryService) ListAll(ctx context.Context) ([]*category.Category, error) {
	return s.repo.ListAll(ctx)
}

// Create 创建分类，名称唯一
func (s *CategoryService) Create(ctx context.Context, c *category.Category) error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if _, err := s.repo.GetByName(ctx, c.Name); err == nil {
		return ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.repo.Create(ctx, c)
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, c *category.Category) error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if existing, err := s.repo.GetByName(ctx, c.Name); err == nil && existing.ID != c.ID {
		return ErrCategoryExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.repo.Update(ctx, c)
}

// Delete 删除分类
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
