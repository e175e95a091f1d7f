package product

import (
	"context"
	"time"
)

// Product 商品模型
type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Price       int64     `gorm:"not null" json:"price"` // 分
	Stock       int64     `gorm:"not null" json:"stock"`
	Description string    `gorm:"size:512" json:"description"`
	Image       string    `gorm:"size:256" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Snapshot 下单准入检查用的价格/库存快照
// 只是一次普通读取，不开事务；事务内还会重新校验库存。
type Snapshot struct {
	Price int64
	Stock int64
}

// ListFilter 商品列表过滤条件
type ListFilter struct {
	Category string
	Search   string
	MinPrice int64 // <0 表示不限
	MaxPrice int64 // <0 表示不限
}

// Repository 商品仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	// LoadSnapshot 批量读取价格与库存，未找到的 ID 不出现在结果中
	LoadSnapshot(ctx context.Context, ids []int64) (map[int64]Snapshot, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	UpdateStock(ctx context.Context, id, stock int64) (*Product, error)
	Delete(ctx context.Context, id int64) error
}
