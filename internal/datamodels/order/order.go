package order

import (
	"context"
	"time"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

// StatusCompleted 订单创建即完成，没有待支付/取消等中间状态
const StatusCompleted = "completed"

// Order 订单模型，金额单位为分
type Order struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Subtotal  int64     `gorm:"not null" json:"subtotal"`
	Tax       int64     `gorm:"not null" json:"tax"`
	Total     int64     `gorm:"not null" json:"total"`
	Status    string    `gorm:"size:32;not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []Item `gorm:"foreignKey:OrderID" json:"items"`
}

// Item 订单明细。Price 是下单时刻冻结的商品单价，
// 之后商品调价不会影响已有订单的金额记录。
type Item struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	OrderID   int64 `gorm:"index;not null" json:"orderId"`
	ProductID int64 `gorm:"index;not null" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
	Price     int64 `gorm:"not null" json:"price"`

	// Product 读取时关联的商品当前信息（名称、图片等为实时数据）
	Product *product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// LineItem 下单请求中的一项
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// Repository 订单读取仓储接口
type Repository interface {
	// GetByID 返回订单及其明细，明细关联当前商品信息
	GetByID(ctx context.Context, id int64) (*Order, error)
	// ListAll 按创建时间倒序返回全部订单
	ListAll(ctx context.Context) ([]*Order, error)
}
