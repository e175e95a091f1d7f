package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

type orderStore struct {
	db *gorm.DB
}

// NewOrderStore 创建下单事务存储
func NewOrderStore(db *gorm.DB) order.Store {
	return &orderStore{db: db}
}

func (s *orderStore) RunInTransaction(ctx context.Context, fn func(tx order.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{tx: tx})
	})
}

type orderTx struct {
	tx *gorm.DB
}

func (t *orderTx) GetStock(productID int64) (int64, error) {
	var p product.Product
	if err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "stock").
		First(&p, productID).Error; err != nil {
		return 0, err
	}
	return p.Stock, nil
}

func (t *orderTx) CreateOrder(o *order.Order) error {
	// Items 通过关联一并写入
	return t.tx.Create(o).Error
}

func (t *orderTx) DecrementStock(productID, quantity int64) (int64, error) {
	// 条件更新是防止超卖的最终保证：stock 不满足时不会有任何行被更新
	res := t.tx.Model(&product.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
