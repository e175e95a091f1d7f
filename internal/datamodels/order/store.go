package order

import "context"

// Tx 下单事务内的存储句柄。所有操作都在同一个隔离事务中执行，
// fn 返回错误时整个事务回滚，不会留下任何部分写入。
type Tx interface {
	// GetStock 事务内加锁读取商品当前库存
	GetStock(productID int64) (int64, error)
	// CreateOrder 写入订单及其明细
	CreateOrder(o *Order) error
	// DecrementStock 条件扣减库存（仅当 stock >= quantity），返回受影响行数。
	// 返回 0 表示库存已被并发订单消耗，调用方必须让事务回滚。
	DecrementStock(productID, quantity int64) (int64, error)
}

// Store 下单事务入口
type Store interface {
	RunInTransaction(ctx context.Context, fn func(tx Tx) error) error
}
