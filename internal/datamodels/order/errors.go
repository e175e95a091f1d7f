package order

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder 订单没有任何明细
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = errors.New("order not found")

// PlacementErrorKind 下单失败类别
type PlacementErrorKind string

const (
	// KindProductNotFound 请求的商品不存在
	KindProductNotFound PlacementErrorKind = "product_not_found"
	// KindInsufficientStock 库存不足（准入检查或事务内复查均可能触发）
	KindInsufficientStock PlacementErrorKind = "insufficient_stock"
	// KindTransactionAborted 提交阶段存储层失败，事务已完整回滚
	KindTransactionAborted PlacementErrorKind = "tx_aborted"
)

// PlacementError 下单失败，ProductID 为首个出问题的商品（事务失败时可能为 0）
type PlacementError struct {
	Kind      PlacementErrorKind
	ProductID int64
	Err       error
}

func (e *PlacementError) Error() string {
	switch e.Kind {
	case KindProductNotFound:
		return fmt.Sprintf("product %d not found", e.ProductID)
	case KindInsufficientStock:
		return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
	case KindTransactionAborted:
		if e.Err != nil {
			return fmt.Sprintf("order transaction aborted: %v", e.Err)
		}
		return "order transaction aborted"
	default:
		return fmt.Sprintf("order placement failed: %s", e.Kind)
	}
}

func (e *PlacementError) Unwrap() error { return e.Err }

// NotFoundErr 构造商品不存在错误
func NotFoundErr(productID int64) *PlacementError {
	return &PlacementError{Kind: KindProductNotFound, ProductID: productID}
}

// InsufficientStockErr 构造库存不足错误
func InsufficientStockErr(productID int64) *PlacementError {
	return &PlacementError{Kind: KindInsufficientStock, ProductID: productID}
}

// AbortedErr 构造事务失败错误
func AbortedErr(err error) *PlacementError {
	return &PlacementError{Kind: KindTransactionAborted, Err: err}
}

// AsPlacementError 判断 err 是否为下单业务错误
func AsPlacementError(err error) (*PlacementError, bool) {
	var pe *PlacementError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
