package service

import (
	"errors"
	"math"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

// ErrTotalsOverflow 金额计算超出 int64 范围
var ErrTotalsOverflow = errors.New("order totals overflow")

// Totals 订单金额，单位为分
type Totals struct {
	Subtotal int64
	Tax      int64
	Total    int64
}

// ComputeTotals 根据快照价格计算订单金额，纯函数。
// subtotal = Σ 快照单价 × 数量，价格一律以服务端快照为准，不信任客户端。
// tax = round(subtotal × taxRate)，四舍五入（half-up）取整到分。
func ComputeTotals(items []order.LineItem, snap map[int64]product.Snapshot, taxRate float64) (Totals, error) {
	var subtotal int64
	for _, it := range items {
		sn, ok := snap[it.ProductID]
		if !ok {
			return Totals{}, order.NotFoundErr(it.ProductID)
		}
		line, ok := mulInt64(sn.Price, it.Quantity)
		if !ok {
			return Totals{}, ErrTotalsOverflow
		}
		subtotal, ok = addInt64(subtotal, line)
		if !ok {
			return Totals{}, ErrTotalsOverflow
		}
	}

	taxf := math.Round(float64(subtotal) * taxRate)
	if taxf > math.MaxInt64 || taxf < 0 {
		return Totals{}, ErrTotalsOverflow
	}
	tax := int64(taxf)

	total, ok := addInt64(subtotal, tax)
	if !ok {
		return Totals{}, ErrTotalsOverflow
	}
	return Totals{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// mulInt64 非负数乘法，溢出返回 false
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// addInt64 非负数加法，溢出返回 false
func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
