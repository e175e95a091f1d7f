package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

// Catalog 下单所需的目录读取能力（一次性快照读，不开事务）
type Catalog interface {
	LoadSnapshot(ctx context.Context, ids []int64) (map[int64]product.Snapshot, error)
}

// EventSink 下单成功后的事件通知，尽力而为，不影响下单结果
type EventSink interface {
	OrderCreated(ctx context.Context, o *order.Order)
}

// OrderService 下单与订单查询服务
type OrderService struct {
	catalog Catalog
	store   order.Store
	repo    order.Repository
	taxRate float64
	events  EventSink
}

// NewOrderService 创建订单服务，events 可以为 nil
func NewOrderService(catalog Catalog, store order.Store, repo order.Repository, taxRate float64, events EventSink) *OrderService {
	return &OrderService{
		catalog: catalog,
		store:   store,
		repo:    repo,
		taxRate: taxRate,
		events:  events,
	}
}

// PlaceOrder 下单：
//  1. 快照读取价格/库存，准入检查快速拒绝明显无效的请求
//  2. 按快照价格计算金额（价格在此冻结）
//  3. 在单个事务里复查库存、写订单和明细、条件扣减库存
//
// 准入检查只是快速失败的过滤器；防止超卖的最终保证是事务内的
// 条件扣减（stock >= quantity 不满足时零行更新，整个事务回滚）。
// 失败的下单不留下任何可见状态，也不会自动重试。
func (s *OrderService) PlaceOrder(ctx context.Context, items []order.LineItem) (*order.Order, error) {
	GetMonitor().RecordOrderRequest()

	if len(items) == 0 {
		GetMonitor().RecordOrderRejected()
		return nil, order.ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			GetMonitor().RecordOrderRejected()
			return nil, fmt.Errorf("invalid quantity %d for product %d", it.Quantity, it.ProductID)
		}
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	snap, err := s.catalog.LoadSnapshot(ctx, ids)
	if err != nil {
		GetMonitor().RecordDBError()
		return nil, fmt.Errorf("load product snapshot: %w", err)
	}

	// 准入检查：商品必须存在，数量不超过快照库存。
	// 快照可能已经过期，事务内还会以加锁读+条件更新复查。
	for _, it := range items {
		sn, ok := snap[it.ProductID]
		if !ok {
			GetMonitor().RecordOrderRejected()
			return nil, order.NotFoundErr(it.ProductID)
		}
		if it.Quantity > sn.Stock {
			GetMonitor().RecordOrderRejected()
			return nil, order.InsufficientStockErr(it.ProductID)
		}
	}

	totals, err := ComputeTotals(items, snap, s.taxRate)
	if err != nil {
		GetMonitor().RecordOrderRejected()
		return nil, err
	}

	o := &order.Order{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Status:   order.StatusCompleted,
		Items:    make([]order.Item, 0, len(items)),
	}
	for _, it := range items {
		o.Items = append(o.Items, order.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     snap[it.ProductID].Price, // 冻结下单时刻的快照价格
		})
	}

	err = s.store.RunInTransaction(ctx, func(tx order.Tx) error {
		// 事务内复查库存，堵住快照与提交之间的窗口
		for _, it := range items {
			stock, err := tx.GetStock(it.ProductID)
			if err != nil {
				return err
			}
			if stock < it.Quantity {
				return order.InsufficientStockErr(it.ProductID)
			}
		}

		if err := tx.CreateOrder(o); err != nil {
			return err
		}

		for _, it := range items {
			affected, err := tx.DecrementStock(it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// 并发订单抢走了库存，整单回滚
				return order.InsufficientStockErr(it.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		if pe, ok := order.AsPlacementError(err); ok {
			GetMonitor().RecordOrderRejected()
			if pe.Kind == order.KindInsufficientStock {
				GetMonitor().RecordStockConflict()
			}
			return nil, pe
		}
		GetMonitor().RecordTxError()
		zap.L().Error("order transaction aborted", zap.Error(err))
		return nil, order.AbortedErr(err)
	}

	GetMonitor().RecordOrderPlaced()
	zap.L().Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Int64("total", o.Total),
		zap.Int("items", len(o.Items)))

	if s.events != nil {
		s.events.OrderCreated(ctx, o)
	}
	return o, nil
}

// GetOrder 查询订单及其明细，明细关联商品当前信息；
// 明细里的 price/quantity 是历史值，商品名称等展示字段是实时值。
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, err
		}
		GetMonitor().RecordDBError()
		return nil, err
	}
	return o, nil
}

// ListOrders 按创建时间倒序返回全部订单
func (s *OrderService) ListOrders(ctx context.Context) ([]*order.Order, error) {
	return s.repo.ListAll(ctx)
}
