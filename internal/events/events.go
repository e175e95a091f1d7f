package events

import (
	"time"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
)

// OrderQueue 订单事件队列名
const OrderQueue = "order_events"

// OrderItemEvent 事件中的订单明细
type OrderItemEvent struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	Price     int64 `json:"price"`
}

// OrderCreatedEvent 订单创建事件载荷
type OrderCreatedEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	OrderID   int64            `json:"order_id"`
	Subtotal  int64            `json:"subtotal"`
	Tax       int64            `json:"tax"`
	Total     int64            `json:"total"`
	Items     []OrderItemEvent `json:"items"`
	Timestamp int64            `json:"timestamp"`
}

// NewOrderCreatedEvent 从订单构造事件载荷
func NewOrderCreatedEvent(eventID string, o *order.Order) *OrderCreatedEvent {
	ev := &OrderCreatedEvent{
		EventID:   eventID,
		EventType: "OrderCreated",
		OrderID:   o.ID,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		Items:     make([]OrderItemEvent, 0, len(o.Items)),
		Timestamp: time.Now().Unix(),
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderItemEvent{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return ev
}
