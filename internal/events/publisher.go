package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/service"
)

// Publisher 把订单创建事件发到 RabbitMQ。
// 发送是尽力而为：订单此时已经提交，MQ 故障只记录日志和监控，不影响返回。
type Publisher struct {
	mqConn *amqp.Connection
}

// NewPublisher 创建事件发布器
func NewPublisher(mqConn *amqp.Connection) *Publisher {
	return &Publisher{mqConn: mqConn}
}

// OrderCreated 发布订单创建事件
func (p *Publisher) OrderCreated(ctx context.Context, o *order.Order) {
	if err := p.publish(ctx, NewOrderCreatedEvent(uuid.NewString(), o)); err != nil {
		service.GetMonitor().RecordMQError()
		zap.L().Warn("failed to publish order event",
			zap.Int64("order_id", o.ID),
			zap.Error(err))
	}
}

func (p *Publisher) publish(ctx context.Context, ev *OrderCreatedEvent) error {
	ch, err := p.mqConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(OrderQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(
		ctx,
		"",
		OrderQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
