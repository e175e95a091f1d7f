package main

import (
	"context"
	"encoding/json"
	"log"

	"go.uber.org/zap"

	"github.com/Cdruetta/GCinsumos-page-back/internal/config"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
	"github.com/Cdruetta/GCinsumos-page-back/internal/events"
	"github.com/Cdruetta/GCinsumos-page-back/internal/infra/mq"
	"github.com/Cdruetta/GCinsumos-page-back/internal/logging"
	"github.com/Cdruetta/GCinsumos-page-back/internal/repository/mysql"
)

// lowStockThreshold 库存低于该值时告警，提醒补货
const lowStockThreshold = 5

func main() {
	logging.Init()

	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := mysql.Init(&cfg.MySQL)
	mqConn := mq.Init(&cfg.RabbitMQ)
	productRepo := mysql.NewProductRepository(db)

	ch, err := mqConn.Channel()
	if err != nil {
		zap.L().Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(events.OrderQueue, true, false, false, false, nil); err != nil {
		zap.L().Fatal("failed to declare queue", zap.Error(err))
	}

	// 手动确认模式（auto-ack=false）
	msgs, err := ch.Consume(events.OrderQueue, "", false, false, false, false, nil)
	if err != nil {
		zap.L().Fatal("failed to consume", zap.Error(err))
	}

	zap.L().Info("order worker started, waiting for messages")

	for d := range msgs {
		var ev events.OrderCreatedEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			zap.L().Warn("invalid message", zap.Error(err))
			// 消息格式错误，拒绝并丢弃
			_ = d.Nack(false, false)
			continue
		}
		handleEvent(context.Background(), productRepo, &ev)
		if err := d.Ack(false); err != nil {
			zap.L().Warn("failed to ack message", zap.Error(err))
		}
	}
}

func handleEvent(ctx context.Context, productRepo product.Repository, ev *events.OrderCreatedEvent) {
	zap.L().Info("order created",
		zap.String("event_id", ev.EventID),
		zap.Int64("order_id", ev.OrderID),
		zap.Int64("total", ev.Total),
		zap.Int("items", len(ev.Items)))

	// 检查本单涉及的商品是否需要补货
	for _, it := range ev.Items {
		p, err := productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			zap.L().Warn("get product failed", zap.Int64("product_id", it.ProductID), zap.Error(err))
			continue
		}
		if p.Stock < lowStockThreshold {
			zap.L().Warn("low stock",
				zap.Int64("product_id", p.ID),
				zap.String("name", p.Name),
				zap.Int64("stock", p.Stock))
		}
	}
}
