package service

import (
	"sync"
	"time"
)

// Monitor 监控服务，用于统计错误和下单指标
type Monitor struct {
	mu sync.RWMutex

	// 错误统计
	DBErrors int64
	MQErrors int64
	TxErrors int64

	// 下单统计
	OrderRequests  int64
	OrdersPlaced   int64
	OrdersRejected int64
	StockConflicts int64

	// 时间统计
	LastDBError   time.Time
	LastMQError   time.Time
	LastTxError   time.Time
	LastOrderTime time.Time
}

var globalMonitor = &Monitor{}

// GetMonitor 获取全局监控实例
func GetMonitor() *Monitor {
	return globalMonitor
}

// RecordDBError 记录数据库错误
func (m *Monitor) RecordDBError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors++
	m.LastDBError = time.Now()
}

// RecordMQError 记录MQ错误
func (m *Monitor) RecordMQError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MQErrors++
	m.LastMQError = time.Now()
}

// RecordTxError 记录下单事务失败
func (m *Monitor) RecordTxError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TxErrors++
	m.LastTxError = time.Now()
}

// RecordOrderRequest 记录下单请求
func (m *Monitor) RecordOrderRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrderRequests++
	m.LastOrderTime = time.Now()
}

// RecordOrderPlaced 记录下单成功
func (m *Monitor) RecordOrderPlaced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrdersPlaced++
}

// RecordOrderRejected 记录下单被拒绝
func (m *Monitor) RecordOrderRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrdersRejected++
}

// RecordStockConflict 记录库存不足（含并发冲突）
func (m *Monitor) RecordStockConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StockConflicts++
}

// GetStats 获取统计信息
func (m *Monitor) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	successRate := float64(0)
	if m.OrderRequests > 0 {
		successRate = float64(m.OrdersPlaced) / float64(m.OrderRequests) * 100
	}

	return map[string]interface{}{
		"errors": map[string]interface{}{
			"db": m.DBErrors,
			"mq": m.MQErrors,
			"tx": m.TxErrors,
		},
		"orders": map[string]interface{}{
			"requests":        m.OrderRequests,
			"placed":          m.OrdersPlaced,
			"rejected":        m.OrdersRejected,
			"stock_conflicts": m.StockConflicts,
			"success_rate":    successRate,
		},
		"last_events": map[string]interface{}{
			"db_error":   m.LastDBError,
			"mq_error":   m.LastMQError,
			"tx_error":   m.LastTxError,
			"last_order": m.LastOrderTime,
		},
	}
}

// Reset 重置统计（用于测试或定期清理）
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors = 0
	m.MQErrors = 0
	m.TxErrors = 0
	m.OrderRequests = 0
	m.OrdersPlaced = 0
	m.OrdersRejected = 0
	m.StockConflicts = 0
}
