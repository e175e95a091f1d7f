package cache

import (
	"context"
	"encoding/json"

	radix "github.com/mediocregopher/radix/v3"
	"go.uber.org/zap"

	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
)

const productListKey = "catalog:list:all"

// ProductCache 无过滤条件的商品列表缓存。
// 只用于前台展示，下单路径永远不读缓存，库存以数据库为准。
type ProductCache struct {
	redis      radix.Client
	ttlSeconds int
}

// NewProductCache 创建商品列表缓存
func NewProductCache(redis radix.Client, ttlSeconds int) *ProductCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 30
	}
	return &ProductCache{redis: redis, ttlSeconds: ttlSeconds}
}

// GetList 读取缓存的商品列表，未命中返回 nil
func (c *ProductCache) GetList(ctx context.Context) []*product.Product {
	var raw string
	if err := c.redis.Do(radix.Cmd(&raw, "GET", productListKey)); err != nil {
		zap.L().Warn("product cache read failed", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}
	var list []*product.Product
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		// 缓存内容损坏，当作未命中并清掉
		_ = c.redis.Do(radix.Cmd(nil, "DEL", productListKey))
		return nil
	}
	return list
}

// SetList 写入商品列表缓存
func (c *ProductCache) SetList(ctx context.Context, list []*product.Product) {
	body, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.redis.Do(radix.FlatCmd(nil, "SETEX", productListKey, c.ttlSeconds, body)); err != nil {
		zap.L().Warn("product cache write failed", zap.Error(err))
	}
}

// Invalidate 商品写操作后使缓存失效
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.redis.Do(radix.Cmd(nil, "DEL", productListKey)); err != nil {
		zap.L().Warn("product cache invalidate failed", zap.Error(err))
	}
}
