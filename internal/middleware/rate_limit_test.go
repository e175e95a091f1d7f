package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(2, 1)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow(), "bucket empty, request must be rejected")
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(2, 1)
	tb.Allow()
	tb.Allow()
	assert.False(t, tb.Allow())

	// 回拨补充时间，模拟 3 秒后的请求
	tb.mu.Lock()
	tb.lastRefill = time.Now().Add(-3 * time.Second)
	tb.mu.Unlock()

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	// 补充不超过桶容量
	assert.False(t, tb.Allow())
}
