package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit 按 IP 的滑动窗口限流中间件
// 每 IP 在 window 内最多 maxRequests 次请求，超过则返回 429
// ctx 结束时停止后台清理
func RateLimit(ctx context.Context, maxRequests int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(maxRequests, window)
	go limiter.cleanup(ctx, time.Minute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}

type slidingWindow struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	store       map[string][]time.Time
}

func newSlidingWindow(maxRequests int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		maxRequests: maxRequests,
		window:      window,
		store:       make(map[string][]time.Time),
	}
}

func (s *slidingWindow) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamps := prune(s.store[key], now.Add(-s.window))
	if len(timestamps) >= s.maxRequests {
		s.store[key] = timestamps
		return false
	}
	s.store[key] = append(timestamps, now)
	return true
}

// cleanup 定期清理过期数据
func (s *slidingWindow) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.evict(now)
		}
	}
}

func (s *slidingWindow) evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.window)
	for key, timestamps := range s.store {
		if kept := prune(timestamps, cutoff); len(kept) == 0 {
			delete(s.store, key)
		} else {
			s.store[key] = kept
		}
	}
}

// prune 移除窗口外的记录
func prune(timestamps []time.Time, cutoff time.Time) []time.Time {
	kept := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
