package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter 基于Redis的固定窗口限流器
type RedisLimiter struct {
	client    *redis.Client
	maxCount  int
	keyPrefix string
	window    time.Duration
}

// NewRedisLimiter 创建基于Redis的限流器
func NewRedisLimiter(client *redis.Client, maxCount int, keyPrefix string, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		maxCount:  maxCount,
		keyPrefix: keyPrefix,
		window:    window,
	}
}

// Allow 尝试在当前窗口内记一次请求
// 使用Lua脚本保证计数与过期时间设置的原子性
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.keyPrefix + key

	script := redis.NewScript(
		`local current = redis.call('GET', KEYS[1])
		if current == false then
			current = 0
		else
			current = tonumber(current)
		end

		if current >= tonumber(ARGV[1]) then
			return current + 1
		end

		local newCount = redis.call('INCR', KEYS[1])
		if newCount == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
		end
		return newCount`,
	)

	result, err := script.Run(ctx, rl.client, []string{redisKey}, rl.maxCount, int(rl.window.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	newCount := int(result.(int64))
	return newCount <= rl.maxCount, nil
}

// GetCurrent 获取当前窗口内的请求数
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	redisKey := rl.keyPrefix + key
	current, err := rl.client.Get(ctx, redisKey).Int()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("获取当前计数失败: %w", err)
	}
	if err == redis.Nil {
		return 0, nil
	}
	return current, nil
}
