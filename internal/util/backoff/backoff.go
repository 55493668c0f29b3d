// Package backoff 实现带重试预算的重连退避。
// 连接失败后按策略计算等待时间，并在失败次数达到上限后宣告预算耗尽。
// 行情流默认使用固定 5s 间隔、最多 3 次（base=max，jitter=0）。
package backoff

import (
	"math/rand"
	"time"
)

// Backoff 重试预算与退避计算器
// 非并发安全：由连接管理器的单个 goroutine 独占使用。
type Backoff struct {
	// base 基础等待时间
	base time.Duration
	// max 最大等待时间（base == max 时退化为固定间隔）
	max time.Duration
	// jitter 抖动比例（0-1）
	jitter float64
	// maxAttempts 最大连续失败次数，<=0 表示不限
	maxAttempts int
	// attempt 已记录的连续失败次数
	attempt int
}

// New 创建指数退避计算器
// 参数 base: 基础等待时间
// 参数 max: 最大等待时间
// 参数 jitter: 抖动比例（0.2 表示 ±20%）
// 参数 maxAttempts: 最大连续失败次数，<=0 表示不限
func New(base, max time.Duration, jitter float64, maxAttempts int) *Backoff {
	if max < base {
		max = base
	}
	return &Backoff{
		base:        base,
		max:         max,
		jitter:      jitter,
		maxAttempts: maxAttempts,
	}
}

// NewFixed 创建固定间隔的重试预算
// 参数 delay: 每次重试前的等待时间
// 参数 maxAttempts: 最大连续失败次数
func NewFixed(delay time.Duration, maxAttempts int) *Backoff {
	return New(delay, delay, 0, maxAttempts)
}

// Fail 记录一次失败并返回下次重试前的等待时间
// 第二个返回值为 false 表示预算已耗尽，不应再重试。
func (b *Backoff) Fail() (time.Duration, bool) {
	b.attempt++
	if b.Exhausted() {
		return 0, false
	}
	return b.delay(b.attempt - 1), true
}

// delay 计算第 n 次失败（从 0 开始）后的等待时间: base * 2^n，不超过 max
func (b *Backoff) delay(n int) time.Duration {
	delay := b.max
	if n < 62 && b.base <= b.max>>uint(n) {
		delay = b.base << uint(n)
	}

	if b.jitter > 0 {
		factor := 1.0 + (rand.Float64()*2-1)*b.jitter
		delay = time.Duration(float64(delay) * factor)
	}
	return delay
}

// Reset 清零失败计数
// 仅在完整连接并订阅成功后调用。
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Attempt 当前连续失败次数
func (b *Backoff) Attempt() int {
	return b.attempt
}

// MaxAttempts 最大连续失败次数
func (b *Backoff) MaxAttempts() int {
	return b.maxAttempts
}

// Exhausted 预算是否已耗尽
func (b *Backoff) Exhausted() bool {
	return b.maxAttempts > 0 && b.attempt >= b.maxAttempts
}
