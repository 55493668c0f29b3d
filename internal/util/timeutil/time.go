// Package timeutil 提供时间相关的工具函数。
// 用于为收到的帧打本机时间戳，以及换算上游毫秒时间戳。
package timeutil

import (
	"time"
)

var (
	// baseTime 进程启动时的时间点（包含单调时钟读数）
	baseTime = time.Now()
	// baseUnixNs baseTime 对应的 Unix 纳秒时间戳
	baseUnixNs = baseTime.UnixNano()
)

// NowNano 获取当前 Unix 纳秒时间戳
// 基于单调时钟推算，系统时间跳变时帧间隔仍保持单调。
func NowNano() int64 {
	return baseUnixNs + time.Since(baseTime).Nanoseconds()
}

// MsToTime 将上游毫秒时间戳转换为 time.Time
// 0 表示上游未提供，返回零值。
func MsToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// LagNs 计算上游生成时间到本机到达时间的延迟（纳秒）
// 参数 exchMs: 上游时间戳（毫秒），<=0 时返回 false
// 参数 arrivedNs: 本机到达时间（纳秒）
func LagNs(exchMs, arrivedNs int64) (int64, bool) {
	if exchMs <= 0 || arrivedNs <= 0 {
		return 0, false
	}
	return arrivedNs - exchMs*1_000_000, true
}

// Sleep 可取消的等待
// 返回 false 表示在等待结束前 done 被关闭。
func Sleep(done <-chan struct{}, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-done:
		return false
	case <-t.C:
		return true
	}
}
