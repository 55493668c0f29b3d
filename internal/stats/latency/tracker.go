// Package latency 统计行情帧的时延分布。
// feed lag = 本机到达时间 - 上游 currentTs；frame gap = 相邻两帧的到达间隔。
package latency

import (
	"sort"
	"sync"

	"market-feed-streamer/internal/core/model"
	"market-feed-streamer/internal/util/timeutil"
)

// LatencyStats 时延统计快照（滚动窗口）
// 单位：毫秒。
type LatencyStats struct {
	// Count 样本总数（累计）
	Count int64 `json:"count"`

	// LagP50Ms 上游到本机的 P50 时延
	LagP50Ms float64 `json:"lag_p50_ms"`
	// LagP90Ms 上游到本机的 P90 时延
	LagP90Ms float64 `json:"lag_p90_ms"`
	// LagP99Ms 上游到本机的 P99 时延
	LagP99Ms float64 `json:"lag_p99_ms"`

	// GapP50Ms 帧间隔 P50
	GapP50Ms float64 `json:"gap_p50_ms"`
	// GapP99Ms 帧间隔 P99
	GapP99Ms float64 `json:"gap_p99_ms"`
	// GapMaxMs 窗口内最大帧间隔
	GapMaxMs float64 `json:"gap_max_ms"`
}

type rollingWindow struct {
	size  int
	buf   []int64
	pos   int
	count int64
	full  bool

	mu sync.Mutex
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{size: size, buf: make([]int64, 0, size)}
}

func (w *rollingWindow) add(v int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.count++
	if w.size <= 0 {
		return
	}

	if !w.full {
		w.buf = append(w.buf, v)
		if len(w.buf) == w.size {
			w.full = true
			w.pos = 0
		}
		return
	}

	w.buf[w.pos] = v
	w.pos = (w.pos + 1) % w.size
}

// quantiles 返回累计样本数与窗口内各分位数（最近秩法）
func (w *rollingWindow) quantiles(qs ...float64) (int64, []int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	values := make([]int64, len(qs))
	if len(w.buf) == 0 {
		return w.count, values
	}

	sorted := append([]int64(nil), w.buf...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	last := len(sorted) - 1
	for i, q := range qs {
		switch {
		case q <= 0:
			values[i] = sorted[0]
		case q >= 1:
			values[i] = sorted[last]
		default:
			values[i] = sorted[int(float64(last)*q)]
		}
	}
	return w.count, values
}

// Tracker 单条行情流的时延追踪器
// Add 由接收循环调用，Stats 可从其他 goroutine 并发读取。
type Tracker struct {
	lag *rollingWindow
	gap *rollingWindow

	mu            sync.Mutex
	lastArrivedNs int64
}

// NewTracker 创建时延追踪器
// 参数 windowSize: 滚动窗口大小（建议 10000）
func NewTracker(windowSize int) *Tracker {
	return &Tracker{
		lag: newRollingWindow(windowSize),
		gap: newRollingWindow(windowSize),
	}
}

// Add 记录一帧的时延样本
// 上游未提供 currentTs 时只记录帧间隔。
func (t *Tracker) Add(q *model.QuoteUpdate) {
	if q == nil || q.ArrivedAtUnixNs <= 0 {
		return
	}

	if lag, ok := timeutil.LagNs(q.CurrentTsUnixMs, q.ArrivedAtUnixNs); ok {
		t.lag.add(lag)
	}

	t.mu.Lock()
	prev := t.lastArrivedNs
	t.lastArrivedNs = q.ArrivedAtUnixNs
	t.mu.Unlock()

	if prev > 0 && q.ArrivedAtUnixNs >= prev {
		t.gap.add(q.ArrivedAtUnixNs - prev)
	}
}

// Stats 获取统计快照
func (t *Tracker) Stats() LatencyStats {
	count, lagQs := t.lag.quantiles(0.50, 0.90, 0.99)
	_, gapQs := t.gap.quantiles(0.50, 0.99, 1)

	return LatencyStats{
		Count:    count,
		LagP50Ms: nsToMs(lagQs[0]),
		LagP90Ms: nsToMs(lagQs[1]),
		LagP99Ms: nsToMs(lagQs[2]),
		GapP50Ms: nsToMs(gapQs[0]),
		GapP99Ms: nsToMs(gapQs[1]),
		GapMaxMs: nsToMs(gapQs[2]),
	}
}

func nsToMs(ns int64) float64 {
	return float64(ns) / 1_000_000.0
}
