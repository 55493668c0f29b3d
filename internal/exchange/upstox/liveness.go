package upstox

import "time"

// 心跳阈值默认值
const (
	DefaultReceiveTimeout = 30 * time.Second
	DefaultStaleTimeout   = 60 * time.Second
)

// Verdict 连接健康判定
type Verdict int

const (
	// VerdictOK 连接正常
	VerdictOK Verdict = iota
	// VerdictSendPing 接收超时，需要发送 ping
	VerdictSendPing
	// VerdictStale 超过失效阈值，需要重连
	VerdictStale
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictSendPing:
		return "send_ping"
	case VerdictStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Liveness 连接活性判定
// 任何入站消息（数据帧、pong、ping）都刷新最后接收时间并清除待回应的 ping。
// 非并发安全：仅由连接管理器的运行 goroutine 使用。
type Liveness struct {
	receiveTimeout time.Duration
	staleTimeout   time.Duration

	lastFrame   time.Time
	pingPending bool
}

// NewLiveness 创建活性判定器，阈值非正时使用默认值
func NewLiveness(receiveTimeout, staleTimeout time.Duration) *Liveness {
	if receiveTimeout <= 0 {
		receiveTimeout = DefaultReceiveTimeout
	}
	if staleTimeout <= 0 {
		staleTimeout = DefaultStaleTimeout
	}
	return &Liveness{
		receiveTimeout: receiveTimeout,
		staleTimeout:   staleTimeout,
	}
}

// Reset 新连接建立时调用
func (l *Liveness) Reset(now time.Time) {
	l.lastFrame = now
	l.pingPending = false
}

// OnFrameReceived 记录一次入站消息
func (l *Liveness) OnFrameReceived(now time.Time) {
	l.lastFrame = now
	l.pingPending = false
}

// MarkPingSent 记录已发送 ping
func (l *Liveness) MarkPingSent(time.Time) {
	l.pingPending = true
}

// PingPending 是否有未回应的 ping
func (l *Liveness) PingPending() bool {
	return l.pingPending
}

// LastFrame 最后一次入站消息时间
func (l *Liveness) LastFrame() time.Time {
	return l.lastFrame
}

// Check 判定当前连接状态
// 超过失效阈值为 Stale；超过接收超时且没有待回应的 ping 时为 SendPing。
func (l *Liveness) Check(now time.Time) Verdict {
	elapsed := now.Sub(l.lastFrame)
	switch {
	case elapsed > l.staleTimeout:
		return VerdictStale
	case elapsed > l.receiveTimeout && !l.pingPending:
		return VerdictSendPing
	default:
		return VerdictOK
	}
}

// NextDeadline 距下一次需要判定的时间
// 未发送 ping 时为接收超时，已发送时为失效阈值。
func (l *Liveness) NextDeadline(now time.Time) time.Duration {
	limit := l.receiveTimeout
	if l.pingPending {
		limit = l.staleTimeout
	}
	d := l.lastFrame.Add(limit).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
