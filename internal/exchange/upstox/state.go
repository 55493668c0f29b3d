package upstox

// State 连接状态
type State int32

const (
	// StateDisconnected 初始状态
	StateDisconnected State = iota
	// StateAuthorizing 正在获取推送地址
	StateAuthorizing
	// StateConnecting 正在建立 WebSocket 连接
	StateConnecting
	// StateSubscribing 连接已建立，正在发送订阅
	StateSubscribing
	// StateStreaming 正常接收行情
	StateStreaming
	// StateAwaitingPong 已发送 ping，等待任意入站消息
	StateAwaitingPong
	// StateReconnecting 连接失败，等待退避后重连
	StateReconnecting
	// StateTerminated 终态：主动停止、运行时长到期或重连预算耗尽
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateAuthorizing:
		return "authorizing"
	case StateConnecting:
		return "connecting"
	case StateSubscribing:
		return "subscribing"
	case StateStreaming:
		return "streaming"
	case StateAwaitingPong:
		return "awaiting_pong"
	case StateReconnecting:
		return "reconnecting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
