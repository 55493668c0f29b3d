package upstox

import (
	"errors"
	"fmt"
)

// 哨兵错误
var (
	// ErrRetriesExhausted 重连预算耗尽，会话终止
	ErrRetriesExhausted = errors.New("重连次数已用尽")
	// ErrAlreadyRunning Run 只能调用一次
	ErrAlreadyRunning = errors.New("连接管理器已运行过")
)

// AuthErrorKind 授权失败类型
type AuthErrorKind int

const (
	// AuthTransport 网络或超时错误
	AuthTransport AuthErrorKind = iota
	// AuthMalformedResponse 响应不可解析、缺少地址或状态码异常
	AuthMalformedResponse
	// AuthUnauthorized 令牌被拒绝（401/403）
	AuthUnauthorized
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthTransport:
		return "transport"
	case AuthMalformedResponse:
		return "malformed_response"
	case AuthUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// AuthError 授权失败
type AuthError struct {
	Kind AuthErrorKind
	// StatusCode HTTP 状态码（传输错误时为 0）
	StatusCode int
	// Reason 上游错误说明（如有）
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("行情授权失败 (%s", e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status=%d", e.StatusCode)
	}
	msg += ")"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

// SocketErrorKind 连接失败类型
type SocketErrorKind int

const (
	// SocketOpenFailed 拨号或握手失败
	SocketOpenFailed SocketErrorKind = iota
	// SocketClosed 对端关闭连接
	SocketClosed
	// SocketTransport 读写错误、心跳失败或连接失效
	SocketTransport
)

func (k SocketErrorKind) String() string {
	switch k {
	case SocketOpenFailed:
		return "open_failed"
	case SocketClosed:
		return "closed"
	case SocketTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// SocketError 连接级错误，触发重连
type SocketError struct {
	Kind SocketErrorKind
	Err  error
}

func (e *SocketError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("WebSocket 错误 (%s)", e.Kind)
	}
	return fmt.Sprintf("WebSocket 错误 (%s): %v", e.Kind, e.Err)
}

func (e *SocketError) Unwrap() error { return e.Err }

// DecodeError 单帧解码失败，跳过该帧
type DecodeError struct {
	// Size 帧长度（字节）
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("解码行情帧失败 (%d 字节): %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError 订阅参数非法，在任何网络操作之前返回
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("订阅参数无效 %s: %s", e.Field, e.Reason)
}

// RetriesExhaustedError 终止原因
type RetriesExhaustedError struct {
	// Attempts 连续失败次数
	Attempts int
	// Last 最后一次失败原因
	Last error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("%v (连续失败 %d 次): %v", ErrRetriesExhausted, e.Attempts, e.Last)
}

func (e *RetriesExhaustedError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Last}
}
