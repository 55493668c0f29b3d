package upstox

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Conn 连接管理器使用的 WebSocket 连接方法子集
// ReadMessage 只由读取 goroutine 调用；WriteControl 与 Close 可与其他方法并发调用。
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	SetPingHandler(h func(appData string) error)
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

// Dialer 建立推送连接
type Dialer interface {
	Dial(ctx context.Context, uri string) (Conn, error)
}

// WSDialer 基于 gorilla/websocket 的拨号器
type WSDialer struct {
	dialer *websocket.Dialer
}

// NewWSDialer 创建拨号器
// 参数 handshakeTimeout: 握手超时
// 参数 insecureSkipVerify: 跳过证书校验（默认关闭，开启时记录警告）
func NewWSDialer(handshakeTimeout time.Duration, insecureSkipVerify bool, logger *zap.Logger) *WSDialer {
	d := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}
	if insecureSkipVerify {
		logger.Warn("已关闭 WebSocket 证书校验，仅限调试环境使用")
		d.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // 显式配置项
	}
	return &WSDialer{dialer: d}
}

// Dial 连接授权后的推送地址
func (d *WSDialer) Dial(ctx context.Context, uri string) (Conn, error) {
	header := http.Header{}
	header.Set("User-Agent", "market-feed-streamer/1.0")

	conn, resp, err := d.dialer.DialContext(ctx, uri, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("握手失败 (status=%d): %w", resp.StatusCode, err)
		}
		return nil, err
	}
	return conn, nil
}

// inboundKind 入站事件类型
type inboundKind int

const (
	inboundData inboundKind = iota
	inboundText
	inboundPong
	inboundPing
	inboundErr
)

// inbound 读取 goroutine 交给运行 goroutine 的事件
type inbound struct {
	kind inboundKind
	data []byte
	at   time.Time
	err  error
}

// reader 单个连接的读取泵
// 只负责把 ReadMessage 结果与控制帧通知按顺序送入 events，不触碰任何状态。
// 读取出错后关闭 events 并退出。
type reader struct {
	conn   Conn
	events chan inbound

	closeOnce sync.Once
	closeErr  error
}

// startReader 安装控制帧回调并启动读取 goroutine
func startReader(conn Conn, writeTimeout time.Duration) *reader {
	r := &reader{
		conn:   conn,
		events: make(chan inbound, 64),
	}

	conn.SetPongHandler(func(string) error {
		r.events <- inbound{kind: inboundPong, at: time.Now()}
		return nil
	})
	conn.SetPingHandler(func(appData string) error {
		r.events <- inbound{kind: inboundPing, at: time.Now()}
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(writeTimeout))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})

	go r.loop()
	return r
}

func (r *reader) loop() {
	defer close(r.events)
	for {
		typ, data, err := r.conn.ReadMessage()
		now := time.Now()
		if err != nil {
			r.events <- inbound{kind: inboundErr, err: err, at: now}
			return
		}
		kind := inboundData
		if typ == websocket.TextMessage {
			kind = inboundText
		}
		r.events <- inbound{kind: kind, data: data, at: now}
	}
}

// close 关闭连接并等待读取 goroutine 退出，返回未处理的事件数
func (r *reader) close() (int, error) {
	var drained int
	r.closeOnce.Do(func() {
		r.closeErr = r.conn.Close()
		for range r.events {
			drained++
		}
	})
	return drained, r.closeErr
}

// classifyReadError 读取错误归类
func classifyReadError(err error) *SocketError {
	var ce *websocket.CloseError
	if errors.As(err, &ce) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SocketError{Kind: SocketClosed, Err: err}
	}
	return &SocketError{Kind: SocketTransport, Err: err}
}
