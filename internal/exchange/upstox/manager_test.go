package upstox

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"market-feed-streamer/internal/config"
	"market-feed-streamer/internal/core/model"
)

// feedServer 同时提供授权接口与推送连接的测试服务
type feedServer struct {
	*httptest.Server
	authCalls atomic.Int32
	conns     atomic.Int32
	subs      chan []byte
}

// newFeedServer 第 n 个连接（从 1 开始）交给 onConn 处理，返回后服务端关闭连接
func newFeedServer(t *testing.T, onConn func(fs *feedServer, conn *websocket.Conn, n int)) *feedServer {
	t.Helper()
	fs := &feedServer{subs: make(chan []byte, 16)}
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/authorize", func(w http.ResponseWriter, r *http.Request) {
		fs.authCalls.Add(1)
		uri := "ws" + strings.TrimPrefix(fs.URL, "http") + "/feed"
		_, _ = w.Write([]byte(`{"status":"success","data":{"authorized_redirect_uri":"` + uri + `"}}`))
	})
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		n := int(fs.conns.Add(1))
		onConn(fs, conn, n)
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

// readSubscription 读取客户端发送的订阅消息
func (fs *feedServer) readSubscription(conn *websocket.Conn) bool {
	typ, data, err := conn.ReadMessage()
	if err != nil {
		return false
	}
	if typ == websocket.BinaryMessage {
		fs.subs <- data
	}
	return true
}

// holdOpen 保持连接直到客户端关闭（期间自动回应 ping）
func holdOpen(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func testConfig(fs *feedServer) *config.Config {
	cfg := config.Default()
	cfg.Upstox.AuthorizeURL = fs.URL + "/authorize"
	noSettle(cfg)
	cfg.Retry.BackoffMs = 10
	return cfg
}

func noSettle(cfg *config.Config) {
	settle := 0
	cfg.WS.SettleMs = &settle
}

// chanConn 由测试直接投递消息的连接
type chanConn struct {
	frames    chan []byte
	writes    chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newChanConn() *chanConn {
	return &chanConn{
		frames: make(chan []byte, 8),
		writes: make(chan []byte, 8),
		closed: make(chan struct{}),
	}
}

func (c *chanConn) ReadMessage() (int, []byte, error) {
	select {
	case f := <-c.frames:
		return websocket.BinaryMessage, f, nil
	case <-c.closed:
		return 0, nil, net.ErrClosed
	}
}

func (c *chanConn) WriteMessage(_ int, data []byte) error {
	select {
	case c.writes <- data:
	default:
	}
	return nil
}

func (c *chanConn) WriteControl(int, []byte, time.Time) error { return nil }
func (c *chanConn) SetWriteDeadline(time.Time) error          { return nil }
func (c *chanConn) SetPongHandler(func(string) error)         {}
func (c *chanConn) SetPingHandler(func(string) error)         {}

func (c *chanConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

type chanDialer struct{ conn *chanConn }

func (d chanDialer) Dial(context.Context, string) (Conn, error) { return d.conn, nil }

type staticAuthorizer struct{}

func (staticAuthorizer) Authorize(context.Context, string) (*FeedSession, error) {
	return &FeedSession{URI: "wss://feed.test/v3", ObtainedAt: time.Now()}, nil
}

type runResult struct {
	err error
}

func startRun(m *Manager, keys []string, mode Mode, duration time.Duration) <-chan runResult {
	done := make(chan runResult, 1)
	go func() {
		done <- runResult{err: m.Run(context.Background(), "tok", keys, mode, duration)}
	}()
	return done
}

func waitRun(t *testing.T, done <-chan runResult) error {
	t.Helper()
	select {
	case r := <-done:
		return r.err
	case <-time.After(5 * time.Second):
		t.Fatal("Run 未在预期时间内返回")
		return nil
	}
}

// transitionLog 记录状态变化
type transitionLog struct {
	mu  sync.Mutex
	log [][2]State
}

func (l *transitionLog) record(from, to State) {
	l.mu.Lock()
	l.log = append(l.log, [2]State{from, to})
	l.mu.Unlock()
}

func (l *transitionLog) has(from, to State) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tr := range l.log {
		if tr[0] == from && tr[1] == to {
			return true
		}
	}
	return false
}

func TestManager_StreamThenReconnect(t *testing.T) {
	const key = "NSE_EQ|INE081A01020"
	fs := newFeedServer(t, func(fs *feedServer, conn *websocket.Conn, n int) {
		if !fs.readSubscription(conn) {
			return
		}
		if n == 1 {
			for i, ltp := range []float64{100.5, 101, 101.25} {
				_ = conn.WriteMessage(websocket.BinaryMessage, ltpcFrame(key, ltp, int64(1700000000000+i)))
			}
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
			return
		}
		holdOpen(conn)
	})

	m := NewManager(testConfig(fs), NewAuthorizer(fs.URL+"/authorize", time.Second, zap.NewNop()), nil, zap.NewNop())
	var tl transitionLog
	m.OnTransition(tl.record)
	done := startRun(m, []string{key}, ModeFull, 0)

	select {
	case sub := <-fs.subs:
		var req SubscriptionRequest
		require.NoError(t, json.Unmarshal(sub, &req))
		assert.NotEmpty(t, req.GUID)
		assert.Equal(t, "sub", req.Method)
		assert.Equal(t, ModeFull, req.Data.Mode)
		assert.Equal(t, []string{key}, req.Data.InstrumentKeys)
	case <-time.After(3 * time.Second):
		t.Fatal("未收到订阅消息")
	}

	var got []*model.QuoteUpdate
	for len(got) < 3 {
		select {
		case q := <-m.Quotes():
			got = append(got, q)
		case <-time.After(3 * time.Second):
			t.Fatalf("只收到 %d 条行情", len(got))
		}
	}
	for i, want := range []float64{100.5, 101, 101.25} {
		assert.Equal(t, int64(i+1), got[i].Seq)
		assert.Equal(t, want, got[i].Feeds[key].Price().LTP)
		assert.Positive(t, got[i].ArrivedAtUnixNs)
	}

	require.Eventually(t, func() bool { return fs.authCalls.Load() >= 2 && fs.conns.Load() >= 2 },
		3*time.Second, 5*time.Millisecond, "连接关闭后应重新授权并重连")
	require.Eventually(t, func() bool { return m.State() == StateStreaming }, 3*time.Second, 5*time.Millisecond)

	assert.True(t, tl.has(StateStreaming, StateReconnecting))
	assert.True(t, tl.has(StateReconnecting, StateDisconnected))
	assert.True(t, tl.has(StateDisconnected, StateAuthorizing))

	// 第二个连接也收到相同订阅
	select {
	case <-fs.subs:
	case <-time.After(3 * time.Second):
		t.Fatal("重连后未重新订阅")
	}

	m.Stop()
	require.NoError(t, waitRun(t, done))
	assert.Equal(t, StateTerminated, m.State())

	metrics := m.Metrics()
	assert.Equal(t, int64(3), metrics.FramesReceived)
	assert.Equal(t, int64(3), metrics.QuotesEmitted)
	assert.Equal(t, int64(1), metrics.ReconnectCount)
	assert.Equal(t, int64(2), metrics.AuthorizeCount)

	_, ok := <-m.Quotes()
	assert.False(t, ok, "Run 返回后 Quotes 应关闭")
}

func TestManager_RetriesExhausted(t *testing.T) {
	var authCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCalls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Upstox.AuthorizeURL = srv.URL
	cfg.Retry.BackoffMs = 5
	cfg.Retry.MaxAttempts = 3

	m := NewManager(cfg, NewAuthorizer(srv.URL, time.Second, zap.NewNop()), nil, zap.NewNop())
	var tl transitionLog
	m.OnTransition(tl.record)

	err := waitRun(t, startRun(m, nil, ModeLTPC, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))

	var re *RetriesExhaustedError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 3, re.Attempts)

	var ae *AuthError
	require.True(t, errors.As(err, &ae), "最后一次失败原因应可检查")
	assert.Equal(t, http.StatusServiceUnavailable, ae.StatusCode)

	assert.Equal(t, int32(3), authCalls.Load(), "预算耗尽后不应再授权")
	assert.Equal(t, StateTerminated, m.State())
	assert.True(t, tl.has(StateReconnecting, StateTerminated))
}

func TestManager_ValidationBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls.Add(1) }))
	defer srv.Close()

	cfg := config.Default()
	m := NewManager(cfg, NewAuthorizer(srv.URL, time.Second, zap.NewNop()), nil, zap.NewNop())

	err := m.Run(context.Background(), "tok", []string{"NSE_EQ|A"}, Mode("depth"), 0)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Zero(t, calls.Load())

	_, ok := <-m.Quotes()
	assert.False(t, ok)
	assert.ErrorIs(t, m.Run(context.Background(), "tok", nil, ModeFull, 0), ErrAlreadyRunning)
}

func TestManager_DurationBound(t *testing.T) {
	fs := newFeedServer(t, func(fs *feedServer, conn *websocket.Conn, n int) {
		holdOpen(conn)
	})

	m := NewManager(testConfig(fs), NewAuthorizer(fs.URL+"/authorize", time.Second, zap.NewNop()), nil, zap.NewNop())
	start := time.Now()
	err := waitRun(t, startRun(m, nil, ModeFull, 200*time.Millisecond))
	require.NoError(t, err)

	// 接收超时为 30s，运行时长仍应及时生效
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, StateTerminated, m.State())
}

func TestManager_PingOnSilence(t *testing.T) {
	fs := newFeedServer(t, func(fs *feedServer, conn *websocket.Conn, n int) {
		holdOpen(conn)
	})

	cfg := testConfig(fs)
	cfg.WS.ReceiveTimeoutMs = 50
	cfg.WS.StaleTimeoutMs = 5000

	m := NewManager(cfg, NewAuthorizer(fs.URL+"/authorize", time.Second, zap.NewNop()), nil, zap.NewNop())
	var tl transitionLog
	m.OnTransition(tl.record)
	done := startRun(m, nil, ModeFull, 0)

	require.Eventually(t, func() bool { return m.Metrics().PingsSent >= 2 }, 3*time.Second, 5*time.Millisecond)
	assert.True(t, tl.has(StateStreaming, StateAwaitingPong))
	assert.True(t, tl.has(StateAwaitingPong, StateStreaming), "收到 pong 后应回到 streaming")
	assert.Equal(t, int32(1), fs.conns.Load(), "有 pong 回应时不应重连")

	m.Stop()
	require.NoError(t, waitRun(t, done))
}

func TestManager_StaleConnection(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	fs := newFeedServer(t, func(fs *feedServer, conn *websocket.Conn, n int) {
		// 不读取，因此不会回应 ping
		<-release
	})

	cfg := testConfig(fs)
	cfg.WS.ReceiveTimeoutMs = 20
	cfg.WS.StaleTimeoutMs = 80
	cfg.Retry.MaxAttempts = 1

	m := NewManager(cfg, NewAuthorizer(fs.URL+"/authorize", time.Second, zap.NewNop()), nil, zap.NewNop())
	err := waitRun(t, startRun(m, nil, ModeFull, 0))

	require.ErrorIs(t, err, ErrRetriesExhausted)
	var se *SocketError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, SocketTransport, se.Kind)
	assert.ErrorIs(t, err, errStale)
	assert.GreaterOrEqual(t, m.Metrics().PingsSent, int64(1))
}

func TestManager_DecodeErrorIsolation(t *testing.T) {
	const key = "NSE_EQ|INE002A01018"
	fs := newFeedServer(t, func(fs *feedServer, conn *websocket.Conn, n int) {
		if !fs.readSubscription(conn) {
			return
		}
		good1 := ltpcFrame(key, 10, 1)
		bad := []byte{0x12, 0x7f, 0x0a}
		good2 := ltpcFrame(key, 11, 2)
		for _, f := range [][]byte{good1, bad, good2} {
			_ = conn.WriteMessage(websocket.BinaryMessage, f)
		}
		holdOpen(conn)
	})

	m := NewManager(testConfig(fs), NewAuthorizer(fs.URL+"/authorize", time.Second, zap.NewNop()), nil, zap.NewNop())
	done := startRun(m, []string{key}, ModeLTPC, 0)

	var ltps []float64
	for len(ltps) < 2 {
		select {
		case q := <-m.Quotes():
			ltps = append(ltps, q.Feeds[key].Price().LTP)
		case <-time.After(3 * time.Second):
			t.Fatal("未收到行情")
		}
	}
	assert.Equal(t, []float64{10, 11}, ltps)

	select {
	case err := <-m.Errors():
		var de *DecodeError
		assert.True(t, errors.As(err, &de), "期望 *DecodeError, got %v", err)
	case <-time.After(time.Second):
		t.Fatal("解码错误未上报")
	}

	m.Stop()
	require.NoError(t, waitRun(t, done))
	assert.Equal(t, int64(1), m.Metrics().DecodeErrorCount)
	assert.Equal(t, int32(1), fs.conns.Load(), "解码失败不应触发重连")
}

func TestManager_StopWaitsForPendingRead(t *testing.T) {
	const key = "NSE_EQ|INE467B01029"
	conn := newChanConn()
	cfg := config.Default()
	noSettle(cfg)

	m := NewManager(cfg, staticAuthorizer{}, chanDialer{conn: conn}, zap.NewNop())
	done := startRun(m, []string{key}, ModeLTPC, 0)

	select {
	case <-conn.writes:
	case <-time.After(3 * time.Second):
		t.Fatal("未收到订阅消息")
	}
	conn.frames <- ltpcFrame(key, 10, 1)
	select {
	case q := <-m.Quotes():
		assert.Equal(t, 10.0, q.Feeds[key].Price().LTP)
	case <-time.After(3 * time.Second):
		t.Fatal("未收到第一条行情")
	}

	// 停止时读取仍在等待，随后到达的消息也要交付
	m.Stop()
	time.Sleep(50 * time.Millisecond)
	conn.frames <- ltpcFrame(key, 11, 2)

	require.NoError(t, waitRun(t, done))
	var after []float64
	for q := range m.Quotes() {
		after = append(after, q.Feeds[key].Price().LTP)
	}
	assert.Equal(t, []float64{11}, after)
	assert.Equal(t, int64(2), m.Metrics().FramesReceived)
}

func TestManager_StopBoundedByReceiveTimeout(t *testing.T) {
	conn := newChanConn()
	cfg := config.Default()
	noSettle(cfg)
	cfg.WS.ReceiveTimeoutMs = 100
	cfg.WS.StaleTimeoutMs = 1000

	m := NewManager(cfg, staticAuthorizer{}, chanDialer{conn: conn}, zap.NewNop())
	done := startRun(m, nil, ModeFull, 0)
	require.Eventually(t, func() bool { return m.State() == StateStreaming }, 3*time.Second, 5*time.Millisecond)

	start := time.Now()
	m.Stop()
	require.NoError(t, waitRun(t, done))
	assert.Less(t, time.Since(start), 2*time.Second, "无消息到达时最多等待一个接收超时")
	assert.Equal(t, StateTerminated, m.State())
}
