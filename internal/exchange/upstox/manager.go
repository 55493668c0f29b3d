package upstox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"market-feed-streamer/internal/config"
	"market-feed-streamer/internal/core/model"
	"market-feed-streamer/internal/stats/latency"
	"market-feed-streamer/internal/util/backoff"
	"market-feed-streamer/internal/util/timeutil"
)

var errStale = errors.New("连接失效：超过失效阈值未收到任何消息")

// SessionAuthorizer 获取一次性推送地址
type SessionAuthorizer interface {
	Authorize(ctx context.Context, credential string) (*FeedSession, error)
}

var _ SessionAuthorizer = (*Authorizer)(nil)

// Manager 行情连接管理器
// 一个 Manager 只持有一条连接、只运行一次。连接状态、重连预算与活性判定
// 只由 Run 所在的 goroutine 修改；其他 goroutine 通过 State 与 Metrics 只读访问。
type Manager struct {
	cfg        *config.Config
	authorizer SessionAuthorizer
	dialer     Dialer
	builder    *Builder
	decoder    *Decoder
	logger     *zap.Logger

	// budget 重连预算
	budget *backoff.Backoff
	// liveness 活性判定
	liveness *Liveness
	// tracker 时延统计
	tracker *latency.Tracker

	quotes chan *model.QuoteUpdate
	errs   chan error

	started  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once

	state        atomic.Int32
	onTransition func(from, to State)

	framesReceived atomic.Int64
	quotesEmitted  atomic.Int64
	decodeErrors   atomic.Int64
	pingsSent      atomic.Int64
	reconnects     atomic.Int64
	authorizations atomic.Int64
	lastFrameNs    atomic.Int64

	seq int64
	// decodeErrLog 解码错误日志采样：前 3 条，之后每 100 条或每分钟 1 条
	decodeErrLog rate.Sometimes
}

// NewManager 创建连接管理器
// 参数 cfg: 已验证的配置
// 参数 authorizer: 授权客户端
// 参数 dialer: 拨号器，为 nil 时使用 gorilla/websocket
// 参数 logger: 日志记录器
func NewManager(cfg *config.Config, authorizer SessionAuthorizer, dialer Dialer, logger *zap.Logger) *Manager {
	logger = logger.Named("upstox")
	if dialer == nil {
		dialer = NewWSDialer(cfg.WS.HandshakeTimeout(), cfg.Upstox.InsecureSkipVerify, logger)
	}
	return &Manager{
		cfg:          cfg,
		authorizer:   authorizer,
		dialer:       dialer,
		builder:      NewBuilder(cfg.Subscription.GUID),
		decoder:      NewDecoder(),
		logger:       logger,
		budget:       backoff.NewFixed(cfg.Retry.Backoff(), cfg.Retry.MaxAttempts),
		liveness:     NewLiveness(cfg.WS.ReceiveTimeout(), cfg.WS.StaleTimeout()),
		tracker:      latency.NewTracker(10000),
		quotes:       make(chan *model.QuoteUpdate, cfg.WS.QuoteBufferSize),
		errs:         make(chan error, 100),
		stopCh:       make(chan struct{}),
		decodeErrLog: rate.Sometimes{First: 3, Every: 100, Interval: time.Minute},
	}
}

// OnTransition 注册状态变化回调
// 必须在 Run 之前调用；回调在运行 goroutine 中同步执行，不应阻塞。
func (m *Manager) OnTransition(fn func(from, to State)) {
	m.onTransition = fn
}

// Quotes 行情更新通道，按到达顺序输出，Run 返回时关闭
func (m *Manager) Quotes() <-chan *model.QuoteUpdate {
	return m.quotes
}

// Errors 非致命错误通道（解码与连接错误），缓冲区满时丢弃，Run 返回时关闭
func (m *Manager) Errors() <-chan error {
	return m.errs
}

// State 当前连接状态
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Stop 请求停止，可重复调用
// 不再开始新的等待；已到达的消息照常处理，当前读取最多再等待一个接收超时，随后 Run 返回 nil。
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Metrics 获取连接指标快照
func (m *Manager) Metrics() ConnectionMetrics {
	var ageMs int64
	if last := m.lastFrameNs.Load(); last > 0 {
		ageMs = (timeutil.NowNano() - last) / 1_000_000
	}
	return ConnectionMetrics{
		State:            m.State().String(),
		FramesReceived:   m.framesReceived.Load(),
		QuotesEmitted:    m.quotesEmitted.Load(),
		DecodeErrorCount: m.decodeErrors.Load(),
		PingsSent:        m.pingsSent.Load(),
		ReconnectCount:   m.reconnects.Load(),
		AuthorizeCount:   m.authorizations.Load(),
		LastFrameAgeMs:   ageMs,
		Latency:          m.tracker.Stats(),
	}
}

// Run 运行行情流直到停止、运行时长到期或重连预算耗尽
// 参数 credential: 访问令牌
// 参数 instrumentKeys: 合约标识，为空时使用默认指数
// 参数 mode: 订阅模式，为空时为 full
// 参数 duration: 运行时长，0 表示不限
// 订阅参数非法时在任何网络请求之前返回 *ValidationError；预算耗尽返回 *RetriesExhaustedError；
// 停止、到期或 ctx 取消时返回 nil。
func (m *Manager) Run(ctx context.Context, credential string, instrumentKeys []string, mode Mode, duration time.Duration) error {
	if !m.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(m.errs)
	defer close(m.quotes)
	defer m.setState(StateTerminated)

	req, err := m.builder.Build(instrumentKeys, mode)
	if err != nil {
		return err
	}
	payload, err := req.Encode()
	if err != nil {
		return fmt.Errorf("编码订阅消息失败: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if duration > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, duration)
		defer cancelTimeout()
	}
	go func() {
		select {
		case <-m.stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	m.logger.Info("行情流启动",
		zap.String("mode", string(req.Data.Mode)),
		zap.Strings("instruments", req.Data.InstrumentKeys),
		zap.String("guid", req.GUID),
		zap.Duration("duration", duration),
		zap.Int("max_attempts", m.budget.MaxAttempts()))

	for {
		err := m.connectOnce(runCtx, credential, payload)
		if runCtx.Err() != nil {
			break
		}

		m.setState(StateReconnecting)
		m.emitErr(err)
		delay, ok := m.budget.Fail()
		if !ok {
			m.logger.Error("重连预算耗尽，停止行情流",
				zap.Int("attempts", m.budget.Attempt()),
				zap.Error(err))
			return &RetriesExhaustedError{Attempts: m.budget.Attempt(), Last: err}
		}

		m.logger.Warn("连接中断，准备重连",
			zap.Error(err),
			zap.Int("attempt", m.budget.Attempt()),
			zap.Int("max_attempts", m.budget.MaxAttempts()),
			zap.Duration("delay", delay))
		if !timeutil.Sleep(runCtx.Done(), delay) {
			break
		}
		m.reconnects.Add(1)
		m.setState(StateDisconnected)
	}

	m.logger.Info("行情流已停止",
		zap.Int64("frames", m.framesReceived.Load()),
		zap.Int64("quotes", m.quotesEmitted.Load()),
		zap.Int64("decode_errors", m.decodeErrors.Load()))
	return nil
}

// connectOnce 一次完整的 授权 → 连接 → 订阅 → 接收 周期
// 返回时连接已关闭；ctx 结束时返回值无意义。
func (m *Manager) connectOnce(ctx context.Context, credential string, payload []byte) error {
	m.setState(StateAuthorizing)
	m.authorizations.Add(1)
	session, err := m.authorizer.Authorize(ctx, credential)
	if err != nil {
		return err
	}

	m.setState(StateConnecting)
	conn, err := m.dialer.Dial(ctx, session.URI)
	if err != nil {
		return &SocketError{Kind: SocketOpenFailed, Err: err}
	}
	m.logger.Info("WebSocket 连接成功", zap.String("uri", redactURI(session.URI)))

	rd := startReader(conn, m.cfg.WS.WriteTimeout())
	defer func() {
		drained, closeErr := rd.close()
		if closeErr != nil {
			m.logger.Debug("关闭连接", zap.Error(closeErr))
		}
		if drained > 0 {
			m.logger.Debug("关闭连接时丢弃未处理的消息", zap.Int("count", drained))
		}
	}()

	m.setState(StateSubscribing)
	m.liveness.Reset(time.Now())

	// 上游在连接建立后需要短暂等待才接受订阅，期间的 market_info 照常处理
	if err := m.settle(ctx, rd); err != nil {
		return err
	}
	if ctx.Err() != nil {
		m.finish(ctx, rd)
		return nil
	}

	if err := conn.SetWriteDeadline(time.Now().Add(m.cfg.WS.WriteTimeout())); err != nil {
		return &SocketError{Kind: SocketTransport, Err: err}
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return &SocketError{Kind: SocketTransport, Err: fmt.Errorf("发送订阅请求失败: %w", err)}
	}
	m.logger.Info("订阅请求已发送", zap.Int("bytes", len(payload)))

	m.budget.Reset()
	m.setState(StateStreaming)

	return m.stream(ctx, conn, rd)
}

// settle 订阅前等待
func (m *Manager) settle(ctx context.Context, rd *reader) error {
	d := m.cfg.WS.Settle()
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return nil
		case ev, ok := <-rd.events:
			if !ok {
				return &SocketError{Kind: SocketClosed}
			}
			if err := m.handle(ctx, ev); err != nil {
				return err
			}
		}
	}
}

// stream 接收循环
// 等待时长取 接收超时/失效阈值 的剩余时间；运行时长到期通过 ctx 同步结束等待。
func (m *Manager) stream(ctx context.Context, conn Conn, rd *reader) error {
	timer := time.NewTimer(m.liveness.NextDeadline(time.Now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			m.finish(ctx, rd)
			return nil

		case ev, ok := <-rd.events:
			if !ok {
				return &SocketError{Kind: SocketClosed}
			}
			if err := m.handle(ctx, ev); err != nil {
				return err
			}

		case <-timer.C:
			now := time.Now()
			switch m.liveness.Check(now) {
			case VerdictStale:
				m.logger.Warn("连接失效，触发重连",
					zap.Duration("silence", now.Sub(m.liveness.LastFrame())),
					zap.Bool("ping_pending", m.liveness.PingPending()))
				return &SocketError{Kind: SocketTransport, Err: errStale}
			case VerdictSendPing:
				if err := conn.WriteControl(websocket.PingMessage, nil, now.Add(m.cfg.WS.WriteTimeout())); err != nil {
					return &SocketError{Kind: SocketTransport, Err: fmt.Errorf("发送 ping 失败: %w", err)}
				}
				m.liveness.MarkPingSent(now)
				m.pingsSent.Add(1)
				m.setState(StateAwaitingPong)
				m.logger.Debug("接收超时，已发送 ping")
			}
		}
		timer.Reset(m.liveness.NextDeadline(time.Now()))
	}
}

// finish 运行结束时的收尾
// 已排队的事件逐个处理；若是 Stop 触发，再等待当前读取的结果，
// 最长到接收超时（已发 ping 时到失效阈值）。运行时长到期只处理已排队的事件。
// 行情投递使用独立的 ctx，上限为一个接收超时。
func (m *Manager) finish(ctx context.Context, rd *reader) {
	deliver, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.WS.ReceiveTimeout())
	defer cancel()

	for len(rd.events) > 0 {
		ev, ok := <-rd.events
		if !ok {
			return
		}
		if err := m.handle(deliver, ev); err != nil {
			return
		}
	}

	select {
	case <-m.stopCh:
	default:
		return
	}

	timer := time.NewTimer(m.liveness.NextDeadline(time.Now()))
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-rd.events:
			if !ok {
				return
			}
			if err := m.handle(deliver, ev); err != nil {
				return
			}
			// 控制帧不算读取结果
			if ev.kind == inboundData || ev.kind == inboundText {
				return
			}
		case <-timer.C:
			m.logger.Debug("停止时等待读取超时")
			return
		case <-deliver.Done():
			return
		}
	}
}

// handle 处理一个入站事件
// 只有连接级错误会返回 error；单帧解码失败记录后继续。
func (m *Manager) handle(ctx context.Context, ev inbound) error {
	if ev.kind == inboundErr {
		if ctx.Err() != nil {
			return nil
		}
		return classifyReadError(ev.err)
	}

	m.liveness.OnFrameReceived(ev.at)
	m.lastFrameNs.Store(ev.at.UnixNano())
	if m.State() == StateAwaitingPong {
		m.setState(StateStreaming)
	}

	switch ev.kind {
	case inboundPong, inboundPing:
		return nil
	case inboundText:
		m.logger.Debug("收到文本消息，忽略", zap.Int("bytes", len(ev.data)))
		return nil
	}

	m.framesReceived.Add(1)
	q, err := m.decoder.Decode(ev.data)
	if err != nil {
		m.decodeErrors.Add(1)
		m.maybeLogDecodeError(err, ev.data)
		m.emitErr(err)
		return nil
	}

	m.seq++
	q.Seq = m.seq
	q.ArrivedAtUnixNs = ev.at.UnixNano()
	m.tracker.Add(q)

	if ce := m.logger.Check(zap.DebugLevel, "收到行情"); ce != nil {
		ce.Write(
			zap.Int64("seq", q.Seq),
			zap.Stringer("type", q.Type),
			zap.Int("feeds", len(q.Feeds)),
			zap.Int("bytes", len(ev.data)))
	}

	select {
	case m.quotes <- q:
		m.quotesEmitted.Add(1)
	case <-ctx.Done():
	}
	return nil
}

// setState 切换状态并通知观察者；Terminated 为终态
func (m *Manager) setState(to State) {
	from := State(m.state.Load())
	if from == to || from == StateTerminated {
		return
	}
	m.state.Store(int32(to))
	m.logger.Debug("连接状态变化", zap.Stringer("from", from), zap.Stringer("to", to))
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
}

// emitErr 非阻塞上报错误
func (m *Manager) emitErr(err error) {
	if err == nil {
		return
	}
	select {
	case m.errs <- err:
	default:
	}
}

// maybeLogDecodeError 采样记录解码失败的原始帧
func (m *Manager) maybeLogDecodeError(err error, data []byte) {
	m.decodeErrLog.Do(func() {
		sample := data
		if len(sample) > 64 {
			sample = sample[:64]
		}
		m.logger.Warn("解码行情帧失败（采样）",
			zap.Error(err),
			zap.Int64("total", m.decodeErrors.Load()),
			zap.Binary("head", sample))
	})
}
