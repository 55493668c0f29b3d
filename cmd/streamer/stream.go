package main

import (
	"errors"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"market-feed-streamer/internal/config"
	"market-feed-streamer/internal/core/model"
	"market-feed-streamer/internal/core/store"
	"market-feed-streamer/internal/exchange/upstox"
	"market-feed-streamer/internal/output/jsonl"
	"market-feed-streamer/internal/util/timeutil"
)

var streamCommand = &cli.Command{
	Name:  "stream",
	Usage: "授权、订阅并持续接收行情",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "duration",
			Usage: "运行时长，0 表示一直运行",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "订阅模式: ltpc, full, option_greeks, full_d30",
		},
		&cli.StringSliceFlag{
			Name:    "instrument",
			Aliases: []string{"i"},
			Usage:   "合约标识（可重复），如 NSE_EQ|INE081A01020",
		},
	},
	Action: runStream,
}

type metricsSnapshot struct {
	// TsUnixNs 指标采集时间（纳秒）
	TsUnixNs int64 `json:"ts_unix_ns"`
	// Connection 连接指标
	Connection upstox.ConnectionMetrics `json:"connection"`
	// Instruments 已收到行情的合约数
	Instruments int `json:"instruments"`
	// QuotesOutput quotes.jsonl 写入统计
	QuotesOutput *jsonl.Stats `json:"quotes_output,omitempty"`
	// LastPrices 各合约最新 LTPC，只在最后一条快照中输出
	LastPrices map[string]model.LTPC `json:"last_prices,omitempty"`
}

// applyFlags 命令行参数覆盖配置文件
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("duration") {
		cfg.Run.DurationMs = c.Duration("duration").Milliseconds()
	}
	if c.IsSet("mode") {
		cfg.Subscription.Mode = c.String("mode")
	}
	if c.IsSet("instrument") {
		cfg.Subscription.InstrumentKeys = c.StringSlice("instrument")
	}
}

func runStream(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 1)
	}

	logger := newLogger(cfg.App.LogLevel)
	defer logger.Sync()

	mode, err := upstox.ParseMode(cfg.Subscription.Mode)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if cfg.Upstox.AccessToken == "" {
		return cli.Exit("未提供访问令牌：请设置 "+config.EnvAccessToken+" 或 upstox.access_token", 1)
	}

	var quotesWriter, metricsWriter *jsonl.Writer
	if cfg.Output.QuotesEnabled {
		quotesWriter, err = jsonl.NewWriter(filepath.Join(cfg.Output.Dir, "quotes.jsonl"), cfg.Output.BufferSize)
		if err != nil {
			return cli.Exit(err, 1)
		}
		logger.Info("行情输出文件", zap.String("path", quotesWriter.Path()))
	}
	if cfg.Output.MetricsEnabled {
		metricsWriter, err = jsonl.NewWriter(filepath.Join(cfg.Output.Dir, "metrics.jsonl"), cfg.Output.BufferSize)
		if err != nil {
			_ = closeWriters(quotesWriter)
			return cli.Exit(err, 1)
		}
	}

	authorizer := upstox.NewAuthorizer(cfg.Upstox.AuthorizeURL, cfg.AuthorizeTimeout(), logger)
	mgr := upstox.NewManager(cfg, authorizer, nil, logger)
	mgr.OnTransition(func(from, to upstox.State) {
		logger.Info("连接状态变化", zap.Stringer("from", from), zap.Stringer("to", to))
	})

	// 捕获 SIGINT/SIGTERM，触发优雅退出
	sigCh := make(chan os.Signal, 2)
	ossignal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer ossignal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			logger.Info("收到退出信号，开始优雅关闭")
			mgr.Stop()
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- mgr.Run(c.Context, cfg.Upstox.AccessToken, cfg.Subscription.InstrumentKeys, mode, cfg.RunDuration())
	}()

	quoteStore := store.New()
	consume(logger, mgr, quoteStore, quotesWriter, metricsWriter, time.Duration(cfg.Output.MetricsIntervalMs)*time.Millisecond)
	err = <-runErr

	// 输出最后一条 metrics 快照
	if metricsWriter != nil {
		last := snapshot(mgr, quoteStore, quotesWriter)
		last.LastPrices = quoteStore.Snapshot()
		_ = metricsWriter.Write(last)
	}
	if closeErr := closeWriters(quotesWriter, metricsWriter); closeErr != nil {
		logger.Warn("关闭输出文件失败", zap.Error(closeErr))
	}

	final := mgr.Metrics()
	logger.Info("行情流结束",
		zap.Int64("frames", final.FramesReceived),
		zap.Int64("quotes", final.QuotesEmitted),
		zap.Int64("decode_errors", final.DecodeErrorCount),
		zap.Int64("reconnects", final.ReconnectCount),
		zap.Int("instruments", quoteStore.Len()))

	if err != nil {
		logger.Error("行情流异常终止", zap.Error(err))
		if upstox.IsAuthError(err) {
			logger.Error("授权失败，请检查访问令牌是否有效或已过期")
		}
		if errors.Is(err, upstox.ErrRetriesExhausted) {
			return cli.Exit(err, 2)
		}
		return cli.Exit(err, 1)
	}
	return nil
}

// consume 消费行情与错误直到 Quotes 关闭
func consume(
	logger *zap.Logger,
	mgr *upstox.Manager,
	quoteStore *store.Store,
	quotesWriter *jsonl.Writer,
	metricsWriter *jsonl.Writer,
	metricsInterval time.Duration,
) {
	ticker := time.NewTicker(metricsInterval)
	defer ticker.Stop()

	quotes := mgr.Quotes()
	errs := mgr.Errors()
	reported := make(map[string]bool)

	for {
		select {
		case q, ok := <-quotes:
			if !ok {
				return
			}
			handleQuote(logger, q, quoteStore, quotesWriter, reported)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			var de *upstox.DecodeError
			if errors.As(err, &de) {
				logger.Debug("跳过无法解码的帧", zap.Error(err))
				continue
			}
			logger.Warn("连接错误", zap.Error(err))

		case <-ticker.C:
			if metricsWriter != nil {
				metricsWriter.TryWrite(snapshot(mgr, quoteStore, quotesWriter))
			}
		}
	}
}

// handleQuote 合并行情并报告合约是否已有成交数据
// 每个合约的 有数据/无数据 状态只在变化时记录一次。
func handleQuote(logger *zap.Logger, q *model.QuoteUpdate, quoteStore *store.Store, quotesWriter *jsonl.Writer, reported map[string]bool) {
	empty := quoteStore.Update(q)
	emptySet := make(map[string]bool, len(empty))
	for _, key := range empty {
		emptySet[key] = true
	}

	for key, feed := range q.Feeds {
		live := !emptySet[key]
		if prev, seen := reported[key]; seen && prev == live {
			continue
		}
		reported[key] = live
		if live {
			price := feed.Price()
			fields := []zap.Field{
				zap.String("instrument", key),
				zap.String("kind", model.FeedKind(feed)),
				zap.Float64("ltp", price.LTP),
				zap.Float64("change", price.Change()),
				zap.Time("ltt", timeutil.MsToTime(price.LTT)),
			}
			if e := quoteStore.Get(key); e != nil {
				fields = append(fields, zap.Int64("updates", e.Updates))
			}
			if status, ok := quoteStore.SegmentStatus(upstox.Segment(key)); ok {
				fields = append(fields, zap.Stringer("segment_status", status))
			}
			logger.Info("合约收到实时数据", fields...)
		} else {
			logger.Info("合约 LTPC 为空（暂无成交）", zap.String("instrument", key))
		}
	}

	if q.MarketInfo != nil {
		for seg, status := range q.MarketInfo.SegmentStatus {
			logger.Info("市场状态", zap.String("segment", seg), zap.Stringer("status", status))
		}
	}

	if quotesWriter != nil {
		for _, rec := range jsonl.Records(q) {
			quotesWriter.TryWrite(rec)
		}
	}
}

func snapshot(mgr *upstox.Manager, quoteStore *store.Store, quotesWriter *jsonl.Writer) metricsSnapshot {
	s := metricsSnapshot{
		TsUnixNs:    timeutil.NowNano(),
		Connection:  mgr.Metrics(),
		Instruments: quoteStore.Len(),
	}
	if quotesWriter != nil {
		st := quotesWriter.Stats()
		s.QuotesOutput = &st
	}
	return s
}

// closeWriters 关闭全部输出并合并错误
func closeWriters(writers ...*jsonl.Writer) error {
	var err error
	for _, w := range writers {
		if w != nil {
			err = multierr.Append(err, w.Close())
		}
	}
	return err
}
