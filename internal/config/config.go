// Package config 负责加载和验证 YAML 配置文件。
// 配置在启动时构造一次，以指针形式传入授权客户端与连接管理器，不使用全局状态。
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAccessToken 访问令牌环境变量，设置时覆盖配置文件中的值
const EnvAccessToken = "UPSTOX_ACCESS_TOKEN"

// DefaultAuthorizeURL Upstox v3 行情推送授权地址
const DefaultAuthorizeURL = "https://api.upstox.com/v3/feed/market-data-feed/authorize"

// Config 应用配置根结构
type Config struct {
	// App 应用基础配置
	App AppConfig `yaml:"app"`
	// Upstox 授权接口配置
	Upstox UpstoxConfig `yaml:"upstox"`
	// WS WebSocket 连接配置
	WS WSConfig `yaml:"ws"`
	// Retry 重连预算
	Retry RetryConfig `yaml:"retry"`
	// Subscription 订阅配置
	Subscription SubscriptionConfig `yaml:"subscription"`
	// Output 输出配置
	Output OutputConfig `yaml:"output"`
	// Run 运行时长配置
	Run RunConfig `yaml:"run"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	// Name 应用名称，用于日志标识
	Name string `yaml:"name"`
	// LogLevel 日志级别: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// UpstoxConfig 授权接口配置
type UpstoxConfig struct {
	// AuthorizeURL 行情推送授权地址
	AuthorizeURL string `yaml:"authorize_url"`
	// AccessToken Bearer 令牌（建议通过 UPSTOX_ACCESS_TOKEN 注入）
	AccessToken string `yaml:"access_token"`
	// TimeoutMs 授权请求超时（毫秒）
	TimeoutMs int `yaml:"timeout_ms"`
	// InsecureSkipVerify 跳过 WebSocket 证书校验，仅用于调试
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// WSConfig WebSocket 连接配置
type WSConfig struct {
	// HandshakeTimeoutMs 握手超时（毫秒）
	HandshakeTimeoutMs int `yaml:"handshake_timeout_ms"`
	// ReceiveTimeoutMs 无消息多久后发送 ping（毫秒）
	ReceiveTimeoutMs int `yaml:"receive_timeout_ms"`
	// StaleTimeoutMs 无消息多久后判定连接失效并重连（毫秒）
	StaleTimeoutMs int `yaml:"stale_timeout_ms"`
	// WriteTimeoutMs 写超时（毫秒）
	WriteTimeoutMs int `yaml:"write_timeout_ms"`
	// SettleMs 连接建立后等待多久再发送订阅（毫秒），未配置时为 1000，0 表示不等待
	SettleMs *int `yaml:"settle_ms"`
	// QuoteBufferSize 行情输出通道缓冲
	QuoteBufferSize int `yaml:"quote_buffer_size"`
}

// RetryConfig 重连预算
type RetryConfig struct {
	// MaxAttempts 连续失败多少次后终止
	MaxAttempts int `yaml:"max_attempts"`
	// BackoffMs 每次重连前的固定等待（毫秒）
	BackoffMs int `yaml:"backoff_ms"`
}

// SubscriptionConfig 订阅配置
type SubscriptionConfig struct {
	// Mode ltpc, full, option_greeks, full_d30
	Mode string `yaml:"mode"`
	// InstrumentKeys 合约标识列表，为空时使用内置默认指数
	InstrumentKeys []string `yaml:"instrument_keys"`
	// GUID 订阅消息的关联 ID，为空时每次生成 UUID
	GUID string `yaml:"guid"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	// Dir 输出目录
	Dir string `yaml:"dir"`
	// QuotesEnabled 是否输出 quotes.jsonl
	QuotesEnabled bool `yaml:"quotes_enabled"`
	// MetricsEnabled 是否输出 metrics.jsonl
	MetricsEnabled bool `yaml:"metrics_enabled"`
	// MetricsIntervalMs 指标输出间隔（毫秒）
	MetricsIntervalMs int `yaml:"metrics_interval_ms"`
	// BufferSize 异步写入缓冲区大小
	BufferSize int `yaml:"buffer_size"`
}

// RunConfig 运行时长配置
type RunConfig struct {
	// DurationMs 运行时长（毫秒），0 表示一直运行
	DurationMs int64 `yaml:"duration_ms"`
}

// Load 从文件加载配置并验证
// 参数 path: 配置文件路径
// 返回: 解析后的配置对象，若失败则返回错误
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse 解析 YAML 内容，应用环境变量覆盖与默认值后验证
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyEnv()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}
	return &cfg, nil
}

// Default 返回只含默认值的配置（不含访问令牌）
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// applyEnv 使用环境变量覆盖敏感字段
func (c *Config) applyEnv() {
	if tok := strings.TrimSpace(os.Getenv(EnvAccessToken)); tok != "" {
		c.Upstox.AccessToken = tok
	}
}

// setDefaults 设置配置默认值
func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "market-feed-streamer"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}

	if c.Upstox.AuthorizeURL == "" {
		c.Upstox.AuthorizeURL = DefaultAuthorizeURL
	}
	if c.Upstox.TimeoutMs == 0 {
		c.Upstox.TimeoutMs = 10000 // 10 秒
	}

	if c.WS.HandshakeTimeoutMs == 0 {
		c.WS.HandshakeTimeoutMs = 10000 // 10 秒
	}
	if c.WS.ReceiveTimeoutMs == 0 {
		c.WS.ReceiveTimeoutMs = 30000 // 30 秒
	}
	if c.WS.StaleTimeoutMs == 0 {
		c.WS.StaleTimeoutMs = 60000 // 60 秒
	}
	if c.WS.WriteTimeoutMs == 0 {
		c.WS.WriteTimeoutMs = 5000
	}
	if c.WS.SettleMs == nil {
		settle := 1000
		c.WS.SettleMs = &settle
	}
	if c.WS.QuoteBufferSize == 0 {
		c.WS.QuoteBufferSize = 1000
	}

	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.BackoffMs == 0 {
		c.Retry.BackoffMs = 5000 // 5 秒，固定间隔
	}

	if c.Subscription.Mode == "" {
		c.Subscription.Mode = "full"
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "./output"
	}
	if c.Output.MetricsIntervalMs == 0 {
		c.Output.MetricsIntervalMs = 10000
	}
	if c.Output.BufferSize == 0 {
		c.Output.BufferSize = 1000
	}
}

// Validate 验证配置合法性
// 检查所有必填项和数值范围，一次性返回全部问题。
// 订阅模式与合约标识的语义校验由订阅构建器负责。
func (c *Config) Validate() error {
	var errs []string

	if u, err := url.Parse(c.Upstox.AuthorizeURL); err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		errs = append(errs, fmt.Sprintf("upstox.authorize_url: 无效的地址 '%s'", c.Upstox.AuthorizeURL))
	}
	if c.Upstox.TimeoutMs <= 0 {
		errs = append(errs, "upstox.timeout_ms: 超时必须为正数")
	}

	if c.WS.HandshakeTimeoutMs <= 0 {
		errs = append(errs, "ws.handshake_timeout_ms: 握手超时必须为正数")
	}
	if c.WS.ReceiveTimeoutMs <= 0 {
		errs = append(errs, "ws.receive_timeout_ms: 接收超时必须为正数")
	}
	if c.WS.StaleTimeoutMs <= c.WS.ReceiveTimeoutMs {
		errs = append(errs, fmt.Sprintf("ws.stale_timeout_ms: 失效阈值(%d)必须大于接收超时(%d)", c.WS.StaleTimeoutMs, c.WS.ReceiveTimeoutMs))
	}
	if c.WS.WriteTimeoutMs <= 0 {
		errs = append(errs, "ws.write_timeout_ms: 写超时必须为正数")
	}
	if c.WS.SettleMs != nil && *c.WS.SettleMs < 0 {
		errs = append(errs, "ws.settle_ms: 不能为负数")
	}
	if c.WS.QuoteBufferSize < 0 {
		errs = append(errs, "ws.quote_buffer_size: 不能为负数")
	}

	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, "retry.max_attempts: 必须为正数")
	}
	if c.Retry.BackoffMs < 0 {
		errs = append(errs, "retry.backoff_ms: 不能为负数")
	}

	for i, key := range c.Subscription.InstrumentKeys {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Sprintf("subscription.instrument_keys[%d]: 合约标识不能为空", i))
		}
	}

	if c.Output.MetricsIntervalMs <= 0 {
		errs = append(errs, "output.metrics_interval_ms: 必须为正数")
	}
	if c.Run.DurationMs < 0 {
		errs = append(errs, "run.duration_ms: 不能为负数")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.App.LogLevel)] {
		errs = append(errs, fmt.Sprintf("app.log_level: 无效的日志级别 '%s'，有效值: debug, info, warn, error", c.App.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("配置验证错误:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// AuthorizeTimeout 授权请求超时
func (c *Config) AuthorizeTimeout() time.Duration {
	return ms(c.Upstox.TimeoutMs)
}

// RunDuration 运行时长，0 表示不限
func (c *Config) RunDuration() time.Duration {
	return time.Duration(c.Run.DurationMs) * time.Millisecond
}

// HandshakeTimeout 握手超时
func (w *WSConfig) HandshakeTimeout() time.Duration { return ms(w.HandshakeTimeoutMs) }

// ReceiveTimeout 接收超时
func (w *WSConfig) ReceiveTimeout() time.Duration { return ms(w.ReceiveTimeoutMs) }

// StaleTimeout 连接失效阈值
func (w *WSConfig) StaleTimeout() time.Duration { return ms(w.StaleTimeoutMs) }

// WriteTimeout 写超时
func (w *WSConfig) WriteTimeout() time.Duration { return ms(w.WriteTimeoutMs) }

// Settle 订阅前等待
func (w *WSConfig) Settle() time.Duration {
	if w.SettleMs == nil {
		return 0
	}
	return ms(*w.SettleMs)
}

// Backoff 重连固定间隔
func (r *RetryConfig) Backoff() time.Duration { return ms(r.BackoffMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
