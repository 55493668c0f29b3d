// Package config 配置模块测试
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConfigValidation_Timeouts 测试超时参数验证
// 属性: 失效阈值必须严格大于接收超时
func TestConfigValidation_Timeouts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("失效阈值不大于接收超时应验证失败", prop.ForAll(
		func(receive int, delta int) bool {
			cfg := createValidConfig()
			cfg.WS.ReceiveTimeoutMs = receive
			cfg.WS.StaleTimeoutMs = receive - delta
			return cfg.Validate() != nil
		},
		gen.IntRange(1, 120000),
		gen.IntRange(0, 1000),
	))

	properties.Property("失效阈值大于接收超时应通过验证", prop.ForAll(
		func(receive int, delta int) bool {
			cfg := createValidConfig()
			cfg.WS.ReceiveTimeoutMs = receive
			cfg.WS.StaleTimeoutMs = receive + delta
			return cfg.Validate() == nil
		},
		gen.IntRange(1, 120000),
		gen.IntRange(1, 120000),
	))

	properties.Property("接收超时非正数应验证失败", prop.ForAll(
		func(receive int) bool {
			cfg := createValidConfig()
			cfg.WS.ReceiveTimeoutMs = receive
			return cfg.Validate() != nil
		},
		gen.IntRange(-1000, 0),
	))

	properties.TestingRun(t)
}

// TestConfigValidation_Retry 测试重连预算验证
func TestConfigValidation_Retry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("最大重试次数非正数应验证失败", prop.ForAll(
		func(n int) bool {
			cfg := createValidConfig()
			cfg.Retry.MaxAttempts = n
			return cfg.Validate() != nil
		},
		gen.IntRange(-100, 0),
	))

	properties.Property("有效重连预算应通过验证", prop.ForAll(
		func(n int, backoffMs int) bool {
			cfg := createValidConfig()
			cfg.Retry.MaxAttempts = n
			cfg.Retry.BackoffMs = backoffMs
			return cfg.Validate() == nil
		},
		gen.IntRange(1, 100),
		gen.IntRange(0, 600000),
	))

	properties.TestingRun(t)
}

// TestConfigValidation_AuthorizeURL 测试授权地址验证
func TestConfigValidation_AuthorizeURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{DefaultAuthorizeURL, false},
		{"http://127.0.0.1:8080/v3/feed/market-data-feed/authorize", false},
		{"", true},
		{"ftp://api.upstox.com/x", true},
		{"not a url", true},
	}
	for _, tt := range tests {
		cfg := createValidConfig()
		cfg.Upstox.AuthorizeURL = tt.url
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("url=%q: err=%v, wantErr=%v", tt.url, err, tt.wantErr)
		}
	}
}

// TestConfigValidation_CollectsAllErrors 一次返回全部问题
func TestConfigValidation_CollectsAllErrors(t *testing.T) {
	cfg := createValidConfig()
	cfg.Retry.MaxAttempts = 0
	cfg.App.LogLevel = "verbose"
	cfg.Subscription.InstrumentKeys = []string{"NSE_EQ|INE081A01020", " "}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("期望验证失败")
	}
	for _, field := range []string{"retry.max_attempts", "app.log_level", "subscription.instrument_keys[1]"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("错误信息缺少 %s: %v", field, err)
		}
	}
}

// createValidConfig 创建一个有效的配置用于测试
func createValidConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "test",
			LogLevel: "info",
		},
		Upstox: UpstoxConfig{
			AuthorizeURL: DefaultAuthorizeURL,
			AccessToken:  "token",
			TimeoutMs:    10000,
		},
		WS: WSConfig{
			HandshakeTimeoutMs: 10000,
			ReceiveTimeoutMs:   30000,
			StaleTimeoutMs:     60000,
			WriteTimeoutMs:     5000,
			SettleMs:           intPtr(1000),
			QuoteBufferSize:    1000,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			BackoffMs:   5000,
		},
		Subscription: SubscriptionConfig{
			Mode:           "full",
			InstrumentKeys: []string{"NSE_EQ|INE081A01020"},
		},
		Output: OutputConfig{
			Dir:               "./output",
			MetricsIntervalMs: 10000,
			BufferSize:        1000,
		},
	}
}

// TestLoad_ValidFile 测试从有效文件加载配置
func TestLoad_ValidFile(t *testing.T) {
	t.Setenv(EnvAccessToken, "")

	content := `
app:
  name: test-streamer
  log_level: debug

upstox:
  access_token: file-token
  insecure_skip_verify: true

ws:
  receive_timeout_ms: 20000

subscription:
  mode: ltpc
  instrument_keys:
    - NSE_EQ|INE081A01020
    - NSE_INDEX|Nifty 50

run:
  duration_ms: 60000
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("创建临时文件失败: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Name != "test-streamer" {
		t.Errorf("App.Name = %s, want test-streamer", cfg.App.Name)
	}
	if cfg.Upstox.AccessToken != "file-token" || !cfg.Upstox.InsecureSkipVerify {
		t.Errorf("Upstox = %+v", cfg.Upstox)
	}
	if len(cfg.Subscription.InstrumentKeys) != 2 || cfg.Subscription.Mode != "ltpc" {
		t.Errorf("Subscription = %+v", cfg.Subscription)
	}
	if cfg.WS.ReceiveTimeout() != 20*time.Second {
		t.Errorf("ReceiveTimeout = %v, want 20s", cfg.WS.ReceiveTimeout())
	}
	if cfg.RunDuration() != time.Minute {
		t.Errorf("RunDuration = %v, want 1m", cfg.RunDuration())
	}
}

// TestLoad_Defaults 测试默认值
func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAccessToken, "")

	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("解析空配置失败: %v", err)
	}

	if cfg.Upstox.AuthorizeURL != DefaultAuthorizeURL {
		t.Errorf("AuthorizeURL = %s", cfg.Upstox.AuthorizeURL)
	}
	if cfg.Upstox.InsecureSkipVerify {
		t.Error("默认必须校验证书")
	}
	if cfg.WS.ReceiveTimeout() != 30*time.Second || cfg.WS.StaleTimeout() != 60*time.Second {
		t.Errorf("超时默认值 = %v/%v, want 30s/60s", cfg.WS.ReceiveTimeout(), cfg.WS.StaleTimeout())
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.Backoff() != 5*time.Second {
		t.Errorf("重连预算默认值 = %d/%v, want 3/5s", cfg.Retry.MaxAttempts, cfg.Retry.Backoff())
	}
	if cfg.Subscription.Mode != "full" {
		t.Errorf("Mode = %s, want full", cfg.Subscription.Mode)
	}
	if cfg.WS.Settle() != time.Second {
		t.Errorf("Settle = %v, want 1s", cfg.WS.Settle())
	}
	if cfg.RunDuration() != 0 {
		t.Errorf("RunDuration = %v, want 0", cfg.RunDuration())
	}
}

// TestLoad_SettleDisabled 显式配置 0 时不等待
func TestLoad_SettleDisabled(t *testing.T) {
	cfg, err := Parse([]byte("ws:\n  settle_ms: 0\n"))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if cfg.WS.Settle() != 0 {
		t.Errorf("Settle = %v, want 0", cfg.WS.Settle())
	}

	cfg = createValidConfig()
	cfg.WS.SettleMs = intPtr(-1)
	if cfg.Validate() == nil {
		t.Error("负数等待应验证失败")
	}
}

// TestLoad_EnvOverridesToken 环境变量覆盖文件中的令牌
func TestLoad_EnvOverridesToken(t *testing.T) {
	t.Setenv(EnvAccessToken, "  env-token ")

	cfg, err := Parse([]byte("upstox:\n  access_token: file-token\n"))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if cfg.Upstox.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q, want env-token", cfg.Upstox.AccessToken)
	}
}

// TestLoad_InvalidFile 测试加载无效文件
func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("加载不存在的文件应返回错误")
	}
}

// TestLoad_InvalidYAML 测试加载无效 YAML
func TestLoad_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(tmpFile, []byte("invalid: yaml: content:"), 0644); err != nil {
		t.Fatalf("创建临时文件失败: %v", err)
	}

	_, err := Load(tmpFile)
	if err == nil {
		t.Error("加载无效 YAML 应返回错误")
	}
}

// TestDefault 默认配置可直接通过验证
func TestDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("默认配置验证失败: %v", err)
	}
}

func intPtr(v int) *int { return &v }
