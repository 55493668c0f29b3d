package upstox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxAuthorizeBody 授权响应体上限
const maxAuthorizeBody = 1 << 20

// Authorizer 行情推送授权客户端
// 用 Bearer 令牌换取一次性 wss 地址。不缓存、不重试，重试策略由连接管理器负责。
type Authorizer struct {
	// endpoint 授权地址
	endpoint string
	// client HTTP 客户端
	client *http.Client
	// logger 日志记录器
	logger *zap.Logger
	// now 时钟（测试可替换）
	now func() time.Time
}

// NewAuthorizer 创建授权客户端
// 参数 endpoint: 授权地址，如 https://api.upstox.com/v3/feed/market-data-feed/authorize
// 参数 timeout: 单次请求超时
// 参数 logger: 日志记录器
func NewAuthorizer(endpoint string, timeout time.Duration, logger *zap.Logger) *Authorizer {
	return &Authorizer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.Named("authorize"),
		now:      time.Now,
	}
}

// Authorize 获取推送连接地址
// 成功要求 HTTP 2xx 且响应体包含 data.authorized_redirect_uri，缺一即失败。
// 返回的错误均为 *AuthError。
func (a *Authorizer) Authorize(ctx context.Context, credential string) (*FeedSession, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, &AuthError{Kind: AuthUnauthorized, Reason: "访问令牌为空"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpoint, nil)
	if err != nil {
		return nil, &AuthError{Kind: AuthTransport, Err: fmt.Errorf("创建请求失败: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("User-Agent", "market-feed-streamer/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &AuthError{Kind: AuthTransport, Err: fmt.Errorf("发送请求失败: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAuthorizeBody))
	if err != nil {
		return nil, &AuthError{Kind: AuthTransport, StatusCode: resp.StatusCode, Err: fmt.Errorf("读取响应体失败: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := AuthMalformedResponse
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = AuthUnauthorized
		}
		return nil, &AuthError{Kind: kind, StatusCode: resp.StatusCode, Reason: upstreamReason(body)}
	}

	var parsed authorizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &AuthError{Kind: AuthMalformedResponse, StatusCode: resp.StatusCode, Err: fmt.Errorf("解析响应失败: %w", err)}
	}
	if parsed.Data == nil || parsed.Data.AuthorizedRedirectURI == "" {
		return nil, &AuthError{Kind: AuthMalformedResponse, StatusCode: resp.StatusCode, Reason: "响应缺少 data.authorized_redirect_uri"}
	}

	uri := parsed.Data.AuthorizedRedirectURI
	if u, err := url.Parse(uri); err != nil || (u.Scheme != "wss" && u.Scheme != "ws") || u.Host == "" {
		return nil, &AuthError{Kind: AuthMalformedResponse, StatusCode: resp.StatusCode, Reason: "authorized_redirect_uri 不是 WebSocket 地址"}
	}

	a.logger.Info("行情授权成功", zap.String("host", redactURI(uri)))
	return &FeedSession{URI: uri, ObtainedAt: a.now()}, nil
}

// upstreamReason 提取上游错误说明
func upstreamReason(body []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || len(apiErr.Errors) == 0 {
		return ""
	}
	e := apiErr.Errors[0]
	if e.ErrorCode == "" {
		return e.Message
	}
	return e.ErrorCode + " " + e.Message
}

// redactURI 仅保留 scheme 与 host，授权地址中的一次性凭据不写入日志
func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// IsAuthError 判断是否为授权失败
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
