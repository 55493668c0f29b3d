// Package upstox 实现 Upstox v3 行情推送客户端。
// 授权地址: GET /v3/feed/market-data-feed/authorize
// 推送格式: protobuf FeedResponse（二进制帧）
// 心跳机制: 30 秒无消息发送协议层 ping，60 秒无消息判定失效并重连
package upstox

import (
	"encoding/json"
	"time"

	"market-feed-streamer/internal/stats/latency"
)

// FeedSession 一次性的推送连接授权
// 每次连接都重新获取，不跨重连复用。
type FeedSession struct {
	// URI 授权后的 wss 地址
	URI string
	// ObtainedAt 获取时间
	ObtainedAt time.Time
}

// authorizeResponse 授权接口成功响应
// {"status":"success","data":{"authorized_redirect_uri":"wss://..."}}
type authorizeResponse struct {
	Status string `json:"status"`
	Data   *struct {
		AuthorizedRedirectURI string `json:"authorized_redirect_uri"`
	} `json:"data"`
}

// apiErrorResponse 授权接口错误响应
// {"status":"error","errors":[{"errorCode":"UDAPI100050","message":"Invalid token used to access API"}]}
type apiErrorResponse struct {
	Status string `json:"status"`
	Errors []struct {
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
	} `json:"errors"`
}

// SubscriptionData 订阅消息 data 字段
type SubscriptionData struct {
	// Mode 订阅模式
	Mode Mode `json:"mode"`
	// InstrumentKeys 合约标识列表
	InstrumentKeys []string `json:"instrumentKeys"`
}

// SubscriptionRequest 订阅控制消息
// 以 UTF-8 JSON 编码后作为二进制帧发送。
type SubscriptionRequest struct {
	// GUID 关联 ID，协议只要求存在，不要求唯一
	GUID string `json:"guid"`
	// Method 固定为 sub
	Method string `json:"method"`
	// Data 订阅内容
	Data SubscriptionData `json:"data"`
}

// Encode 编码为线上格式
func (r *SubscriptionRequest) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// ConnectionMetrics 连接质量指标
type ConnectionMetrics struct {
	// State 当前连接状态
	State string `json:"state"`
	// FramesReceived 收到的数据帧数
	FramesReceived int64 `json:"frames_received"`
	// QuotesEmitted 成功解码并输出的更新数
	QuotesEmitted int64 `json:"quotes_emitted"`
	// DecodeErrorCount 解码失败次数
	DecodeErrorCount int64 `json:"decode_error_count"`
	// PingsSent 发送的 ping 次数
	PingsSent int64 `json:"pings_sent"`
	// ReconnectCount 重连次数
	ReconnectCount int64 `json:"reconnect_count"`
	// AuthorizeCount 授权请求次数
	AuthorizeCount int64 `json:"authorize_count"`
	// LastFrameAgeMs 最后一帧距今时间（毫秒）
	LastFrameAgeMs int64 `json:"last_frame_age_ms"`
	// Latency 时延统计
	Latency latency.LatencyStats `json:"latency"`
}
