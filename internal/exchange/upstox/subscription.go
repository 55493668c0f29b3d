package upstox

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Mode 订阅模式（封闭集合）
type Mode string

const (
	// ModeLTPC 仅最新价
	ModeLTPC Mode = "ltpc"
	// ModeFull 最新价、5 档深度、OHLC（默认）
	ModeFull Mode = "full"
	// ModeOptionGreeks 最新价、一档、希腊值
	ModeOptionGreeks Mode = "option_greeks"
	// ModeFullD30 30 档深度
	ModeFullD30 Mode = "full_d30"
)

// DefaultMode 未指定模式时使用
const DefaultMode = ModeFull

// methodSubscribe 订阅方法名
const methodSubscribe = "sub"

// DefaultInstrumentKeys 未指定合约时订阅的基准指数
var DefaultInstrumentKeys = []string{"NSE_INDEX|Nifty Bank", "NSE_INDEX|Nifty 50"}

// modeKeyLimits 单连接各模式可订阅的合约上限
var modeKeyLimits = map[Mode]int{
	ModeLTPC:         5000,
	ModeFull:         2000,
	ModeOptionGreeks: 3000,
	ModeFullD30:      50,
}

// ParseMode 解析模式字符串，空字符串返回默认模式
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return DefaultMode, nil
	}
	if _, ok := modeKeyLimits[m]; !ok {
		return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("不支持的订阅模式 '%s'，有效值: ltpc, full, option_greeks, full_d30", s)}
	}
	return m, nil
}

// Valid 是否为已知模式
func (m Mode) Valid() bool {
	_, ok := modeKeyLimits[m]
	return ok
}

// Builder 订阅消息构建器
// 纯数据构造，无网络与状态副作用。
type Builder struct {
	// guid 固定关联 ID，为空时每次生成 UUID
	guid string
}

// NewBuilder 创建订阅消息构建器
// 参数 guid: 固定关联 ID，为空时每次构建生成新的 UUID
func NewBuilder(guid string) *Builder {
	return &Builder{guid: guid}
}

// Build 构建订阅消息
// 参数 instrumentKeys: 合约标识（SEGMENT|ID），为空时使用 DefaultInstrumentKeys
// 参数 mode: 订阅模式，为空时使用 full；未知模式返回 *ValidationError
func (b *Builder) Build(instrumentKeys []string, mode Mode) (*SubscriptionRequest, error) {
	if mode == "" {
		mode = DefaultMode
	}
	if !mode.Valid() {
		return nil, &ValidationError{Field: "mode", Reason: fmt.Sprintf("不支持的订阅模式 '%s'", mode)}
	}

	if len(instrumentKeys) == 0 {
		instrumentKeys = DefaultInstrumentKeys
	}
	if limit := modeKeyLimits[mode]; len(instrumentKeys) > limit {
		return nil, &ValidationError{Field: "instrumentKeys", Reason: fmt.Sprintf("%s 模式最多订阅 %d 个合约，当前 %d 个", mode, limit, len(instrumentKeys))}
	}

	keys := make([]string, 0, len(instrumentKeys))
	seen := make(map[string]struct{}, len(instrumentKeys))
	for i, key := range instrumentKeys {
		if err := validateInstrumentKey(key); err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("instrumentKeys[%d]", i), Reason: err.Error()}
		}
		if _, dup := seen[key]; dup {
			return nil, &ValidationError{Field: fmt.Sprintf("instrumentKeys[%d]", i), Reason: fmt.Sprintf("重复的合约标识 '%s'", key)}
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	guid := b.guid
	if guid == "" {
		guid = uuid.NewString()
	}

	return &SubscriptionRequest{
		GUID:   guid,
		Method: methodSubscribe,
		Data: SubscriptionData{
			Mode:           mode,
			InstrumentKeys: keys,
		},
	}, nil
}

// validateInstrumentKey 校验 SEGMENT|ID 格式
func validateInstrumentKey(key string) error {
	segment, id, ok := strings.Cut(key, "|")
	if !ok {
		return fmt.Errorf("合约标识 '%s' 缺少分隔符 '|'", key)
	}
	if segment == "" || id == "" {
		return fmt.Errorf("合约标识 '%s' 的分段或代码为空", key)
	}
	if strings.ContainsAny(segment, " \t\n") || strings.Contains(id, "|") {
		return fmt.Errorf("合约标识 '%s' 格式无效", key)
	}
	return nil
}

// Segment 返回合约标识中的交易分段
func Segment(instrumentKey string) string {
	segment, _, _ := strings.Cut(instrumentKey, "|")
	return segment
}
