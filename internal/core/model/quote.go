// Package model 定义行情流中使用的核心数据结构。
// 包含解码后的行情更新、各订阅模式对应的 Feed 变体以及市场状态。
package model

// FeedType 推送类型（对应上游 FeedResponse.type）
type FeedType int32

const (
	// FeedTypeInitial 订阅后的首个全量快照
	FeedTypeInitial FeedType = 0
	// FeedTypeLive 实时增量推送
	FeedTypeLive FeedType = 1
	// FeedTypeMarketInfo 市场状态推送（连接建立后首条消息）
	FeedTypeMarketInfo FeedType = 2
)

// String 返回推送类型名称
func (t FeedType) String() string {
	switch t {
	case FeedTypeInitial:
		return "initial_feed"
	case FeedTypeLive:
		return "live_feed"
	case FeedTypeMarketInfo:
		return "market_info"
	default:
		return "unknown"
	}
}

// MarketStatus 交易时段状态
type MarketStatus int32

const (
	MarketPreOpenStart MarketStatus = 0
	MarketPreOpenEnd   MarketStatus = 1
	MarketNormalOpen   MarketStatus = 2
	MarketNormalClose  MarketStatus = 3
	MarketClosingStart MarketStatus = 4
	MarketClosingEnd   MarketStatus = 5
)

// String 返回状态名称（与上游枚举名一致）
func (s MarketStatus) String() string {
	switch s {
	case MarketPreOpenStart:
		return "PRE_OPEN_START"
	case MarketPreOpenEnd:
		return "PRE_OPEN_END"
	case MarketNormalOpen:
		return "NORMAL_OPEN"
	case MarketNormalClose:
		return "NORMAL_CLOSE"
	case MarketClosingStart:
		return "CLOSING_START"
	case MarketClosingEnd:
		return "CLOSING_END"
	default:
		return "UNKNOWN"
	}
}

// LTPC 最新成交价及变动基准
type LTPC struct {
	// LTP 最新成交价
	LTP float64 `json:"ltp"`
	// LTT 最新成交时间（毫秒）
	LTT int64 `json:"ltt"`
	// LTQ 最新成交量
	LTQ int64 `json:"ltq"`
	// ChangePoint 涨跌计算基准价（前收盘价）
	ChangePoint float64 `json:"cp"`
}

// IsZero 判断 LTPC 是否全部为零值
// 上游在尚无成交时会推送全零 LTPC，这不是错误。
func (l LTPC) IsZero() bool {
	return l == LTPC{}
}

// Change 相对基准价的涨跌额
func (l LTPC) Change() float64 {
	if l.ChangePoint == 0 {
		return 0
	}
	return l.LTP - l.ChangePoint
}

// OHLC 某一周期的开高低收
type OHLC struct {
	// Interval 周期标识，如 1d、I1、I30
	Interval string  `json:"interval"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	// Volume 成交量
	Volume int64 `json:"vol"`
	// TsUnixMs 周期起始时间（毫秒）
	TsUnixMs int64 `json:"ts"`
}

// DepthLevel 买卖盘一档
type DepthLevel struct {
	BidQty int64
	BidPx  float64
	AskQty int64
	AskPx  float64
}

// OptionGreeks 期权希腊值
type OptionGreeks struct {
	Delta float64 `json:"delta"`
	Theta float64 `json:"theta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// Feed 单个合约的行情变体
// 封闭联合类型：只有本包内的类型实现 isFeed，消费方使用 type switch 穷举。
type Feed interface {
	isFeed()
	// Price 返回该变体携带的 LTPC
	Price() LTPC
}

// LTPCFeed ltpc 模式推送，仅含最新价
type LTPCFeed struct {
	LTPC LTPC
}

// IndexFull 指数 full 模式推送
type IndexFull struct {
	LTPC LTPC
	// OHLC 按周期的开高低收
	OHLC []OHLC
}

// MarketFull 证券/衍生品 full 模式推送
type MarketFull struct {
	LTPC LTPC
	// Depth 买卖盘深度（full 为 5 档，full_d30 为 30 档）
	Depth  []DepthLevel
	Greeks OptionGreeks
	OHLC   []OHLC
	// ATP 平均成交价
	ATP float64
	// VTT 当日累计成交量
	VTT int64
	// OI 持仓量
	OI float64
	// IV 隐含波动率
	IV float64
	// TBQ 总买量
	TBQ float64
	// TSQ 总卖量
	TSQ float64
}

// OptionGreeksFeed option_greeks 模式推送
type OptionGreeksFeed struct {
	LTPC       LTPC
	FirstDepth DepthLevel
	Greeks     OptionGreeks
	VTT        int64
	OI         float64
	IV         float64
}

func (LTPCFeed) isFeed()         {}
func (IndexFull) isFeed()        {}
func (MarketFull) isFeed()       {}
func (OptionGreeksFeed) isFeed() {}

func (f LTPCFeed) Price() LTPC         { return f.LTPC }
func (f IndexFull) Price() LTPC        { return f.LTPC }
func (f MarketFull) Price() LTPC       { return f.LTPC }
func (f OptionGreeksFeed) Price() LTPC { return f.LTPC }

// FeedKind 返回变体名称，用于日志与输出
func FeedKind(f Feed) string {
	switch f.(type) {
	case LTPCFeed:
		return "ltpc"
	case IndexFull:
		return "index_full"
	case MarketFull:
		return "market_full"
	case OptionGreeksFeed:
		return "option_greeks"
	default:
		return "unknown"
	}
}

// MarketInfo 各交易分段的状态
type MarketInfo struct {
	// SegmentStatus key 为分段（如 NSE_EQ），value 为状态
	SegmentStatus map[string]MarketStatus
}

// QuoteUpdate 一帧解码后的行情更新
// 每帧产生一个独立的新值，不与其他帧共享可变状态。
type QuoteUpdate struct {
	// Type 推送类型
	Type FeedType
	// Feeds key 为合约标识（如 NSE_EQ|INE081A01020）
	Feeds map[string]Feed
	// MarketInfo 市场状态，仅 market_info 推送携带
	MarketInfo *MarketInfo
	// CurrentTsUnixMs 上游生成时间（毫秒）
	CurrentTsUnixMs int64
	// ArrivedAtUnixNs 本机收到该帧的时间（纳秒）
	ArrivedAtUnixNs int64
	// Seq 本次运行中的帧序号（从 1 开始）
	Seq int64
}

// IsEmpty 判断更新是否不含任何行情与市场状态
func (q *QuoteUpdate) IsEmpty() bool {
	return q == nil || (len(q.Feeds) == 0 && q.MarketInfo == nil)
}
