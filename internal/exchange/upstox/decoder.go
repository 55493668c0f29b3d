package upstox

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	"market-feed-streamer/internal/core/model"
	"market-feed-streamer/internal/exchange/upstox/upstoxpb"
)

var errMissingKey = errors.New("feeds 条目缺少合约标识")

// Decoder 行情帧解码器
// 帧按 upstoxpb.FeedResponse 反序列化，再映射到 model.Feed 联合类型。
// 未知字段按 protobuf 前向兼容规则丢弃；截断、非法 tag、非 UTF-8 字符串与缺少合约标识的条目返回 *DecodeError。
type Decoder struct {
	opts proto.UnmarshalOptions
}

// NewDecoder 创建解码器
func NewDecoder() *Decoder {
	return &Decoder{opts: proto.UnmarshalOptions{DiscardUnknown: true}}
}

// Decode 解码一帧
// 失败只影响本帧；不含任何行情的帧返回空的 QuoteUpdate 而非错误。
func (d *Decoder) Decode(frame []byte) (q *model.QuoteUpdate, err error) {
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, &DecodeError{Size: len(frame), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	var resp upstoxpb.FeedResponse
	if err := d.opts.Unmarshal(frame, &resp); err != nil {
		return nil, &DecodeError{Size: len(frame), Err: err}
	}

	q = &model.QuoteUpdate{
		Type:            model.FeedType(resp.GetType()),
		Feeds:           make(map[string]model.Feed, len(resp.GetFeeds())),
		CurrentTsUnixMs: resp.GetCurrentTs(),
	}
	for key, feed := range resp.GetFeeds() {
		if key == "" {
			return nil, &DecodeError{Size: len(frame), Err: errMissingKey}
		}
		// 没有任何 oneof 分支的条目不产生行情
		if f := convertFeed(feed); f != nil {
			q.Feeds[key] = f
		}
	}
	if info := resp.GetMarketInfo(); info != nil {
		q.MarketInfo = convertMarketInfo(info)
	}
	return q, nil
}

func convertFeed(feed *upstoxpb.Feed) model.Feed {
	switch u := feed.GetFeedUnion().(type) {
	case *upstoxpb.Feed_Ltpc:
		return model.LTPCFeed{LTPC: convertLTPC(u.Ltpc)}
	case *upstoxpb.Feed_FullFeed:
		switch ff := u.FullFeed.GetFullFeedUnion().(type) {
		case *upstoxpb.FullFeed_MarketFF:
			return convertMarketFull(ff.MarketFF)
		case *upstoxpb.FullFeed_IndexFF:
			return model.IndexFull{
				LTPC: convertLTPC(ff.IndexFF.GetLtpc()),
				OHLC: convertOHLC(ff.IndexFF.GetMarketOHLC()),
			}
		}
	case *upstoxpb.Feed_FirstLevelWithGreeks:
		g := u.FirstLevelWithGreeks
		return model.OptionGreeksFeed{
			LTPC:       convertLTPC(g.GetLtpc()),
			FirstDepth: convertQuote(g.GetFirstDepth()),
			Greeks:     convertGreeks(g.GetOptionGreeks()),
			VTT:        g.GetVtt(),
			OI:         g.GetOi(),
			IV:         g.GetIv(),
		}
	}
	return nil
}

func convertMarketFull(m *upstoxpb.MarketFullFeed) model.MarketFull {
	var depth []model.DepthLevel
	for _, q := range m.GetMarketLevel().GetBidAskQuote() {
		depth = append(depth, convertQuote(q))
	}
	return model.MarketFull{
		LTPC:   convertLTPC(m.GetLtpc()),
		Depth:  depth,
		Greeks: convertGreeks(m.GetOptionGreeks()),
		OHLC:   convertOHLC(m.GetMarketOHLC()),
		ATP:    m.GetAtp(),
		VTT:    m.GetVtt(),
		OI:     m.GetOi(),
		IV:     m.GetIv(),
		TBQ:    m.GetTbq(),
		TSQ:    m.GetTsq(),
	}
}

func convertLTPC(l *upstoxpb.LTPC) model.LTPC {
	return model.LTPC{
		LTP:         l.GetLtp(),
		LTT:         l.GetLtt(),
		LTQ:         l.GetLtq(),
		ChangePoint: l.GetCp(),
	}
}

func convertQuote(q *upstoxpb.Quote) model.DepthLevel {
	return model.DepthLevel{
		BidQty: q.GetBidQ(),
		BidPx:  q.GetBidP(),
		AskQty: q.GetAskQ(),
		AskPx:  q.GetAskP(),
	}
}

func convertGreeks(g *upstoxpb.OptionGreeks) model.OptionGreeks {
	return model.OptionGreeks{
		Delta: g.GetDelta(),
		Theta: g.GetTheta(),
		Gamma: g.GetGamma(),
		Vega:  g.GetVega(),
		Rho:   g.GetRho(),
	}
}

func convertOHLC(m *upstoxpb.MarketOHLC) []model.OHLC {
	var out []model.OHLC
	for _, o := range m.GetOhlc() {
		out = append(out, model.OHLC{
			Interval: o.GetInterval(),
			Open:     o.GetOpen(),
			High:     o.GetHigh(),
			Low:      o.GetLow(),
			Close:    o.GetClose(),
			Volume:   o.GetVol(),
			TsUnixMs: o.GetTs(),
		})
	}
	return out
}

func convertMarketInfo(info *upstoxpb.MarketInfo) *model.MarketInfo {
	out := &model.MarketInfo{SegmentStatus: make(map[string]model.MarketStatus, len(info.GetSegmentStatus()))}
	for segment, status := range info.GetSegmentStatus() {
		out.SegmentStatus[segment] = model.MarketStatus(status)
	}
	return out
}
