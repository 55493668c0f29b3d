package upstox

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	"market-feed-streamer/internal/exchange/upstox/upstoxpb"
)

// 测试用 FeedResponse 构造工具

func pbLTPC(ltp float64, ltt, ltq int64, cp float64) *upstoxpb.LTPC {
	return &upstoxpb.LTPC{Ltp: ltp, Ltt: ltt, Ltq: ltq, Cp: cp}
}

func pbOHLC(interval string, o, h, l, c float64, vol, ts int64) *upstoxpb.OHLC {
	return &upstoxpb.OHLC{Interval: interval, Open: o, High: h, Low: l, Close: c, Vol: vol, Ts: ts}
}

func pbQuote(bidQ int64, bidP float64, askQ int64, askP float64) *upstoxpb.Quote {
	return &upstoxpb.Quote{BidQ: bidQ, BidP: bidP, AskQ: askQ, AskP: askP}
}

// feedLTPC Feed{ltpc}
func feedLTPC(l *upstoxpb.LTPC) *upstoxpb.Feed {
	return &upstoxpb.Feed{FeedUnion: &upstoxpb.Feed_Ltpc{Ltpc: l}}
}

// feedIndexFull Feed{fullFeed{indexFF}}
func feedIndexFull(l *upstoxpb.LTPC, ohlc ...*upstoxpb.OHLC) *upstoxpb.Feed {
	idx := &upstoxpb.IndexFullFeed{Ltpc: l, MarketOHLC: &upstoxpb.MarketOHLC{Ohlc: ohlc}}
	return &upstoxpb.Feed{FeedUnion: &upstoxpb.Feed_FullFeed{
		FullFeed: &upstoxpb.FullFeed{FullFeedUnion: &upstoxpb.FullFeed_IndexFF{IndexFF: idx}},
	}}
}

// feedMarketFull Feed{fullFeed{marketFF}}，附带一档深度与 atp/vtt/oi
func feedMarketFull(l *upstoxpb.LTPC, depth *upstoxpb.Quote, atp float64, vtt int64, oi float64) *upstoxpb.Feed {
	mff := &upstoxpb.MarketFullFeed{
		Ltpc:        l,
		MarketLevel: &upstoxpb.MarketLevel{BidAskQuote: []*upstoxpb.Quote{depth}},
		Atp:         atp,
		Vtt:         vtt,
		Oi:          oi,
	}
	return &upstoxpb.Feed{FeedUnion: &upstoxpb.Feed_FullFeed{
		FullFeed: &upstoxpb.FullFeed{FullFeedUnion: &upstoxpb.FullFeed_MarketFF{MarketFF: mff}},
	}}
}

// marshalFrame 序列化 FeedResponse
func marshalFrame(resp *upstoxpb.FeedResponse) []byte {
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(resp)
	if err != nil {
		panic(err)
	}
	return b
}

// marshalFeed 序列化单个 Feed
func marshalFeed(feed *upstoxpb.Feed) []byte {
	b, err := proto.Marshal(feed)
	if err != nil {
		panic(err)
	}
	return b
}

// encodeResponse FeedResponse{type, feeds, currentTs}
func encodeResponse(typ upstoxpb.Type, ts int64, feeds map[string]*upstoxpb.Feed) []byte {
	return marshalFrame(&upstoxpb.FeedResponse{Type: typ, Feeds: feeds, CurrentTs: ts})
}

// ltpcFrame 单合约 ltpc 帧
func ltpcFrame(key string, ltp float64, ts int64) []byte {
	return encodeResponse(upstoxpb.Type_live_feed, ts, map[string]*upstoxpb.Feed{
		key: feedLTPC(pbLTPC(ltp, ts, 1, ltp-1)),
	})
}

// 以下按字段直接拼接字节，用于构造生成代码无法产生的帧

func pbMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func pbString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func pbVarint(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func pbDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}
