package jsonl

import (
	"market-feed-streamer/internal/core/model"
)

// QuoteRecord 行情输出行（每个合约一行）
type QuoteRecord struct {
	// Seq 帧序号
	Seq int64 `json:"seq"`
	// ArrivedAtUnixNs 本机到达时间（纳秒）
	ArrivedAtUnixNs int64 `json:"arrived_at_unix_ns"`
	// CurrentTsUnixMs 上游生成时间（毫秒）
	CurrentTsUnixMs int64 `json:"current_ts_unix_ms,omitempty"`
	// FeedType initial_feed / live_feed / market_info
	FeedType string `json:"feed_type"`
	// InstrumentKey 合约标识
	InstrumentKey string `json:"instrument_key"`
	// Kind ltpc / index_full / market_full / option_greeks
	Kind string `json:"kind"`

	LTP         float64 `json:"ltp"`
	LTTUnixMs   int64   `json:"ltt_unix_ms,omitempty"`
	LTQ         int64   `json:"ltq,omitempty"`
	ChangePoint float64 `json:"cp"`

	// BestBidPx/BestAskPx 一档买卖价（有深度时）
	BestBidPx float64 `json:"best_bid_px,omitempty"`
	BestAskPx float64 `json:"best_ask_px,omitempty"`

	ATP float64 `json:"atp,omitempty"`
	VTT int64   `json:"vtt,omitempty"`
	OI  float64 `json:"oi,omitempty"`
	IV  float64 `json:"iv,omitempty"`

	// Greeks 期权希腊值（非期权为空）
	Greeks *model.OptionGreeks `json:"greeks,omitempty"`
	// OHLC 按周期的开高低收
	OHLC []model.OHLC `json:"ohlc,omitempty"`
}

// SegmentRecord 市场状态输出行
type SegmentRecord struct {
	Seq             int64  `json:"seq"`
	ArrivedAtUnixNs int64  `json:"arrived_at_unix_ns"`
	FeedType        string `json:"feed_type"`
	Segment         string `json:"segment"`
	Status          string `json:"status"`
}

// Records 将一帧行情展开为输出行
// 行情行在前、市场状态行在后；同一帧内不保证合约顺序。
func Records(q *model.QuoteUpdate) []any {
	if q.IsEmpty() {
		return nil
	}

	out := make([]any, 0, len(q.Feeds)+1)
	for key, feed := range q.Feeds {
		out = append(out, quoteRecord(q, key, feed))
	}
	if q.MarketInfo != nil {
		for seg, st := range q.MarketInfo.SegmentStatus {
			out = append(out, SegmentRecord{
				Seq:             q.Seq,
				ArrivedAtUnixNs: q.ArrivedAtUnixNs,
				FeedType:        q.Type.String(),
				Segment:         seg,
				Status:          st.String(),
			})
		}
	}
	return out
}

func quoteRecord(q *model.QuoteUpdate, key string, feed model.Feed) QuoteRecord {
	ltpc := feed.Price()
	r := QuoteRecord{
		Seq:             q.Seq,
		ArrivedAtUnixNs: q.ArrivedAtUnixNs,
		CurrentTsUnixMs: q.CurrentTsUnixMs,
		FeedType:        q.Type.String(),
		InstrumentKey:   key,
		Kind:            model.FeedKind(feed),
		LTP:             ltpc.LTP,
		LTTUnixMs:       ltpc.LTT,
		LTQ:             ltpc.LTQ,
		ChangePoint:     ltpc.ChangePoint,
	}

	switch f := feed.(type) {
	case model.LTPCFeed:
	case model.IndexFull:
		r.OHLC = f.OHLC
	case model.MarketFull:
		if len(f.Depth) > 0 {
			r.BestBidPx = f.Depth[0].BidPx
			r.BestAskPx = f.Depth[0].AskPx
		}
		r.ATP, r.VTT, r.OI, r.IV = f.ATP, f.VTT, f.OI, f.IV
		if f.Greeks != (model.OptionGreeks{}) {
			g := f.Greeks
			r.Greeks = &g
		}
		r.OHLC = f.OHLC
	case model.OptionGreeksFeed:
		r.BestBidPx = f.FirstDepth.BidPx
		r.BestAskPx = f.FirstDepth.AskPx
		r.VTT, r.OI, r.IV = f.VTT, f.OI, f.IV
		g := f.Greeks
		r.Greeks = &g
	}
	return r
}
