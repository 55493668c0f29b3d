package upstox

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"google.golang.org/protobuf/encoding/protowire"

	"market-feed-streamer/internal/core/model"
	"market-feed-streamer/internal/exchange/upstox/upstoxpb"
)

func TestDecode_LTPC(t *testing.T) {
	d := NewDecoder()
	frame := encodeResponse(upstoxpb.Type_live_feed, 1700000000123, map[string]*upstoxpb.Feed{
		"NSE_EQ|INE081A01020": feedLTPC(pbLTPC(512.35, 1700000000100, 25, 505.1)),
	})

	q, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if q.Type != model.FeedTypeLive || q.CurrentTsUnixMs != 1700000000123 {
		t.Errorf("Type/CurrentTs = %v/%d", q.Type, q.CurrentTsUnixMs)
	}
	feed, ok := q.Feeds["NSE_EQ|INE081A01020"].(model.LTPCFeed)
	if !ok {
		t.Fatalf("期望 LTPCFeed，得到 %T", q.Feeds["NSE_EQ|INE081A01020"])
	}
	want := model.LTPC{LTP: 512.35, LTT: 1700000000100, LTQ: 25, ChangePoint: 505.1}
	if feed.LTPC != want {
		t.Errorf("LTPC = %+v, want %+v", feed.LTPC, want)
	}
}

func TestDecode_IndexFull(t *testing.T) {
	d := NewDecoder()
	frame := encodeResponse(upstoxpb.Type_initial_feed, 1, map[string]*upstoxpb.Feed{
		"NSE_INDEX|Nifty 50": feedIndexFull(
			pbLTPC(22000.5, 1, 0, 21900),
			pbOHLC("1d", 21950, 22050, 21900, 22000.5, 0, 1700000000000),
			pbOHLC("I1", 21990, 22001, 21989, 22000.5, 0, 1700000060000),
		),
	})

	q, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if q.Type != model.FeedTypeInitial {
		t.Errorf("Type = %v, want initial_feed", q.Type)
	}
	idx, ok := q.Feeds["NSE_INDEX|Nifty 50"].(model.IndexFull)
	if !ok {
		t.Fatalf("期望 IndexFull，得到 %T", q.Feeds["NSE_INDEX|Nifty 50"])
	}
	if idx.LTPC.LTP != 22000.5 {
		t.Errorf("LTP = %v", idx.LTPC.LTP)
	}
	if len(idx.OHLC) != 2 || idx.OHLC[0].Interval != "1d" || idx.OHLC[1].Interval != "I1" {
		t.Fatalf("OHLC = %+v", idx.OHLC)
	}
	if idx.OHLC[0].High != 22050 || idx.OHLC[1].TsUnixMs != 1700000060000 {
		t.Errorf("OHLC 字段错误: %+v", idx.OHLC)
	}
}

func TestDecode_MarketFull(t *testing.T) {
	d := NewDecoder()
	frame := encodeResponse(upstoxpb.Type_live_feed, 1, map[string]*upstoxpb.Feed{
		"NSE_FO|45450": feedMarketFull(
			pbLTPC(101.5, 2, 75, 99),
			pbQuote(150, 101.45, 300, 101.55),
			101.2, 123456, 98765.0,
		),
	})

	q, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	mf, ok := q.Feeds["NSE_FO|45450"].(model.MarketFull)
	if !ok {
		t.Fatalf("期望 MarketFull，得到 %T", q.Feeds["NSE_FO|45450"])
	}
	if mf.ATP != 101.2 || mf.VTT != 123456 || mf.OI != 98765.0 {
		t.Errorf("ATP/VTT/OI = %v/%v/%v", mf.ATP, mf.VTT, mf.OI)
	}
	wantDepth := []model.DepthLevel{{BidQty: 150, BidPx: 101.45, AskQty: 300, AskPx: 101.55}}
	if !reflect.DeepEqual(mf.Depth, wantDepth) {
		t.Errorf("Depth = %+v", mf.Depth)
	}
}

func TestDecode_OptionGreeks(t *testing.T) {
	flg := &upstoxpb.FirstLevelWithGreeks{
		Ltpc:         pbLTPC(88, 1, 1, 80),
		FirstDepth:   pbQuote(10, 87.9, 20, 88.1),
		OptionGreeks: &upstoxpb.OptionGreeks{Delta: 0.55, Theta: -12.3, Gamma: 0.002, Vega: 8.1, Rho: 0.4},
		Vtt:          5000,
		Oi:           1200,
		Iv:           0.17,
	}
	frame := encodeResponse(upstoxpb.Type_live_feed, 1, map[string]*upstoxpb.Feed{
		"NSE_FO|50001": {
			FeedUnion:   &upstoxpb.Feed_FirstLevelWithGreeks{FirstLevelWithGreeks: flg},
			RequestMode: upstoxpb.RequestMode_option_greeks,
		},
	})

	q, err := NewDecoder().Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	g, ok := q.Feeds["NSE_FO|50001"].(model.OptionGreeksFeed)
	if !ok {
		t.Fatalf("期望 OptionGreeksFeed，得到 %T", q.Feeds["NSE_FO|50001"])
	}
	want := model.OptionGreeks{Delta: 0.55, Theta: -12.3, Gamma: 0.002, Vega: 8.1, Rho: 0.4}
	if g.Greeks != want {
		t.Errorf("Greeks = %+v", g.Greeks)
	}
	if g.VTT != 5000 || g.OI != 1200 || g.IV != 0.17 || g.FirstDepth.AskPx != 88.1 {
		t.Errorf("OptionGreeksFeed = %+v", g)
	}
}

func TestDecode_MarketInfo(t *testing.T) {
	frame := marshalFrame(&upstoxpb.FeedResponse{
		Type:      upstoxpb.Type_market_info,
		CurrentTs: 1700000000000,
		MarketInfo: &upstoxpb.MarketInfo{SegmentStatus: map[string]upstoxpb.MarketStatus{
			"NSE_EQ": upstoxpb.MarketStatus_NORMAL_OPEN,
			"MCX_FO": upstoxpb.MarketStatus_PRE_OPEN_START,
		}},
	})

	q, err := NewDecoder().Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if q.Type != model.FeedTypeMarketInfo || q.MarketInfo == nil {
		t.Fatalf("QuoteUpdate = %+v", q)
	}
	want := map[string]model.MarketStatus{"NSE_EQ": model.MarketNormalOpen, "MCX_FO": model.MarketPreOpenStart}
	if !reflect.DeepEqual(q.MarketInfo.SegmentStatus, want) {
		t.Errorf("SegmentStatus = %v", q.MarketInfo.SegmentStatus)
	}
	if len(q.Feeds) != 0 {
		t.Errorf("market_info 不应包含 feeds: %v", q.Feeds)
	}
}

// TestFeedResponseSchema 生成代码中的字段号与上游 MarketDataFeedV3.proto 一致
func TestFeedResponseSchema(t *testing.T) {
	fields := (&upstoxpb.FeedResponse{}).ProtoReflect().Descriptor().Fields()
	feeds := fields.ByName("feeds")
	if feeds == nil || feeds.Number() != 2 || !feeds.IsMap() {
		t.Fatalf("feeds = %v", feeds)
	}
	if got := feeds.MapValue().Message().FullName(); got != "com.upstox.marketdatafeederv3udapi.rpc.proto.Feed" {
		t.Errorf("feeds value = %s", got)
	}
	if fd := fields.ByName("marketInfo"); fd == nil || fd.Number() != 4 {
		t.Errorf("marketInfo = %v", fd)
	}
	oneof := (&upstoxpb.Feed{}).ProtoReflect().Descriptor().Oneofs().ByName("FeedUnion")
	if oneof == nil || oneof.Fields().Len() != 3 {
		t.Errorf("FeedUnion = %v", oneof)
	}
}

func TestDecode_EmptyFrame(t *testing.T) {
	q, err := NewDecoder().Decode(nil)
	if err != nil {
		t.Fatalf("空帧不应报错: %v", err)
	}
	if q == nil || !q.IsEmpty() || q.Feeds == nil {
		t.Errorf("期望空且非 nil 的更新, got %+v", q)
	}
}

func TestDecode_SkipsUnknownFields(t *testing.T) {
	frame := ltpcFrame("NSE_EQ|INE002A01018", 2950.4, 1700000000000)
	frame = pbString(frame, 99, "future field")
	frame = pbDouble(frame, 100, 1.5)
	frame = protowire.AppendTag(frame, 101, protowire.Fixed32Type)
	frame = protowire.AppendFixed32(frame, 7)

	q, err := NewDecoder().Decode(frame)
	if err != nil {
		t.Fatalf("未知字段应被跳过: %v", err)
	}
	if q.Feeds["NSE_EQ|INE002A01018"].Price().LTP != 2950.4 {
		t.Errorf("Feeds = %+v", q.Feeds)
	}
}

// TestDecode_MismatchedWireType 已知字段号但线类型不符时按未知字段处理
func TestDecode_MismatchedWireType(t *testing.T) {
	ltpc := pbVarint(nil, 1, 100)
	ltpc = pbVarint(ltpc, 2, 1700000000000)
	entry := pbMessage(pbString(nil, 1, "NSE_EQ|A"), 2, pbMessage(nil, 1, ltpc))
	frame := pbMessage(pbDouble(nil, 1, 1), 2, entry)

	q, err := NewDecoder().Decode(frame)
	if err != nil {
		t.Fatalf("线类型不符的字段应被跳过: %v", err)
	}
	if q.Type != model.FeedTypeInitial {
		t.Errorf("Type = %v, want initial_feed", q.Type)
	}
	want := model.LTPC{LTT: 1700000000000}
	if got := q.Feeds["NSE_EQ|A"].Price(); got != want {
		t.Errorf("LTPC = %+v, want %+v", got, want)
	}
}

func TestDecode_DropsFeedWithoutVariant(t *testing.T) {
	// requestMode 之外没有任何分支
	frame := encodeResponse(upstoxpb.Type_live_feed, 1, map[string]*upstoxpb.Feed{
		"NSE_EQ|A": {RequestMode: upstoxpb.RequestMode_full_d5},
		"NSE_EQ|B": feedLTPC(pbLTPC(1, 1, 1, 1)),
		"NSE_EQ|C": {FeedUnion: &upstoxpb.Feed_FullFeed{FullFeed: &upstoxpb.FullFeed{}}},
	})

	q, err := NewDecoder().Decode(frame)
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if _, ok := q.Feeds["NSE_EQ|A"]; ok {
		t.Error("无分支的 feed 应被丢弃")
	}
	if _, ok := q.Feeds["NSE_EQ|C"]; ok {
		t.Error("fullFeed 无分支时应被丢弃")
	}
	if _, ok := q.Feeds["NSE_EQ|B"]; !ok {
		t.Error("有效 feed 丢失")
	}
}

func TestDecode_Errors(t *testing.T) {
	ltpcFeed := marshalFeed(feedLTPC(pbLTPC(1, 1, 1, 1)))
	// 生成代码拒绝序列化非 UTF-8 字符串，周期标识直接按字段拼接
	badOHLC := pbMessage(nil, 1, pbString(nil, 1, "\xc3\x28"))
	badIndex := pbMessage(nil, 2, pbMessage(nil, 2, pbMessage(nil, 2, badOHLC)))

	tests := []struct {
		name  string
		frame []byte
	}{
		{"缺少合约标识", pbMessage(nil, 2, pbMessage(nil, 2, ltpcFeed))},
		{"长度越界", []byte{0x12, 0x7f, 0x0a}},
		{"字段号为 0", []byte{0x00, 0x01}},
		{"varint 截断", []byte{0x08, 0xff}},
		{"孤立的 end group", []byte{0x0c}},
		{"无效 UTF-8 合约标识", pbMessage(nil, 2, pbMessage(pbString(nil, 1, "\xff\xfe"), 2, ltpcFeed))},
		{"无效 UTF-8 周期标识", pbMessage(nil, 2, pbMessage(pbString(nil, 1, "NSE_INDEX|Nifty 50"), 2, badIndex))},
	}
	d := NewDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := d.Decode(tt.frame)
			if err == nil {
				t.Fatalf("期望解码失败, got %+v", q)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("期望 *DecodeError, got %T", err)
			}
			if de.Size != len(tt.frame) {
				t.Errorf("Size = %d, want %d", de.Size, len(tt.frame))
			}
			if q != nil {
				t.Error("失败时不应返回更新")
			}
		})
	}
}

// TestDecode_Properties 解码器属性测试
func TestDecode_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	d := NewDecoder()

	properties.Property("任意字节不会导致 panic，且结果与错误互斥", prop.ForAll(
		func(b []byte) bool {
			q, err := d.Decode(b)
			if err != nil {
				var de *DecodeError
				return q == nil && errors.As(err, &de)
			}
			return q != nil
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("截断在最后一个嵌套字段内部时返回 DecodeError", prop.ForAll(
		func(ltp float64, ts int64, cut int) bool {
			head := marshalFrame(&upstoxpb.FeedResponse{Type: upstoxpb.Type_live_feed})
			frame := encodeResponse(upstoxpb.Type_live_feed, 0, map[string]*upstoxpb.Feed{
				"NSE_EQ|INE081A01020": feedLTPC(pbLTPC(ltp, ts, 1, ltp)),
			})
			lastField := len(frame) - len(head)
			n := len(head) + 1 + cut%(lastField-1)
			_, err := d.Decode(frame[:n])
			var de *DecodeError
			return errors.As(err, &de)
		},
		gen.Float64Range(0, 1e6),
		gen.Int64Range(0, 1<<45),
		gen.IntRange(0, 1000),
	))

	properties.Property("损坏一帧不影响其他帧的解码结果", prop.ForAll(
		func(prices []float64, k int) bool {
			if len(prices) == 0 {
				return true
			}
			k %= len(prices)
			frames := make([][]byte, len(prices))
			for i, p := range prices {
				frames[i] = ltpcFrame("NSE_EQ|INE081A01020", p, int64(i+1))
			}

			clean := make([]*model.QuoteUpdate, len(frames))
			for i, f := range frames {
				clean[i], _ = d.Decode(f)
			}

			frames[k] = frames[k][:len(frames[k])-3]
			for i, f := range frames {
				q, err := d.Decode(f)
				if i == k {
					if err == nil {
						return false
					}
					continue
				}
				if err != nil || !reflect.DeepEqual(q, clean[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Float64Range(1, 1e5)),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
