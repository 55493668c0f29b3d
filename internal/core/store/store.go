// Package store 维护每个合约的最新行情与各分段的市场状态。
// 使用单写者模式避免锁和竞态条件。
package store

import (
	"sort"

	"market-feed-streamer/internal/core/model"
)

// Entry 某合约最近一次推送
type Entry struct {
	// Feed 最新行情变体
	Feed model.Feed
	// ArrivedAtUnixNs 该推送的到达时间（纳秒）
	ArrivedAtUnixNs int64
	// Updates 该合约累计收到的推送次数
	Updates int64
}

// Store 最新行情缓存（单写者）
// 注意：由消费行情的单个 goroutine 写入；跨 goroutine 读取请传递 Snapshot 的结果。
type Store struct {
	// quotes key 为合约标识
	quotes map[string]*Entry
	// segments key 为交易分段（如 NSE_EQ）
	segments map[string]model.MarketStatus
}

// New 创建新的行情缓存
func New() *Store {
	return &Store{
		quotes:   make(map[string]*Entry),
		segments: make(map[string]model.MarketStatus),
	}
}

// Update 合并一帧行情
// 返回本帧中 LTPC 仍为全零的合约（上游“尚无数据”的信号），按字典序排列。
func (s *Store) Update(q *model.QuoteUpdate) (emptyLTPC []string) {
	if q == nil {
		return nil
	}

	for key, feed := range q.Feeds {
		if key == "" || feed == nil {
			continue
		}
		e, ok := s.quotes[key]
		if !ok {
			e = &Entry{}
			s.quotes[key] = e
		}
		e.Feed = feed
		e.ArrivedAtUnixNs = q.ArrivedAtUnixNs
		e.Updates++

		if feed.Price().IsZero() {
			emptyLTPC = append(emptyLTPC, key)
		}
	}

	if q.MarketInfo != nil {
		for seg, status := range q.MarketInfo.SegmentStatus {
			s.segments[seg] = status
		}
	}

	sort.Strings(emptyLTPC)
	return emptyLTPC
}

// Get 获取指定合约的最新行情
// 返回值可能为 nil；返回的指针应视为只读。
func (s *Store) Get(instrumentKey string) *Entry {
	return s.quotes[instrumentKey]
}

// SegmentStatus 获取交易分段状态
func (s *Store) SegmentStatus(segment string) (model.MarketStatus, bool) {
	st, ok := s.segments[segment]
	return st, ok
}

// Len 已缓存的合约数量
func (s *Store) Len() int {
	return len(s.quotes)
}

// Snapshot 拷贝当前所有合约的最新 LTPC
func (s *Store) Snapshot() map[string]model.LTPC {
	out := make(map[string]model.LTPC, len(s.quotes))
	for k, e := range s.quotes {
		out[k] = e.Feed.Price()
	}
	return out
}
