// Package upstoxpb Upstox 行情推送 v3 的 protobuf 消息
package upstoxpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative MarketDataFeedV3.proto
