package domain

import "context"

// PriceRepository 报价与订单簿的持久化端口
// 缺失的行以 (nil, nil) 表达，"not found" 不是错误。
type PriceRepository interface {
	// FindPrice 按标的查询报价，不存在返回 (nil, nil)
	FindPrice(ctx context.Context, instrumentID string) (*Price, error)
	// SavePrice 按标的 upsert，返回持久化后的报价
	SavePrice(ctx context.Context, price *Price) (*Price, error)
	// DeletePrice 删除报价，返回是否确有删除；删除不存在的行不是错误
	DeletePrice(ctx context.Context, instrumentID string) (bool, error)
	// FindAllPrices 返回全量报价快照，无分页、无排序保证
	FindAllPrices(ctx context.Context) ([]*Price, error)

	// FindOrderBook 按标的查询订单簿，不存在返回 (nil, nil)
	FindOrderBook(ctx context.Context, instrumentID string) (*OrderBook, error)
	// SaveOrderBook 整体替换式 upsert，旧的买卖列表被完全丢弃
	SaveOrderBook(ctx context.Context, orderBook *OrderBook) (*OrderBook, error)
}
