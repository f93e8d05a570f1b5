package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order 订单簿中的一条挂单（价格 + 数量）
type Order struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
}

// OrderBook 单个标的的深度行情
// 买卖两侧各自保持调用方给出的顺序，核心不做排序。
// 保存语义为整体替换：新的买卖列表完全覆盖旧列表。
type OrderBook struct {
	InstrumentID string
	BidOrders    []Order
	AskOrders    []Order
	LastUpdated  time.Time
}

// NewOrderBook 创建订单簿实例
func NewOrderBook(instrumentID string, bids, asks []Order) *OrderBook {
	return &OrderBook{
		InstrumentID: instrumentID,
		BidOrders:    bids,
		AskOrders:    asks,
	}
}
