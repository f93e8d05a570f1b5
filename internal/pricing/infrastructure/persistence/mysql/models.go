package mysql

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/priceservice/internal/pricing/domain"
)

// PriceModel 报价持久化对象
type PriceModel struct {
	InstrumentID string          `gorm:"column:instrument_id;type:varchar(64);primaryKey"`
	BidPrice     decimal.Decimal `gorm:"column:bid_price;type:decimal(38,18);not null"`
	AskPrice     decimal.Decimal `gorm:"column:ask_price;type:decimal(38,18);not null"`
	LastUpdated  time.Time       `gorm:"column:last_updated;not null"`
}

// TableName 指定表名
func (PriceModel) TableName() string {
	return "prices"
}

// OrderBookModel 订单簿聚合根持久化对象，挂单行在 OrderModel
type OrderBookModel struct {
	InstrumentID string    `gorm:"column:instrument_id;type:varchar(64);primaryKey"`
	LastUpdated  time.Time `gorm:"column:last_updated;not null"`
}

// TableName 指定表名
func (OrderBookModel) TableName() string {
	return "order_books"
}

// 挂单方向
const (
	orderSideBid = "BID"
	orderSideAsk = "ASK"
)

// OrderModel 订单簿挂单行
// Position 保留调用方给出的顺序，读取时按其排序还原。
type OrderModel struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	InstrumentID string          `gorm:"column:instrument_id;type:varchar(64);index;not null"`
	Side         string          `gorm:"column:side;type:varchar(4);not null"`
	Position     int             `gorm:"column:position;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(38,18);not null"`
	Volume       decimal.Decimal `gorm:"column:volume;type:decimal(38,18);not null"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "order_book_orders"
}

func toPriceModel(p *domain.Price) *PriceModel {
	return &PriceModel{
		InstrumentID: p.InstrumentID,
		BidPrice:     p.BidPrice,
		AskPrice:     p.AskPrice,
		LastUpdated:  p.LastUpdated,
	}
}

func toPrice(m *PriceModel) *domain.Price {
	return &domain.Price{
		InstrumentID: m.InstrumentID,
		BidPrice:     m.BidPrice,
		AskPrice:     m.AskPrice,
		LastUpdated:  m.LastUpdated,
	}
}

func toOrderModels(instrumentID, side string, orders []domain.Order) []*OrderModel {
	models := make([]*OrderModel, len(orders))
	for i, o := range orders {
		models[i] = &OrderModel{
			InstrumentID: instrumentID,
			Side:         side,
			Position:     i,
			Price:        o.Price,
			Volume:       o.Volume,
		}
	}
	return models
}

func toOrders(models []*OrderModel) []domain.Order {
	orders := make([]domain.Order, len(models))
	for i, m := range models {
		orders[i] = domain.Order{Price: m.Price, Volume: m.Volume}
	}
	return orders
}
