package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Wire format carries decimals as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Price 单个标的的最优买卖报价
// LastUpdated 由应用服务在每次写入时覆盖，调用方提供的值一律丢弃。
type Price struct {
	InstrumentID string
	BidPrice     decimal.Decimal
	AskPrice     decimal.Decimal
	LastUpdated  time.Time
}

// NewPrice 创建报价实例
func NewPrice(instrumentID string, bid, ask decimal.Decimal) *Price {
	return &Price{
		InstrumentID: instrumentID,
		BidPrice:     bid,
		AskPrice:     ask,
	}
}
