package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/priceservice/internal/pricing/domain"
	"github.com/wyfcoding/priceservice/pkg/metrics"
)

// PriceUpdateMessage JSON 事件的线上格式，字段名与 REST DTO 保持一致
type PriceUpdateMessage struct {
	InstrumentID string          `json:"instrumentId"`
	BidPrice     decimal.Decimal `json:"bidPrice"`
	AskPrice     decimal.Decimal `json:"askPrice"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// JSONPricePublisher 将报价更新以 JSON 编码发往 Kafka
type JSONPricePublisher struct {
	producer Producer
	topic    string
	metrics  *metrics.Metrics
}

// NewJSONPricePublisher 创建 JSON 编码发布器
func NewJSONPricePublisher(producer Producer, topic string, m *metrics.Metrics) domain.PricePublisher {
	return &JSONPricePublisher{
		producer: producer,
		topic:    topic,
		metrics:  m,
	}
}

// PublishPriceUpdated 发布报价更新事件，标的作为分区键
func (p *JSONPricePublisher) PublishPriceUpdated(ctx context.Context, price *domain.Price) error {
	payload, err := json.Marshal(PriceUpdateMessage{
		InstrumentID: price.InstrumentID,
		BidPrice:     price.BidPrice,
		AskPrice:     price.AskPrice,
		LastUpdated:  price.LastUpdated,
	})
	if err != nil {
		p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultFailure).Inc()
		return err
	}

	if err := p.producer.SendBytes(ctx, p.topic, price.InstrumentID, payload, contentTypeJSON); err != nil {
		p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultFailure).Inc()
		return err
	}

	p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultSuccess).Inc()
	return nil
}
