package messaging

import (
	"context"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pricingv1 "github.com/wyfcoding/priceservice/goapi/pricing/v1"
	"github.com/wyfcoding/priceservice/internal/pricing/domain"
	"github.com/wyfcoding/priceservice/pkg/metrics"
)

// ProtoPricePublisher 将报价更新以 protobuf 编码发往 Kafka
type ProtoPricePublisher struct {
	producer Producer
	topic    string
	metrics  *metrics.Metrics
}

// NewProtoPricePublisher 创建 protobuf 编码发布器
func NewProtoPricePublisher(producer Producer, topic string, m *metrics.Metrics) domain.PricePublisher {
	return &ProtoPricePublisher{
		producer: producer,
		topic:    topic,
		metrics:  m,
	}
}

// PublishPriceUpdated 发布报价更新事件，标的作为分区键
func (p *ProtoPricePublisher) PublishPriceUpdated(ctx context.Context, price *domain.Price) error {
	update := &pricingv1.PriceUpdate{
		Price:      toProtoPrice(price),
		UpdateType: pricingv1.UpdateType_UPDATE_TYPE_UPDATED,
	}

	payload, err := proto.Marshal(update)
	if err != nil {
		p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultFailure).Inc()
		return err
	}

	if err := p.producer.SendBytes(ctx, p.topic, price.InstrumentID, payload, contentTypeProtobuf); err != nil {
		p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultFailure).Inc()
		return err
	}

	p.metrics.EventPublishTotal.WithLabelValues(p.topic, resultSuccess).Inc()
	return nil
}

func toProtoPrice(price *domain.Price) *pricingv1.Price {
	return &pricingv1.Price{
		InstrumentId: price.InstrumentID,
		BidPrice:     price.BidPrice.InexactFloat64(),
		AskPrice:     price.AskPrice.InexactFloat64(),
		LastUpdated:  timestamppb.New(price.LastUpdated),
	}
}
