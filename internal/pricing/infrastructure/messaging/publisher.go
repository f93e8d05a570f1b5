// Package messaging 实现报价更新事件的 Kafka 出站适配器
package messaging

import "context"

// Producer 发布器依赖的最小生产者接口，由 pkg/mq.KafkaProducer 满足
type Producer interface {
	SendBytes(ctx context.Context, topic string, key string, payload []byte, contentType string) error
}

const (
	contentTypeJSON     = "application/json"
	contentTypeProtobuf = "application/x-protobuf"

	resultSuccess = "success"
	resultFailure = "failure"
)
