package domain

import "context"

// PricePublisher 报价更新事件的出站端口
// 同一逻辑事件有 JSON 与 protobuf 两种编码，各自一个实现，
// 均以 InstrumentID 作为分区键。发布是尽力而为：失败不回滚写入。
type PricePublisher interface {
	PublishPriceUpdated(ctx context.Context, price *Price) error
}
