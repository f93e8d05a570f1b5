package application

import (
	"context"
	"time"

	"github.com/wyfcoding/priceservice/internal/pricing/domain"
	"github.com/wyfcoding/priceservice/pkg/logger"
)

// PriceService 报价领域应用服务
// REST 与 gRPC 共享的业务规则只在这里出现一次：
// 写入时间戳由服务端盖章、写入成功后向两个事件通道扇出。
type PriceService struct {
	repo           domain.PriceRepository
	jsonPublisher  domain.PricePublisher
	protoPublisher domain.PricePublisher
}

// NewPriceService 创建报价应用服务
func NewPriceService(repo domain.PriceRepository, jsonPublisher, protoPublisher domain.PricePublisher) *PriceService {
	return &PriceService{
		repo:           repo,
		jsonPublisher:  jsonPublisher,
		protoPublisher: protoPublisher,
	}
}

// GetPrice 查询单个标的报价，不存在返回 (nil, nil)
func (s *PriceService) GetPrice(ctx context.Context, instrumentID string) (*domain.Price, error) {
	logger.Debug(ctx, "Getting price", "instrument_id", instrumentID)
	return s.repo.FindPrice(ctx, instrumentID)
}

// GetAllPrices 查询全量报价，不分页；分页是 gRPC 适配层的职责
func (s *PriceService) GetAllPrices(ctx context.Context) ([]*domain.Price, error) {
	logger.Debug(ctx, "Getting all prices")
	return s.repo.FindAllPrices(ctx)
}

// SavePrice 保存报价并向两个事件通道扇出
// LastUpdated 一律覆盖为服务端当前时间；发布失败只记日志，不影响写入结果。
func (s *PriceService) SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	logger.Debug(ctx, "Saving price", "instrument_id", price.InstrumentID)

	price.LastUpdated = time.Now()
	saved, err := s.repo.SavePrice(ctx, price)
	if err != nil {
		return nil, err
	}

	if err := s.jsonPublisher.PublishPriceUpdated(ctx, saved); err != nil {
		logger.Error(ctx, "Failed to publish JSON price update",
			"instrument_id", saved.InstrumentID,
			"error", err,
		)
	}
	if err := s.protoPublisher.PublishPriceUpdated(ctx, saved); err != nil {
		logger.Error(ctx, "Failed to publish protobuf price update",
			"instrument_id", saved.InstrumentID,
			"error", err,
		)
	}

	return saved, nil
}

// DeletePrice 删除报价，返回是否确有删除；删除不发布事件
func (s *PriceService) DeletePrice(ctx context.Context, instrumentID string) (bool, error) {
	logger.Debug(ctx, "Deleting price", "instrument_id", instrumentID)
	return s.repo.DeletePrice(ctx, instrumentID)
}

// GetOrderBook 查询单个标的订单簿，不存在返回 (nil, nil)
func (s *PriceService) GetOrderBook(ctx context.Context, instrumentID string) (*domain.OrderBook, error) {
	logger.Debug(ctx, "Getting order book", "instrument_id", instrumentID)
	return s.repo.FindOrderBook(ctx, instrumentID)
}

// SaveOrderBook 整体替换式保存订单簿，时间戳同样由服务端盖章；不发布事件
func (s *PriceService) SaveOrderBook(ctx context.Context, orderBook *domain.OrderBook) (*domain.OrderBook, error) {
	logger.Debug(ctx, "Saving order book", "instrument_id", orderBook.InstrumentID)

	orderBook.LastUpdated = time.Now()
	return s.repo.SaveOrderBook(ctx, orderBook)
}
