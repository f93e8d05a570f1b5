// Package grpc 实现报价服务的 gRPC 适配层
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pricingv1 "github.com/wyfcoding/priceservice/goapi/pricing/v1"
	"github.com/wyfcoding/priceservice/internal/pricing/application"
	"github.com/wyfcoding/priceservice/internal/pricing/domain"
	"github.com/wyfcoding/priceservice/pkg/logger"
)

// PriceServer 报价 gRPC 服务实现
type PriceServer struct {
	pricingv1.UnimplementedPriceServiceServer
	service *application.PriceService
}

// NewPriceServer 创建报价 gRPC 服务
func NewPriceServer(service *application.PriceService) *PriceServer {
	return &PriceServer{service: service}
}

// GetAllPrices 分页查询报价，total_count 为分页前的总量
func (s *PriceServer) GetAllPrices(ctx context.Context, req *pricingv1.GetAllPricesRequest) (*pricingv1.GetAllPricesResponse, error) {
	prices, err := s.service.GetAllPrices(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to get all prices", "error", err)
		return nil, status.Error(codes.Internal, "Failed to retrieve prices: "+err.Error())
	}

	total := int32(len(prices))
	page, pageNum, pageSize := application.Paginate(prices, req.GetPage(), req.GetSize())

	resp := &pricingv1.GetAllPricesResponse{
		Prices:     make([]*pricingv1.Price, len(page)),
		TotalCount: total,
		Page:       pageNum,
		Size:       pageSize,
	}
	for i, p := range page {
		resp.Prices[i] = toProtoPrice(p)
	}
	return resp, nil
}

// GetPrice 查询单个标的报价，缺失映射为 NOT_FOUND
func (s *PriceServer) GetPrice(ctx context.Context, req *pricingv1.GetPriceRequest) (*pricingv1.GetPriceResponse, error) {
	price, err := s.service.GetPrice(ctx, req.GetInstrumentId())
	if err != nil {
		logger.Error(ctx, "Failed to get price", "instrument_id", req.GetInstrumentId(), "error", err)
		return nil, status.Error(codes.Internal, "Failed to retrieve price: "+err.Error())
	}
	if price == nil {
		return nil, status.Error(codes.NotFound, "Price not found for instrument: "+req.GetInstrumentId())
	}

	return &pricingv1.GetPriceResponse{Price: toProtoPrice(price)}, nil
}

// StreamPrices 按请求中的标的顺序逐个推送当前报价
// 每个标的一条更新，重复的标的重复推送，没有报价的标的跳过。
func (s *PriceServer) StreamPrices(req *pricingv1.StreamPricesRequest, stream pricingv1.PriceService_StreamPricesServer) error {
	ctx := stream.Context()

	for _, id := range req.GetInstrumentIds() {
		price, err := s.service.GetPrice(ctx, id)
		if err != nil {
			logger.Error(ctx, "Failed to stream prices", "instrument_id", id, "error", err)
			return status.Error(codes.Internal, "Failed to stream prices: "+err.Error())
		}
		if price == nil {
			continue
		}

		update := &pricingv1.PriceUpdate{
			Price:      toProtoPrice(price),
			UpdateType: pricingv1.UpdateType_UPDATE_TYPE_UPDATED,
		}
		if err := stream.Send(update); err != nil {
			return err
		}
	}
	return nil
}

func toProtoPrice(p *domain.Price) *pricingv1.Price {
	return &pricingv1.Price{
		InstrumentId: p.InstrumentID,
		BidPrice:     p.BidPrice.InexactFloat64(),
		AskPrice:     p.AskPrice.InexactFloat64(),
		LastUpdated:  timestamppb.New(p.LastUpdated),
	}
}
