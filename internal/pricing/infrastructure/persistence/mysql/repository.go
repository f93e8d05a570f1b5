package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/priceservice/internal/pricing/domain"
)

type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository 创建报价仓储实例
func NewPriceRepository(db *gorm.DB) domain.PriceRepository {
	return &priceRepository{db: db}
}

// FindPrice 按标的查询报价，不存在返回 (nil, nil)
func (r *priceRepository) FindPrice(ctx context.Context, instrumentID string) (*domain.Price, error) {
	var model PriceModel
	err := r.db.WithContext(ctx).
		Where("instrument_id = ?", instrumentID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toPrice(&model), nil
}

// SavePrice 按标的 upsert
func (r *priceRepository) SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	model := toPriceModel(price)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "instrument_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bid_price", "ask_price", "last_updated"}),
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}
	return toPrice(model), nil
}

// DeletePrice 删除报价，返回是否确有删除
func (r *priceRepository) DeletePrice(ctx context.Context, instrumentID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("instrument_id = ?", instrumentID).
		Delete(&PriceModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindAllPrices 返回全量报价快照
func (r *priceRepository) FindAllPrices(ctx context.Context) ([]*domain.Price, error) {
	var models []*PriceModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	prices := make([]*domain.Price, len(models))
	for i, m := range models {
		prices[i] = toPrice(m)
	}
	return prices, nil
}

// FindOrderBook 按标的查询订单簿，不存在返回 (nil, nil)
func (r *priceRepository) FindOrderBook(ctx context.Context, instrumentID string) (*domain.OrderBook, error) {
	var book OrderBookModel
	err := r.db.WithContext(ctx).
		Where("instrument_id = ?", instrumentID).
		First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	bids, err := r.findOrders(ctx, instrumentID, orderSideBid)
	if err != nil {
		return nil, err
	}
	asks, err := r.findOrders(ctx, instrumentID, orderSideAsk)
	if err != nil {
		return nil, err
	}

	return &domain.OrderBook{
		InstrumentID: book.InstrumentID,
		BidOrders:    bids,
		AskOrders:    asks,
		LastUpdated:  book.LastUpdated,
	}, nil
}

func (r *priceRepository) findOrders(ctx context.Context, instrumentID, side string) ([]domain.Order, error) {
	var models []*OrderModel
	err := r.db.WithContext(ctx).
		Where("instrument_id = ? AND side = ?", instrumentID, side).
		Order("position asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toOrders(models), nil
}

// SaveOrderBook 整体替换式 upsert：聚合根行 upsert，挂单行删旧插新，单事务完成
func (r *priceRepository) SaveOrderBook(ctx context.Context, orderBook *domain.OrderBook) (*domain.OrderBook, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		book := &OrderBookModel{
			InstrumentID: orderBook.InstrumentID,
			LastUpdated:  orderBook.LastUpdated,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "instrument_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_updated"}),
		}).Create(book).Error; err != nil {
			return err
		}

		if err := tx.Where("instrument_id = ?", orderBook.InstrumentID).
			Delete(&OrderModel{}).Error; err != nil {
			return err
		}

		orders := toOrderModels(orderBook.InstrumentID, orderSideBid, orderBook.BidOrders)
		orders = append(orders, toOrderModels(orderBook.InstrumentID, orderSideAsk, orderBook.AskOrders)...)
		if len(orders) == 0 {
			return nil
		}
		return tx.Create(orders).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindOrderBook(ctx, orderBook.InstrumentID)
}
