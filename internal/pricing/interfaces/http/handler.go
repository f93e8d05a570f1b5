// Package http 实现报价服务的 REST 适配层
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/priceservice/internal/pricing/application"
	"github.com/wyfcoding/priceservice/internal/pricing/domain"
	"github.com/wyfcoding/priceservice/pkg/logger"
)

// PriceDTO 报价响应/请求体
type PriceDTO struct {
	InstrumentID string          `json:"instrumentId"`
	BidPrice     decimal.Decimal `json:"bidPrice"`
	AskPrice     decimal.Decimal `json:"askPrice"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// OrderDTO 订单簿单条挂单
type OrderDTO struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// OrderBookDTO 订单簿响应/请求体
type OrderBookDTO struct {
	InstrumentID string     `json:"instrumentId"`
	BidOrders    []OrderDTO `json:"bidOrders"`
	AskOrders    []OrderDTO `json:"askOrders"`
	LastUpdated  time.Time  `json:"lastUpdated"`
}

// PriceHandler 报价 REST 处理器
type PriceHandler struct {
	service *application.PriceService
}

// NewPriceHandler 创建报价 REST 处理器
func NewPriceHandler(service *application.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// RegisterRoutes 注册路由，写操作挂 HTTP Basic 认证
func (h *PriceHandler) RegisterRoutes(router *gin.Engine, accounts gin.Accounts) {
	router.GET("/prices", h.ListPrices)
	router.GET("/prices/:instrumentId", h.GetPrice)
	router.GET("/orderbook/:instrumentId", h.GetOrderBook)

	authorized := router.Group("/", gin.BasicAuth(accounts))
	authorized.POST("/prices/:instrumentId", h.SavePrice)
	authorized.DELETE("/prices/:instrumentId", h.DeletePrice)
	authorized.POST("/orderbook/:instrumentId", h.SaveOrderBook)
}

// ListPrices 返回全量报价列表
func (h *PriceHandler) ListPrices(c *gin.Context) {
	prices, err := h.service.GetAllPrices(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prices"})
		return
	}

	dtos := make([]PriceDTO, len(prices))
	for i, p := range prices {
		dtos[i] = toPriceDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

// GetPrice 查询单个标的报价
func (h *PriceHandler) GetPrice(c *gin.Context) {
	instrumentID := c.Param("instrumentId")

	price, err := h.service.GetPrice(c.Request.Context(), instrumentID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get price", "instrument_id", instrumentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve price"})
		return
	}
	if price == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price not found for instrument: " + instrumentID})
		return
	}

	c.JSON(http.StatusOK, toPriceDTO(price))
}

// SavePrice 保存报价；路径中的标的为准，请求体中的标的被覆盖
func (h *PriceHandler) SavePrice(c *gin.Context) {
	instrumentID := c.Param("instrumentId")

	var req PriceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	price := domain.NewPrice(instrumentID, req.BidPrice, req.AskPrice)
	saved, err := h.service.SavePrice(c.Request.Context(), price)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to save price", "instrument_id", instrumentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price"})
		return
	}

	c.JSON(http.StatusOK, toPriceDTO(saved))
}

// DeletePrice 删除报价，无记录时返回 404
func (h *PriceHandler) DeletePrice(c *gin.Context) {
	instrumentID := c.Param("instrumentId")

	deleted, err := h.service.DeletePrice(c.Request.Context(), instrumentID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to delete price", "instrument_id", instrumentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete price"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price not found for instrument: " + instrumentID})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrderBook 查询单个标的订单簿
func (h *PriceHandler) GetOrderBook(c *gin.Context) {
	instrumentID := c.Param("instrumentId")

	book, err := h.service.GetOrderBook(c.Request.Context(), instrumentID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get order book", "instrument_id", instrumentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order book"})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order book not found for instrument: " + instrumentID})
		return
	}

	c.JSON(http.StatusOK, toOrderBookDTO(book))
}

// SaveOrderBook 保存订单簿；路径中的标的为准
func (h *PriceHandler) SaveOrderBook(c *gin.Context) {
	instrumentID := c.Param("instrumentId")

	var req OrderBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	book := domain.NewOrderBook(instrumentID, toOrders(req.BidOrders), toOrders(req.AskOrders))
	saved, err := h.service.SaveOrderBook(c.Request.Context(), book)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to save order book", "instrument_id", instrumentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order book"})
		return
	}

	c.JSON(http.StatusOK, toOrderBookDTO(saved))
}

func toPriceDTO(p *domain.Price) PriceDTO {
	return PriceDTO{
		InstrumentID: p.InstrumentID,
		BidPrice:     p.BidPrice,
		AskPrice:     p.AskPrice,
		LastUpdated:  p.LastUpdated,
	}
}

func toOrderBookDTO(b *domain.OrderBook) OrderBookDTO {
	return OrderBookDTO{
		InstrumentID: b.InstrumentID,
		BidOrders:    toOrderDTOs(b.BidOrders),
		AskOrders:    toOrderDTOs(b.AskOrders),
		LastUpdated:  b.LastUpdated,
	}
}

// toOrderDTOs 空列表序列化为 [] 而不是 null
func toOrderDTOs(orders []domain.Order) []OrderDTO {
	dtos := make([]OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = OrderDTO{Price: o.Price, Volume: o.Volume}
	}
	return dtos
}

func toOrders(dtos []OrderDTO) []domain.Order {
	orders := make([]domain.Order, len(dtos))
	for i, d := range dtos {
		orders[i] = domain.Order{Price: d.Price, Volume: d.Volume}
	}
	return orders
}
