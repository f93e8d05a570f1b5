package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pricingv1 "github.com/wyfcoding/priceservice/goapi/pricing/v1"
	"github.com/wyfcoding/priceservice/internal/pricing/application"
	"github.com/wyfcoding/priceservice/internal/pricing/domain"
)

type memoryRepository struct {
	prices map[string]*domain.Price
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{prices: make(map[string]*domain.Price)}
}

func (m *memoryRepository) FindPrice(ctx context.Context, id string) (*domain.Price, error) {
	return m.prices[id], nil
}

func (m *memoryRepository) SavePrice(ctx context.Context, p *domain.Price) (*domain.Price, error) {
	m.prices[p.InstrumentID] = p
	return p, nil
}

func (m *memoryRepository) DeletePrice(ctx context.Context, id string) (bool, error) {
	if _, ok := m.prices[id]; !ok {
		return false, nil
	}
	delete(m.prices, id)
	return true, nil
}

func (m *memoryRepository) FindAllPrices(ctx context.Context) ([]*domain.Price, error) {
	all := make([]*domain.Price, 0, len(m.prices))
	for _, p := range m.prices {
		all = append(all, p)
	}
	return all, nil
}

func (m *memoryRepository) FindOrderBook(ctx context.Context, id string) (*domain.OrderBook, error) {
	return nil, nil
}

func (m *memoryRepository) SaveOrderBook(ctx context.Context, b *domain.OrderBook) (*domain.OrderBook, error) {
	return b, nil
}

type noopPublisher struct{}

func (noopPublisher) PublishPriceUpdated(ctx context.Context, price *domain.Price) error {
	return nil
}

func setupServer(t *testing.T) (*PriceServer, *memoryRepository) {
	repo := newMemoryRepository()
	service := application.NewPriceService(repo, noopPublisher{}, noopPublisher{})
	return NewPriceServer(service), repo
}

func TestGetPrice_Found(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = &domain.Price{
		InstrumentID: "AAPL",
		BidPrice:     decimal.NewFromFloat(175.50),
		AskPrice:     decimal.NewFromFloat(175.75),
		LastUpdated:  time.Now(),
	}

	resp, err := server.GetPrice(context.Background(), &pricingv1.GetPriceRequest{InstrumentId: "AAPL"})
	if err != nil {
		t.Fatalf("GetPrice failed: %v", err)
	}
	if resp.GetPrice().GetInstrumentId() != "AAPL" {
		t.Errorf("expected AAPL, got %s", resp.GetPrice().GetInstrumentId())
	}
	if resp.GetPrice().GetBidPrice() != 175.50 {
		t.Errorf("expected bid 175.50, got %v", resp.GetPrice().GetBidPrice())
	}
	if resp.GetPrice().GetLastUpdated() == nil {
		t.Error("expected last_updated to be set")
	}
}

func TestGetPrice_NotFound(t *testing.T) {
	server, _ := setupServer(t)

	_, err := server.GetPrice(context.Background(), &pricingv1.GetPriceRequest{InstrumentId: "UNKNOWN"})
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Errorf("expected NOT_FOUND, got %v", st.Code())
	}
	if st.Message() != "Price not found for instrument: UNKNOWN" {
		t.Errorf("unexpected message: %s", st.Message())
	}
}

func TestGetAllPrices_SingleItemFirstPage(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = &domain.Price{
		InstrumentID: "AAPL",
		BidPrice:     decimal.NewFromFloat(175.50),
		AskPrice:     decimal.NewFromFloat(175.75),
		LastUpdated:  time.Now(),
	}

	resp, err := server.GetAllPrices(context.Background(), &pricingv1.GetAllPricesRequest{Page: 1, Size: 1})
	if err != nil {
		t.Fatalf("GetAllPrices failed: %v", err)
	}
	if len(resp.GetPrices()) != 1 {
		t.Fatalf("expected 1 price, got %d", len(resp.GetPrices()))
	}
	if resp.GetTotalCount() != 1 || resp.GetPage() != 1 || resp.GetSize() != 1 {
		t.Errorf("expected total=1 page=1 size=1, got total=%d page=%d size=%d",
			resp.GetTotalCount(), resp.GetPage(), resp.GetSize())
	}
	if resp.GetPrices()[0].GetInstrumentId() != "AAPL" {
		t.Errorf("expected AAPL, got %s", resp.GetPrices()[0].GetInstrumentId())
	}
}

func TestGetAllPrices_HugePageAndSizeReturnsEmptyPage(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))

	// (page-1)*size == 2^31: must not wrap into a panicking slice index.
	resp, err := server.GetAllPrices(context.Background(), &pricingv1.GetAllPricesRequest{Page: 65537, Size: 32768})
	if err != nil {
		t.Fatalf("GetAllPrices failed: %v", err)
	}
	if len(resp.GetPrices()) != 0 {
		t.Errorf("expected empty page, got %d prices", len(resp.GetPrices()))
	}
	if resp.GetTotalCount() != 1 {
		t.Errorf("total_count should still report 1, got %d", resp.GetTotalCount())
	}
}

func TestGetAllPrices_PageBeyondEnd(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))

	resp, err := server.GetAllPrices(context.Background(), &pricingv1.GetAllPricesRequest{Page: 5, Size: 10})
	if err != nil {
		t.Fatalf("GetAllPrices failed: %v", err)
	}
	if len(resp.GetPrices()) != 0 {
		t.Errorf("expected empty page, got %d prices", len(resp.GetPrices()))
	}
	if resp.GetTotalCount() != 1 {
		t.Errorf("total_count should still report 1, got %d", resp.GetTotalCount())
	}
}

type fakeStream struct {
	grpclib.ServerStream
	ctx  context.Context
	sent []*pricingv1.PriceUpdate
}

func (s *fakeStream) Context() context.Context {
	return s.ctx
}

func (s *fakeStream) Send(update *pricingv1.PriceUpdate) error {
	s.sent = append(s.sent, update)
	return nil
}

func TestStreamPrices_OneUpdatePerRequestedID(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))
	repo.prices["MSFT"] = domain.NewPrice("MSFT", decimal.NewFromInt(3), decimal.NewFromInt(4))

	stream := &fakeStream{ctx: context.Background()}
	err := server.StreamPrices(&pricingv1.StreamPricesRequest{InstrumentIds: []string{"MSFT", "AAPL"}}, stream)
	if err != nil {
		t.Fatalf("StreamPrices failed: %v", err)
	}

	if len(stream.sent) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(stream.sent))
	}
	// Emission follows request order, not store order.
	if stream.sent[0].GetPrice().GetInstrumentId() != "MSFT" {
		t.Errorf("expected MSFT first, got %s", stream.sent[0].GetPrice().GetInstrumentId())
	}
	if stream.sent[1].GetPrice().GetInstrumentId() != "AAPL" {
		t.Errorf("expected AAPL second, got %s", stream.sent[1].GetPrice().GetInstrumentId())
	}
	if stream.sent[0].GetUpdateType() != pricingv1.UpdateType_UPDATE_TYPE_UPDATED {
		t.Errorf("expected UPDATED, got %v", stream.sent[0].GetUpdateType())
	}
}

func TestStreamPrices_EmptyRequestStreamsNothing(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))

	stream := &fakeStream{ctx: context.Background()}
	if err := server.StreamPrices(&pricingv1.StreamPricesRequest{}, stream); err != nil {
		t.Fatalf("StreamPrices failed: %v", err)
	}
	if len(stream.sent) != 0 {
		t.Errorf("expected no updates for empty id list, got %d", len(stream.sent))
	}
}

func TestStreamPrices_DuplicateIDsRepeatUpdates(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))

	stream := &fakeStream{ctx: context.Background()}
	err := server.StreamPrices(&pricingv1.StreamPricesRequest{InstrumentIds: []string{"AAPL", "AAPL"}}, stream)
	if err != nil {
		t.Fatalf("StreamPrices failed: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Errorf("expected one update per occurrence, got %d", len(stream.sent))
	}
}

func TestStreamPrices_SkipsAbsentIDs(t *testing.T) {
	server, repo := setupServer(t)
	repo.prices["AAPL"] = domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))

	stream := &fakeStream{ctx: context.Background()}
	err := server.StreamPrices(&pricingv1.StreamPricesRequest{InstrumentIds: []string{"UNKNOWN", "AAPL"}}, stream)
	if err != nil {
		t.Fatalf("StreamPrices failed: %v", err)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("expected 1 update, got %d", len(stream.sent))
	}
	if stream.sent[0].GetPrice().GetInstrumentId() != "AAPL" {
		t.Errorf("expected AAPL, got %s", stream.sent[0].GetPrice().GetInstrumentId())
	}
}

type failingRepository struct {
	memoryRepository
}

func (f *failingRepository) FindPrice(ctx context.Context, id string) (*domain.Price, error) {
	return nil, errors.New("db down")
}

func TestStreamPrices_RepositoryErrorMessage(t *testing.T) {
	service := application.NewPriceService(&failingRepository{}, noopPublisher{}, noopPublisher{})
	server := NewPriceServer(service)

	stream := &fakeStream{ctx: context.Background()}
	err := server.StreamPrices(&pricingv1.StreamPricesRequest{InstrumentIds: []string{"AAPL"}}, stream)

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.Internal {
		t.Errorf("expected INTERNAL, got %v", st.Code())
	}
	if st.Message() != "Failed to stream prices: db down" {
		t.Errorf("unexpected message: %s", st.Message())
	}
}
