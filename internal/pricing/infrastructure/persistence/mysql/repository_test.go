package mysql

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wyfcoding/priceservice/internal/pricing/domain"
)

func setupTestDB(t *testing.T) domain.PriceRepository {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&PriceModel{}, &OrderBookModel{}, &OrderModel{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return NewPriceRepository(db)
}

func TestPriceRepository_SaveAndFind(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	price := domain.NewPrice("AAPL", decimal.NewFromFloat(175.50), decimal.NewFromFloat(175.75))
	price.LastUpdated = price.LastUpdated.UTC()

	saved, err := repo.SavePrice(ctx, price)
	if err != nil {
		t.Fatalf("SavePrice failed: %v", err)
	}
	if saved.InstrumentID != "AAPL" {
		t.Errorf("expected AAPL, got %s", saved.InstrumentID)
	}

	fetched, err := repo.FindPrice(ctx, "AAPL")
	if err != nil {
		t.Fatalf("FindPrice failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected price, got nil")
	}
	if !fetched.BidPrice.Equal(decimal.NewFromFloat(175.50)) {
		t.Errorf("expected bid 175.50, got %v", fetched.BidPrice)
	}
	if !fetched.AskPrice.Equal(decimal.NewFromFloat(175.75)) {
		t.Errorf("expected ask 175.75, got %v", fetched.AskPrice)
	}
}

func TestPriceRepository_SaveIsUpsert(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := domain.NewPrice("AAPL", decimal.NewFromInt(100), decimal.NewFromInt(101))
	if _, err := repo.SavePrice(ctx, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := domain.NewPrice("AAPL", decimal.NewFromInt(200), decimal.NewFromInt(201))
	if _, err := repo.SavePrice(ctx, second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	all, err := repo.FindAllPrices(ctx)
	if err != nil {
		t.Fatalf("FindAllPrices failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 row after upsert, got %d", len(all))
	}
	if !all[0].BidPrice.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected bid 200 after upsert, got %v", all[0].BidPrice)
	}
}

func TestPriceRepository_FindAbsentIsNilNil(t *testing.T) {
	repo := setupTestDB(t)

	price, err := repo.FindPrice(context.Background(), "UNKNOWN")
	if err != nil {
		t.Fatalf("expected no error for absent row, got %v", err)
	}
	if price != nil {
		t.Errorf("expected nil, got %v", price)
	}
}

func TestPriceRepository_DeleteReportsRowsAffected(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	if _, err := repo.SavePrice(ctx, domain.NewPrice("AAPL", decimal.NewFromInt(1), decimal.NewFromInt(2))); err != nil {
		t.Fatalf("SavePrice failed: %v", err)
	}

	deleted, err := repo.DeletePrice(ctx, "AAPL")
	if err != nil || !deleted {
		t.Fatalf("expected deleted=true, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.DeletePrice(ctx, "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("deleting an absent row should report false")
	}
}

func TestPriceRepository_OrderBookRoundTripPreservesOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	book := domain.NewOrderBook("AAPL",
		[]domain.Order{
			{Price: decimal.NewFromFloat(175.50), Volume: decimal.NewFromInt(100)},
			{Price: decimal.NewFromFloat(175.40), Volume: decimal.NewFromInt(200)},
			{Price: decimal.NewFromFloat(175.30), Volume: decimal.NewFromInt(300)},
		},
		[]domain.Order{
			{Price: decimal.NewFromFloat(175.75), Volume: decimal.NewFromInt(50)},
		},
	)

	if _, err := repo.SaveOrderBook(ctx, book); err != nil {
		t.Fatalf("SaveOrderBook failed: %v", err)
	}

	fetched, err := repo.FindOrderBook(ctx, "AAPL")
	if err != nil {
		t.Fatalf("FindOrderBook failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected order book, got nil")
	}
	if len(fetched.BidOrders) != 3 || len(fetched.AskOrders) != 1 {
		t.Fatalf("expected 3 bids / 1 ask, got %d / %d", len(fetched.BidOrders), len(fetched.AskOrders))
	}
	for i, want := range []string{"175.5", "175.4", "175.3"} {
		if fetched.BidOrders[i].Price.String() != want {
			t.Errorf("bid %d: expected %s, got %v", i, want, fetched.BidOrders[i].Price)
		}
	}
}

func TestPriceRepository_SaveOrderBookReplacesWholeList(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := domain.NewOrderBook("AAPL",
		[]domain.Order{
			{Price: decimal.NewFromInt(100), Volume: decimal.NewFromInt(1)},
			{Price: decimal.NewFromInt(99), Volume: decimal.NewFromInt(2)},
		},
		[]domain.Order{
			{Price: decimal.NewFromInt(101), Volume: decimal.NewFromInt(3)},
		},
	)
	if _, err := repo.SaveOrderBook(ctx, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := domain.NewOrderBook("AAPL",
		[]domain.Order{
			{Price: decimal.NewFromInt(200), Volume: decimal.NewFromInt(4)},
		},
		nil,
	)
	saved, err := repo.SaveOrderBook(ctx, second)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if len(saved.BidOrders) != 1 {
		t.Fatalf("expected old bids replaced, got %d", len(saved.BidOrders))
	}
	if !saved.BidOrders[0].Price.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected bid 200, got %v", saved.BidOrders[0].Price)
	}
	if len(saved.AskOrders) != 0 {
		t.Errorf("expected old asks removed, got %d", len(saved.AskOrders))
	}
}

func TestPriceRepository_FindOrderBookAbsentIsNilNil(t *testing.T) {
	repo := setupTestDB(t)

	book, err := repo.FindOrderBook(context.Background(), "UNKNOWN")
	if err != nil {
		t.Fatalf("expected no error for absent book, got %v", err)
	}
	if book != nil {
		t.Errorf("expected nil, got %v", book)
	}
}
