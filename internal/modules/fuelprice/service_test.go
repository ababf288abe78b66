package fuelprice

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

// stubFetcher is a test double for Fetcher.
type stubFetcher struct {
	price float64
	err   error
	calls int
}

func (s *stubFetcher) CurrentFuelPrice(_ context.Context) (float64, error) {
	s.calls++
	return s.price, s.err
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "fuel_price.json"))
}

func today() string {
	return time.Now().Format(DateLayout)
}

func TestCurrentPrice_FreshRecordSkipsFetch(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	if err := store.Save(ctx, Record{Price: 1.55, Date: today()}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	fetcher := &stubFetcher{price: 9.99}
	svc := NewService(store, fetcher, zap.NewNop())

	if got := svc.CurrentPrice(ctx); got != 1.55 {
		t.Errorf("CurrentPrice = %v, want 1.55", got)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetch calls = %d, want 0", fetcher.calls)
	}
}

func TestCurrentPrice_StaleRecordRefreshes(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	if err := store.Save(ctx, Record{Price: 1.50, Date: "2020-01-01"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	fetcher := &stubFetcher{price: 1.82}
	svc := NewService(store, fetcher, zap.NewNop())

	if got := svc.CurrentPrice(ctx); got != 1.82 {
		t.Errorf("CurrentPrice = %v, want 1.82", got)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", fetcher.calls)
	}

	rec, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Date != today() || rec.Price != 1.82 {
		t.Errorf("persisted record = %+v, want today's price 1.82", rec)
	}
}

func TestCurrentPrice_FetchFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	fetcher := &stubFetcher{err: errors.New("api unreachable")}
	svc := NewService(store, fetcher, zap.NewNop())

	if got := svc.CurrentPrice(ctx); got != FallbackPrice {
		t.Errorf("CurrentPrice = %v, want fallback %v", got, FallbackPrice)
	}
}

func TestCurrentPrice_IdempotentWithinDay(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	fetcher := &stubFetcher{price: 1.64}
	svc := NewService(store, fetcher, zap.NewNop())

	first := svc.CurrentPrice(ctx)
	second := svc.CurrentPrice(ctx)
	if first != second {
		t.Errorf("prices differ within a day: %v vs %v", first, second)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", fetcher.calls)
	}

	// A fresh process (new memo) must also reuse the persisted record.
	fetcher2 := &stubFetcher{price: 9.99}
	svc2 := NewService(store, fetcher2, zap.NewNop())
	if got := svc2.CurrentPrice(ctx); got != first {
		t.Errorf("second process price = %v, want %v", got, first)
	}
	if fetcher2.calls != 0 {
		t.Errorf("second process fetch calls = %d, want 0", fetcher2.calls)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newFileStore(t)
	if _, err := store.Load(context.Background()); err != ErrNoRecord {
		t.Errorf("Load on empty store = %v, want ErrNoRecord", err)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "fuel_prices.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(ctx); err != ErrNoRecord {
		t.Errorf("Load on empty store = %v, want ErrNoRecord", err)
	}

	if err := store.Save(ctx, Record{Price: 1.61, Date: "2026-08-28"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, Record{Price: 1.66, Date: "2026-08-29"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Same-day overwrite.
	if err := store.Save(ctx, Record{Price: 1.67, Date: "2026-08-29"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Date != "2026-08-29" || rec.Price != 1.67 {
		t.Errorf("Load = %+v, want latest record 2026-08-29 / 1.67", rec)
	}
}
