// README: Daily fuel price service with store persistence and in-process memo.
package fuelprice

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FallbackPrice is used when the price cannot be fetched or parsed,
// in CAD per litre.
const FallbackPrice = 1.7

const (
	memoExpiry  = 24 * time.Hour
	memoCleanup = 48 * time.Hour
)

// Fetcher obtains a fresh fuel price from the external provider.
type Fetcher interface {
	CurrentFuelPrice(ctx context.Context) (float64, error)
}

// Service returns the fuel price for the current calendar day. The
// persisted record is reused while its date matches today; otherwise one
// fetch is attempted and the result (or the fallback) is written back.
// An in-process memo keyed by date keeps the store off the hot path.
type Service struct {
	store   Store
	fetcher Fetcher
	memo    *cache.Cache
	log     *zap.Logger
}

// NewService creates a Service. fetcher may be nil, in which case a
// stale or missing record resolves straight to FallbackPrice.
func NewService(store Store, fetcher Fetcher, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		memo:    cache.New(memoExpiry, memoCleanup),
		log:     log,
	}
}

// CurrentPrice returns today's fuel price. It never fails; every error
// path degrades to FallbackPrice. Concurrent first calls of the day may
// race to refresh the store, which is benign (last writer wins).
func (s *Service) CurrentPrice(ctx context.Context) float64 {
	today := time.Now().Format(DateLayout)

	if v, ok := s.memo.Get(today); ok {
		return v.(float64)
	}

	rec, err := s.store.Load(ctx)
	if err == nil && rec.Date == today {
		s.memo.Set(today, rec.Price, cache.DefaultExpiration)
		return rec.Price
	}
	if err != nil && err != ErrNoRecord {
		s.log.Warn("fuel price store read failed", zap.Error(err))
	}

	price := s.fetch(ctx)

	if err := s.store.Save(ctx, Record{Price: price, Date: today}); err != nil {
		s.log.Warn("fuel price store write failed", zap.Error(err))
	}
	s.memo.Set(today, price, cache.DefaultExpiration)

	s.log.Info("fuel price refreshed", zap.Float64("price", price), zap.String("date", today))
	return price
}

func (s *Service) fetch(ctx context.Context) float64 {
	if s.fetcher == nil {
		return FallbackPrice
	}
	price, err := s.fetcher.CurrentFuelPrice(ctx)
	if err != nil {
		s.log.Warn("fuel price fetch failed, using fallback",
			zap.Float64("fallback", FallbackPrice), zap.Error(err))
		return FallbackPrice
	}
	return price
}
