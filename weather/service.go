package weather

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/matt-g-everett/weatherapp/observability"
)

// Fetcher retrieves a raw report for a city.
type Fetcher interface {
	Current(ctx context.Context, city string) (*Report, error)
}

// Publisher receives every successful lookup.
type Publisher interface {
	Publish(ctx context.Context, d Display) error
}

// Service runs lookups one at a time and fans results out to a Publisher.
type Service struct {
	fetcher   Fetcher
	publisher Publisher
	metrics   *observability.Metrics
	logger    *slog.Logger
	busy      atomic.Bool
}

// NewService creates a lookup service. publisher may be nil.
func NewService(fetcher Fetcher, publisher Publisher, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Busy reports whether a lookup is running.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Lookup fetches and formats the weather for city. A second call made while
// one is still fetching fails with ErrBusy instead of queueing. Publishing
// happens after the guard is released.
func (s *Service) Lookup(ctx context.Context, city string) (Display, error) {
	d, err := s.fetch(ctx, city)
	if err != nil {
		return Display{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, d); err != nil {
			s.metrics.Publishes.WithLabelValues("error").Inc()
			s.logger.Error("publish lookup failed", "city", d.City, "error", err)
		} else {
			s.metrics.Publishes.WithLabelValues("success").Inc()
		}
	}
	return d, nil
}

func (s *Service) fetch(ctx context.Context, city string) (Display, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		s.metrics.LookupRequests.WithLabelValues("invalid").Inc()
		return Display{}, ErrEmptyCity
	}
	if !s.busy.CompareAndSwap(false, true) {
		s.metrics.LookupRequests.WithLabelValues("busy").Inc()
		return Display{}, ErrBusy
	}
	defer s.busy.Store(false)

	s.metrics.LookupInFlight.Set(1)
	defer s.metrics.LookupInFlight.Set(0)

	start := time.Now()
	report, err := s.fetcher.Current(ctx, city)
	s.metrics.LookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.LookupRequests.WithLabelValues("error").Inc()
		s.logger.Warn("weather lookup failed", "city", city, "error", err)
		return Display{}, err
	}
	s.metrics.LookupRequests.WithLabelValues("success").Inc()

	d := NewDisplay(report)
	s.logger.Info("weather lookup done", "city", d.City, "condition", d.ConditionID, "bucket", d.Bucket.Name)
	return d, nil
}
