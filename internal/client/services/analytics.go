package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// AnalyticsService backs the stats screen: headline counters, the per-type
// breakdown chart, and the daily time series.
type AnalyticsService struct {
	c Caller
}

func NewAnalyticsService(c Caller) *AnalyticsService {
	return &AnalyticsService{c: c}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*models.UsageSummary, error) {
	var sum models.UsageSummary
	if err := s.c.Get(ctx, "/analytics/summary", &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// Breakdown fetches the per-type counters and enriches them with each type's
// share of the total, sorted by count descending.
func (s *AnalyticsService) Breakdown(ctx context.Context) ([]models.UsageSlice, error) {
	var counts []models.UsageCount
	if err := s.c.Get(ctx, "/analytics/breakdown", &counts); err != nil {
		return nil, err
	}
	return shares(counts), nil
}

func (s *AnalyticsService) Timeseries(ctx context.Context, days int) ([]models.UsagePoint, error) {
	var points []models.UsagePoint
	if err := s.c.Get(ctx, fmt.Sprintf("/analytics/timeseries?days=%d", days), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// shares computes percentage-of-total per slice, rounded to one decimal.
// An all-zero input yields zero shares rather than NaN.
func shares(counts []models.UsageCount) []models.UsageSlice {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	slices := make([]models.UsageSlice, 0, len(counts))
	for _, c := range counts {
		slice := models.UsageSlice{CaptchaType: c.CaptchaType, Count: c.Count}
		if total > 0 {
			slice.Share = math.Round(float64(c.Count)/float64(total)*1000) / 10
		}
		slices = append(slices, slice)
	}

	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Count > slices[j].Count })
	return slices
}
