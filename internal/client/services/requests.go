package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// RequestLogFilter narrows the request-log listing server-side. Zero values
// mean "no filter".
type RequestLogFilter struct {
	APIKeyID string
	Result   string
	Since    time.Time
	Limit    int
}

func (f RequestLogFilter) query() string {
	q := url.Values{}
	if f.APIKeyID != "" {
		q.Set("api_key_id", f.APIKeyID)
	}
	if f.Result != "" {
		q.Set("result", f.Result)
	}
	if !f.Since.IsZero() {
		q.Set("since", f.Since.UTC().Format(time.RFC3339))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// RequestLogService backs the request-log screen. Sorting and pagination of
// the returned rows happen client-side via tableview.
type RequestLogService struct {
	c Caller
}

func NewRequestLogService(c Caller) *RequestLogService {
	return &RequestLogService{c: c}
}

func (s *RequestLogService) List(ctx context.Context, filter RequestLogFilter) ([]models.RequestLog, error) {
	var logs []models.RequestLog
	if err := s.c.Get(ctx, "/requests"+filter.query(), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
