package models

// UsageSummary is the headline counters for the stats screen.
type UsageSummary struct {
	Total      int64 `json:"total"`
	Passed     int64 `json:"passed"`
	Failed     int64 `json:"failed"`
	QuotaUsed  int64 `json:"quota_used"`
	QuotaLimit int64 `json:"quota_limit"`
}

// UsageCount is a per-captcha-type counter as returned by the server.
type UsageCount struct {
	CaptchaType string `json:"captcha_type"`
	Count       int64  `json:"count"`
}

// UsageSlice is a per-type counter enriched with its share of the total,
// computed client-side for the breakdown chart.
type UsageSlice struct {
	CaptchaType string
	Count       int64
	Share       float64
}

// UsagePoint is one day of the usage time series.
type UsagePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
