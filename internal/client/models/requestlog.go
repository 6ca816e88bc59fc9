package models

import "time"

// Result values for a verification request.
const (
	ResultPass = "pass"
	ResultFail = "fail"
)

// RequestLog is one CAPTCHA verification request as recorded by the server.
type RequestLog struct {
	ID          string    `json:"id"`
	APIKeyID    string    `json:"api_key_id"`
	CaptchaType string    `json:"captcha_type"`
	Result      string    `json:"result"`
	ClientIP    string    `json:"client_ip"`
	LatencyMS   int       `json:"latency_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
