// Package services contains the per-screen application services of the
// dashboard. Each service is a thin, independently-failing layer over the
// request gateway; one screen's load error never affects another.
package services

import "context"

// Caller is the request surface the services need from the gateway.
type Caller interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
