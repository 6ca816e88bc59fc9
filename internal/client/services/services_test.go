package services

import (
	"context"
	"encoding/json"
)

// fakeCaller records the last request and replays canned JSON responses,
// keyed by "<METHOD> <path>".
type fakeCaller struct {
	lastMethod string
	lastPath   string
	lastBody   any

	responses map[string]string
	err       error
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{responses: map[string]string{}}
}

func (f *fakeCaller) respond(method, path, body string) {
	f.responses[method+" "+path] = body
}

func (f *fakeCaller) do(method, path string, body, out any) error {
	f.lastMethod = method
	f.lastPath = path
	f.lastBody = body
	if f.err != nil {
		return f.err
	}
	if resp, ok := f.responses[method+" "+path]; ok && out != nil {
		return json.Unmarshal([]byte(resp), out)
	}
	return nil
}

func (f *fakeCaller) Get(ctx context.Context, path string, out any) error {
	return f.do("GET", path, nil, out)
}

func (f *fakeCaller) Post(ctx context.Context, path string, body, out any) error {
	return f.do("POST", path, body, out)
}

func (f *fakeCaller) Put(ctx context.Context, path string, body, out any) error {
	return f.do("PUT", path, body, out)
}

func (f *fakeCaller) Patch(ctx context.Context, path string, body, out any) error {
	return f.do("PATCH", path, body, out)
}

func (f *fakeCaller) Delete(ctx context.Context, path string, out any) error {
	return f.do("DELETE", path, nil, out)
}
