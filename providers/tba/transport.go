package tba

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"tba-stats-service/internal/metrics"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(cfg Config) httpDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := &http.Client{Timeout: timeout}
	if !cfg.DisableCache {
		client.Transport = NewCachingTransport(http.DefaultTransport, cfg.Recorder)
	}
	return client
}

type cacheEntry struct {
	etag         string
	lastModified string
	header       http.Header
	body         []byte
}

// cachingTransport revalidates GET responses with If-None-Match /
// If-Modified-Since headers and serves the stored body on 304, cutting
// download size for the large, rarely-changing event payloads.
type cachingTransport struct {
	base     http.RoundTripper
	recorder *metrics.Recorder

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// NewCachingTransport wraps a RoundTripper with conditional-request caching.
// The recorder, when non-nil, counts revalidation hits.
func NewCachingTransport(base http.RoundTripper, recorder *metrics.Recorder) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &cachingTransport{
		base:     base,
		recorder: recorder,
		entries:  make(map[string]*cacheEntry),
	}
}

func (t *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	key := req.URL.String()
	t.mu.Lock()
	entry := t.entries[key]
	t.mu.Unlock()

	if entry != nil {
		req = req.Clone(req.Context())
		if entry.etag != "" {
			req.Header.Set("If-None-Match", entry.etag)
		}
		if entry.lastModified != "" {
			req.Header.Set("If-Modified-Since", entry.lastModified)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotModified && entry != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		t.recorder.RecordCacheHit(sourceName)
		return entry.response(req), nil
	}

	if resp.StatusCode == http.StatusOK {
		etag := resp.Header.Get("ETag")
		lastModified := resp.Header.Get("Last-Modified")
		if etag != "" || lastModified != "" {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				return nil, readErr
			}
			t.mu.Lock()
			t.entries[key] = &cacheEntry{
				etag:         etag,
				lastModified: lastModified,
				header:       resp.Header.Clone(),
				body:         body,
			}
			t.mu.Unlock()
			resp.Body = io.NopCloser(bytes.NewReader(body))
		}
	}

	return resp, nil
}

// response synthesizes a fresh 200 response from the stored entry.
func (e *cacheEntry) response(req *http.Request) *http.Response {
	header := e.header.Clone()
	header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	return &http.Response{
		Status:        http.StatusText(http.StatusOK),
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.body)),
		ContentLength: int64(len(e.body)),
		Request:       req,
	}
}
