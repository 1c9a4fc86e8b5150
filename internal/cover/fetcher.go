// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/folio/internal/metrics"
)

var errBodyTooLarge = errors.New("response body exceeds limit")

// Fetcher performs bounded outbound GETs for the cover sources. Each source
// has its own rate limiter. The ISBN and search sources, which each talk to a
// single host, also have a circuit breaker; fallback URLs point at arbitrary
// hosts, so one dead host must not block the others.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBody   int64
	minSide   int
	userAgent string

	limiters map[Source]*rate.Limiter
	breakers map[Source]*breaker
}

// NewFetcher builds a Fetcher for the network stages. A nil client uses a
// dedicated http.Client with no overall timeout; every call is bounded by
// cfg.Timeout through its context instead.
func NewFetcher(cfg Config, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		}
	}

	f := &Fetcher{
		client:    client,
		timeout:   cfg.Timeout,
		maxBody:   cfg.MaxBodyBytes,
		minSide:   cfg.MinImageSide,
		userAgent: cfg.UserAgent,
		limiters:  make(map[Source]*rate.Limiter, 3),
		breakers:  make(map[Source]*breaker, 3),
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	for _, src := range []Source{SourceISBN, SourceSearch, SourceFallbackURL} {
		f.limiters[src] = rate.NewLimiter(limit, burst)
	}
	for _, src := range breakerSources {
		f.breakers[src] = newBreaker("cover-"+string(src), cfg.Breaker)
	}
	return f
}

// breakerSources are the single-host sources guarded by a circuit breaker.
var breakerSources = []Source{SourceISBN, SourceSearch}

// BreakerState returns the breaker state for src ("closed", "half-open",
// "open"), or "none" for a source without a breaker.
func (f *Fetcher) BreakerState(src Source) string {
	if b, ok := f.breakers[src]; ok {
		return b.State()
	}
	return "none"
}

// Get fetches url on behalf of src and returns the body of a 2xx response.
func (f *Fetcher) Get(ctx context.Context, src Source, url string) ([]byte, MissReason) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if lim, ok := f.limiters[src]; ok {
		if err := lim.Wait(ctx); err != nil {
			return nil, MissTimeout
		}
	}

	start := time.Now()
	var (
		body []byte
		err  error
	)
	if b, ok := f.breakers[src]; ok {
		body, err = b.execute(func() ([]byte, error) {
			return f.do(ctx, url)
		})
	} else {
		body, err = f.do(ctx, url)
	}
	metrics.RecordCoverFetch(string(src), time.Since(start))

	if err != nil {
		return nil, classify(err)
	}
	return body, MissNone
}

// GetImage fetches and decodes an image. Images below the minimum side are misses.
func (f *Fetcher) GetImage(ctx context.Context, src Source, url string) Outcome {
	body, miss := f.Get(ctx, src, url)
	if miss != MissNone {
		return Missed(miss)
	}
	img, _, miss := decodeImage(body, f.minSide)
	if miss != MissNone {
		return Missed(miss)
	}
	return Hit(img)
}

// GetJSON fetches url and decodes the body into v.
func (f *Fetcher) GetJSON(ctx context.Context, src Source, url string, v interface{}) MissReason {
	body, miss := f.Get(ctx, src, url)
	if miss != MissNone {
		return miss
	}
	if err := json.Unmarshal(body, v); err != nil {
		return MissDecode
	}
	return MissNone
}

func (f *Fetcher) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{code: resp.StatusCode}
	}
	if resp.ContentLength > f.maxBody {
		return nil, errBodyTooLarge
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, errBodyTooLarge
	}
	return body, nil
}

// classify maps a fetch error to a miss reason.
func classify(err error) MissReason {
	var se *statusError
	var ne net.Error
	switch {
	case isRejected(err):
		return MissCircuitOpen
	case errors.As(err, &se):
		return MissStatus
	case errors.Is(err, errBodyTooLarge):
		return MissTooLarge
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return MissTimeout
	case errors.As(err, &ne) && ne.Timeout():
		return MissTimeout
	default:
		return MissNetwork
	}
}
