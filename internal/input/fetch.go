// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"golang.org/x/time/rate"

	"github.com/pdiddy/aoc2017/internal/httputil"
	"github.com/pdiddy/aoc2017/internal/logging"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// Defaults for FetchConfig fields left empty.
const (
	DefaultBaseURL   = "https://adventofcode.com"
	DefaultUserAgent = "github.com/pdiddy/aoc2017"
	DefaultRate      = 1.0
	DefaultTimeout   = 30 * time.Second
)

// ErrUnauthorized is returned when the website rejects the session cookie.
var ErrUnauthorized = errors.New("session rejected by puzzle website")

// maxInputBytes bounds a single download.
const maxInputBytes = 1 << 20

// Fetcher downloads puzzle inputs.
type Fetcher struct {
	cfg     types.FetchConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher returns a fetcher for cfg, filling defaults for empty fields.
// A nil client gets one with cfg.Timeout.
func NewFetcher(cfg types.FetchConfig, client *http.Client) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), 1),
	}
}

// URL returns the input URL for day.
func (f *Fetcher) URL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.cfg.BaseURL, types.Year, day)
}

// Fetch downloads the input for day into the inputs directory. An existing
// file is kept unless Force is set; skipped reports that case.
func (f *Fetcher) Fetch(ctx context.Context, day int) (path string, skipped bool, err error) {
	path = Path(f.cfg.InputConfig, day)
	if !f.cfg.Force && Exists(f.cfg.InputConfig, day) {
		return path, true, nil
	}
	if f.cfg.Session == "" {
		return "", false, errors.New("no session cookie configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(day), nil)
	if err != nil {
		return "", false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: f.cfg.Session})

	resp, err := httputil.DoWithRetry(ctx, f.client, f.limiter, req, f.cfg.MaxRetries)
	if err != nil {
		return "", false, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return "", false, fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", false, fmt.Errorf("HTTP %d from %s", resp.StatusCode, f.URL(day))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := writeAtomic(path, io.LimitReader(resp.Body, maxInputBytes)); err != nil {
		return "", false, err
	}
	return path, false, nil
}

func writeAtomic(path string, r io.Reader) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("creating pending file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log := logging.WithComponent("input")
			log.Debug().Err(err).Msg("cleanup pending input file")
		}
	}()
	if _, err := io.Copy(pending, r); err != nil {
		return fmt.Errorf("writing download: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// BatchResult holds the outcome of a batch fetch.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the number of days processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any day failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// FetchBatch fetches every day in turn, printing per-day status and a
// summary. It continues after individual failures but stops when ctx is
// done.
func (f *Fetcher) FetchBatch(ctx context.Context, days []int, w io.Writer) BatchResult {
	var result BatchResult
	for _, day := range days {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "failed:  day %02d (%v)\n", day, ctx.Err())
			result.Failed++
			continue
		}
		path, skipped, err := f.Fetch(ctx, day)
		switch {
		case err != nil:
			fmt.Fprintf(w, "failed:  day %02d (%v)\n", day, err)
			result.Failed++
		case skipped:
			fmt.Fprintf(w, "skipped: day %02d (%s exists)\n", day, path)
			result.Skipped++
		default:
			fmt.Fprintf(w, "fetched: day %02d -> %s\n", day, path)
			result.Downloaded++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}
