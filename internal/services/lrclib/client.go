package lrclib

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://lrclib.net/api"
	defaultUserAgent   = "singsync/1.0"
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 4 << 20
)

// Config describes the catalog client configuration.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client wraps the LRCLIB REST API.
type Client struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

// Track is one catalog record. SyncedLyrics carries LRC-tagged text when the
// catalog has timing; PlainLyrics is the untimed sheet.
type Track struct {
	TrackName       string  `json:"trackName"`
	ArtistName      string  `json:"artistName"`
	AlbumName       string  `json:"albumName"`
	DurationSeconds float64 `json:"duration"`
	PlainLyrics     string  `json:"plainLyrics"`
	SyncedLyrics    string  `json:"syncedLyrics"`
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("lrclib: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      httpClient,
	}, nil
}

// Get performs the direct exact-match lookup. The boolean is false when the
// catalog has no record or the response was unusable.
func (c *Client) Get(ctx context.Context, artist, track string) (Track, bool) {
	if c == nil || strings.TrimSpace(track) == "" {
		return Track{}, false
	}
	params := url.Values{}
	params.Set("track_name", track)
	params.Set("artist_name", artist)

	var result Track
	if !c.getJSON(ctx, "get", params, &result) {
		return Track{}, false
	}
	if result.TrackName == "" {
		return Track{}, false
	}
	return result, true
}

// Search performs the fuzzy free-text search. The slice is nil when the
// query fails or nothing matches.
func (c *Client) Search(ctx context.Context, query string) []Track {
	if c == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	params := url.Values{}
	params.Set("q", query)

	var results []Track
	if !c.getJSON(ctx, "search", params, &results) {
		return nil
	}
	return results
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) bool {
	target := c.baseURL.JoinPath(endpoint)
	target.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes)) //nolint:errcheck
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false
	}
	return true
}
