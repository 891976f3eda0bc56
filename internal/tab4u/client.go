package tab4u

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

const (
	defaultBaseURL = "https://www.tab4u.com"
	userAgent      = "Mozilla/5.0 (compatible; jamoveo-backend)"
)

// Client scrapes song search results and song content from Tab4U.
// Outbound requests are rate limited so a burst of searches does not
// hammer the site.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Tab4U client. An empty baseURL uses the real site;
// tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 3),
	}
}

// Search returns songs matching the query, newest-listed first as the
// site orders them. An empty slice means no results, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]models.SongSummary, error) {
	u := fmt.Sprintf("%s/resultsSimple?tab=songs&q=%s", c.base, url.QueryEscape(query))
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("tab4u search %q: %w", query, err)
	}
	return parseSearchResults(body, c.base), nil
}

// SongContent fetches a song page and extracts its chords and lyrics.
func (c *Client) SongContent(ctx context.Context, link string) (*models.SongContent, error) {
	u := link
	if !strings.HasPrefix(u, "http") {
		u = c.base + "/" + strings.TrimLeft(link, "/")
	}
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("tab4u song content %q: %w", link, err)
	}

	content := parseSongContent(body)
	if content.RawText == "" {
		return nil, fmt.Errorf("tab4u song content %q: no song content found", link)
	}
	return content, nil
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
