package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/config"
)

// FetchError classifies a failed catalog request so callers can tell a
// transient problem (network, 5xx, rate limit) from a configuration problem
// (bad key, bad host). Neither is retried; the category is skipped either
// way.
type FetchError struct {
	CategoryID int
	StatusCode int
	Transient  bool
	Err        error
}

func (e *FetchError) Error() string {
	kind := "configuration"
	if e.Transient {
		kind = "transient"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error fetching category %d (status %d): %v", kind, e.CategoryID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s error fetching category %d: %v", kind, e.CategoryID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PopularResponse is the catalog API's most-popular listing.
type PopularResponse struct {
	Items []Item `json:"items"`
}

type Item struct {
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

type Snippet struct {
	PublishedAt  string   `json:"publishedAt"`
	ChannelID    string   `json:"channelId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelTitle string   `json:"channelTitle"`
	CategoryID   string   `json:"categoryId"`
	Tags         []string `json:"tags"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

// The API reports counts as strings.
type Statistics struct {
	ViewCount string `json:"viewCount"`
	LikeCount string `json:"likeCount"`
}

// Client issues authenticated requests against the third-party video
// catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	regionCode string
	maxResults int
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://" + cfg.RapidAPIHost,
		apiKey:     cfg.RapidAPIKey,
		apiHost:    cfg.RapidAPIHost,
		regionCode: cfg.RegionCode,
		maxResults: 50,
	}
}

// FetchCategory requests the most popular videos for one category. Errors
// are always *FetchError.
func (c *Client) FetchCategory(ctx context.Context, categoryID int) (*PopularResponse, error) {
	query := url.Values{
		"part":            {"snippet,contentDetails,statistics"},
		"chart":           {"mostPopular"},
		"maxResults":      {strconv.Itoa(c.maxResults)},
		"regionCode":      {c.regionCode},
		"videoCategoryId": {strconv.Itoa(categoryID)},
	}

	endpoint := fmt.Sprintf("%s/videos?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{CategoryID: categoryID, Err: err}
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{CategoryID: categoryID, Transient: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			CategoryID: categoryID,
			StatusCode: resp.StatusCode,
			Transient:  isTransientStatus(resp.StatusCode),
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var popular PopularResponse
	if err := json.NewDecoder(resp.Body).Decode(&popular); err != nil {
		return nil, &FetchError{CategoryID: categoryID, Transient: true, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return &popular, nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
