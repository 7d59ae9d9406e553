// Package nutrition proxies the OpenFoodFacts API and normalizes its
// product records into the internal FoodItem shape.
package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/observability"
)

// DefaultPageSize caps text-search results when the caller names no size.
const DefaultPageSize = 10

// Client calls the external nutrition API. Every call is a single
// best-effort attempt bounded by the configured timeout; there are no
// retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a nutrition API client. timeout bounds each request
// end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search performs a free-text product search and returns the normalized
// results. pageSize values below 1 fall back to DefaultPageSize.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]domain.FoodItem, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", strconv.Itoa(pageSize))

	var payload searchResponse
	if err := c.getJSON(ctx, "search", c.baseURL+"/cgi/search.pl?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	items := make([]domain.FoodItem, 0, len(payload.Products))
	for _, p := range payload.Products {
		items = append(items, normalizeProduct(p))
	}
	return items, nil
}

// Barcode looks up a single product by its barcode. An unknown barcode
// still yields a normalized item: the placeholder with name "Unknown" and
// zero nutrients, matching the upstream's empty-product response.
func (c *Client) Barcode(ctx context.Context, code string) (domain.FoodItem, error) {
	var payload barcodeResponse
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))
	if err := c.getJSON(ctx, "barcode", endpoint, &payload); err != nil {
		return domain.FoodItem{}, err
	}

	if payload.Product == nil {
		return normalizeProduct(product{}), nil
	}
	return normalizeProduct(*payload.Product), nil
}

// getJSON performs one GET and decodes the JSON body into out. Transport
// failures, non-2xx statuses and malformed bodies all surface as errors.
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, out interface{}) error {
	start := time.Now()
	err := c.doGetJSON(ctx, endpoint, out)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	observability.RecordUpstreamCall(operation, outcome, time.Since(start))
	return err
}

func (c *Client) doGetJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("nutrition API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding nutrition API response: %w", err)
	}
	return nil
}
