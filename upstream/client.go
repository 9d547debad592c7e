package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"restaurant-listings-api/models"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// Client fetches the authoritative restaurant list over HTTP.
type Client struct {
	client *http.Client
	url    string
}

func New(url string) *Client {
	return &Client{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
	}
}

// FetchRestaurants GETs the remote list. The reference data server has
// served both a bare array and an object wrapping it under "restaurants",
// so both shapes are accepted. Non-2xx responses and malformed payloads
// are errors; there is no retry.
func (c *Client) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	log.WithField("url", c.url).Debug("fetching restaurant list")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("restaurant list request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restaurant list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restaurant list API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("restaurant list read body: %w", err)
	}

	payload := gjson.ParseBytes(body)
	if wrapped := payload.Get("restaurants"); wrapped.IsArray() {
		payload = wrapped
	}
	if !payload.IsArray() {
		return nil, fmt.Errorf("unexpected restaurant list format")
	}

	var list []models.Restaurant
	if err := json.Unmarshal([]byte(payload.Raw), &list); err != nil {
		return nil, fmt.Errorf("restaurant list parse: %w", err)
	}

	log.WithField("count", len(list)).Debug("restaurant list fetched")
	return list, nil
}
