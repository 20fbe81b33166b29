package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Beka01247/bites/internal/domain"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Fetcher is the lookup the weather service depends on; Client is the real
// OpenWeatherMap implementation.
type Fetcher interface {
	Current(ctx context.Context, lon, lat string) (json.RawMessage, error)
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Current returns the verbatim response body for the coordinates.
func (c *Client) Current(ctx context.Context, lon, lat string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("units", "imperial")
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", c.apiKey)

	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	return body, nil
}
