package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://wttr.in"
	DefaultTimeout = 10 * time.Second
)

// Reading is the current conditions for a city. Values are kept as the strings wttr.in
// returns them. When Success is false only Error is set.
type Reading struct {
	Success     bool   `json:"success"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	TempC       string `json:"temp_c,omitempty"`
	TempF       string `json:"temp_f,omitempty"`
	FeelsLikeC  string `json:"feels_like_c,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	Description string `json:"description,omitempty"`
	WindKmph    string `json:"wind_kmph,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Client reads current conditions from wttr.in's JSON format.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a weather client. An empty baseURL uses wttr.in.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetWeather returns the current conditions for city.
func (c *Client) GetWeather(ctx context.Context, city string) (Reading, error) {
	city = strings.TrimSpace(city)
	query := strings.ReplaceAll(city, " ", "+")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(query)), nil)
	if err != nil {
		return Reading{}, fmt.Errorf("weather.GetWeather: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("weather.GetWeather %s: %w", city, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Reading{}, fmt.Errorf("weather.GetWeather %s: read body: %w", city, err)
	}

	notFound := Reading{Error: fmt.Sprintf("Weather data not found for '%s'", city)}
	if resp.StatusCode != http.StatusOK {
		return notFound, nil
	}
	if !gjson.ValidBytes(body) {
		return Reading{}, fmt.Errorf("weather.GetWeather %s: invalid JSON payload", city)
	}

	current := gjson.GetBytes(body, "current_condition.0")
	if !current.Exists() {
		return notFound, nil
	}
	area := gjson.GetBytes(body, "nearest_area.0")

	return Reading{
		Success:     true,
		City:        or(area.Get("areaName.0.value").String(), city),
		Country:     area.Get("country.0.value").String(),
		TempC:       or(current.Get("temp_C").String(), "N/A"),
		TempF:       or(current.Get("temp_F").String(), "N/A"),
		FeelsLikeC:  or(current.Get("FeelsLikeC").String(), "N/A"),
		Humidity:    or(current.Get("humidity").String(), "N/A"),
		Description: or(current.Get("weatherDesc.0.value").String(), "Unknown"),
		WindKmph:    or(current.Get("windspeedKmph").String(), "N/A"),
	}, nil
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
