package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the current-weather endpoint of OpenWeatherMap.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const maxRedirects = 30

// Report is the subset of a current-weather response the app shows.
type Report struct {
	City        string
	TempK       float64
	FeelsLikeK  float64
	Humidity    int
	Pressure    int
	WindSpeed   float64
	ConditionID int
	Description string
}

// Client fetches current conditions for a city.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a weather client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:       timeout,
			CheckRedirect: limitRedirects,
		},
		logger: logger,
	}
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return ErrTooManyRedirects
	}
	return nil
}

// Current looks up the weather for city. Nothing is sent without an API key.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("weather API error", "status", resp.StatusCode, "body", string(body))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if body.Cod != "" && body.Cod != "200" {
		msg := body.Message
		if msg == "" {
			msg = "Unknown Error"
		}
		return nil, &APIError{Message: msg}
	}

	r := &Report{
		City:        body.Name,
		TempK:       body.Main.Temp,
		FeelsLikeK:  body.Main.FeelsLike,
		Humidity:    body.Main.Humidity,
		Pressure:    body.Main.Pressure,
		WindSpeed:   body.Wind.Speed,
		ConditionID: -1,
	}
	if len(body.Weather) > 0 {
		r.ConditionID = body.Weather[0].ID
		r.Description = body.Weather[0].Description
	}
	return r, nil
}

// OpenWeatherMap response types.

type response struct {
	Cod     code   `json:"cod"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
}

// code accepts the cod field as either a JSON number or a string.
type code string

func (c *code) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("cod: want number or string")
	}
	if i, err := n.Int64(); err == nil {
		*c = code(strconv.FormatInt(i, 10))
		return nil
	}
	*c = code(n.String())
	return nil
}
