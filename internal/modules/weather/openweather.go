// README: OpenWeather HTTP client implementing the Provider interface.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const forecastEntries = 8

// OpenWeatherClient queries the OpenWeather REST API. metric units, so the
// API returns Celsius and metres per second; wind is converted to km/h.
type OpenWeatherClient struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		Endpoint: "https://api.openweathermap.org/data/2.5",
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type owCurrentResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owForecastResponse struct {
	List []struct {
		Dt      int64 `json:"dt"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

func (c *OpenWeatherClient) Current(ctx context.Context, location string) (Reading, error) {
	u := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s", c.Endpoint, url.QueryEscape(location), url.QueryEscape(c.APIKey))
	resp, err := c.get(ctx, u)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Reading{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out owCurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	r := Reading{
		Location:    location,
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		WindSpeed:   mpsToKmh(out.Wind.Speed),
		RecordedAt:  time.Now().UTC(),
	}
	if len(out.Weather) > 0 {
		r.Condition = out.Weather[0].Main
	}
	return r, nil
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, location string) ([]ForecastEntry, error) {
	u := fmt.Sprintf("%s/forecast?q=%s&units=metric&cnt=%d&appid=%s", c.Endpoint, url.QueryEscape(location), forecastEntries, url.QueryEscape(c.APIKey))
	resp, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out owForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	entries := make([]ForecastEntry, 0, forecastEntries)
	for _, item := range out.List {
		e := ForecastEntry{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			WindSpeed:   mpsToKmh(item.Wind.Speed),
		}
		if len(item.Weather) > 0 {
			e.Condition = item.Weather[0].Main
		}
		entries = append(entries, e)
		if len(entries) == forecastEntries {
			break
		}
	}
	return entries, nil
}

func (c *OpenWeatherClient) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func mpsToKmh(v float64) float64 { return v * 3.6 }
