package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/weather/domain"
	weatherout "watchtrainer/internal/modules/weather/port/out"
)

// http://api.openweathermap.org/data/2.5/weather?q=Seoul&appid=KEY&units=metric

const cacheSize = 1024 * 1024

var ErrNoAPIKey = errors.New("openweather api key is not configured")

type OpenWeather struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache
	cacheTTL   time.Duration
}

func NewOpenWeather(baseURL, apiKey string, cacheTTL time.Duration, httpClient *http.Client) weatherout.Provider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenWeather{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
		cacheTTL:   cacheTTL,
	}
}

type apiResponse struct {
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (o *OpenWeather) Current(ctx context.Context, city string) (domain.Weather, error) {
	if o.apiKey == "" {
		return domain.Weather{}, ErrNoAPIKey
	}

	cacheKey := []byte("current::" + strings.ToLower(city))
	if cached, err := o.cache.Get(cacheKey); err == nil {
		var resp apiResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			log.Tracef("weather for %s served from cache", city)
			return toWeather(city, resp), nil
		}
		log.Errorf("failed to unmarshal cached weather for %s", city)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.apiKey)
	query.Set("units", "metric")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("build weather request: %w", err)
	}
	res, err := o.httpClient.Do(req)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("http client do: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("read weather response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("weather api status %d", res.StatusCode)
	}
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Weather{}, fmt.Errorf("unmarshal weather response: %w", err)
	}

	if err := o.cache.Set(cacheKey, body, int(o.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to cache weather for %s: %s", city, err)
	}
	return toWeather(city, resp), nil
}

func toWeather(city string, resp apiResponse) domain.Weather {
	w := domain.Weather{
		City:        city,
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    int(resp.Main.Humidity),
		WindSpeed:   resp.Wind.Speed,
		Condition:   domain.Clear,
	}
	if resp.Name != "" {
		w.City = resp.Name
	}
	if resp.Dt > 0 {
		w.ObservedAt = time.Unix(resp.Dt, 0)
	}
	if len(resp.Weather) > 0 {
		w.Description = resp.Weather[0].Description
		w.Condition = domain.ConditionFromMain(resp.Weather[0].Main)
	}
	return w
}
