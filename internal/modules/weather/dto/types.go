package dto

import "time"

type WeatherOutput struct {
	City           string    `json:"city"`
	Temperature    float64   `json:"temperature"`
	FeelsLike      float64   `json:"feels_like"`
	Humidity       int       `json:"humidity"`
	WindSpeed      float64   `json:"wind_speed"`
	Description    string    `json:"description"`
	Condition      string    `json:"condition"`
	Recommendation string    `json:"recommendation"`
	ObservedAt     time.Time `json:"observed_at"`
	Fallback       bool      `json:"fallback"`
}
