package domain

import (
	"strings"
	"time"
)

type Condition string

const (
	Clear  Condition = "clear"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Snowy  Condition = "snowy"
	Windy  Condition = "windy"
	Hot    Condition = "hot"
	Cold   Condition = "cold"
)

// ConditionFromMain maps the provider's "main" weather group.
func ConditionFromMain(main string) Condition {
	switch strings.ToLower(strings.TrimSpace(main)) {
	case "clear":
		return Clear
	case "clouds":
		return Cloudy
	case "rain", "drizzle", "thunderstorm":
		return Rainy
	case "snow":
		return Snowy
	case "wind", "squall", "tornado":
		return Windy
	default:
		return Clear
	}
}

type Weather struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Description string
	Condition   Condition
	ObservedAt  time.Time
	Fallback    bool
}

// Default is reported when no provider data is available.
func Default(city string, at time.Time) Weather {
	return Weather{
		City:        city,
		Temperature: 20,
		FeelsLike:   20,
		Humidity:    50,
		WindSpeed:   5,
		Description: "clear sky",
		Condition:   Clear,
		ObservedAt:  at,
		Fallback:    true,
	}
}

// Recommendation picks the first matching rule.
func Recommendation(w Weather) string {
	switch {
	case w.Temperature > 30:
		return "It's too hot! Indoor exercise is recommended."
	case w.Temperature < 5:
		return "It's cold! Dress warmly before heading out."
	case w.Condition == Rainy:
		return "It's raining! Exercise indoors or bring an umbrella."
	case w.Condition == Clear && w.Temperature >= 15 && w.Temperature <= 25:
		return "Perfect weather! Enjoy an outdoor workout."
	case w.WindSpeed > 10:
		return "Strong winds! Consider exercising indoors."
	default:
		return "Good weather for a workout!"
	}
}
