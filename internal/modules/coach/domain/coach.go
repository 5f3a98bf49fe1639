package domain

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindMessage Kind = "message"
	KindTip     Kind = "tip"
	KindQuote   Kind = "quote"
)

// Source tells whether a text came from the generator plugin or the built-in table.
type Source string

const (
	SourcePlugin   Source = "plugin"
	SourceFallback Source = "fallback"
)

type Weather struct {
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
}

// Context is everything a generator may use to phrase a message.
type Context struct {
	State       string
	WorkoutType string
	Steps       int
	HeartRate   int
	Calories    float64
	Weather     *Weather
}

type Request struct {
	Kind    Kind
	Prompt  string
	Context Context
}

func FallbackMessage(c Context) string {
	switch c.State {
	case "active":
		switch {
		case c.HeartRate > 140:
			return fmt.Sprintf("Heart rate %d! You're working hard, keep it up! 🔥", c.HeartRate)
		case c.HeartRate > 100:
			return "Great pace! Keep it going! 💪"
		default:
			return "Starting slow is fine. Consistency is what counts! 😊"
		}
	case "paused":
		return "Resting is part of training too. Pick it up again when you're ready! 🌟"
	default:
		switch {
		case c.Steps < 3000:
			return fmt.Sprintf("%d steps so far today. Ready to start a workout and chase your goal? 🚶", c.Steps)
		case c.Steps < 7000:
			return fmt.Sprintf("Nice, %d steps done! A little more and you'll hit your goal! 🏃", c.Steps)
		default:
			return fmt.Sprintf("Wow, %d steps already! That's impressive! 👏", c.Steps)
		}
	}
}

var tips = map[string]string{
	"walking":  "Swing your arms wide as you walk! 🚶",
	"running":  "Breathe in through your nose and out through your mouth! 🏃",
	"cycling":  "Keep your cadence steady! 🚴",
	"strength": "Focus on the muscle and move slowly! 💪",
	"yoga":     "Release tension with every breath! 🧘",
}

func DefaultTip(workoutType string) string {
	if tip, ok := tips[workoutType]; ok {
		return tip
	}
	return "Find your own pace! ⭐"
}

var Quotes = []string{
	"Today's sweat is tomorrow's confidence! 💦",
	"Well begun is half done. Now do the other half! 🌟",
	"Exercise is a gift to your future self! 🎁",
	"Every step is the start of a change! 👣",
	"Don't give up. Remember why you started! 🔥",
}

// Quote returns the quote chosen by pick, which receives len(Quotes).
func Quote(pick func(n int) int) string {
	i := pick(len(Quotes))
	if i < 0 || i >= len(Quotes) {
		i = 0
	}
	return Quotes[i]
}

func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(meters))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

func stateLabel(state string) string {
	switch state {
	case "active":
		return "working out"
	case "paused":
		return "paused"
	default:
		return "not started"
	}
}

// Prompt renders the instruction handed to a generator for the given request kind.
func Prompt(kind Kind, c Context) string {
	switch kind {
	case KindTip:
		return fmt.Sprintf("Give one short, friendly %s tip in under 30 characters, with an emoji.", c.WorkoutType)
	case KindQuote:
		return "Write a short, playful motivational workout quote in under 30 characters, with an emoji."
	}

	var b strings.Builder
	b.WriteString("You are a fun and friendly workout coach. Encourage the user with emoji.\n\n")
	b.WriteString("Current state:\n")
	fmt.Fprintf(&b, "- steps today: %d\n", c.Steps)
	fmt.Fprintf(&b, "- heart rate: %d BPM\n", c.HeartRate)
	fmt.Fprintf(&b, "- calories: %d kcal\n", int(c.Calories))
	if c.Weather != nil {
		b.WriteString("\nWeather:\n")
		fmt.Fprintf(&b, "- temperature: %.1f°C (feels like %.1f°C)\n", c.Weather.Temperature, c.Weather.FeelsLike)
		fmt.Fprintf(&b, "- conditions: %s\n", c.Weather.Description)
		fmt.Fprintf(&b, "- humidity: %d%%\n", c.Weather.Humidity)
	}
	fmt.Fprintf(&b, "\nWorkout: %s\n\n", stateLabel(c.State))
	switch c.State {
	case "active":
		b.WriteString("Cheer the user on in under 50 characters, mentioning heart rate or steps.")
	case "paused":
		b.WriteString("Gently encourage the user to resume in under 50 characters.")
	default:
		b.WriteString("Encourage the user to start a workout in under 50 characters and suggest one that suits the weather.")
	}
	return b.String()
}
