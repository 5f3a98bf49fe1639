package dto

type PlaceOutput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
	Indoor  bool   `json:"indoor"`
	Reason  string `json:"reason,omitempty"`
}

type SuggestionOutput struct {
	WorkoutType string        `json:"workout_type"`
	Indoor      bool          `json:"indoor"`
	Weather     string        `json:"weather"`
	VenueTypes  []string      `json:"venue_types"`
	Places      []PlaceOutput `json:"places"`
}
