package domain

import "slices"

type PlaceType string

const (
	Park      PlaceType = "park"
	Gym       PlaceType = "gym"
	Trail     PlaceType = "trail"
	Stadium   PlaceType = "stadium"
	Pool      PlaceType = "pool"
	CyclePath PlaceType = "cycle_path"
	Other     PlaceType = "other"
)

// Conditions is the weather slice the indoor decision needs.
type Conditions struct {
	Temperature float64
	WindSpeed   float64
	Condition   string
}

// ShouldGoIndoor reports whether current conditions favour indoor venues.
func ShouldGoIndoor(c Conditions) bool {
	switch {
	case c.Temperature > 35, c.Temperature < 5:
		return true
	case c.Condition == "rainy", c.Condition == "snowy":
		return true
	case c.WindSpeed > 15:
		return true
	default:
		return false
	}
}

var (
	outdoorVenues = []string{"park", "trail", "stadium"}
	indoorVenues  = []string{"gym", "fitness_center", "sports_complex"}
)

// VenueTypes lists the place categories to search for a workout type.
func VenueTypes(workoutType string, indoor bool) []string {
	switch workoutType {
	case "walking", "running":
		if indoor {
			return []string{"gym", "fitness_center", "shopping_mall"}
		}
		return []string{"park", "trail", "waterfront"}
	case "cycling":
		if indoor {
			return []string{"gym", "fitness_center"}
		}
		return []string{"park", "bicycle_track"}
	case "strength":
		return []string{"gym", "fitness_center"}
	case "yoga":
		return []string{"gym", "yoga_studio", "park"}
	default:
		return slices.Concat(outdoorVenues, indoorVenues)
	}
}

func IsIndoorVenue(types []string) bool {
	for _, t := range types {
		if slices.Contains(indoorVenues, t) {
			return true
		}
	}
	return false
}

func PlaceTypeOf(types []string) PlaceType {
	switch {
	case slices.Contains(types, "park"):
		return Park
	case slices.Contains(types, "gym"), slices.Contains(types, "fitness_center"):
		return Gym
	case slices.Contains(types, "trail"):
		return Trail
	case slices.Contains(types, "stadium"):
		return Stadium
	case slices.Contains(types, "swimming_pool"):
		return Pool
	case slices.Contains(types, "bicycle_track"):
		return CyclePath
	default:
		return Other
	}
}

type Place struct {
	Name    string
	Address string
	Type    PlaceType
	Indoor  bool
	Reason  string
}

// Offline returns generic suggestions used when no places lookup is available.
func Offline(workoutType string) []Place {
	switch workoutType {
	case "walking", "running":
		return []Place{
			{Name: "Neighbourhood park", Address: "Look for a park nearby", Type: Park, Reason: "Good for walks and jogging"},
			{Name: "School track", Address: "A school sports ground near you", Type: Stadium, Reason: "Suited to track running"},
		}
	case "cycling":
		return []Place{
			{Name: "Cycle path", Address: "Riverside cycle path", Type: CyclePath, Reason: "Safe riding away from traffic"},
		}
	case "strength", "yoga":
		return []Place{
			{Name: "Fitness centre", Address: "Search for a gym nearby", Type: Gym, Indoor: true, Reason: "Proper equipment available"},
		}
	default:
		return []Place{}
	}
}
