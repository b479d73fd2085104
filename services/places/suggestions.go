package places

import (
	"math"

	"github.com/google/uuid"

	"tripcart/models"
)

const earthRadiusKm = 6371.0

var categoryByType = map[string]string{
	"restaurant":         "food",
	"cafe":               "food",
	"bar":                "food",
	"bakery":             "food",
	"tourist_attraction": "sightseeing",
	"museum":             "sightseeing",
	"park":               "sightseeing",
	"church":             "sightseeing",
	"hindu_temple":       "sightseeing",
	"shopping_mall":      "shopping",
	"store":              "shopping",
	"spa":                "wellness",
	"gym":                "wellness",
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// CategoryFor picks a display category from the place types, "other" when none match.
func CategoryFor(types []string) string {
	for _, t := range types {
		if c, ok := categoryByType[t]; ok {
			return c
		}
	}
	return "other"
}

// ToSuggestion converts a looked-up place into an unselected cart suggestion.
// An explicit category overrides the one derived from the place types.
func ToSuggestion(p models.Place, origin models.Coordinates, category, imageURL string) models.NearbySuggestion {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	typ := ""
	if len(p.Types) > 0 {
		typ = p.Types[0]
	}
	if category == "" {
		category = CategoryFor(p.Types)
	}

	dist := math.Round(DistanceKm(origin, p.Coordinates)*100) / 100
	s := models.NearbySuggestion{
		ID:       id,
		Name:     p.Name,
		Type:     typ,
		Category: category,
		Distance: &dist,
	}
	if p.Rating != nil {
		r := *p.Rating
		s.Rating = &r
	}
	if imageURL != "" {
		s.ImageURL = &imageURL
	}
	return s
}

// Suggestions maps every place found around q into a suggestion.
func Suggestions(svc PlacesService, places []models.Place, q models.NearbyQuery) []models.NearbySuggestion {
	out := make([]models.NearbySuggestion, 0, len(places))
	for _, p := range places {
		out = append(out, ToSuggestion(p, q.Origin, q.Category, svc.PhotoURL(p.PhotoRef)))
	}
	return out
}
