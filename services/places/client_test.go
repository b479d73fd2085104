package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcart/models"
)

const nearbyFixture = `{
  "status": "OK",
  "results": [
    {
      "place_id": "ChIJ-spice",
      "name": "Spice Garden",
      "vicinity": "Chithirapuram",
      "geometry": {"location": {"lat": 10.0900, "lng": 77.0600}},
      "types": ["tourist_attraction", "point_of_interest"],
      "rating": 4.4,
      "photos": [{"photo_reference": "ref-1"}]
    },
    {
      "place_id": "ChIJ-cafe",
      "name": "Hill Cafe",
      "vicinity": "Munnar Town",
      "geometry": {"location": {"lat": 10.0889, "lng": 77.0595}},
      "types": ["cafe"]
    }
  ]
}`

func TestClient_Nearby(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{"location": q.Get("location"), "radius": q.Get("radius"), "type": q.Get("type"), "key": q.Get("key")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nearbyFixture))
	}))
	defer srv.Close()

	c := NewClient("test-key", 2000, nil, WithBaseURL(srv.URL))
	places, err := c.Nearby(context.Background(), models.NearbyQuery{
		Origin: models.Coordinates{Latitude: 10.0889, Longitude: 77.0595},
		Type:   "tourist_attraction",
	})
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "10.088900,77.059500", gotQuery["location"])
	assert.Equal(t, "2000", gotQuery["radius"])
	assert.Equal(t, "tourist_attraction", gotQuery["type"])
	assert.Equal(t, "test-key", gotQuery["key"])

	assert.Equal(t, "ChIJ-spice", places[0].ID)
	assert.Equal(t, "ref-1", places[0].PhotoRef)
	require.NotNil(t, places[0].Rating)
	assert.Equal(t, 4.4, *places[0].Rating)
	assert.Nil(t, places[1].Rating)
}

func TestClient_NearbyStatuses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    int
		wantErr bool
		wantLen int
	}{
		{name: "zero results", body: `{"status":"ZERO_RESULTS","results":[]}`, code: http.StatusOK},
		{name: "denied", body: `{"status":"REQUEST_DENIED","error_message":"bad key"}`, code: http.StatusOK, wantErr: true},
		{name: "http error", body: `oops`, code: http.StatusBadGateway, wantErr: true},
		{name: "garbage", body: `{`, code: http.StatusOK, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			places, err := NewClient("k", 0, nil, WithBaseURL(srv.URL)).Nearby(context.Background(), models.NearbyQuery{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, places, tt.wantLen)
		})
	}
}

func TestClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("", 0, nil).Nearby(context.Background(), models.NearbyQuery{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestToSuggestion(t *testing.T) {
	origin := models.Coordinates{Latitude: 10.0889, Longitude: 77.0595}
	rating := 4.4
	p := models.Place{
		ID:          "ChIJ-spice",
		Name:        "Spice Garden",
		Coordinates: models.Coordinates{Latitude: 10.0979, Longitude: 77.0595},
		Types:       []string{"tourist_attraction"},
		Rating:      &rating,
	}

	s := ToSuggestion(p, origin, "", "https://img/1")
	assert.Equal(t, "ChIJ-spice", s.ID)
	assert.Equal(t, "sightseeing", s.Category)
	assert.Equal(t, "tourist_attraction", s.Type)
	assert.False(t, s.Selected)
	require.NotNil(t, s.Distance)
	assert.InDelta(t, 1.0, *s.Distance, 0.01)
	require.NotNil(t, s.ImageURL)
	assert.NoError(t, s.Validate())

	s = ToSuggestion(models.Place{Name: "Unnamed"}, origin, "walks", "")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "walks", s.Category)
	assert.Nil(t, s.ImageURL)
}

func TestPhotoURL(t *testing.T) {
	c := NewClient("k", 0, nil, WithBaseURL("http://places.test"))
	assert.Empty(t, c.PhotoURL(""))
	assert.Equal(t, "http://places.test/photo?key=k&maxwidth=400&photo_reference=ref-1", c.PhotoURL("ref-1"))
}
