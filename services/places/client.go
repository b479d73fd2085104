// File: services/places/client.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tripcart/models"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// ErrMissingAPIKey is returned when no Google API key is configured.
var ErrMissingAPIKey = errors.New("google places API key is not configured")

// PlacesService looks up points of interest around a location.
type PlacesService interface {
	Nearby(ctx context.Context, q models.NearbyQuery) ([]models.Place, error)
	PhotoURL(ref string) string
}

// Client calls the Google Places Nearby Search endpoint.
type Client struct {
	apiKey        string
	baseURL       string
	defaultRadius int
	httpClient    *http.Client
	logger        *zap.Logger
}

type ClientOption func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey string, defaultRadius int, logger *zap.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultRadius <= 0 {
		defaultRadius = 1500
	}
	c := &Client{
		apiKey:        apiKey,
		baseURL:       defaultBaseURL,
		defaultRadius: defaultRadius,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ PlacesService = (*Client)(nil)

type nearbySearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Types  []string `json:"types"`
		Rating *float64 `json:"rating"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// Nearby runs a Nearby Search around q.Origin. ZERO_RESULTS is an empty slice, not an error.
func (c *Client) Nearby(ctx context.Context, q models.NearbyQuery) ([]models.Place, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	radius := q.RadiusMeters
	if radius <= 0 {
		radius = c.defaultRadius
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", q.Origin.Latitude, q.Origin.Longitude))
	params.Set("radius", strconv.Itoa(radius))
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/nearbysearch/json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request returned status %d", resp.StatusCode)
	}

	var body nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []models.Place{}, nil
	default:
		return nil, fmt.Errorf("places API returned %s: %s", body.Status, body.ErrorMessage)
	}

	places := make([]models.Place, 0, len(body.Results))
	for _, r := range body.Results {
		p := models.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Coordinates: models.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Types:  r.Types,
			Rating: r.Rating,
		}
		if len(r.Photos) > 0 {
			p.PhotoRef = r.Photos[0].PhotoReference
		}
		places = append(places, p)
	}

	c.logger.Debug("places nearby search",
		zap.Float64("lat", q.Origin.Latitude),
		zap.Float64("lng", q.Origin.Longitude),
		zap.String("type", q.Type),
		zap.Int("results", len(places)),
	)
	return places, nil
}

// PhotoURL builds a Place Photo URL for ref, or "" when ref is empty.
func (c *Client) PhotoURL(ref string) string {
	if ref == "" {
		return ""
	}
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", ref)
	params.Set("key", c.apiKey)
	return c.baseURL + "/photo?" + params.Encode()
}
