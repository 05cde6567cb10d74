package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/rs/zerolog"
)

var ErrNotConfigured = errors.New("places api key not configured")

// StatusError is returned when the API answers with a non-success status field.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "places api status " + e.Status
	}
	return fmt.Sprintf("places api status %s: %s", e.Status, e.Message)
}

const (
	DefaultBaseURL    = "https://maps.googleapis.com/maps/api/place"
	DefaultMaxResults = 50
	userAgent         = "local-vibe/1.0"
	maxPages          = 3
)

type Options struct {
	APIKey     string
	BaseURL    string
	Referer    string
	Language   string
	MaxResults int
	PageDelay  time.Duration
	CacheTTL   time.Duration
	Cache      ResponseCache
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the Google Places web service.
type Client struct {
	opts   Options
	http   *http.Client
	logger zerolog.Logger
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		opts:   opts,
		http:   httpClient,
		logger: opts.Logger,
	}
}

type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating"`
	Types            []string `json:"types"`
	Geometry         *struct {
		Location *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	EditorialSummary *struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary"`
}

type searchResponse struct {
	Results       []placeResult `json:"results"`
	NextPageToken string        `json:"next_page_token"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
}

type detailsResponse struct {
	Result       placeResult `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
}

func (p placeResult) raw() venue.RawPlace {
	r := venue.RawPlace{
		ExternalID:       p.PlaceID,
		Name:             p.Name,
		FormattedAddress: p.FormattedAddress,
		Vicinity:         p.Vicinity,
		Rating:           p.Rating,
		Types:            p.Types,
	}
	if p.Geometry != nil && p.Geometry.Location != nil {
		r.Location = &venue.Coordinates{Latitude: p.Geometry.Location.Lat, Longitude: p.Geometry.Location.Lng}
	}
	for _, ph := range p.Photos {
		if ph.PhotoReference != "" {
			r.PhotoRefs = append(r.PhotoRefs, ph.PhotoReference)
		}
	}
	if p.EditorialSummary != nil {
		r.Summary = p.EditorialSummary.Overview
	}
	return r
}

// SearchByCategory runs a nearby search for every type tag of the category,
// following pagination, until MaxResults unique places are collected.
func (c *Client) SearchByCategory(ctx context.Context, category venue.Category, center venue.Coordinates, radiusMeters int) ([]venue.RawPlace, error) {
	if c.opts.APIKey == "" {
		return nil, ErrNotConfigured
	}

	cacheKey := fmt.Sprintf("search:%s:%.4f,%.4f:%d:%d", category, center.Latitude, center.Longitude, radiusMeters, c.opts.MaxResults)
	var cached []venue.RawPlace
	if c.cached(ctx, cacheKey, &cached) {
		return cached, nil
	}

	limiter := NewRateLimiter(c.opts.PageDelay)
	seen := map[string]struct{}{}
	var out []venue.RawPlace
	for _, placeType := range venue.SearchTypes(category) {
		if len(out) >= c.opts.MaxResults {
			break
		}
		token := ""
		for page := 0; page < maxPages; page++ {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			params := url.Values{}
			if token != "" {
				params.Set("pagetoken", token)
			} else {
				params.Set("location", fmt.Sprintf("%f,%f", center.Latitude, center.Longitude))
				params.Set("radius", strconv.Itoa(radiusMeters))
				params.Set("type", placeType)
				params.Set("language", c.opts.Language)
			}

			var resp searchResponse
			if err := c.get(ctx, "nearbysearch/json", params, &resp); err != nil {
				return nil, err
			}
			if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
				return nil, err
			}
			for _, r := range resp.Results {
				if _, dup := seen[r.PlaceID]; dup || r.PlaceID == "" {
					continue
				}
				seen[r.PlaceID] = struct{}{}
				out = append(out, r.raw())
				if len(out) >= c.opts.MaxResults {
					break
				}
			}
			if resp.NextPageToken == "" || len(out) >= c.opts.MaxResults {
				break
			}
			token = resp.NextPageToken
		}
	}

	c.store(ctx, cacheKey, out)
	return out, nil
}

func (c *Client) GetDetails(ctx context.Context, placeID string) (venue.RawPlace, error) {
	if c.opts.APIKey == "" {
		return venue.RawPlace{}, ErrNotConfigured
	}

	cacheKey := "details:" + placeID
	var cached venue.RawPlace
	if c.cached(ctx, cacheKey, &cached) {
		return cached, nil
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,rating,photos,types,editorial_summary")
	params.Set("language", c.opts.Language)

	var resp detailsResponse
	if err := c.get(ctx, "details/json", params, &resp); err != nil {
		return venue.RawPlace{}, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return venue.RawPlace{}, err
	}
	if resp.Status == "ZERO_RESULTS" || resp.Result.PlaceID == "" {
		return venue.RawPlace{}, &StatusError{Status: "NOT_FOUND"}
	}

	raw := resp.Result.raw()
	c.store(ctx, cacheKey, raw)
	return raw, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.opts.APIKey)
	u := c.opts.BaseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	if c.opts.Referer != "" {
		req.Header.Set("Referer", c.opts.Referer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call places %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read places %s response: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places %s http error %d: %s", endpoint, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse places %s JSON: %w", endpoint, err)
	}
	return nil
}

func checkStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	}
	return &StatusError{Status: status, Message: message}
}

func (c *Client) cached(ctx context.Context, key string, out any) bool {
	if c.opts.Cache == nil {
		return false
	}
	body, ok, err := c.opts.Cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("places cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("places cache entry unreadable")
		return false
	}
	return true
}

func (c *Client) store(ctx context.Context, key string, v any) {
	if c.opts.Cache == nil {
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.opts.Cache.Set(ctx, key, body, c.opts.CacheTTL); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("places cache write failed")
	}
}

// PhotoURL returns a builder for image URLs served through the photo proxy at base.
func PhotoURL(base string) func(ref string) string {
	return func(ref string) string {
		return base + "/photo/" + url.PathEscape(ref) + "?maxwidth=400"
	}
}

const maxPhotoBytes = 10 << 20

// Photo fetches the image for a photo reference. The upstream redirect to the
// image host is followed by the HTTP client.
func (c *Client) Photo(ctx context.Context, ref string, maxWidth int) ([]byte, string, error) {
	if c.opts.APIKey == "" {
		return nil, "", ErrNotConfigured
	}
	if maxWidth <= 0 {
		maxWidth = 400
	}

	params := url.Values{}
	params.Set("photo_reference", ref)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("key", c.opts.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/photo?"+params.Encode(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", userAgent)
	if c.opts.Referer != "" {
		req.Header.Set("Referer", c.opts.Referer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to call places photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("places photo http error %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read places photo: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
