package routing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultGoogleBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleOptions configures GoogleClient.
type GoogleOptions struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	RateLimit   rate.Limit
	MaxElements int
}

// GoogleClient implements Provider on top of the Distance Matrix and
// Directions APIs in walking mode.
type GoogleClient struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxElements int
}

func NewGoogleClient(opts GoogleOptions) *GoogleClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultGoogleBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 10
	}
	if opts.MaxElements <= 0 {
		opts.MaxElements = DefaultMaxElements
	}
	return &GoogleClient{
		apiKey:      opts.APIKey,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: opts.Timeout},
		limiter:     rate.NewLimiter(opts.RateLimit, 1),
		maxElements: opts.MaxElements,
	}
}

func (g *GoogleClient) MaxElements() int {
	return g.maxElements
}

type googleValue struct {
	Value float64 `json:"value"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string      `json:"status"`
			Distance googleValue `json:"distance"`
			Duration googleValue `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance googleValue `json:"distance"`
			Duration googleValue `json:"duration"`
			Steps    []struct {
				HTMLInstructions string `json:"html_instructions"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Matrix requests walking distances for every origin/destination pair.
func (g *GoogleClient) Matrix(ctx context.Context, origins, destinations []Point) ([][]Element, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, nil
	}
	if len(origins)*len(destinations) > g.maxElements {
		return nil, eris.Errorf("routing: %d elements exceed limit %d", len(origins)*len(destinations), g.maxElements)
	}

	params := url.Values{
		"origins":      {joinPoints(origins)},
		"destinations": {joinPoints(destinations)},
		"mode":         {"walking"},
		"key":          {g.apiKey},
	}
	var resp matrixResponse
	if err := g.get(ctx, "/distancematrix/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK {
		return nil, eris.Errorf("routing: distance matrix status %s: %s", resp.Status, resp.ErrorMessage)
	}
	if len(resp.Rows) != len(origins) {
		return nil, eris.Errorf("routing: distance matrix returned %d rows for %d origins", len(resp.Rows), len(origins))
	}

	rows := make([][]Element, len(origins))
	for i, row := range resp.Rows {
		rows[i] = make([]Element, len(destinations))
		for j := range destinations {
			if j >= len(row.Elements) {
				rows[i][j] = Element{Status: StatusError}
				continue
			}
			el := row.Elements[j]
			rows[i][j] = Element{
				DistanceKm:      el.Distance.Value / 1000,
				DurationSeconds: int(el.Duration.Value),
				Status:          el.Status,
			}
		}
	}
	return rows, nil
}

// Directions requests a walking route between two points.
func (g *GoogleClient) Directions(ctx context.Context, origin, destination Point) (*Route, error) {
	params := url.Values{
		"origin":      {origin.String()},
		"destination": {destination.String()},
		"mode":        {"walking"},
		"key":         {g.apiKey},
	}
	var resp directionsResponse
	if err := g.get(ctx, "/directions/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK || len(resp.Routes) == 0 {
		return nil, eris.Errorf("routing: directions status %s: %s", resp.Status, resp.ErrorMessage)
	}

	r := resp.Routes[0]
	route := &Route{Polyline: r.OverviewPolyline.Points}
	for _, leg := range r.Legs {
		route.DistanceKm += leg.Distance.Value / 1000
		route.DurationSeconds += int(leg.Duration.Value)
		for _, step := range leg.Steps {
			route.Instructions = append(route.Instructions, stripHTML(step.HTMLInstructions))
		}
	}
	if route.Polyline != "" {
		points, err := DecodePolyline(route.Polyline)
		if err != nil {
			return nil, eris.Wrap(err, "routing: decode overview polyline")
		}
		route.Points = points
	}
	return route, nil
}

func (g *GoogleClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if g.apiKey == "" {
		return eris.New("routing: api key not configured")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "routing: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "routing: build request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return eris.Wrap(err, "routing: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("routing: provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "routing: read body")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "routing: parse response")
	}
	return nil
}

func joinPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
}
