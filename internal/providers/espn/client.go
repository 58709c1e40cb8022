package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches raw dashboard data from the upstream sports API. It maps
// transport and HTTP failures into uniform errors and leaves fallback policy
// to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		timeout:    resolveTimeout(cfg.Timeout),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchGames retrieves the current scoreboard and maps it to raw game records.
func (c *Client) FetchGames(ctx context.Context) ([]providers.RawGame, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, scoreboardPath, &payload); err != nil {
		return nil, err
	}

	games := make([]providers.RawGame, 0, len(payload.Events))
	for _, event := range payload.Events {
		games = append(games, mapEvent(event))
	}
	return games, nil
}

// FetchStandings retrieves the standings listing and maps it to raw rows.
func (c *Client) FetchStandings(ctx context.Context) ([]providers.RawStanding, error) {
	var payload standingsResponse
	if err := c.getJSON(ctx, standingsPath, &payload); err != nil {
		return nil, err
	}

	standings := make([]providers.RawStanding, 0)
	for _, group := range payload.Groups {
		conference, division := splitGroupName(group.Name)
		for _, row := range group.Standings {
			standings = append(standings, mapStandingRow(row, conference, division))
		}
	}
	return standings, nil
}

// FetchLeaders retrieves per-category statistics and maps them to raw
// leader categories, preserving the provider's own ordering.
func (c *Client) FetchLeaders(ctx context.Context) ([]providers.RawLeaderCategory, error) {
	leaders := make([]providers.RawLeaderCategory, 0, len(statCategories))
	for _, category := range statCategories {
		var payload statisticsResponse
		endpoint := fmt.Sprintf("%s?category=%s", statisticsPath, category)
		if err := c.getJSON(ctx, endpoint, &payload); err != nil {
			return nil, err
		}
		leaders = append(leaders, mapLeaderCategory(category, payload))
	}
	return leaders, nil
}

// FetchNews retrieves the news-search listing and maps it to raw articles.
func (c *Client) FetchNews(ctx context.Context) ([]providers.RawArticle, error) {
	var payload newsResponse
	if err := c.getJSON(ctx, newsSearchPath, &payload); err != nil {
		return nil, err
	}

	articles := make([]providers.RawArticle, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		articles = append(articles, mapArticle(article, c.now()))
	}
	return articles, nil
}

// getJSON issues a timed GET against the configured base URL and decodes the
// response body into dest.
func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
