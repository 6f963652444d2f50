package scout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"poeconv/internal/domain"

	"github.com/tidwall/gjson"
)

const maxBodyBytes = 8 << 20

var (
	ErrRelayEnvelope = errors.New("malformed relay envelope")
	ErrRelayContents = errors.New("relay envelope has no contents")
	ErrRelayUpstream = errors.New("relay reported upstream failure")
	ErrBodyTooLarge  = errors.New("response body too large")
)

// Client talks to the currency pricing API, optionally through a CORS relay
// that answers {"contents": "<upstream body>", "status": {"http_code": n}}.
type Client struct {
	http       *http.Client
	catalogURL string
	leaguesURL string
	relayURL   string
	perPage    int
	maxBody    int64
}

func (c *Client) GetCurrencyPage(ctx context.Context, league string, page int) (domain.ListingPage, error) {
	u, err := url.Parse(c.catalogURL)
	if err != nil {
		return domain.ListingPage{}, fmt.Errorf("failed to parse catalog URL: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(c.perPage))
	q.Set("league", league)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return domain.ListingPage{}, fmt.Errorf("failed to fetch page %d for league %q: %w", page, league, err)
	}

	var p domain.ListingPage
	if err = json.Unmarshal(body, &p); err != nil {
		return domain.ListingPage{}, fmt.Errorf("failed to decode page %d for league %q: %w", page, league, err)
	}
	return p, nil
}

func (c *Client) GetLeagues(ctx context.Context) ([]domain.League, error) {
	if _, err := url.Parse(c.leaguesURL); err != nil {
		return nil, fmt.Errorf("failed to parse leagues URL: %w", err)
	}

	body, err := c.get(ctx, c.leaguesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leagues: %w", err)
	}

	var raw []domain.League
	if err = json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode leagues: %w", err)
	}

	leagues := make([]domain.League, 0, len(raw))
	for _, l := range raw {
		l.ID = strings.TrimSpace(l.ID)
		if l.ID == "" {
			continue
		}
		if l.Text == "" {
			l.Text = l.ID
		}
		leagues = append(leagues, l)
	}
	return leagues, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	reqURL := target
	if c.relayURL != "" {
		reqURL = c.relayURL + url.QueryEscape(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, c.maxBody)
	}

	if c.relayURL == "" {
		return body, nil
	}
	return unwrapRelay(body)
}

func unwrapRelay(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrRelayEnvelope
	}
	if status := gjson.GetBytes(body, "status.http_code"); status.Exists() {
		if code := status.Int(); code < 200 || code >= 300 {
			return nil, fmt.Errorf("%w: status %d", ErrRelayUpstream, code)
		}
	}
	contents := gjson.GetBytes(body, "contents")
	if contents.Type != gjson.String {
		return nil, ErrRelayContents
	}
	return []byte(contents.String()), nil
}

func NewClient(httpClient *http.Client, catalogURL, leaguesURL, relayURL string, perPage int) *Client {
	if perPage <= 0 {
		perPage = 100
	}
	return &Client{
		http:       httpClient,
		catalogURL: catalogURL,
		leaguesURL: leaguesURL,
		relayURL:   relayURL,
		perPage:    perPage,
		maxBody:    maxBodyBytes,
	}
}
