package scout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const pageBody = `{
    "currentPage": 1,
    "pages": 3,
    "total": 2,
    "items": [
        {"id": 1, "apiId": "chaos", "text": "Chaos Orb", "currentPrice": 1},
        {"id": 2, "apiId": "divine", "text": "Divine Orb", "currentPrice": 680.5}
    ]
}`

func TestClient_GetCurrencyPage_Direct(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pageBody))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/api/items/currency", srv.URL+"/api/leagues", "", 50)

	page, err := c.GetCurrencyPage(context.Background(), "Dawn of the Hunt", 2)
	require.NoError(t, err)
	require.Equal(t, "2", gotQuery.Get("page"))
	require.Equal(t, "50", gotQuery.Get("perPage"))
	require.Equal(t, "Dawn of the Hunt", gotQuery.Get("league"))
	require.Equal(t, 3, page.Pages)
	require.Len(t, page.Items, 2)
	require.Equal(t, "divine", page.Items[1].APIID)
	require.NotNil(t, page.Items[1].CurrentPrice)
	require.InDelta(t, 680.5, *page.Items[1].CurrentPrice, 1e-9)
}

func TestClient_GetCurrencyPage_ThroughRelay(t *testing.T) {
	var gotTarget string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.URL.Query().Get("url")
		env, _ := json.Marshal(map[string]any{
			"contents": pageBody,
			"status":   map[string]int{"http_code": 200},
		})
		_, _ = w.Write(env)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), "https://poe2scout.com/api/items/currency/currency", "https://poe2scout.com/api/leagues", srv.URL+"/get?url=", 100)

	page, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	target, err := url.Parse(gotTarget)
	require.NoError(t, err)
	require.Equal(t, "poe2scout.com", target.Host)
	require.Equal(t, "Standard", target.Query().Get("league"))
	require.Equal(t, "100", target.Query().Get("perPage"))
}

func TestClient_RelayUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"contents": "not found", "status": {"http_code": 404}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), "https://upstream/items", "https://upstream/leagues", srv.URL+"/?url=", 0)

	_, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.ErrorIs(t, err, ErrRelayUpstream)
	require.Contains(t, err.Error(), "status 404")
	require.Contains(t, err.Error(), `league "Standard"`)
}

func TestClient_RelayEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "not json", body: "<html>", want: ErrRelayEnvelope},
		{name: "no contents", body: `{"status": {"http_code": 200}}`, want: ErrRelayContents},
		{name: "null contents", body: `{"contents": null}`, want: ErrRelayContents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c := NewClient(srv.Client(), "https://upstream/items", "https://upstream/leagues", srv.URL+"/?url=", 0)

			_, err := c.GetLeagues(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/items", srv.URL+"/leagues", "", 0)

	_, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestClient_BodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageBody))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/items", srv.URL+"/leagues", "", 0)
	c.maxBody = 32

	_, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.ErrorIs(t, err, ErrBodyTooLarge)

	c.maxBody = int64(len(pageBody))
	page, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
}

func TestClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/items", srv.URL+"/leagues", "", 0)

	_, err := c.GetCurrencyPage(context.Background(), "Standard", 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to decode page 4 for league "Standard"`)
}

func TestClient_CatalogURLParseError(t *testing.T) {
	c := NewClient(http.DefaultClient, "http://[::1", "", "", 0)

	_, err := c.GetCurrencyPage(context.Background(), "Standard", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse catalog URL")
}

func TestClient_GetLeagues(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[
            {"id": "Dawn of the Hunt", "text": "Dawn of the Hunt"},
            {"id": "", "text": "broken"},
            {"id": "Standard"}
        ]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/api/items", srv.URL+"/api/leagues", "", 0)

	leagues, err := c.GetLeagues(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api/leagues", gotPath)
	require.Len(t, leagues, 2)
	require.Equal(t, "Dawn of the Hunt", leagues[0].ID)
	require.Equal(t, "Standard", leagues[1].ID)
	require.Equal(t, "Standard", leagues[1].Text)
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL+"/items", srv.URL+"/leagues", "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetLeagues(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
