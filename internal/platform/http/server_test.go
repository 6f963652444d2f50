package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"poeconv/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestServe_ShutsDownOnContextCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, listener, router) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + listener.Addr().String() + "/ping")
		if getErr != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	require.Equal(t, "pong", string(body))

	cancel()
	select {
	case serveErr := <-done:
		require.NoError(t, serveErr)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStart_InvalidPort(t *testing.T) {
	err := Start(context.Background(), config.HTTPServer{Port: "not-a-port"}, chi.NewRouter())
	require.Error(t, err)
}
