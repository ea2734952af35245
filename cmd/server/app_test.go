package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/mocks"
	"github.com/lexiblog/lexiblog-api/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(metricsEnabled bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			LogLevel:       "debug",
			MetricsEnabled: metricsEnabled,
			MaxBodyBytes:   1 << 20,
		},
		LLM: config.LLMConfig{
			Provider:  config.ProviderGemini,
			ModelName: "gemini-2.5-flash",
		},
	}
}

func newTestApp(t *testing.T, metricsEnabled bool, factory generation.ClientFactory) *application {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	app, err := buildApplication(testConfig(metricsEnabled), log, prometheus.NewRegistry(), factory)
	require.NoError(t, err)
	return app
}

func TestNewApplication_UnknownProvider(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := testConfig(false)
	cfg.LLM.Provider = "anthropic"

	_, err := newApplication(cfg, log, prometheus.NewRegistry())

	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewApplication_WithoutCredential(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	app, err := newApplication(testConfig(false), log, prometheus.NewRegistry())

	require.NoError(t, err, "a missing credential is a time-of-use failure")
	require.NotNil(t, app.dispatcher)
	logger.AssertLogContains(t, buf, "model credential not configured")

	_, err = app.factory.NewClient(context.Background())
	assert.ErrorIs(t, err, generation.ErrAuthentication)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	app := newTestApp(t, false, mocks.NewMockClientFactory(&mocks.MockClient{}))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	client := &mocks.MockClient{Response: "Você sabia? Goroutines são baratas."}
	app := newTestApp(t, true, mocks.NewMockClientFactory(client))
	srv := httptest.NewServer(app.setupRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/gemini", "application/json",
		strings.NewReader(`{"action":"generateSearchInsights","payload":{"query":"goroutines"}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"insight":"Você sabia? Goroutines são baratas."}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
