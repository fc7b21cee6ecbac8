package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		LogFormat:      "text",
		LogLevel:       "error",
		MaxLength:      32,
		RateLimitRPS:   0.001,
		RateLimitBurst: 2,
	}
}

func TestRouter_Health(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_GenerateAndRateLimit(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig()))
	defer srv.Close()

	post := func() *http.Response {
		resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json", strings.NewReader(`{"length":12,"numbers":true}`))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	resp := post()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["password"], 12)
	assert.EqualValues(t, 10, body["charset_size"])

	assert.Equal(t, http.StatusOK, post().StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, post().StatusCode)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/generate")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_LengthAboveConfiguredMax(t *testing.T) {
	srv := httptest.NewServer(newRouter(testConfig()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json", strings.NewReader(`{"length":33}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
