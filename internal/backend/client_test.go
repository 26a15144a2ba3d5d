package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, zap.NewNop().Sugar())
}

func TestDoSetsAuthHeaders(t *testing.T) {
	var gotAuth, gotAccept string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"ok":true}`))
	})

	raw, err := client.Do(context.Background(), http.MethodGet, "/menus/m1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestDoSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/menus/m1/categories", map[string]any{"name": "Burgers"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name":"Burgers"}`, string(gotBody))
}

func TestDoReturnsAPIErrorWithServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"plan limit reached"}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/menus/m1/items", map[string]any{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "plan limit reached", apiErr.Message)
}

func TestDoAPIErrorMessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"name is required"}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/x", map[string]any{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "name is required", apiErr.Message)
}

func TestDoAPIErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/x", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "backend returned status 502", apiErr.Message)
}

func TestDoTransportError(t *testing.T) {
	client := New(Config{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	}, zap.NewNop().Sugar())

	_, err := client.Do(context.Background(), http.MethodGet, "/x", nil)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
