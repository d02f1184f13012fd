package pkg

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSONSetsCorrelationHeaders(t *testing.T) {
	var gotContentType, gotRequestID string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewTraceClient(5 * time.Second)
	status, body, err := c.PostJSON(context.Background(), srv.URL, []byte(`{"x":1}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
	assert.JSONEq(t, `{"x":1}`, string(gotBody))
}

func TestPostJSONReportsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewTraceClient(5 * time.Second)
	status, _, err := c.PostJSON(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
}

func TestPostJSONTransportError(t *testing.T) {
	c := NewTraceClient(500 * time.Millisecond)
	_, _, err := c.PostJSON(context.Background(), "http://127.0.0.1:1/nope", nil)
	assert.Error(t, err)
}
