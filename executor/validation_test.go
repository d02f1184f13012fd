package executor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidationReporterPostsStage(t *testing.T) {
	var mu sync.Mutex
	var got validationStatus
	received := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		json.NewDecoder(r.Body).Decode(&got)
		received = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewValidationReporter(srv.URL, zap.NewNop())
	valid := false
	r.Report("v-1", StageStartContainer, "launcher missing", 100, &valid, "launcher missing")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return received
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "v-1", got.ValidationID)
	assert.Equal(t, StageStartContainer, got.Stage)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.Valid)
	assert.False(t, *got.Valid)
}

func TestValidationReporterNoOpWithoutID(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	r := NewValidationReporter(srv.URL, zap.NewNop())
	r.Report("", StagePullImage, "msg", 10, nil, "")

	time.Sleep(100 * time.Millisecond)
	assert.False(t, hit)
}

func TestValidationReporterNilReceiver(t *testing.T) {
	var r *ValidationReporter
	assert.NotPanics(t, func() {
		r.Report("v-2", StagePullImage, "msg", 10, nil, "")
	})
}
