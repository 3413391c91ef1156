package debug

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEndpoint(t *testing.T) {
	s := NewServer("localhost:0")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, URISession, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.Publish(Snapshot{Score: 3, Health: 55, MazeSize: 41, SizeClass: "medium", Player: [2]int{7, 9}})
	s.Publish(Snapshot{Score: 4, Health: 40, MazeSize: 41, SizeClass: "medium", Player: [2]int{1, 1}})

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, URISession, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, 40, got.Health)
	assert.Equal(t, [2]int{1, 1}, got.Player)
}

func TestHealthAndMethodRouting(t *testing.T) {
	s := NewServer("localhost:0")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, URIHealth, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, URIHealth, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPprofCmdline(t *testing.T) {
	s := NewServer("localhost:0")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, URIPprof+"/cmdline", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShutdownStopsRunningServer(t *testing.T) {
	s := NewServer("localhost:0")
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not return after Shutdown")
	}
}

func TestShutdownBeforeListen(t *testing.T) {
	s := NewServer("localhost:0")
	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, s.ListenAndServe())
}
