package board

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewHTTPGateway(srv.URL+"/", 2*time.Second)
	require.NoError(t, err)
	return gw
}

func TestNewHTTPGateway_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPGateway("/activities", time.Second)
	assert.Error(t, err)
}

func TestHTTPGateway_ListActivities(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/activities", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Soccer":{"max_participants":3},"Art":{"participants":"nobody"}}`))
		})

		activities, err := gw.ListActivities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Soccer", "Art"}, activities.Names())

		art, ok := activities.Get("Art")
		require.True(t, ok)
		assert.Empty(t, art.Participants)
	})

	t.Run("non-200 is a status error", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := gw.ListActivities(context.Background())
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})

	t.Run("array body is rejected", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := gw.ListActivities(context.Background())
		assert.Error(t, err)
	})
}

func TestHTTPGateway_Signup(t *testing.T) {
	t.Run("escapes name and email, sends no body", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/activities/Chess%20Club%2FAdvanced/signup", r.URL.EscapedPath())
			assert.Equal(t, "jane+chess@mergington.edu", r.URL.Query().Get("email"))
			assert.Zero(t, r.ContentLength)
			_, _ = w.Write([]byte(`{"message":"Signed up Jane for Chess Club/Advanced"}`))
		})

		msg, err := gw.Signup(context.Background(), "Chess Club/Advanced", "jane+chess@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, "Signed up Jane for Chess Club/Advanced", msg)
	})

	t.Run("error reply keeps detail and message", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"Activity is full","message":"ignored"}`))
		})

		_, err := gw.Signup(context.Background(), "Chess Club", "jane@mergington.edu")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.Code)
		assert.Equal(t, "Activity is full", statusErr.Text("fallback"))
	})

	t.Run("validation detail list falls back", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":[{"loc":["query","email"]}]}`))
		})

		_, err := gw.Signup(context.Background(), "Chess Club", "")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "Signup failed", statusErr.Text("Signup failed"))
	})

	t.Run("non-JSON reply is not a status error", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := gw.Signup(context.Background(), "Chess Club", "jane@mergington.edu")
		require.Error(t, err)
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
	})
}

func TestHTTPGateway_RemoveParticipant(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/activities/Chess Club/participants", r.URL.Path)
		assert.Equal(t, "michael@mergington.edu", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"message":"Removed michael@mergington.edu from Chess Club"}`))
	})

	msg, err := gw.RemoveParticipant(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Removed michael@mergington.edu from Chess Club", msg)
}

func TestHTTPGateway_CancelledContext(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.ListActivities(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
