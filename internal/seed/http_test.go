package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Load(t *testing.T) {
	t.Run("fetches and parses a remote document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"words": [{"word": "Gopher", "definition": "A burrowing rodent."}]}`))
		}))
		defer server.Close()

		got, err := NewHTTPSource(server.URL, time.Second, 0).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Word: "Gopher", Definition: "A burrowing rodent."}}, got)
	})

	t.Run("retries server errors until one succeeds", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"words": []}`))
		}))
		defer server.Close()

		got, err := NewHTTPSource(server.URL, time.Second, 2).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, int32(3), requests.Load())
	})

	t.Run("does not retry a client error", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL, time.Second, 2).Load(context.Background())
		assert.Error(t, err)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("does not retry a schema mismatch", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(`{"entries": []}`))
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL, time.Second, 2).Load(context.Background())
		assert.Error(t, err)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewHTTPSource(server.URL, time.Second, 1).Load(context.Background())
		assert.Error(t, err)
		assert.Equal(t, int32(2), requests.Load())
	})
}
