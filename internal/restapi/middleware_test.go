package restapi

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldview.openfreight.org/internal/logging"
)

func TestCompressionMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		largeResponse := strings.Repeat(`<circle cx="10" cy="10" r="4"/>`, 500)
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

		reader, err := gzip.NewReader(bytes.NewReader(recorder.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = reader.Close() }()

		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)

		expected := strings.Repeat(`<circle cx="10" cy="10" r="4"/>`, 500)
		assert.Equal(t, expected, string(decompressed))
		assert.Less(t, recorder.Body.Len(), len(expected))
	})

	t.Run("does not compress when gzip not accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Downstream handlers see the request-scoped logger.
		logging.FromContext(r.Context()).Info("handler ran")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	handler := NewRequestLoggingMiddleware(logger)(testHandler)

	req := httptest.NewRequest("POST", "/api/render/route-map.svg?key=TEST", nil)
	req.Header.Set("User-Agent", "test-client")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	output := buf.String()
	assert.Contains(t, output, `"msg":"http_request"`)
	assert.Contains(t, output, `"method":"POST"`)
	assert.Contains(t, output, `"path":"/api/render/route-map.svg"`, "query string stays out of the log")
	assert.Contains(t, output, `"status":201`)
	assert.Contains(t, output, `"bytes":2`)
	assert.Contains(t, output, `"user_agent":"test-client"`)
	assert.Contains(t, output, `"request_id":"`)
	assert.Contains(t, output, `"msg":"handler ran"`)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	api := createTestApi(t)
	handler := api.WithSecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("sets security headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/render/legend.json", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))
		assert.NotEmpty(t, recorder.Header().Get("Strict-Transport-Security"))
		assert.Contains(t, recorder.Header().Get("Content-Security-Policy"), "default-src 'none'")
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/render/route-map.svg", nil)
		req.Header.Set("Origin", "https://dispatch.example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("limits per API key", func(t *testing.T) {
		middleware := NewRateLimitMiddleware(1, time.Hour) // refill too slow to matter in a test
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest("GET", "/test?key=A", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest("GET", "/test?key=A", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get("Retry-After"))
		assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

		// A different key has its own bucket.
		other := httptest.NewRecorder()
		handler.ServeHTTP(other, httptest.NewRequest("GET", "/test?key=B", nil))
		assert.Equal(t, http.StatusOK, other.Code)
	})

	t.Run("negative limit disables limiting", func(t *testing.T) {
		middleware := NewRateLimitMiddleware(-1, 0)
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i := 0; i < 20; i++ {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/test?key=A", nil))
			require.Equal(t, http.StatusOK, recorder.Code)
		}
	})
}

func TestFullMiddlewareChain(t *testing.T) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/render/legend.json?key=TEST")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
