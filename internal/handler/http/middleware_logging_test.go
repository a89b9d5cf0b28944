package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handler          http.HandlerFunc
		checkLogContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/players",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("[]"))
			},
			checkLogContains: []string{`"method":"GET"`, `"uri":"/api/players"`, `"status":200`, `"duration":`, `"size":2`},
		},
		{
			name:   "POST 201",
			method: http.MethodPost,
			path:   "/api/players",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("Created"))
			},
			checkLogContains: []string{`"method":"POST"`, `"status":201`, `"size":7`},
		},
		{
			name:   "POST 409",
			method: http.MethodPost,
			path:   "/api/players",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "taken", http.StatusConflict)
			},
			checkLogContains: []string{`"status":409`},
		},
		{
			name:             "handler writes nothing",
			method:           http.MethodGet,
			path:             "/api",
			handler:          func(w http.ResponseWriter, r *http.Request) {},
			checkLogContains: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{}

			rec := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
