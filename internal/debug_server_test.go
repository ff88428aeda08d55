package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugMux(t *testing.T) {
	req := require.New(t)
	mux := NewDebugMux(func() map[string]any {
		return map[string]any{"stored": 3, "received": 5}
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("received 5\nstored 3\n", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "go_goroutines")
}
