package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/limud/internal/api/shared"
	"github.com/phrazzld/limud/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	l, buf := logger.NewTestLogger()
	var seen string
	handler := Trace(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, seen, 32)
	assert.Equal(t, seen, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, http.StatusTeapot, w.Code)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, seen, e["trace_id"])
	}
	assert.Equal(t, "request completed", entries[2]["msg"])
	assert.Equal(t, float64(http.StatusTeapot), entries[2]["status_code"])
}
