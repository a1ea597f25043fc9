package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

type statusRecorder struct {
	statuses []int
}

func (r *statusRecorder) ObserveRender(string, time.Duration, bool) {}
func (r *statusRecorder) ObserveExportDuration(time.Duration)       {}
func (r *statusRecorder) IncExportPages(int)                        {}
func (r *statusRecorder) IncHTTPRequest(_ string, status int)       { r.statuses = append(r.statuses, status) }

func testPage(code int, message string) string {
	return fmt.Sprintf("<html>%d %s</html>", code, message)
}

func TestChain_RecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	rec := &statusRecorder{}

	h := Chain(logger, ferrors.NewHTTPErrorAdapter(logger), testPage, rec)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/explode", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body, _ := io.ReadAll(w.Body)
	require.Equal(t, "<html>500 Internal Server Error</html>", string(body))
	require.Contains(t, logs.String(), "HTTP handler panic")
	require.Equal(t, []int{http.StatusInternalServerError}, rec.statuses)
}

func TestChain_PanicAfterHeadersWritten(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	rec := &statusRecorder{}

	h := Chain(logger, ferrors.NewHTTPErrorAdapter(logger), testPage, rec)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>partial"))
			panic("late boom")
		}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/late", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "<html>partial", w.Body.String())
	require.Contains(t, logs.String(), "HTTP handler panic")
	require.Equal(t, []int{http.StatusOK}, rec.statuses)
}

func TestChain_RequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var seen string
	h := Chain(logger, ferrors.NewHTTPErrorAdapter(logger), testPage, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, w.Header().Get(RequestIDHeader))
	require.Len(t, seen, 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestChain_LogsStatus(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	h := Chain(logger, ferrors.NewHTTPErrorAdapter(logger), testPage, nil)(http.NotFoundHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Contains(t, logs.String(), "status=404")
	require.Contains(t, logs.String(), "path=/missing")
}
