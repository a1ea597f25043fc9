package errors

import (
	"log/slog"
	"net/http"
)

// HTTPErrorAdapter turns errors into themed error pages.
type HTTPErrorAdapter struct {
	logger *slog.Logger
}

// NewHTTPErrorAdapter creates an adapter; a nil logger means slog.Default().
func NewHTTPErrorAdapter(logger *slog.Logger) *HTTPErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPErrorAdapter{logger: logger}
}

// StatusCodeFor returns 200 for nil, 500 for unclassified errors and the
// category's status otherwise.
func (a *HTTPErrorAdapter) StatusCodeFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if c, ok := AsClassified(err); ok {
		return c.category.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// PageFunc renders a themed HTML error document for a status code and message.
type PageFunc func(code int, message string) string

// WriteErrorPage writes the page for err's status and logs err.
func (a *HTTPErrorAdapter) WriteErrorPage(w http.ResponseWriter, r *http.Request, err error, page PageFunc) {
	status := a.StatusCodeFor(err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(page(status, http.StatusText(status))))

	if err == nil {
		return
	}
	if c, ok := AsClassified(err); ok {
		c.log(r.Context(), a.logger, slog.String("path", r.URL.Path))
		return
	}
	a.logger.ErrorContext(r.Context(), "Unclassified request error", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
}
