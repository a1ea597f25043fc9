package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRoute      = "route"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyFolder     = "folder"
	KeyTheme      = "theme"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyRequestID  = "request_id"
	KeyURL        = "url"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Folder(f string) slog.Attr       { return slog.String(KeyFolder, f) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
