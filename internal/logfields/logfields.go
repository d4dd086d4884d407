package logfields

import "log/slog"

// Canonical log field names shared by the CLI and the diagnostics sink.
const (
	KeyCategory = "category"
	KeyPath     = "path"
	KeyKind     = "kind"
	KeyEntries  = "entries"
	KeyOutput   = "output"
	KeyEvents   = "events"
	KeyError    = "error"
)

func Category(name string) slog.Attr { return slog.String(KeyCategory, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Kind(k string) slog.Attr        { return slog.String(KeyKind, k) }
func Entries(n int) slog.Attr        { return slog.Int(KeyEntries, n) }
func Output(p string) slog.Attr      { return slog.String(KeyOutput, p) }
func Events(n int) slog.Attr         { return slog.Int(KeyEvents, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
