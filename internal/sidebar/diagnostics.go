package sidebar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/docnav/internal/logfields"
)

// Kind categorizes a diagnostic.
type Kind string

const (
	KindMissingCategory Kind = "missing_category"
	KindCategoryError   Kind = "category_error"
	KindEntryError      Kind = "entry_error"
	KindSkipped         Kind = "skipped" // neither a regular file nor a directory
	KindRevisit         Kind = "revisit"
	KindTitle           Kind = "title"
	KindSummary         Kind = "summary"
)

// Diagnostic is one operator-facing message produced during a build.
type Diagnostic struct {
	Level    slog.Level
	Kind     Kind
	Category string
	Path     string
	Entries  int // set on KindSummary
	Err      error
}

// Message renders a human-readable line for d.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case KindMissingCategory:
		return fmt.Sprintf("category directory %q does not exist", d.Category)
	case KindCategoryError:
		return fmt.Sprintf("processing category %q failed", d.Category)
	case KindEntryError:
		return fmt.Sprintf("cannot process path %s", d.Path)
	case KindSkipped:
		return fmt.Sprintf("ignoring special file %s", d.Path)
	case KindRevisit:
		return fmt.Sprintf("skipping already visited directory %s", d.Path)
	case KindTitle:
		return fmt.Sprintf("cannot read title from %s", d.Path)
	case KindSummary:
		return fmt.Sprintf("sidebar for %q generated with %d items", d.Category, d.Entries)
	default:
		return string(d.Kind)
	}
}

// Diagnostics is the ordered list of messages from one build.
type Diagnostics []Diagnostic

// ByKind returns the diagnostics of kind k, in order.
func (ds Diagnostics) ByKind(k Kind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic is at error level or above.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Level >= slog.LevelError {
			return true
		}
	}
	return false
}

// Log forwards every diagnostic to logger at its own level.
func (ds Diagnostics) Log(ctx context.Context, logger *slog.Logger) {
	for _, d := range ds {
		attrs := []slog.Attr{logfields.Kind(string(d.Kind))}
		if d.Category != "" {
			attrs = append(attrs, logfields.Category(d.Category))
		}
		if d.Path != "" {
			attrs = append(attrs, logfields.Path(d.Path))
		}
		if d.Kind == KindSummary {
			attrs = append(attrs, logfields.Entries(d.Entries))
		}
		if d.Err != nil {
			attrs = append(attrs, logfields.Error(d.Err))
		}
		logger.LogAttrs(ctx, d.Level, d.Message(), attrs...)
	}
}

type collector struct {
	list Diagnostics
}

func (c *collector) add(d Diagnostic) {
	c.list = append(c.list, d)
}

func (c *collector) warn(kind Kind, category, path string, err error) {
	c.add(Diagnostic{Level: slog.LevelWarn, Kind: kind, Category: category, Path: path, Err: err})
}
