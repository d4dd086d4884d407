package sidebar

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"
)

func TestBuildProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	layout := gen.SliceOf(gen.RegexMatch(`^(a|b|index)(/(a|b|index)){0,3}\.(md|txt)$`))

	newFs := func(paths []string) afero.Fs {
		fsys := afero.NewMemMapFs()
		for _, p := range paths {
			_ = afero.WriteFile(fsys, "/site/docs/"+p, []byte(p), 0o644)
		}
		return fsys
	}
	opts := Options{BaseDir: "/site", Categories: []string{"docs"}}

	// Property: two builds of the same filesystem are identical
	properties.Property("build is idempotent", prop.ForAll(
		func(paths []string) bool {
			fsys := newFs(paths)
			first, err := Build(fsys, opts)
			if err != nil {
				return false
			}
			second, err := Build(fsys, opts)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		layout,
	))

	// Property: nested groups are never empty and index documents never become leaves
	properties.Property("pruning and index exclusion", prop.ForAll(
		func(paths []string) bool {
			res, err := Build(newFs(paths), opts)
			if err != nil {
				return false
			}
			top := res.Tree["/docs/"]
			if len(top) != 1 {
				return false
			}
			return wellFormed(top[0].Items, "/docs/", true)
		},
		layout,
	))

	// Property: every document outside index files is reachable as a leaf
	properties.Property("every document is listed", prop.ForAll(
		func(paths []string) bool {
			res, err := Build(newFs(paths), opts)
			if err != nil {
				return false
			}
			links := make(map[string]bool)
			collectLinks(res.Tree["/docs/"], links)
			for _, p := range paths {
				if !strings.HasSuffix(p, ".md") || strings.HasSuffix(p, "index.md") {
					continue
				}
				if !links["/docs/"+strings.TrimSuffix(p, ".md")] {
					return false
				}
			}
			return true
		},
		layout,
	))

	properties.TestingRun(t)
}

func wellFormed(entries []Entry, prefix string, top bool) bool {
	for i, e := range entries {
		if !e.IsGroup() {
			if e.Link == prefix {
				// only the category home link may point at the prefix itself
				if !top || i != 0 {
					return false
				}
				continue
			}
			if e.Text == "index" {
				return false
			}
			continue
		}
		if len(e.Items) == 0 || !e.Collapsed {
			return false
		}
		if !wellFormed(e.Items, prefix+e.Text+"/", false) {
			return false
		}
	}
	return true
}

func collectLinks(entries []Entry, into map[string]bool) {
	for _, e := range entries {
		if e.IsGroup() {
			collectLinks(e.Items, into)
			continue
		}
		into[e.Link] = true
	}
}
