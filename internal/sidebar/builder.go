// Package sidebar scans a documentation directory and builds the navigation
// tree a static site framework renders in its side panel.
//
// Each category is a directory directly under the base directory. Inside it,
// every subdirectory with at least one document becomes a group and every
// document except the index becomes a leaf. The scan uses an explicit
// worklist and a visited set keyed by the canonical directory path, so
// symlink cycles terminate.
package sidebar

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/ziadkadry99/docnav/internal/walker"
)

// SortMode controls the order of entries within a directory.
type SortMode string

const (
	SortNone SortMode = "none" // filesystem enumeration order
	SortName SortMode = "name" // lexicographic by file name
)

// TitleMode controls where leaf text comes from.
type TitleMode string

const (
	TitleFilename TitleMode = "filename"
	TitleHeading  TitleMode = "heading"
)

// Defaults applied by NewBuilder for zero-valued options.
const (
	DefaultExtension = ".md"
	DefaultIndexName = "index.md"
	DefaultHomeLabel = "{name}首页"
)

// Options configures a Builder.
type Options struct {
	BaseDir    string
	Categories []string

	Extension string // document extension including the dot
	IndexName string // reserved per-directory home document
	HomeLabel string // text of the home leaf; "{name}" is replaced by the category

	// Groups nested at depth <= ExpandDepth are expanded. The category group
	// itself is depth 0 and is always expanded. 1 keeps first-level
	// subgroups open as well.
	ExpandDepth int

	Sort           SortMode
	Titles         TitleMode
	Exclude        []string // doublestar patterns relative to the category directory
	NormalizeNames bool     // NFC-normalize names used for text and links

	// OnCategory, when set, is called before each category is processed.
	OnCategory func(index int, name string)
}

// Category describes a category that produced a tree entry.
type Category struct {
	Name   string // directory name as configured
	Text   string // display text
	Prefix string // tree key and URL prefix
}

// Result is the outcome of one build.
type Result struct {
	Tree        Tree
	Categories  []Category // in input order
	Diagnostics Diagnostics
}

// Names returns the configured names of the built categories.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Builder builds sidebar trees. It holds no state between builds.
type Builder struct {
	fs      afero.Fs
	opts    Options
	exclude *walker.Matcher
}

// NewBuilder returns a Builder reading from fsys.
func NewBuilder(fsys afero.Fs, opts Options) (*Builder, error) {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if !strings.HasPrefix(opts.Extension, ".") {
		return nil, fmt.Errorf("sidebar: extension %q must start with a dot", opts.Extension)
	}
	if opts.IndexName == "" {
		opts.IndexName = DefaultIndexName
	}
	if opts.HomeLabel == "" {
		opts.HomeLabel = DefaultHomeLabel
	}
	if opts.Sort == "" {
		opts.Sort = SortNone
	}
	if opts.Titles == "" {
		opts.Titles = TitleFilename
	}
	exclude, err := walker.NewMatcher(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("sidebar: %w", err)
	}
	return &Builder{fs: fsys, opts: opts, exclude: exclude}, nil
}

// Build is shorthand for NewBuilder followed by Builder.Build.
func Build(fsys afero.Fs, opts Options) (Result, error) {
	b, err := NewBuilder(fsys, opts)
	if err != nil {
		return Result{}, err
	}
	return b.Build(), nil
}

// Build scans every category and returns the tree. Problems are reported as
// diagnostics; a category that cannot be processed is left out of the tree
// and the remaining categories are still built.
func (b *Builder) Build() Result {
	res := Result{Tree: Tree{}}
	diags := &collector{}

	for i, name := range b.opts.Categories {
		if b.opts.OnCategory != nil {
			b.opts.OnCategory(i, name)
		}
		display := b.name(name)
		prefix := "/" + display + "/"

		items, err := b.category(name, prefix, diags)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				diags.warn(KindMissingCategory, name, filepath.Join(b.opts.BaseDir, name), nil)
			} else {
				diags.add(Diagnostic{Level: slog.LevelError, Kind: KindCategoryError, Category: name, Err: err})
			}
			continue
		}

		res.Tree[prefix] = []Entry{Group(display, false, items)}
		res.Categories = append(res.Categories, Category{Name: name, Text: display, Prefix: prefix})
		diags.add(Diagnostic{Level: slog.LevelInfo, Kind: KindSummary, Category: name, Entries: len(items)})
	}

	res.Diagnostics = diags.list
	return res
}

// category returns the items of one category group: the home leaf, if the
// index document exists, followed by the scanned entries.
func (b *Builder) category(name, prefix string, diags *collector) ([]Entry, error) {
	dir := filepath.Join(b.opts.BaseDir, name)
	info, err := b.fs.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sidebar: %s is not a directory", dir)
	}

	items := []Entry{}
	hasIndex, err := walker.Exists(b.fs, filepath.Join(dir, b.opts.IndexName))
	if err != nil {
		diags.warn(KindEntryError, name, filepath.Join(dir, b.opts.IndexName), err)
	}
	if hasIndex {
		label := strings.ReplaceAll(b.opts.HomeLabel, "{name}", b.name(name))
		items = append(items, Leaf(label, prefix))
	}

	scanned, err := b.scan(name, dir, prefix, diags)
	if err != nil {
		return nil, err
	}
	return append(items, scanned...), nil
}

// dirNode is a directory discovered during a scan.
type dirNode struct {
	path   string
	rel    string // slash-separated, relative to the category directory
	prefix string // URL prefix of entries inside this directory
	text   string
	depth  int

	slots   []slot
	entries []Entry
}

// slot preserves enumeration order between leaves and child directories
// whose entries are not known yet.
type slot struct {
	leaf  Entry
	child *dirNode
}

// scan walks the category directory with an explicit stack. Directories are
// recorded in discovery order; since a child is always discovered after its
// parent, resolving them in reverse order builds every group before its
// parent needs it.
func (b *Builder) scan(category, root, prefix string, diags *collector) ([]Entry, error) {
	rootKey, err := walker.Canonical(b.fs, root)
	if err != nil {
		return nil, err
	}
	visited := map[string]bool{rootKey: true}

	top := &dirNode{path: root, prefix: prefix}
	order := []*dirNode{top}
	stack := []*dirNode{top}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		listed, err := walker.List(b.fs, n.path)
		if err != nil {
			if n == top {
				return nil, err
			}
			diags.warn(KindEntryError, category, n.path, err)
			continue
		}
		if b.opts.Sort == SortName {
			slices.SortStableFunc(listed, func(x, y walker.Entry) int {
				return strings.Compare(x.Name, y.Name)
			})
		}

		for _, e := range listed {
			rel := path.Join(n.rel, e.Name)
			if b.exclude.Match(rel) {
				continue
			}
			if e.Status == walker.StatusUnsupported {
				diags.add(Diagnostic{Level: slog.LevelDebug, Kind: KindSkipped, Category: category, Path: e.Path})
				continue
			}
			if e.Failed() {
				diags.warn(KindEntryError, category, e.Path, e.Err)
				continue
			}

			switch {
			case e.IsDir():
				key, err := walker.Canonical(b.fs, e.Path)
				if err != nil {
					diags.warn(KindEntryError, category, e.Path, err)
					continue
				}
				if visited[key] {
					diags.warn(KindRevisit, category, e.Path, nil)
					continue
				}
				visited[key] = true

				text := b.name(e.Name)
				child := &dirNode{
					path:   e.Path,
					rel:    rel,
					prefix: n.prefix + text + "/",
					text:   text,
					depth:  n.depth + 1,
				}
				n.slots = append(n.slots, slot{child: child})
				order = append(order, child)
				stack = append(stack, child)

			case e.IsRegular() && b.isDocument(e.Name):
				n.slots = append(n.slots, slot{leaf: b.leaf(category, e, n.prefix, diags)})
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		entries := make([]Entry, 0, len(n.slots))
		for _, s := range n.slots {
			if s.child == nil {
				entries = append(entries, s.leaf)
				continue
			}
			if len(s.child.entries) == 0 {
				continue
			}
			entries = append(entries, Group(s.child.text, s.child.depth > b.opts.ExpandDepth, s.child.entries))
		}
		n.entries = entries
	}
	return top.entries, nil
}

func (b *Builder) isDocument(name string) bool {
	return strings.HasSuffix(name, b.opts.Extension) && name != b.opts.IndexName
}

func (b *Builder) leaf(category string, e walker.Entry, prefix string, diags *collector) Entry {
	stem := b.name(strings.TrimSuffix(e.Name, b.opts.Extension))
	text := stem

	if b.opts.Titles == TitleHeading {
		src, err := afero.ReadFile(b.fs, e.Path)
		if err != nil {
			diags.warn(KindTitle, category, e.Path, err)
		} else if title := documentTitle(src); title != "" {
			text = title
		}
	}
	return Leaf(text, prefix+stem)
}

func (b *Builder) name(s string) string {
	if b.opts.NormalizeNames {
		return norm.NFC.String(s)
	}
	return s
}
