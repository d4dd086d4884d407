package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/ziadkadry99/docnav/internal/config"
	"github.com/ziadkadry99/docnav/internal/logfields"
	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/sidebar"
	"github.com/ziadkadry99/docnav/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// sidebarOptions maps the sidebar section of cfg onto builder options.
func sidebarOptions(cfg *config.Config) sidebar.Options {
	s := cfg.Sidebar
	return sidebar.Options{
		BaseDir:        cfg.DocsDir,
		Categories:     s.Categories,
		Extension:      s.Extension,
		IndexName:      s.IndexFile,
		HomeLabel:      s.HomeLabel,
		ExpandDepth:    s.ExpandDepth,
		Sort:           sidebar.SortMode(s.Sort),
		Titles:         sidebar.TitleMode(s.Titles),
		Exclude:        s.Exclude,
		NormalizeNames: s.NormalizeNames,
	}
}

// buildOptions are the per-invocation output settings shared by build and watch.
type buildOptions struct {
	Output      string // overrides cfg.Output when set
	SidebarOnly bool
	Format      site.Format
	Reporter    progress.Reporter
}

// buildSite rebuilds the sidebar from scratch, logs its diagnostics and
// writes the output. Nothing is cached between calls.
func buildSite(ctx context.Context, fsys afero.Fs, cfg *config.Config, opts buildOptions, logger *slog.Logger) (sidebar.Result, error) {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	sbOpts := sidebarOptions(cfg)
	sbOpts.OnCategory = func(i int, name string) {
		reporter.Update(i+1, name)
	}
	builder, err := sidebar.NewBuilder(fsys, sbOpts)
	if err != nil {
		return sidebar.Result{}, err
	}

	reporter.Start(len(sbOpts.Categories))
	res := builder.Build()
	reporter.Finish()

	res.Diagnostics.Log(ctx, logger)

	output := opts.Output
	if output == "" {
		output = cfg.Output
	}

	var v any = site.Compose(cfg, res)
	if opts.SidebarOnly {
		v = res.Tree
	}
	if err := site.WriteFile(output, v, opts.Format); err != nil {
		return res, err
	}

	logger.Info("wrote site configuration",
		logfields.Output(output),
		logfields.Entries(countEntries(res.Tree)),
	)
	return res, nil
}

func countEntries(tree sidebar.Tree) int {
	n := 0
	for _, entries := range tree {
		n += sidebar.Count(entries)
	}
	return n
}
