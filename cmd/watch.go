package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/logfields"
	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/site"
	"github.com/ziadkadry99/docnav/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the site configuration whenever the docs change",
	Long: `Builds once, then watches the docs directory and the config file and
rebuilds from scratch after changes settle. The config is reloaded on every
rebuild, so edits to categories or site settings take effect immediately.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "override the output file")
	watchCmd.Flags().Bool("sidebar-only", false, "write only the sidebar mapping")
	watchCmd.Flags().String("format", "json", "output format: json or yaml")
	watchCmd.Flags().Duration("delay", watch.DefaultDelay, "how long to wait for changes to settle")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	opts, err := buildOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	if opts.Output == "-" {
		return fmt.Errorf("watch cannot write to stdout")
	}
	delay, _ := cmd.Flags().GetDuration("delay")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	fsys := afero.NewOsFs()
	opts.Reporter = progress.Discard{}

	if _, err := buildSite(ctx, fsys, cfg, opts, logger); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	w, err := watch.New(delay, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	w.AddFilter(relevantChange(cfgFile, cfg.DocsDir))
	w.AddFilter(generatedFile(func() string {
		if opts.Output != "" {
			return opts.Output
		}
		return cfg.Output
	}))

	if err := w.AddRecursive(cfg.DocsDir); err != nil {
		return err
	}
	if err := w.AddFile(cfgFile); err != nil {
		return err
	}

	logger.Info("watching for changes", logfields.Path(cfg.DocsDir))
	return w.Run(ctx, func(ctx context.Context, events []fsnotify.Event) error {
		start := time.Now()
		next, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		if next.DocsDir != cfg.DocsDir {
			logger.Warn("docs_dir changed; restart watch to follow the new directory",
				logfields.Path(next.DocsDir))
		}
		cfg = next
		if _, err := buildSite(ctx, fsys, cfg, opts, logger); err != nil {
			return err
		}
		logger.Debug("rebuilt", logfields.Events(len(events)), slog.Duration("took", time.Since(start)))
		return nil
	})
}

// relevantChange drops events that are neither below docsDir nor the config
// file or its .env, since AddFile watches the config's whole directory.
func relevantChange(cfgPath, docsDir string) watch.Filter {
	cfgAbs := absPath(cfgPath)
	envAbs := filepath.Join(filepath.Dir(cfgAbs), ".env")
	docsAbs := absPath(docsDir)
	return func(path string) bool {
		p := absPath(path)
		if p == cfgAbs || p == envAbs {
			return false
		}
		return !within(docsAbs, p)
	}
}

// generatedFile drops events caused by our own writes: the output file and
// the temp files used to replace it.
func generatedFile(output func() string) watch.Filter {
	return func(path string) bool {
		if strings.HasPrefix(filepath.Base(path), site.TempPrefix) {
			return true
		}
		return absPath(path) == absPath(output())
	}
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
