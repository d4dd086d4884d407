package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Generate documentation site navigation from a docs directory",
	Long: `docnav scans the category folders of a documentation directory and
builds the sidebar tree for a VitePress-style static site, together with
the rest of the site configuration (title, theme labels, search, head tags
and dev server settings). The framework renders; docnav only describes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
