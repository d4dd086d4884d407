package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the docs directory and write the site configuration",
	Long: `Scans every configured category under the docs directory, builds the
sidebar tree and writes it, together with the static site settings, as the
JSON document the site framework loads. Use --sidebar-only to write just the
sidebar mapping, and --output - to print to stdout.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "override the output file (\"-\" for stdout)")
	buildCmd.Flags().Bool("sidebar-only", false, "write only the sidebar mapping")
	buildCmd.Flags().String("format", "json", "output format: json or yaml")
	buildCmd.Flags().Bool("strict", false, "exit non-zero when a category could not be processed")
	buildCmd.Flags().Bool("no-progress", false, "disable the progress display")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	opts, err := buildOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	opts.Reporter = progress.NewReporter(noProgress)

	res, err := buildSite(cmd.Context(), afero.NewOsFs(), cfg, opts, slog.Default())
	if err != nil {
		return fmt.Errorf("building sidebar: %w", err)
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && res.Diagnostics.HasErrors() {
		return fmt.Errorf("one or more categories could not be processed")
	}
	return nil
}

func buildOptionsFromFlags(cmd *cobra.Command) (buildOptions, error) {
	output, _ := cmd.Flags().GetString("output")
	sidebarOnly, _ := cmd.Flags().GetBool("sidebar-only")
	formatStr, _ := cmd.Flags().GetString("format")

	format, err := site.ParseFormat(formatStr)
	if err != nil {
		return buildOptions{}, err
	}
	return buildOptions{Output: output, SidebarOnly: sidebarOnly, Format: format}, nil
}
