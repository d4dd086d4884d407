package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectDocsDir returns the first conventional docs directory present in the
// working directory, or "docs".
func detectDocsDir() string {
	for _, candidate := range []string{"docs", "doc", "documentation", "src"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return "docs"
}

// detectCategories lists the subdirectories of docsDir that are not hidden
// and not the framework's public assets folder.
func detectCategories(docsDir string) []string {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || name == "public" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docnav! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Documentation directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	// 2. Categories.
	defaultCategories := detectCategories(docsDir)
	if len(defaultCategories) == 0 {
		defaultCategories = DefaultCategories
	} else {
		fmt.Printf("Detected categories: %s\n\n", strings.Join(defaultCategories, ", "))
	}
	categoriesPrompt := promptui.Prompt{
		Label:   "Sidebar categories (comma-separated directory names)",
		Default: strings.Join(defaultCategories, ","),
		Validate: func(s string) error {
			if len(splitAndTrim(s)) == 0 {
				return fmt.Errorf("at least one category is required")
			}
			return nil
		},
	}
	categoriesStr, err := categoriesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	cfg.Sidebar.Categories = splitAndTrim(categoriesStr)

	// 3. Ordering.
	sortPrompt := promptui.Select{
		Label: "Entry order within a directory",
		Items: []string{
			"none — as listed by the filesystem",
			"name — alphabetical",
		},
	}
	sortIdx, _, err := sortPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sort selection: %w", err)
	}
	cfg.Sidebar.Sort = []string{"none", "name"}[sortIdx]

	// 4. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	// 5. Output file.
	outputPrompt := promptui.Prompt{
		Label:   "Output file for the generated site config",
		Default: strings.Replace(cfg.Output, "docs", docsDir, 1),
	}
	output, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	cfg.Output = output

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
