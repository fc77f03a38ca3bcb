package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result
// to configPath, and returns it.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Let's set up your blog.")
	fmt.Println()

	defaults := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	authorPrompt := promptui.Prompt{Label: "Author name", Default: ""}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	urlPrompt := promptui.Prompt{
		Label:   "Base URL (where the site will be hosted)",
		Default: "https://example.com",
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}

	categoriesPrompt := promptui.Prompt{
		Label:   "Categories (comma-separated)",
		Default: strings.Join(defaults.Categories, ", "),
		Validate: func(s string) error {
			for _, c := range splitAndTrim(s) {
				if strings.EqualFold(c, "all") {
					return fmt.Errorf("%q is reserved for the catch-all filter", c)
				}
			}
			return nil
		},
	}
	categoriesStr, err := categoriesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(defaults.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := DefaultConfig()
	cfg.Title = strings.TrimSpace(title)
	cfg.Author = strings.TrimSpace(author)
	cfg.BaseURL = strings.TrimSpace(baseURL)
	cfg.Categories = splitAndTrim(categoriesStr)
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.Server.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty tokens.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
