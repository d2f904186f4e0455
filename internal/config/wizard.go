package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectAssetsDir looks for a directory that already holds preview videos.
func detectAssetsDir() string {
	for _, dir := range []string{"public", "static", "assets"} {
		if info, err := os.Stat(dir + "/videos"); err == nil && info.IsDir() {
			return dir
		}
	}
	return "public"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to animdocs! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Public URL, used for canonical links.
	baseURLPrompt := promptui.Prompt{
		Label:   "Public base URL",
		Default: defaults.Site.BaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(defaults.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Extra catalog directories.
	dirsPrompt := promptui.Prompt{
		Label:   "Extra recipe directories (comma-separated, blank for none)",
		Default: "",
	}
	dirsStr, err := dirsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog dirs: %w", err)
	}

	// 5. Activity log.
	activityPrompt := promptui.Select{
		Label: "Record downloads and copies in a local activity log?",
		Items: []string{"no", "yes"},
	}
	activityIdx, _, err := activityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("activity selection: %w", err)
	}

	cfg := defaults
	cfg.Site.Title = title
	cfg.Site.BaseURL = baseURL
	cfg.Server.Port = port
	cfg.Server.AssetsDir = detectAssetsDir()
	cfg.Catalog.Dirs = splitAndTrim(dirsStr)
	cfg.Activity.Enabled = activityIdx == 1

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
