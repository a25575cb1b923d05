package config

import (
	"os"
	"path/filepath"

	"hstr/internal/cmdpattern"

	"gopkg.in/yaml.v3"
)

// CommandGroup styles history entries whose command pattern matches
type CommandGroup struct {
	// Name is the display name of this group
	Name string `yaml:"name"`

	// Color is the catppuccin color name (e.g., "red", "yellow", "green", "mauve")
	Color string `yaml:"color"`

	// Bold makes the text bold
	Bold bool `yaml:"bold"`

	// Patterns are command patterns such as "sudo:*" or "git:push:*" (supports a single wildcard)
	Patterns []string `yaml:"patterns"`
}

// Config holds the application configuration
type Config struct {
	// Theme is the catppuccin flavor to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// Shell overrides the shell name detected from $SHELL
	Shell string `yaml:"shell"`

	// HistoryFile overrides the shell's history file
	HistoryFile string `yaml:"history_file"`

	// FavoritesFile overrides the favorites file
	FavoritesFile string `yaml:"favorites_file"`

	// LogFile enables logging to the given path
	LogFile string `yaml:"log_file"`

	// DeleteFromFavorites also removes deleted entries from favorites
	DeleteFromFavorites bool `yaml:"delete_from_favorites"`

	// Watch reloads when the history file changes on disk
	Watch bool `yaml:"watch"`

	// CommandGroups style entries by command (checked in order, first match wins)
	CommandGroups []CommandGroup `yaml:"command_groups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme: "mocha",
		Watch: true,
		CommandGroups: []CommandGroup{
			{
				Name:  "dangerous",
				Color: "red",
				Bold:  true,
				Patterns: []string{
					"rm:*",
					"sudo:*",
					"dd:*",
					"mkfs:*",
					"chmod:*",
					"chown:*",
					"kill:*",
					"pkill:*",
					"killall:*",
					"git:push:*",
					"git:reset:*",
				},
			},
			{
				Name:     "vcs",
				Color:    "mauve",
				Patterns: []string{"git:*", "gh:*"},
			},
			{
				Name:  "build",
				Color: "yellow",
				Patterns: []string{
					"make:*",
					"go:*",
					"cargo:*",
					"npm:*",
					"yarn:*",
					"pnpm:*",
				},
			},
		},
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations or the command line
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	// Check in order: current dir, ~/.config/hstr/, XDG_CONFIG_HOME
	paths := []string{
		"hstr.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "hstr", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "hstr", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil {
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}

// GroupFor returns the first group matching the command line, or nil
func (c *Config) GroupFor(command string) *CommandGroup {
	pattern := cmdpattern.Extract(command)
	if pattern == "" {
		return nil
	}
	for i := range c.CommandGroups {
		group := &c.CommandGroups[i]
		if group.Matches(pattern) {
			return group
		}
	}
	return nil
}

// Matches returns true if the pattern matches this group
func (g *CommandGroup) Matches(pattern string) bool {
	for _, p := range g.Patterns {
		if cmdpattern.Match(p, pattern) {
			return true
		}
	}
	return false
}
