// Package shell knows where the interactive shell keeps its history and how
// to hand a chosen command back to it.
package shell

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// DefaultShell is used when $SHELL is unset
const DefaultShell = "bash"

// Detect returns the shell name: the base name of $SHELL, or DefaultShell
func Detect() string {
	if sh := filepath.Base(os.Getenv("SHELL")); sh != "" && sh != "." && sh != "/" {
		return sh
	}
	return DefaultShell
}

// HistoryPath returns $HISTFILE when set, else ~/.<shell>_history
func HistoryPath(home, shell string) string {
	if hf := os.Getenv("HISTFILE"); hf != "" {
		return hf
	}
	return filepath.Join(home, "."+shell+"_history")
}

// FavoritesPath returns ~/.config/hstr/<shell>_favorites
func FavoritesPath(home, shell string) string {
	return filepath.Join(home, ".config", "hstr", shell+"_favorites")
}

// Prompt returns "user@host$" for the first screen row
func Prompt() string {
	name := os.Getenv("USER")
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return fmt.Sprintf("%s@%s$", name, host)
}
