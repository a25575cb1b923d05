// Package cmdpattern reduces a shell command line to a short pattern such as
// "git:push:*" or "sudo:rm:*" so that history entries can be grouped and
// styled by the command they run.
package cmdpattern

import "strings"

// subcommandDepth is how many subcommand levels to keep per command.
// Commands not listed keep none.
var subcommandDepth = map[string]int{
	// Version control
	"git": 1,
	"hg":  1,

	// Containers and orchestration
	"docker":  1,
	"podman":  1,
	"kubectl": 1,
	"helm":    1,

	// System services
	"systemctl": 1,
	"launchctl": 1,

	// Package managers
	"apt":  1,
	"brew": 1,
	"dnf":  1,

	// Build tools
	"go":    1,
	"cargo": 1,
	"npm":   1,
	"yarn":  1,
	"pnpm":  1,
	"pip":   1,
	"uv":    1,
	"make":  1,

	"gh":   1,
	"tmux": 1,
}

// separators end the first command of a pipeline or list
var separators = []string{"&&", "||", "|", ";", "&"}

// Extract returns the pattern for a command line, or "" if nothing
// resembling a command is found. Only the first command of a pipeline or
// list is considered.
func Extract(line string) string {
	words := firstCommand(strings.Fields(line))
	words = skipAssignments(words)
	if len(words) == 0 {
		return ""
	}

	sudo := words[0] == "sudo"
	if sudo {
		words = skipSudoFlags(words[1:])
	}
	words = unwrap(words)
	if len(words) > 0 && isShell(words[0]) {
		words = shellCommand(words)
	}

	var parts []string
	if sudo {
		parts = append(parts, "sudo")
	}
	if len(words) > 0 {
		parts = append(parts, words[0])
		parts = append(parts, subcommands(words[0], words[1:])...)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ":") + ":*"
}

// Match checks if pattern matches value. A single * anywhere in the pattern
// matches any run of characters, e.g. "git:*" matches "git:push:*".
func Match(pattern, value string) bool {
	if pattern == value {
		return true
	}
	prefix, suffix, ok := strings.Cut(pattern, "*")
	if !ok {
		return false
	}
	return len(value) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(value, prefix) &&
		strings.HasSuffix(value, suffix)
}

// firstCommand truncates words at the first list or pipe separator
func firstCommand(words []string) []string {
	for i, w := range words {
		for _, sep := range separators {
			if w == sep {
				return words[:i]
			}
			if strings.HasSuffix(w, sep) {
				return append(words[:i:i], strings.TrimSuffix(w, sep))
			}
		}
	}
	return words
}

// skipAssignments drops leading VAR=value words
func skipAssignments(words []string) []string {
	for len(words) > 0 && strings.Contains(words[0], "=") && !strings.HasPrefix(words[0], "-") {
		words = words[1:]
	}
	return words
}

// skipSudoFlags drops sudo's own options, including those taking a value
func skipSudoFlags(words []string) []string {
	for len(words) > 0 && strings.HasPrefix(words[0], "-") {
		switch words[0] {
		case "-u", "-g", "-C", "-D", "-h", "-p":
			words = words[min(2, len(words)):]
		default:
			words = words[1:]
		}
	}
	return words
}

// unwrap strips command prefixes like env, time and nice
func unwrap(words []string) []string {
	for len(words) > 0 {
		switch words[0] {
		case "env":
			words = skipAssignments(skipFlags(words[1:]))
		case "time", "nohup", "strace", "ltrace", "command", "exec":
			words = words[1:]
		case "nice":
			words = words[1:]
			if len(words) > 1 && words[0] == "-n" {
				words = words[2:]
			}
			words = skipFlags(words)
		case "xargs":
			words = skipFlags(words[1:])
		default:
			return words
		}
	}
	return words
}

func isShell(cmd string) bool {
	return cmd == "bash" || cmd == "sh" || cmd == "zsh" || cmd == "fish"
}

// shellCommand returns the words of the script in `sh -c '...'`, or words
// unchanged when there is no -c
func shellCommand(words []string) []string {
	for i := 1; i < len(words); i++ {
		if words[i] == "-c" && i+1 < len(words) {
			script := strings.Join(words[i+1:], " ")
			script = strings.Trim(script, `'"`)
			return skipAssignments(firstCommand(strings.Fields(script)))
		}
	}
	return words
}

// subcommands returns up to the configured depth of non-flag arguments
func subcommands(cmd string, args []string) []string {
	depth := subcommandDepth[cmd]
	var out []string
	for range depth {
		args = skipFlags(args)
		if len(args) == 0 {
			break
		}
		out = append(out, args[0])
		args = args[1:]
	}
	return out
}

func skipFlags(args []string) []string {
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		args = args[1:]
	}
	return args
}
