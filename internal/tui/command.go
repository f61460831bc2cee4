package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// Canonical resolves short aliases to the full command name.
func (c Command) Canonical() string {
	switch c.Name {
	case "r":
		return "retry"
	case "h":
		return "help"
	case "q", "q!", "exit":
		return "quit"
	case "o":
		return "open"
	default:
		return c.Name
	}
}

// PostID parses the argument of an open command.
func (c Command) PostID() (int64, error) {
	if c.Args == "" {
		return 0, fmt.Errorf("usage: open <id>")
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(c.Args, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", c.Args)
	}
	return id, nil
}
