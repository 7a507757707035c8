package models

import "strings"

// CommandType enumerates the actions supported at the prompt.
type CommandType string

const (
	CommandInquire CommandType = "inquire"
	CommandRent    CommandType = "rent"
	CommandReturn  CommandType = "return"
	CommandRentals CommandType = "rentals"
	CommandHelp    CommandType = "help"
	CommandExit    CommandType = "exit"
	CommandUnknown CommandType = "unknown"
)

// Command represents a parsed instruction extracted from a terminal
// input line.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command instance from a free-form input line.
func ParseCommand(line string) Command {
	normalized := strings.TrimSpace(strings.ToLower(line))

	if normalized == "" {
		return Command{Type: CommandUnknown, Raw: line}
	}

	tokens := strings.Fields(normalized)
	cmd := Command{Raw: line}

	head := strings.TrimPrefix(tokens[0], "/")
	switch head {
	case string(CommandInquire), "stock":
		cmd.Type = CommandInquire
	case string(CommandRent):
		cmd.Type = CommandRent
	case string(CommandReturn):
		cmd.Type = CommandReturn
	case string(CommandRentals):
		cmd.Type = CommandRentals
	case string(CommandHelp):
		cmd.Type = CommandHelp
	case string(CommandExit), "quit":
		cmd.Type = CommandExit
	default:
		cmd.Type = CommandUnknown
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
