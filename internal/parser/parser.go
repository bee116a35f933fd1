package parser

import "strings"

// Command is the result of parsing a potential slash command.
// Name is empty when the input is not a slash command. Params holds
// the remainder of the message with runs of whitespace collapsed to
// single spaces, or "" when the command has no arguments.
type Command struct {
	Name   string
	Params string
}

// IsCommand reports whether the input parsed as a slash command.
func (c Command) IsCommand() bool {
	return c.Name != ""
}

// Parse splits a leading "/command arg1 arg2..." message into a command
// name and a raw parameter string. Command names are lower-cased so
// "/WEATHER Tokyo" and "/weather Tokyo" dispatch identically. Parse does
// not validate that the command exists; unknown commands are rejected by
// the delivery handler with a help message.
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if name == "" {
		return Command{}
	}

	// Telegram appends "@botname" when commands are sent in groups.
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}

	return Command{
		Name:   name,
		Params: strings.Join(fields[1:], " "),
	}
}
