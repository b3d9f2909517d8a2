package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeFilter Type = "filter"
	TypeSearch Type = "search"
	TypeUrgent Type = "urgent"
	TypeClear  Type = "clear"
	TypeGoto   Type = "goto"
	TypeLogout Type = "logout"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FilterArgs sets one list filter field. Field is one of category, status,
// priority; Value "all" clears that field.
type FilterArgs struct {
	Field string
	Value string
}

type SearchArgs struct {
	Term string
}

// UrgentArgs narrows the list to urgent or non-urgent tasks; Mode "all"
// removes the urgency filter.
type UrgentArgs struct {
	Mode string
}

type GotoArgs struct {
	Screen string
}

type Command struct {
	Type   Type
	Raw    string
	Filter *FilterArgs
	Search *SearchArgs
	Urgent *UrgentArgs
	Goto   *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeUrgent:
		return parseUrgent(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeGoto:
		return parseGoto(input, args)
	case TypeLogout:
		return Command{Type: TypeLogout, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a field and a value"}
	}
	field := strings.ToLower(args[0])
	switch field {
	case "category", "status", "priority":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter field: %s", field)}
	}
	value := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Field: field, Value: value}}, nil
}

func parseSearch(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "search requires a term"}
	}
	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "search requires a term"}
	}
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Term: term}}, nil
}

func parseUrgent(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "urgent requires on, off, or all"}
	}
	mode := strings.ToLower(args[0])
	switch mode {
	case "on", "off", "all":
		return Command{Type: TypeUrgent, Raw: raw, Urgent: &UrgentArgs{Mode: mode}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown urgent mode: %s", mode)}
	}
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a screen name"}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Screen: strings.ToLower(args[0])}}, nil
}
