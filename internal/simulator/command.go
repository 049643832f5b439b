package simulator

import (
	"errors"
	"fmt"
)

// CommandKind discriminates the parsed command variants.

type CommandKind int

const (
	CmdPlace CommandKind = iota
	CmdMove
	CmdLeft
	CmdRight
	CmdReport
	CmdUnknown
)

// Command is one parsed input line. X, Y and Facing are populated only
// for CmdPlace; Raw carries the normalized token for CmdUnknown.
type Command struct {
	Kind   CommandKind
	X, Y   int
	Facing Direction
	Raw    string
}

// OutcomeKind discriminates what executing a command produced.
type OutcomeKind int

const (
	// OutcomeApplied covers every state-changing command, including
	// moves and placements the robot silently ignored at the edge.
	OutcomeApplied OutcomeKind = iota
	OutcomeReported
)

// Outcome is the result of dispatching one command. Report is set
// only for OutcomeReported.
type Outcome struct {
	Kind   OutcomeKind
	Report string
}

// ErrEmptyInput signals a blank or whitespace-only line. It is a
// per-line failure, never fatal to the session.
var ErrEmptyInput = errors.New("empty input line")

// InvalidCommandError signals a line that is neither a PLACE nor one
// of the bare keywords. Token holds the normalized offending text.
type InvalidCommandError struct {
	Token string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command %q", e.Token)
}
