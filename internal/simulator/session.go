package simulator

// Session is one run of commands against one freshly constructed
// robot. Sessions share nothing, so independent input streams are
// fully isolated.

type Session struct {
	robot   *Robot
	display Display
}

// NewSession builds a session over g. display may be nil, in which
// case reports are only returned in the Outcome.
func NewSession(g Grid, display Display) *Session {
	return &Session{robot: NewRobot(g), display: display}
}

func (s *Session) Robot() *Robot {
	return s.robot
}

// Execute applies one parsed command to the robot.
//
// Grammar violations are signaled: CmdUnknown returns an
// *InvalidCommandError. Bounds violations are not: a PLACE or MOVE the
// robot refused still comes back as OutcomeApplied, indistinguishable
// from one that took effect.
func (s *Session) Execute(cmd Command) (Outcome, error) {
	switch cmd.Kind {
	case CmdPlace:
		s.robot.Place(cmd.X, cmd.Y, cmd.Facing)
	case CmdMove:
		s.robot.Move()
	case CmdLeft:
		s.robot.RotateLeft()
	case CmdRight:
		s.robot.RotateRight()
	case CmdReport:
		report := s.robot.Report()
		if s.display != nil {
			s.display.Show(report)
		}
		return Outcome{Kind: OutcomeReported, Report: report}, nil
	default:
		return Outcome{}, &InvalidCommandError{Token: cmd.Raw}
	}
	return Outcome{Kind: OutcomeApplied}, nil
}

// Run parses and executes one input line. ErrEmptyInput from the
// parser propagates unchanged; no error aborts the session, the
// caller just moves on to the next line.
func (s *Session) Run(line string) (Outcome, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Outcome{}, err
	}
	return s.Execute(cmd)
}
