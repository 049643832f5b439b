package simulator

import (
	"fmt"
	"io"
)

// Display is the sink REPORT output is delivered to. The session
// never prints on its own.

type Display interface {
	Show(report string)
}

// ConsoleDisplay writes each report as one line.
type ConsoleDisplay struct {
	Out io.Writer
}

func (d *ConsoleDisplay) Show(report string) {
	fmt.Fprintln(d.Out, report)
}
