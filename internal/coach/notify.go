package coach

import (
	"fmt"
	"io"
)

// Notifier is the transient-notice surface: success, warning, error and
// informational messages shown to the user as they happen.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
	Info(message string)
}

// TerminalNotifier writes leveled notices to a terminal.
type TerminalNotifier struct {
	Out io.Writer
}

func (n *TerminalNotifier) Success(message string) { n.emit("ok", message) }
func (n *TerminalNotifier) Warning(message string) { n.emit("warn", message) }
func (n *TerminalNotifier) Error(message string)   { n.emit("error", message) }
func (n *TerminalNotifier) Info(message string)    { n.emit("info", message) }

func (n *TerminalNotifier) emit(level, message string) {
	fmt.Fprintf(n.Out, "[%s] %s\n", level, message)
}
