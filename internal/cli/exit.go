package cli

import "fmt"

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0
	ExitFatal   = 1
	// ExitRestart means the config file was deleted and the program must be
	// run again to re-create it.
	ExitRestart = 2
)

// ExitError carries a process exit code up to main.
type ExitError struct {
	Code int
	Err  error
	// Printed is true when the message was already shown to the user.
	Printed bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
