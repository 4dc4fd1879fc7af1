// Package exitcode defines named exit codes for the shuffler CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and launchers.
package exitcode

// Exit code constants.
const (
	Success     = 0   // Run finished normally (swap cap reached)
	Error       = 1   // Misconfiguration or fatal persistence failure
	EmptyPool   = 2   // No workloads discovered; nothing to run
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case EmptyPool:
		return "EmptyPool"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
