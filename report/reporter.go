package report

import (
	"fmt"
	"os"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the
// set log level.
type Reporter struct {
	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep = &Reporter{logLevel: LogLevelVerbose}

// InitReporter initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &Reporter{logLevel: logLevel}
}

// ReportError reports an error to the user.
func ReportError(tag string, err error) {
	if rep.logLevel >= LogLevelError {
		displayError(tag, err)
	}
}

// ReportWarning reports a warning message to the user.
func ReportWarning(tag, msg string) {
	if rep.logLevel >= LogLevelWarn {
		displayWarning(tag, msg)
	}
}

// ReportInfo reports an informational message to the user.  These messages are
// purely aesthetic: they only display at the verbose log level.
func ReportInfo(tag, msg string) {
	if rep.logLevel >= LogLevelVerbose {
		displayInfo(tag, msg)
	}
}

// ReportFatal reports a fatal error and exits the program.  This is only used
// for errors that occur outside compilation itself such as bad command line
// usage or unreadable files.
func ReportFatal(msg string, args ...interface{}) {
	displayFatal(fmt.Sprintf(msg, args...))
	os.Exit(1)
}
