package report

import "fmt"

// Enumeration of the categories of user-facing compile errors.  The category
// determines how the error is labelled when displayed and lets callers (and
// tests) distinguish failure modes without string matching.
const (
	ErrSyntax     = iota // Malformed source text.
	ErrResource          // Temp cell pool exhausted.
	ErrName              // Local redefinition or undefined reference.
	ErrKind              // Operation applied to the wrong kind of symbol.
	ErrUnsupported       // Construct the compiler does not implement.
	ErrArithmetic        // Compile-time arithmetic error (constant division by zero).
)

// errCategoryLabels maps error categories to their display labels.
var errCategoryLabels = map[int]string{
	ErrSyntax:      "syntax",
	ErrResource:    "resource",
	ErrName:        "name",
	ErrKind:        "kind",
	ErrUnsupported: "unsupported",
	ErrArithmetic:  "arithmetic",
}

// CompileError is a user-facing compilation error: the input program is at
// fault and the message carries enough context to fix it.  No artifact is
// produced when one of these is raised.
type CompileError struct {
	// The error category.  This must be one of the enumerated categories.
	Category int

	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil when no position
	// information is available (eg. temp pool exhaustion).
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	label := errCategoryLabels[ce.Category]

	if ce.Span == nil {
		return fmt.Sprintf("%s error: %s", label, ce.Message)
	}

	return fmt.Sprintf("%d:%d: %s error: %s", ce.Span.StartLine+1, ce.Span.StartCol+1, label, ce.Message)
}

// Raise panics with a new compile error of the given category.  The panic is
// recovered by CatchErrors at the compilation boundary: everything between the
// raise site and the boundary unwinds, so no partial artifact can escape.
func Raise(span *TextSpan, category int, msg string, args ...interface{}) {
	panic(&CompileError{
		Category: category,
		Message:  fmt.Sprintf(msg, args...),
		Span:     span,
	})
}

// -----------------------------------------------------------------------------

// InternalError indicates a bug in the compiler itself: non-distinct cell
// arguments, invalid literals handed to the generator, mismatched scope
// nesting, and the like.  These are never caught by CatchErrors -- they are not
// the user's fault and must not be reported as if they were.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal compiler error: " + ie.Message
}

// RaiseInternal panics with a new internal error.
func RaiseInternal(msg string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(msg, args...)})
}

// -----------------------------------------------------------------------------

// CatchErrors converts a raised compile error into an ordinary returned error.
// It must ALWAYS be deferred, and the pointer must refer to the deferring
// function's named error return.  Internal errors and foreign panics are
// re-panicked: they indicate compiler bugs, not bad input.
func CatchErrors(err *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*err = cerr
		} else {
			panic(x)
		}
	}
}
