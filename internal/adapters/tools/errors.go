package tools

import (
	"errors"
	"fmt"
)

// unknownTool names the tool a caller asked for; it matches ErrToolNotFound.
type unknownTool struct{ name string }

func (e unknownTool) Error() string { return fmt.Sprintf("%v: %q", ErrToolNotFound, e.name) }
func (e unknownTool) Unwrap() error { return ErrToolNotFound }

// Tool registry errors.
var (
	// ErrToolNotFound is returned when a tool is not registered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolNameEmpty is returned when a tool has no name.
	ErrToolNameEmpty = errors.New("tool name cannot be empty")

	// ErrToolExecuteNil is returned when a tool has no execute function.
	ErrToolExecuteNil = errors.New("tool execute function cannot be nil")

	// ErrToolAlreadyRegistered is returned when registering a duplicate.
	ErrToolAlreadyRegistered = errors.New("tool already registered")

	// ErrMissingRequiredArg is returned when a required argument is missing.
	ErrMissingRequiredArg = errors.New("missing required argument")

	// ErrInvalidArgType is returned when an argument has the wrong type.
	ErrInvalidArgType = errors.New("invalid argument type")
)

// ArgError ties an argument error to the argument name.
type ArgError struct {
	Arg string
	Err error
}

func (e *ArgError) Error() string { return fmt.Sprintf("%v: %s", e.Err, e.Arg) }
func (e *ArgError) Unwrap() error { return e.Err }

func missingArg(name string) error { return &ArgError{Arg: name, Err: ErrMissingRequiredArg} }

func invalidArg(name string, v any) error {
	return &ArgError{Arg: name, Err: fmt.Errorf("%w: %T", ErrInvalidArgType, v)}
}

// Failure carries the localized message shown to the agent. The cause,
// when present, is appended the way the sales team's scripts expect it.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

func fail(msg string, err error) error { return &Failure{Message: msg, Err: err} }

// NoResults is a successful call that matched nothing. Message points the
// agent at a discovery tool.
type NoResults struct{ Message string }

func (n *NoResults) Error() string { return n.Message }

func noResults(format string, a ...any) error {
	return &NoResults{Message: fmt.Sprintf(format, a...)}
}

// describe renders any error into the text the agent receives.
func describe(err error) (text string, empty bool) {
	var (
		nr  *NoResults
		f   *Failure
		arg *ArgError
		nf  unknownTool
	)
	switch {
	case errors.As(err, &nr):
		return nr.Message, true
	case errors.As(err, &f):
		return f.Error(), false
	case errors.As(err, &arg) && errors.Is(err, ErrMissingRequiredArg):
		return fmt.Sprintf("שגיאה: חסר פרמטר חובה '%s'", arg.Arg), false
	case errors.As(err, &arg) && errors.Is(err, ErrInvalidArgType):
		return fmt.Sprintf("שגיאה: ערך לא תקין בפרמטר '%s'", arg.Arg), false
	case errors.As(err, &nf):
		return fmt.Sprintf("שגיאה: הכלי '%s' אינו קיים", nf.name), false
	}
	return fmt.Sprintf("שגיאה בטעינת הנתונים: %v", err), false
}
