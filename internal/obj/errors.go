package obj

import "fmt"

// ParseError reports malformed mesh or material text.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("obj: %s:%d: %s: %v", e.Path, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("obj: %s:%d: %s", e.Path, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
