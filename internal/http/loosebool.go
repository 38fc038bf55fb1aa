package http

import (
	"encoding/json"
	"fmt"
)

// looseBool accepts JSON booleans plus the legacy "True"/"False" string
// literals that older clients still send for the available field.
type looseBool struct {
	set bool
	b   *bool
	s   string
}

func (l *looseBool) UnmarshalJSON(data []byte) error {
	l.set = true
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		l.b = &b
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.s = s
		return nil
	}
	return fmt.Errorf("available: expected boolean or string, got %s", data)
}

// trueOnly mirrors the add contract: only true or the exact literal "True"
// marks a book available, anything else (including absent) does not.
func (l looseBool) trueOnly() bool {
	if l.b != nil {
		return *l.b
	}
	return l.s == "True"
}

// notFalse mirrors the update contract: the book stays available unless the
// field carries false or the exact literal "False".
func (l looseBool) notFalse() bool {
	if l.b != nil {
		return *l.b
	}
	return l.s != "False"
}
