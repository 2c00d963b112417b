package value

import "fmt"

// Code tags a runtime-error Error with the specific failure it
// represents (spec §7).
type Code string

const (
	IndexOutOfBounds    Code = "IndexOutOfBounds"
	CircularPrototype   Code = "CircularPrototype"
	ObjectIsLocked      Code = "ObjectIsLocked"
	CantCreateField     Code = "CantCreateField"
	SliceStartBounds    Code = "SliceStartBounds"
	SliceEndBounds      Code = "SliceEndBounds"
	SliceStepZero       Code = "SliceStepZero"
	SliceInvalid        Code = "SliceInvalid"
	SliceWrongType      Code = "SliceWrongType"
	SliceMissingMethod  Code = "SliceMissingMethod"
	HashWrongType       Code = "HashWrongType"
	StringCastWrongType Code = "StringCastWrongType"
	CantUseOperatorOnTypes Code = "CantUseOperatorOnTypes"

	// InvalidPrototypeOperation is an extension beyond spec §7's table:
	// the prototype accessor's write-time type error (wrong-type
	// prototype value, or a write attempted on a non-Object receiver)
	// has no assigned code there.
	InvalidPrototypeOperation Code = "InvalidPrototypeOperation"
)

// Error is the single tagged runtime-error kind spec §7 requires:
// every core operation that can fail at the language-semantic level
// returns one of these, carrying a Code, optional Args for the
// host's own formatting, and an optional human-readable Msg.
type Error struct {
	Code Code
	Args []Value
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return string(e.Code)
}

// HostError reports a host-contract violation: a caller of the
// external API passed a required-but-absent argument, or invoked an
// accessor against the wrong variant. Distinct from Error, which is
// the script-visible runtime error kind (spec §6, §7).
type HostError struct {
	Msg string
}

func (e *HostError) Error() string { return e.Msg }
