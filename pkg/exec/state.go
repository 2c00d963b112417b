// Package exec provides a minimal Executor: a runnable stand-in for
// the bytecode compiler and VM that spec.md treats as an external
// collaborator. It exists to give the value core's metamethod
// dispatch something real to call through, end to end, without
// building a parser or bytecode interpreter (both out of scope).
package exec

import (
	"fmt"
	"log/slog"

	"github.com/wisplang/wisp/pkg/value"
)

// State is a value.Host: the attached Executor every Object's
// metamethods are invoked through. It dispatches on Closure kind the
// way a bytecode VM's call dispatch type-switches on callee kind,
// minus the bytecode frame machinery this package has no use for.
type State struct {
	// Globals holds top-level bindings visible to values run through
	// Call; it is exposed directly for host wiring. Nothing in this
	// package or in the CLI populates it.
	Globals *value.Object

	// Log receives a debug trace of every Call; nil disables tracing.
	Log *slog.Logger
}

// NewState constructs a State with a fresh, unlocked globals object
// and no logger attached.
func NewState() *State {
	globalsVal := value.NewObject(value.Undefined)
	globals, _ := value.AsObject(globalsVal)
	return &State{Globals: globals}
}

// Call implements value.Host. Script and Native closures are invoked
// directly; InstanceNative closures cannot be called unbound — they
// must first pass through value.CheckWrapFunction, which the indexer
// and Metadispatch both guarantee happens on read.
func (s *State) Call(fn value.Value, args []value.Value) (value.Value, error) {
	cl, ok := value.AsClosure(fn)
	if !ok {
		return value.Undefined, &value.HostError{Msg: "Call target is not a Function value"}
	}
	if s.Log != nil {
		s.Log.Debug("call", "name", cl.Name(), "kind", cl.Kind(), "argc", len(args))
	}
	switch cl.Kind() {
	case value.ClosureScript, value.ClosureNative:
		return cl.Invoke(s, args)
	case value.ClosureInstanceNative:
		return value.Undefined, &value.HostError{
			Msg: fmt.Sprintf("instance-native function %q was called without being bound to a receiver", cl.Name()),
		}
	default:
		return value.Undefined, &value.HostError{Msg: "unknown closure kind"}
	}
}
