package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the binding layer. Errors returned from this module
// wrap exactly one of these, with the native engine's diagnostic text (when
// there is one) preserved verbatim in the message. Match with errors.Is.
var (
	// ErrInvalidArgument reports a nil handle, nil required argument or
	// malformed input that was rejected before reaching the engine.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrParse reports that the grammar rejected the input.
	ErrParse = errors.New("parse error")
	// ErrType reports that the input parsed but failed type inference.
	ErrType = errors.New("type error")
	// ErrCallbackUnavailable reports a satisfaction attempt without a
	// satisfier.
	ErrCallbackUnavailable = errors.New("no satisfier provided")
	// ErrAllocation reports a failed native or boundary allocation.
	ErrAllocation = errors.New("allocation failure")
	// ErrClosed reports use of a handle after Close.
	ErrClosed = errors.New("handle is closed")
	// ErrUnknown reports a native fault of unrecognized kind that was
	// caught at the boundary.
	ErrUnknown = errors.New("unknown engine error")
)

// InvalidArgument wraps ErrInvalidArgument with a description of the
// offending argument.
func InvalidArgument(what string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, what)
}

// ClassifyParseError wraps a native parse diagnostic as ErrType when the
// engine reports a type-inference failure and as ErrParse otherwise. The
// engine emits a single result for both stages; the diagnostic text is the
// only discriminator it exposes. Allocation failures inside the parse path
// carry their own kind.
func ClassifyParseError(msg string) error {
	if msg == "" {
		return fmt.Errorf("%w: no diagnostic from engine", ErrParse)
	}
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "alloc") {
		return fmt.Errorf("%w: %s", ErrAllocation, msg)
	}
	if strings.Contains(lower, "type") {
		return fmt.Errorf("%w: %s", ErrType, msg)
	}
	return fmt.Errorf("%w: %s", ErrParse, msg)
}

// ClassifyEngineError wraps a runtime diagnostic reported outside the parse
// path ("Memory allocation failed" from the satisfaction result, for one).
func ClassifyEngineError(msg string) error {
	if msg == "" {
		return fmt.Errorf("%w: no diagnostic from engine", ErrUnknown)
	}
	if strings.Contains(strings.ToLower(msg), "alloc") {
		return fmt.Errorf("%w: %s", ErrAllocation, msg)
	}
	return fmt.Errorf("%w: %s", ErrUnknown, msg)
}
