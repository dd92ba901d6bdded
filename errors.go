package r2000

import (
	"errors"
	"fmt"

	"github.com/jaytaylor/r2000reader/proto"
)

// ErrTimeout is returned when a command's deadline elapses with no
// matching reply. RESET is the one command for which a timeout is
// success rather than ErrTimeout — see Reader.Reset.
var ErrTimeout = errors.New("r2000: command timed out")

// ErrCanceled is returned when the context passed to a command method
// is canceled before the reader resolves or times out the command.
var ErrCanceled = errors.New("r2000: command canceled")

// ErrClosed is returned by command methods called after Close.
var ErrClosed = errors.New("r2000: reader closed")

// ErrOutOfSync describes a reply that arrives with no pending command
// left to match against. No command method returns it: the dispatcher
// logs such a reply at debug level and drops it.
var ErrOutOfSync = errors.New("r2000: reply received with no matching pending command")

// FaultError reports a reader-side protocol error code carried in a
// reply payload, preserved verbatim for the caller per §7 "Protocol
// error (reader-reported)".
type FaultError struct {
	Command proto.Command
	Code    proto.ErrorCode
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("r2000: command %s failed: %s (0x%02x)", commandName(e.Command), e.Code, byte(e.Code))
}

// ArgumentError reports a synchronous argument-validation failure
// (§7 "Argument validation"), rejected before any byte is written.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("r2000: invalid argument %s: %s", e.Arg, e.Reason)
}

func commandName(c proto.Command) string {
	if d, ok := proto.Descriptors[c]; ok {
		return d.Name
	}
	return fmt.Sprintf("0x%02x", byte(c))
}

func argErrf(arg, format string, a ...any) error {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, a...)}
}
