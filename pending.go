package r2000

import (
	"time"

	"github.com/jaytaylor/r2000reader/proto"
)

// Reply is what the dispatcher hands to a resolved pending command: the
// raw frame fields plus whatever records an accumulating command's
// queue built up, drained and ready for the command method to shape
// into a typed Result.
type Reply struct {
	Length       int
	Address      byte
	Command      proto.Command
	Data         []byte
	ErrorCode    proto.ErrorCode
	HasErrorCode bool
	Success      bool

	InventoryBuffer []BufferedTagRecord
	Masks           []TagMask
	Read            []ReadRecord
	Write           []TagOpRecord
	Lock            []TagOpRecord
	Kill            []TagOpRecord
}

// pendingCommand is one outstanding command awaiting a reply, per §3
// "Pending-command entry".
type pendingCommand struct {
	command          proto.Command
	deadline         time.Time
	timer            *time.Timer
	timeout          time.Duration
	timeoutIsSuccess bool

	done     chan struct{}
	reply    Reply
	timedOut bool
	resolved bool
}

func newPendingCommand(cmd proto.Command, timeout time.Duration, timeoutIsSuccess bool) *pendingCommand {
	return &pendingCommand{
		command:          cmd,
		deadline:         time.Now().Add(timeout),
		timeout:          timeout,
		timeoutIsSuccess: timeoutIsSuccess,
		done:             make(chan struct{}),
	}
}

// refreshDeadline pushes p's timeout timer back out to a full timeout
// from now, per spec §4.4 step 5: an inventory/6B tag event must not
// let the long-running command it belongs to expire while tags are
// still streaming in ahead of the terminating reply.
func (p *pendingCommand) refreshDeadline() {
	if p.timer == nil {
		return
	}
	p.deadline = time.Now().Add(p.timeout)
	p.timer.Reset(p.timeout)
}

// pendingList is the FIFO of outstanding commands described in §5
// ("the pending-command list is a FIFO").
type pendingList struct {
	entries []*pendingCommand
}

func (l *pendingList) push(p *pendingCommand) {
	l.entries = append(l.entries, p)
}

func (l *pendingList) front() *pendingCommand {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[0]
}

func (l *pendingList) popFront() *pendingCommand {
	if len(l.entries) == 0 {
		return nil
	}
	p := l.entries[0]
	l.entries = l.entries[1:]
	return p
}

// remove deletes p from the list wherever it sits (used when its
// timeout timer fires before any matching reply arrived).
func (l *pendingList) remove(p *pendingCommand) bool {
	for i, e := range l.entries {
		if e == p {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *pendingList) empty() bool {
	return len(l.entries) == 0
}
