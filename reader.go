package r2000

import (
	"context"
	"os"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// DefaultTimeout is the deadline applied to ordinary request/reply
// commands that don't declare their own inventory-shaped timeout.
const DefaultTimeout = 1000 * time.Millisecond

// Reader drives one Indy R2000 reader (or a chain of them addressed
// over a shared RS-485 bus) over a Sink. It owns the pending-command
// FIFO, the per-peer accumulator queues, and the phase-mode side
// channel; a single mutex guards all three, mirroring the
// single-threaded cooperative model described in §5.
//
// Callers feed inbound bytes with Feed as they arrive off the wire;
// command methods block until a reply resolves or the deadline (or ctx)
// expires.
type Reader struct {
	sink   Sink
	log    *charmlog.Logger
	events EventSink
	stats  *Stats

	mu        sync.Mutex
	address   byte
	phaseMode bool
	closed    bool
	frames    wire.FrameReader
	pending   pendingList
	queues    *accumulators
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithEventSink delivers unsolicited tag sightings and antenna-missing
// notices to sink instead of discarding them.
func WithEventSink(sink EventSink) Option {
	return func(r *Reader) {
		if sink == nil {
			sink = DiscardEvents{}
		}
		r.events = sink
	}
}

// WithLogger replaces the default charmbracelet/log logger.
func WithLogger(l *charmlog.Logger) Option {
	return func(r *Reader) { r.log = l }
}

// WithAddress sets the initially-configured target address (default
// wire.Broadcast, i.e. accept replies from any peer and send to the
// public address).
func WithAddress(addr byte) Option {
	return func(r *Reader) { r.address = addr }
}

// NewReader constructs a Reader writing outbound frames to sink.
func NewReader(sink Sink, opts ...Option) *Reader {
	r := &Reader{
		sink:    sink,
		log:     charmlog.New(os.Stderr),
		events:  DiscardEvents{},
		stats:   &Stats{},
		address: wire.Broadcast,
		queues:  newAccumulators(),
	}
	r.log.SetLevel(charmlog.WarnLevel)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats returns a point-in-time snapshot of the reader's internal
// error/recovery counters.
func (r *Reader) Stats() Snapshot {
	return r.stats.snapshot()
}

// Feed delivers newly received bytes from the transport. It never
// blocks on I/O; any complete frames it extracts are dispatched
// synchronously, which may resolve a pending command or invoke the
// EventSink.
func (r *Reader) Feed(b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.frames.Feed(b)
	for {
		res, ok := r.frames.Next()
		if !ok {
			return
		}
		if res.Dropped != nil {
			r.stats.FramingErrors.Add(1)
			r.log.Debug("resynchronizing: dropped bytes", "bytes", wire.Hex(res.Dropped))
			continue
		}
		r.handleFrame(res.Frame)
	}
}

// Close fails every outstanding command with ErrClosed and makes
// further Feed/command calls no-ops. It does not close the Sink.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	for {
		p := r.pending.popFront()
		if p == nil {
			break
		}
		if p.timer != nil {
			p.timer.Stop()
		}
		if !p.resolved {
			p.resolved = true
			close(p.done)
		}
	}
	return nil
}

// resetState clears host-side session state: the pending list (any
// command still on it is finished with an empty Reply), every peer's
// accumulator queues, and the phase-mode flag. Per §4.2/§4.6, a
// successful reset, baud change, or module-function change invalidates
// all of it.
func (r *Reader) resetState() {
	for p := r.pending.popFront(); p != nil; p = r.pending.popFront() {
		r.finish(p, Reply{}, false)
	}
	r.queues = newAccumulators()
	r.phaseMode = false
}

// sendCommand implements the send procedure of §4.6: frame and write
// the command, register a pending entry with its deadline, then block
// for either a match, a timeout, or ctx cancellation.
func (r *Reader) sendCommand(ctx context.Context, cmd proto.Command, payload []byte, timeout time.Duration, timeoutIsSuccess bool) (Reply, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return Reply{}, ErrClosed
	}
	pkt := wire.Packet{Address: r.address, Command: byte(cmd), Payload: payload}
	frame := pkt.Encode()

	p := newPendingCommand(cmd, timeout, timeoutIsSuccess)
	p.timer = time.AfterFunc(timeout, func() { r.onTimeout(p) })
	r.pending.push(p)
	r.mu.Unlock()

	if _, err := r.sink.Write(frame); err != nil {
		r.mu.Lock()
		if r.pending.remove(p) {
			p.timer.Stop()
		}
		r.mu.Unlock()
		return Reply{}, err
	}

	select {
	case <-p.done:
	case <-ctx.Done():
		r.mu.Lock()
		removed := r.pending.remove(p)
		r.mu.Unlock()
		if removed {
			p.timer.Stop()
			return Reply{}, ErrCanceled
		}
		<-p.done
	}

	if p.timedOut {
		if p.timeoutIsSuccess {
			return Reply{Command: cmd, Success: true}, nil
		}
		return Reply{}, ErrTimeout
	}
	if p.reply.Command != cmd {
		r.mu.Lock()
		closed := r.closed
		r.mu.Unlock()
		if closed {
			return Reply{}, ErrClosed
		}
	}
	return p.reply, nil
}

func (r *Reader) onTimeout(p *pendingCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.resolved {
		return
	}
	r.pending.remove(p)
	r.stats.Timeouts.Add(1)
	r.finish(p, Reply{}, true)
}

// inventoryDeadline computes the timeout for a repeat-driven inventory
// command per §4.6: repeat*255ms + 1000ms, plus 64ms per powersave
// tick when dense-reader / powersave mode stretches each round.
func inventoryDeadline(repeat byte, powersaveTicks int) time.Duration {
	d := time.Duration(repeat)*255*time.Millisecond + 1000*time.Millisecond
	if powersaveTicks > 0 {
		d += time.Duration(powersaveTicks) * 64 * time.Millisecond
	}
	return d
}
