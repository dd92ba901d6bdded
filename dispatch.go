package r2000

import (
	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// multiKind identifies which accumulator queue (if any) a command's
// replies build up in, per §4.4 step 6 / §4.7.
type multiKind int

const (
	multiNone multiKind = iota
	multiInventoryBuffer
	multiTagMaskList
	multiRead
	multiWrite
	multiLock
	multiKill
)

// multiKindFor classifies an incoming frame by command code (and, for
// TAG_MASK, by payload length: a length-4 frame is the single-byte
// error/ack form, anything past 7 bytes is a list record per §4.6's
// GET_TAG_MASKS contract).
func multiKindFor(cmd proto.Command, payloadLen int) multiKind {
	switch cmd {
	case proto.CmdGetInventoryBuffer, proto.CmdGetAndResetInventoryBuffer:
		return multiInventoryBuffer
	case proto.CmdTagMask:
		if payloadLen > 7 {
			return multiTagMaskList
		}
		return multiNone
	case proto.CmdRead:
		return multiRead
	case proto.CmdWrite, proto.CmdWriteBlock:
		return multiWrite
	case proto.CmdLock:
		return multiLock
	case proto.CmdKill:
		return multiKill
	default:
		return multiNone
	}
}

// handleFrame implements the C4 dispatcher: classify, demux events,
// accumulate multi-record replies, and resolve or resync the pending
// list. Called with r.mu held.
func (r *Reader) handleFrame(frame []byte) {
	pkt, err := wire.Decode(frame)
	if err != nil {
		r.stats.FramingErrors.Add(1)
		r.log.Debug("dropped malformed frame", "err", err, "bytes", wire.Hex(frame))
		return
	}

	if r.address != wire.Broadcast && pkt.Address != r.address {
		r.stats.AddressMismatch.Add(1)
		r.log.Debug("dropped packet from unexpected address", "address", pkt.Address, "want", r.address)
		return
	}

	desc, known := proto.Descriptors[proto.Command(pkt.Command)]
	if !known {
		r.stats.UnknownCommand.Add(1)
		r.log.Debug("dropped unknown command", "command", pkt.Command)
		return
	}

	code, hasCode, success := classifyError(proto.Command(pkt.Command), desc, pkt.Payload)

	if ev, isEvent := r.classifyEvent(pkt, code, hasCode); isEvent {
		// §4.4 step 5 / §9: a long inventory streams many of these
		// ahead of its terminating reply, so the front pending entry
		// must not be allowed to time out while they keep arriving.
		if p := r.pending.front(); p != nil && p.command == proto.Command(pkt.Command) {
			p.refreshDeadline()
		}
		r.deliverEvent(ev)
		return
	}

	kind := multiKindFor(proto.Command(pkt.Command), len(pkt.Payload))
	q := r.queues.get(pkt.Address)
	if kind != multiNone && success {
		complete, ok := accumulate(q, kind, pkt.Payload, r.log, r.stats)
		if !ok {
			// Malformed record: logged by accumulate, frame dropped.
			return
		}
		if !complete {
			return
		}
	}

	rep := Reply{
		Length:       len(pkt.Payload) + 4,
		Address:      pkt.Address,
		Command:      proto.Command(pkt.Command),
		Data:         pkt.Payload,
		ErrorCode:    code,
		HasErrorCode: hasCode,
		Success:      success,
	}
	if kind != multiNone && success {
		drain(q, kind, &rep)
	}

	r.resolve(rep)
}

// classifyError applies the per-command error-return policy of §6. The
// three commands whose policy is PolicySometimes each need a bespoke
// rule instead of the generic "single byte means error" heuristic:
//
//   - GET_RF_LINK_PROFILE: a single-byte reply is the profile value
//     itself when it's a recognized profile; only an unrecognized byte
//     means failure.
//   - GET_RF_PORT_RETURN_LOSS: a single-byte reply is always the
//     failure code; a successful measurement is never one byte.
//   - TAG_MASK: a single zero byte is a plain acknowledgement (set/clear
//     succeeded); a single nonzero byte is an error code. Longer
//     payloads carry no error code; those past 7 bytes are list
//     records, which handleFrame then routes to the accumulator.
func classifyError(cmd proto.Command, desc proto.Descriptor, payload []byte) (code proto.ErrorCode, hasCode bool, success bool) {
	isSingleByte := len(payload) == 1
	switch cmd {
	case proto.CmdGetRFLinkProfile:
		if isSingleByte {
			if proto.ValidProfile(payload[0]) {
				return 0, false, true
			}
			return proto.ErrorCode(payload[0]), true, false
		}
		return 0, false, true
	case proto.CmdGetRFPortReturnLoss:
		if isSingleByte {
			return proto.ErrorCode(payload[0]), true, false
		}
		return 0, false, true
	case proto.CmdTagMask:
		if isSingleByte {
			if payload[0] == 0 {
				return 0, false, true
			}
			return proto.ErrorCode(payload[0]), true, false
		}
		return 0, false, true
	}

	switch desc.Policy {
	case proto.PolicyNo:
		return 0, false, true
	case proto.PolicyYes, proto.PolicyIfSingleByte:
		if isSingleByte {
			return proto.ErrorCode(payload[0]), true, proto.ErrorCode(payload[0]) == proto.ErrSuccess
		}
		return 0, false, true
	default:
		return 0, false, true
	}
}

// classifiedEvent is an unsolicited packet recognized during dispatch,
// tagged with its kind so deliverEvent doesn't need to re-inspect it.
type classifiedEvent struct {
	tag     InventoryTag
	hasTag  bool
	sixB    SixBTag
	hasSixB bool
	antenna AntennaEvent
	hasAnt  bool
}

// classifyEvent recognizes the unsolicited packets of §4.4 step 5:
// inventory/6B sightings and antenna-missing notices, all of which
// arrive interleaved with solicited replies and never consume a
// pending entry.
func (r *Reader) classifyEvent(pkt wire.Packet, code proto.ErrorCode, hasCode bool) (classifiedEvent, bool) {
	switch proto.Command(pkt.Command) {
	case proto.CmdFastSwitchAntInventory:
		if len(pkt.Payload) == 2 && proto.ErrorCode(pkt.Payload[0]) == proto.ErrAntennaMissing {
			ant, err := parseAntennaMissing(pkt.Payload[1:])
			if err == nil {
				return classifiedEvent{antenna: ant, hasAnt: true}, true
			}
		}
		if hasCode {
			break
		}
		tag, err := parseSighting(pkt.Payload, r.phaseMode)
		if err != nil {
			r.log.Debug("dropped malformed sighting", "err", err)
			return classifiedEvent{}, true
		}
		if !tag.CRCValid {
			r.stats.IntegrityWarning.Add(1)
			r.log.Debug("sighting PC+EPC CRC mismatch", "epc", wire.Hex(tag.EPC))
		}
		return classifiedEvent{tag: tag, hasTag: true}, true
	case proto.CmdRealTimeInventory, proto.CmdSessionInventory:
		if hasCode {
			// Single-byte error/status frame ending the inventory run:
			// not a sighting, let it resolve the pending command.
			break
		}
		tag, err := parseSighting(pkt.Payload, r.phaseMode)
		if err != nil {
			r.log.Debug("dropped malformed sighting", "err", err)
			return classifiedEvent{}, true
		}
		if !tag.CRCValid {
			r.stats.IntegrityWarning.Add(1)
			r.log.Debug("sighting PC+EPC CRC mismatch", "epc", wire.Hex(tag.EPC))
		}
		return classifiedEvent{tag: tag, hasTag: true}, true
	case proto.Cmd6BInventory:
		if hasCode {
			break
		}
		tag, err := parse6BSighting(pkt.Payload)
		if err != nil {
			r.log.Debug("dropped malformed 6B sighting", "err", err)
			return classifiedEvent{}, true
		}
		return classifiedEvent{sixB: tag, hasSixB: true}, true
	}
	return classifiedEvent{}, false
}

func (r *Reader) deliverEvent(ev classifiedEvent) {
	switch {
	case ev.hasTag:
		r.stats.TagEvents.Add(1)
		r.events.OnTag(ev.tag)
	case ev.hasSixB:
		r.stats.SixBEvents.Add(1)
		r.events.On6BTag(ev.sixB)
	case ev.hasAnt:
		r.events.OnAntennaMissing(ev.antenna)
	}
}

// resolve matches rep against the pending list's front entry. A match
// completes that entry; a non-match resyncs by discarding entries from
// the front until one matches or the list empties (§4.4 step 7).
func (r *Reader) resolve(rep Reply) {
	for {
		p := r.pending.front()
		if p == nil {
			r.log.Debug("reply with no pending command", "command", rep.Command)
			return
		}
		if p.command == rep.Command {
			r.pending.popFront()
			r.finish(p, rep, false)
			return
		}
		r.pending.popFront()
		r.stats.Resyncs.Add(1)
		r.log.Debug("resyncing: discarding unmatched pending command", "expected", p.command, "got", rep.Command)
		if kind := queueKindForCommand(p.command); kind != multiNone {
			r.queues.get(rep.Address).clearFor(kind)
		}
		r.finish(p, Reply{}, false)
	}
}

func (r *Reader) finish(p *pendingCommand, rep Reply, timedOut bool) {
	if p.resolved {
		return
	}
	p.resolved = true
	if p.timer != nil {
		p.timer.Stop()
	}
	p.reply = rep
	p.timedOut = timedOut
	close(p.done)
}

// queueKindForCommand maps a pending command back to the accumulator
// queue it would have been filling, for the resync cleanup in step 7.
func queueKindForCommand(cmd proto.Command) multiKind {
	switch cmd {
	case proto.CmdGetInventoryBuffer, proto.CmdGetAndResetInventoryBuffer:
		return multiInventoryBuffer
	case proto.CmdTagMask:
		return multiTagMaskList
	case proto.CmdRead:
		return multiRead
	case proto.CmdWrite, proto.CmdWriteBlock:
		return multiWrite
	case proto.CmdLock:
		return multiLock
	case proto.CmdKill:
		return multiKill
	default:
		return multiNone
	}
}
