package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
)

// InventoryParams configures a real-time, fast-switch-antenna, or
// session-targeted inventory round. Repeat drives the reply deadline
// (§4.6: repeat*255ms + 1000ms, plus powersave stretch).
type InventoryParams struct {
	Q              byte
	Session        proto.Session
	Target         proto.InventoriedFlag
	Repeat         byte
	PowersaveTicks int
}

func (p InventoryParams) payload() []byte {
	return []byte{p.Q, byte(p.Session), byte(p.Target), p.Repeat}
}

// StartRealTimeInventory runs a real-time EPC Gen2 inventory. Tag
// sightings arrive as unsolicited events on the Reader's EventSink for
// the duration of the round; the call returns once the terminal reply
// ends the round, with a FaultError if that reply carries a failure
// code.
func (r *Reader) StartRealTimeInventory(ctx context.Context, p InventoryParams) error {
	rep, err := r.sendCommand(ctx, proto.CmdRealTimeInventory, p.payload(), inventoryDeadline(p.Repeat, p.PowersaveTicks), false)
	if err != nil {
		return err
	}
	if rep.HasErrorCode && !rep.Success {
		return &FaultError{Command: proto.CmdRealTimeInventory, Code: rep.ErrorCode}
	}
	return nil
}

// StartFastSwitchInventory runs an inventory that cycles the antenna
// switching sequence between rounds, per-antenna. Sightings and
// interleaved ANTENNA_MISSING events arrive via EventSink.
func (r *Reader) StartFastSwitchInventory(ctx context.Context, p InventoryParams) error {
	rep, err := r.sendCommand(ctx, proto.CmdFastSwitchAntInventory, p.payload(), inventoryDeadline(p.Repeat, p.PowersaveTicks), false)
	if err != nil {
		return err
	}
	if rep.HasErrorCode && !rep.Success {
		return &FaultError{Command: proto.CmdFastSwitchAntInventory, Code: rep.ErrorCode}
	}
	return nil
}

// StartSessionInventory runs an inventory targeting a specific C1G2
// session and inventoried-flag state.
func (r *Reader) StartSessionInventory(ctx context.Context, p InventoryParams) error {
	rep, err := r.sendCommand(ctx, proto.CmdSessionInventory, p.payload(), inventoryDeadline(p.Repeat, p.PowersaveTicks), false)
	if err != nil {
		return err
	}
	if rep.HasErrorCode && !rep.Success {
		return &FaultError{Command: proto.CmdSessionInventory, Code: rep.ErrorCode}
	}
	return nil
}

// StartBufferedInventory runs an inventory whose sightings accumulate
// in the reader's own memory rather than streaming as events; the
// reply is the "INVENTORY" summary record once the round completes.
func (r *Reader) StartBufferedInventory(ctx context.Context, p InventoryParams) (BufferedSummary, error) {
	rep, err := r.sendCommand(ctx, proto.CmdStartBufferedInventory, p.payload(), inventoryDeadline(p.Repeat, p.PowersaveTicks), false)
	if err != nil {
		return BufferedSummary{}, err
	}
	if rep.HasErrorCode && !rep.Success {
		return BufferedSummary{}, &FaultError{Command: proto.CmdStartBufferedInventory, Code: rep.ErrorCode}
	}
	return parseBufferedSummary(rep.Data)
}
