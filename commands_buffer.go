package r2000

import (
	"context"
	"time"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// BufferDumpTimeout bounds how long a buffered-inventory dump's
// multi-packet reply may take to fully accumulate.
const BufferDumpTimeout = 5 * time.Second

// GetInventoryBuffer dumps every tag record the reader has
// accumulated since the last buffered inventory or reset, without
// clearing it.
func (r *Reader) GetInventoryBuffer(ctx context.Context) ([]BufferedTagRecord, error) {
	rep, err := r.sendCommand(ctx, proto.CmdGetInventoryBuffer, nil, BufferDumpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdGetInventoryBuffer, Code: rep.ErrorCode}
	}
	return rep.InventoryBuffer, nil
}

// GetAndResetInventoryBuffer dumps and clears the accumulated buffer
// in one round trip.
func (r *Reader) GetAndResetInventoryBuffer(ctx context.Context) ([]BufferedTagRecord, error) {
	rep, err := r.sendCommand(ctx, proto.CmdGetAndResetInventoryBuffer, nil, BufferDumpTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdGetAndResetInventoryBuffer, Code: rep.ErrorCode}
	}
	return rep.InventoryBuffer, nil
}

// GetInventoryBufferCount returns the number of tag records currently
// buffered, without transferring them.
func (r *Reader) GetInventoryBufferCount(ctx context.Context) (int, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetInventoryBufferCount, nil)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 2 {
		return 0, argErrf("reply", "GET_INV_CNT reply too short")
	}
	return int(wire.BEUint16(rep.Data)), nil
}

// ResetInventoryBuffer clears the accumulated buffer.
func (r *Reader) ResetInventoryBuffer(ctx context.Context) error {
	_, err := r.doSimple(ctx, proto.CmdResetInventoryBuffer, nil)
	return err
}
