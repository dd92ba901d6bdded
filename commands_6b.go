package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
)

// Start6BInventory runs an ISO 18000-6B inventory. Sightings arrive as
// unsolicited SixBTag events on the EventSink for the round's
// duration.
func (r *Reader) Start6BInventory(ctx context.Context, repeat byte) error {
	rep, err := r.sendCommand(ctx, proto.Cmd6BInventory, []byte{repeat}, inventoryDeadline(repeat, 0), false)
	if err != nil {
		return err
	}
	if rep.HasErrorCode && !rep.Success {
		return &FaultError{Command: proto.Cmd6BInventory, Code: rep.ErrorCode}
	}
	return nil
}

// Read6BByte reads one byte from a 6B tag's memory at addr.
func (r *Reader) Read6BByte(ctx context.Context, uid [8]byte, addr byte) (byte, error) {
	payload := append(append([]byte(nil), uid[:]...), addr)
	rep, err := r.doSimple(ctx, proto.Cmd6BRead, payload)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "6B_READ reply too short")
	}
	return rep.Data[0], nil
}

// Write6BByte writes one byte to a 6B tag's memory at addr.
func (r *Reader) Write6BByte(ctx context.Context, uid [8]byte, addr, data byte) error {
	payload := append(append([]byte(nil), uid[:]...), addr, data)
	_, err := r.doSimple(ctx, proto.Cmd6BWrite, payload)
	return err
}

// Lock6BByte locks one byte of a 6B tag's memory at addr.
func (r *Reader) Lock6BByte(ctx context.Context, uid [8]byte, addr byte) error {
	payload := append(append([]byte(nil), uid[:]...), addr)
	_, err := r.doSimple(ctx, proto.Cmd6BLock, payload)
	return err
}

// Query6BLock reports whether a 6B tag's byte at addr is locked.
func (r *Reader) Query6BLock(ctx context.Context, uid [8]byte, addr byte) (bool, error) {
	payload := append(append([]byte(nil), uid[:]...), addr)
	rep, err := r.doSimple(ctx, proto.Cmd6BQueryLock, payload)
	if err != nil {
		return false, err
	}
	if len(rep.Data) < 1 {
		return false, argErrf("reply", "6B_QLOCK reply too short")
	}
	return rep.Data[0] != 0, nil
}
