package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// SetAccessEPCMatch configures a mask every subsequent tag operation
// filters against: 1-62 bytes, per §4.6.
func (r *Reader) SetAccessEPCMatch(ctx context.Context, enabled bool, epc []byte) error {
	if enabled && (len(epc) < 1 || len(epc) > 62) {
		return argErrf("epc", "must be 1-62 bytes, got %d", len(epc))
	}
	var en byte
	if enabled {
		en = 1
	}
	payload := append([]byte{en}, epc...)
	_, err := r.doSimple(ctx, proto.CmdSetAccessEPCMatch, payload)
	return err
}

// ClearAccessEPCMatch disables the access EPC match filter. Calling it
// repeatedly is idempotent: each call disables the filter regardless
// of its prior state.
func (r *Reader) ClearAccessEPCMatch(ctx context.Context) error {
	return r.SetAccessEPCMatch(ctx, false, nil)
}

// GetAccessEPCMatch reads back the configured match filter.
func (r *Reader) GetAccessEPCMatch(ctx context.Context) (AccessEPCMatch, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetAccessEPCMatch, nil)
	if err != nil {
		return AccessEPCMatch{}, err
	}
	return parseAccessEPCMatch(rep.Data)
}

// tagMaskOp distinguishes the three TAG_MASK request shapes.
type tagMaskOp byte

const (
	tagMaskOpSet   tagMaskOp = 0x01
	tagMaskOpClear tagMaskOp = 0x02
	tagMaskOpGet   tagMaskOp = 0x03
)

// SetTagMask stores a tag mask slot the reader can later filter
// inventory/access operations against.
func (r *Reader) SetTagMask(ctx context.Context, id byte, bank proto.MemoryBank, address uint16, mask []byte) error {
	if len(mask) == 0 || len(mask) > 255 {
		return argErrf("mask", "must be 1-255 bytes, got %d", len(mask))
	}
	payload := []byte{byte(tagMaskOpSet), id, byte(bank)}
	payload = wire.PutBEUint16(payload, address)
	payload = append(payload, byte(len(mask)))
	payload = append(payload, mask...)
	_, err := r.doSimple(ctx, proto.CmdTagMask, payload)
	return err
}

// ClearTagMask removes a stored tag mask slot.
func (r *Reader) ClearTagMask(ctx context.Context, id byte) error {
	_, err := r.doSimple(ctx, proto.CmdTagMask, []byte{byte(tagMaskOpClear), id})
	return err
}

// GetTagMasks returns every stored tag mask.
func (r *Reader) GetTagMasks(ctx context.Context) ([]TagMask, error) {
	rep, err := r.sendCommand(ctx, proto.CmdTagMask, []byte{byte(tagMaskOpGet)}, DefaultTimeout, false)
	if err != nil {
		return nil, err
	}
	if rep.HasErrorCode && !rep.Success {
		return nil, &FaultError{Command: proto.CmdTagMask, Code: rep.ErrorCode}
	}
	return rep.Masks, nil
}

// SetFastID enables or disables Monza FastID/FastTID, persisted across
// power cycles.
func (r *Reader) SetFastID(ctx context.Context, mode proto.FastID) error {
	_, err := r.doSimple(ctx, proto.CmdSetFastID, []byte{byte(mode)})
	return err
}

// SetTemporaryFastID enables or disables FastID without persisting it.
func (r *Reader) SetTemporaryFastID(ctx context.Context, mode proto.FastID) error {
	_, err := r.doSimple(ctx, proto.CmdSetTemporaryFastID, []byte{byte(mode)})
	return err
}

// GetFastID reads back the configured FastID mode.
func (r *Reader) GetFastID(ctx context.Context) (proto.FastID, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetFastID, nil)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_FASTID reply too short")
	}
	return proto.FastID(rep.Data[0]), nil
}
