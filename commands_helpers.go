package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
)

// doSimple sends cmd with payload under DefaultTimeout and turns a
// reader-reported error code into a FaultError, per §7.
func (r *Reader) doSimple(ctx context.Context, cmd proto.Command, payload []byte) (Reply, error) {
	rep, err := r.sendCommand(ctx, cmd, payload, DefaultTimeout, false)
	if err != nil {
		return Reply{}, err
	}
	if rep.HasErrorCode && !rep.Success {
		return rep, &FaultError{Command: cmd, Code: rep.ErrorCode}
	}
	return rep, nil
}

func requireByteRange(arg string, v, lo, hi int) error {
	if v < lo || v > hi {
		return argErrf(arg, "must be in [%d, %d], got %d", lo, hi, v)
	}
	return nil
}
