package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
)

// GetGPIO reads the reader's GPIO1/GPIO2 input levels.
func (r *Reader) GetGPIO(ctx context.Context) (gpio1, gpio2 proto.GPIOLevel, err error) {
	rep, err := r.doSimple(ctx, proto.CmdGetGPIO, nil)
	if err != nil {
		return 0, 0, err
	}
	if len(rep.Data) < 2 {
		return 0, 0, argErrf("reply", "GET_GPIO reply too short")
	}
	return proto.GPIOLevel(rep.Data[0]), proto.GPIOLevel(rep.Data[1]), nil
}

// SetGPIO drives the reader's GPIO3/GPIO4 output levels. These address
// pins on the reader itself, over the wire protocol — not a local
// Linux GPIO chip on the host.
func (r *Reader) SetGPIO(ctx context.Context, gpio3, gpio4 proto.GPIOLevel) error {
	_, err := r.doSimple(ctx, proto.CmdSetGPIO, []byte{byte(gpio3), byte(gpio4)})
	return err
}

// SetIdentifier sets the reader's 12-byte identifier.
func (r *Reader) SetIdentifier(ctx context.Context, id [12]byte) error {
	_, err := r.doSimple(ctx, proto.CmdSetIdentifier, id[:])
	return err
}

// GetIdentifier returns the reader's 12-byte identifier.
func (r *Reader) GetIdentifier(ctx context.Context) ([12]byte, error) {
	var out [12]byte
	rep, err := r.doSimple(ctx, proto.CmdGetIdentifier, nil)
	if err != nil {
		return out, err
	}
	if len(rep.Data) < 12 {
		return out, argErrf("reply", "GET_IDENT reply too short: %d bytes", len(rep.Data))
	}
	copy(out[:], rep.Data)
	return out, nil
}
