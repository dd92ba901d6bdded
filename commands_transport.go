package r2000

import (
	"context"
	"time"

	"github.com/jaytaylor/r2000reader/proto"
)

// ResetTimeout is how long Reset waits before treating silence as the
// expected outcome (§4.6: "RESET's timeout is success, not ErrTimeout").
const ResetTimeout = 3 * time.Second

// Reset reboots the reader. Unlike every other command, a deadline
// expiring with no reply means the reset completed normally — the
// reader restarts before it can answer. Either way, host-side session
// state (pending list, queues, phase mode) is torn down afterward.
func (r *Reader) Reset(ctx context.Context) error {
	_, err := r.sendCommand(ctx, proto.CmdReset, nil, ResetTimeout, true)
	r.mu.Lock()
	r.resetState()
	r.mu.Unlock()
	if err != nil && err != ErrTimeout {
		return err
	}
	return nil
}

// SetBaudRate changes the reader's UART baud rate. On success, host
// session state is reset (§4.6) and, if the Sink implements BaudSetter,
// the host side switches over too.
func (r *Reader) SetBaudRate(ctx context.Context, bps int) error {
	code, ok := proto.BaudRateCode(bps)
	if !ok {
		return argErrf("bps", "unsupported baud rate %d", bps)
	}
	if _, err := r.doSimple(ctx, proto.CmdSetBaudRate, []byte{byte(code)}); err != nil {
		return err
	}
	r.mu.Lock()
	r.resetState()
	r.mu.Unlock()
	if setter, ok := r.sink.(BaudSetter); ok {
		return setter.SetBaud(bps)
	}
	return nil
}

// SetAddress changes the reader's configured RS-485 address and, on
// success, the Reader's own notion of its peer's address so future
// replies aren't dropped as mismatched.
func (r *Reader) SetAddress(ctx context.Context, addr byte) error {
	if _, err := r.doSimple(ctx, proto.CmdSetAddress, []byte{addr}); err != nil {
		return err
	}
	r.mu.Lock()
	r.address = addr
	r.mu.Unlock()
	return nil
}

// GetFirmwareVersion returns the reader's firmware version string.
func (r *Reader) GetFirmwareVersion(ctx context.Context) (string, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetFirmwareVersion, nil)
	if err != nil {
		return "", err
	}
	return string(rep.Data), nil
}
