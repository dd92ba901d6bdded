package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
)

// SetWorkingAntenna selects the single active antenna port (1-8).
func (r *Reader) SetWorkingAntenna(ctx context.Context, ant proto.AntennaID) error {
	if err := requireByteRange("ant", int(ant), 0, 7); err != nil {
		return err
	}
	_, err := r.doSimple(ctx, proto.CmdSetWorkingAntenna, []byte{byte(ant)})
	return err
}

// GetWorkingAntenna returns the currently active antenna port.
func (r *Reader) GetWorkingAntenna(ctx context.Context) (proto.AntennaID, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetWorkingAntenna, nil)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_WORK_ANT reply too short")
	}
	return proto.AntennaID(rep.Data[0]), nil
}

// SetOutputPower sets the output power in dBm, either for all ports
// (broadcast) or via SetOutputPowerPerPort for each of up to 8 ports.
func (r *Reader) SetOutputPower(ctx context.Context, dBm byte) error {
	_, err := r.doSimple(ctx, proto.CmdSetOutputPower, []byte{dBm})
	return err
}

// SetOutputPowerPerPort sets distinct output power for each of up to
// 8 antenna ports in one call.
func (r *Reader) SetOutputPowerPerPort(ctx context.Context, dBm []byte) error {
	if len(dBm) == 0 || len(dBm) > 8 {
		return argErrf("dBm", "must supply 1-8 power values, got %d", len(dBm))
	}
	_, err := r.doSimple(ctx, proto.CmdSetOutputPower, dBm)
	return err
}

// SetTemporaryOutputPower sets output power that reverts on the next
// power cycle, without persisting to flash.
func (r *Reader) SetTemporaryOutputPower(ctx context.Context, dBm byte) error {
	_, err := r.doSimple(ctx, proto.CmdSetTemporaryOutputPower, []byte{dBm})
	return err
}

// GetOutputPower returns the reader's output power, broadcast or
// per-port depending on how the reader is configured.
func (r *Reader) GetOutputPower(ctx context.Context) (OutputPower, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetOutputPower, nil)
	if err != nil {
		return OutputPower{}, err
	}
	return parseOutputPower(rep.Data)
}

// GetOutputPower8P returns per-port output power across all 8 ports.
func (r *Reader) GetOutputPower8P(ctx context.Context) (OutputPower, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetOutputPower8P, nil)
	if err != nil {
		return OutputPower{}, err
	}
	return parseOutputPower(rep.Data)
}

// SetAntennaDetectorSensitivity configures the antenna-missing
// detector's trigger threshold.
func (r *Reader) SetAntennaDetectorSensitivity(ctx context.Context, level byte) error {
	_, err := r.doSimple(ctx, proto.CmdSetAntennaDetector, []byte{level})
	return err
}

// GetAntennaDetectorSensitivity reads the configured threshold.
func (r *Reader) GetAntennaDetectorSensitivity(ctx context.Context) (byte, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetAntennaDetector, nil)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_ANT_DET reply too short")
	}
	return rep.Data[0], nil
}

// SetBeeperMode controls when the reader's onboard beeper sounds.
func (r *Reader) SetBeeperMode(ctx context.Context, mode proto.BeeperMode) error {
	_, err := r.doSimple(ctx, proto.CmdSetBeeperMode, []byte{byte(mode)})
	return err
}

// SetDenseReaderMode toggles the FCC dense-reader-mode channel plan.
func (r *Reader) SetDenseReaderMode(ctx context.Context, enabled bool) error {
	var b byte
	if enabled {
		b = 1
	}
	_, err := r.doSimple(ctx, proto.CmdSetDenseReaderMode, []byte{b})
	return err
}

// GetDenseReaderMode reports whether dense-reader mode is enabled.
func (r *Reader) GetDenseReaderMode(ctx context.Context) (bool, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetDenseReaderMode, nil)
	if err != nil {
		return false, err
	}
	if len(rep.Data) < 1 {
		return false, argErrf("reply", "GET_DRM reply too short")
	}
	return rep.Data[0] != 0, nil
}

// GetReaderTemperature returns the reader's onboard temperature in
// degrees Celsius.
func (r *Reader) GetReaderTemperature(ctx context.Context) (int, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetReaderTemperature, nil)
	if err != nil {
		return 0, err
	}
	t, err := parseReaderTemperature(rep.Data)
	if err != nil {
		return 0, err
	}
	return t.Celsius, nil
}

// GetRFPortReturnLoss measures the return loss on the active antenna
// port. GET_RF_PORT_RETURN_LOSS's reply is SOMETIMES error-coded: a
// failed measurement comes back as a single ErrGetReturnLossFail byte,
// a successful one as a multi-byte loss reading.
func (r *Reader) GetRFPortReturnLoss(ctx context.Context) (int, error) {
	rep, err := r.sendCommand(ctx, proto.CmdGetRFPortReturnLoss, nil, DefaultTimeout, false)
	if err != nil {
		return 0, err
	}
	if rep.HasErrorCode {
		return 0, &FaultError{Command: proto.CmdGetRFPortReturnLoss, Code: rep.ErrorCode}
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_RETLOSS reply too short")
	}
	return int(rep.Data[0]), nil
}
