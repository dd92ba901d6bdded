package r2000

import (
	"context"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// SetFrequencyRegion configures a fixed regulatory region (FCC, ETSI,
// CHN), using that region's default start/end table indexes.
func (r *Reader) SetFrequencyRegion(ctx context.Context, region proto.Region) error {
	start, end, ok := proto.RegionDefaults(region)
	if !ok {
		return argErrf("region", "region %v has no fixed defaults; use SetCustomFrequencyRegion", region)
	}
	_, err := r.doSimple(ctx, proto.CmdSetFrequencyRegion, []byte{byte(region), byte(start), byte(end)})
	return err
}

// SetCustomFrequencyRegion configures a custom channel plan from a
// channel spacing and start frequency given in Hz, plus a channel
// quantity. On the wire the spacing is sent in units of 10 Hz and the
// start frequency in kHz.
func (r *Reader) SetCustomFrequencyRegion(ctx context.Context, spacingHz, quantity, startFreqHz int) error {
	if err := requireByteRange("quantity", quantity, 1, 255); err != nil {
		return err
	}
	payload := []byte{byte(proto.RegionCustom)}
	payload = wire.PutBEUint16(payload, uint16(spacingHz/10))
	payload = append(payload, byte(quantity))
	payload = wire.PutBEUint24(payload, uint32(startFreqHz/1000))
	_, err := r.doSimple(ctx, proto.CmdSetFrequencyRegion, payload)
	return err
}

// GetFrequencyRegion reads back the configured region/band.
func (r *Reader) GetFrequencyRegion(ctx context.Context) (FrequencyBand, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetFrequencyRegion, nil)
	if err != nil {
		return FrequencyBand{}, err
	}
	return parseFrequencyBand(rep.Data)
}

// SetRFLinkProfile selects one of the reader's RF link timing
// profiles.
func (r *Reader) SetRFLinkProfile(ctx context.Context, profile proto.RFLinkProfile) error {
	if !proto.ValidProfile(byte(profile)) {
		return argErrf("profile", "unrecognized RF link profile 0x%02x", byte(profile))
	}
	_, err := r.doSimple(ctx, proto.CmdSetRFLinkProfile, []byte{byte(profile)})
	return err
}

// GetRFLinkProfile reads back the active RF link profile.
func (r *Reader) GetRFLinkProfile(ctx context.Context) (proto.RFLinkProfile, error) {
	rep, err := r.sendCommand(ctx, proto.CmdGetRFLinkProfile, nil, DefaultTimeout, false)
	if err != nil {
		return 0, err
	}
	if rep.HasErrorCode {
		return 0, &FaultError{Command: proto.CmdGetRFLinkProfile, Code: rep.ErrorCode}
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_RFLINK reply too short")
	}
	return proto.RFLinkProfile(rep.Data[0]), nil
}

// GetAntennaSwitchingSequence returns the configured fast-switch
// antenna order, as raw antenna IDs (proto.AntennaDisabled marks an
// unused slot).
func (r *Reader) GetAntennaSwitchingSequence(ctx context.Context) ([]proto.AntennaID, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetAntennaSwitchingSequence, nil)
	if err != nil {
		return nil, err
	}
	out := make([]proto.AntennaID, len(rep.Data))
	for i, b := range rep.Data {
		out[i] = proto.AntennaID(b)
	}
	return out, nil
}

// SetModuleFunction sets the reader's boot-time operating mode. On
// success, host session state is reset per §4.6.
func (r *Reader) SetModuleFunction(ctx context.Context, fn proto.ModuleFunction) error {
	if _, err := r.doSimple(ctx, proto.CmdSetModuleFunction, []byte{byte(fn)}); err != nil {
		return err
	}
	r.mu.Lock()
	r.resetState()
	r.mu.Unlock()
	return nil
}

// GetModuleFunction reads back the configured operating mode.
func (r *Reader) GetModuleFunction(ctx context.Context) (proto.ModuleFunction, error) {
	rep, err := r.doSimple(ctx, proto.CmdGetModuleFunction, nil)
	if err != nil {
		return 0, err
	}
	if len(rep.Data) < 1 {
		return 0, argErrf("reply", "GET_MODFN reply too short")
	}
	return proto.ModuleFunction(rep.Data[0]), nil
}
