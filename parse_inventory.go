package r2000

import (
	"fmt"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// antennaFreqPack splits the combined antenna+frequency byte used
// throughout the inventory replies: the low 2 bits select the antenna
// (1-4), the remaining bits index the frequency table.
func antennaFreqPack(b byte) (proto.AntennaID, proto.Frequency) {
	ant := proto.AntennaID(b&0x03) + 1
	freq := proto.Frequency(b >> 2)
	return ant, freq
}

// parseSighting decodes one real-time / fast-switch / session inventory
// sighting record per §4.5: data[0:2] PC, data[2:-4] EPC, data[-4:-2]
// CRC-16, data[-2] antenna+frequency pack, data[-1] RSSI (or, in phase
// mode, the trailing two bytes are reinterpreted as phase angle rather
// than the antenna+frequency pack and RSSI, per the phaseMode side
// channel of §4.2).
func parseSighting(data []byte, phaseMode bool) (InventoryTag, error) {
	if len(data) < 6 {
		return InventoryTag{}, fmt.Errorf("sighting too short: %d bytes", len(data))
	}
	pc := wire.BEUint16(data[0:2])
	epcLen := int(pc>>11) * 2
	tail := 4
	if epcLen+2+tail > len(data) {
		epcLen = len(data) - 2 - tail
		if epcLen < 0 {
			epcLen = 0
		}
	}
	epc := append([]byte(nil), data[2:2+epcLen]...)
	rest := data[2+epcLen:]
	if len(rest) < tail {
		return InventoryTag{}, fmt.Errorf("sighting missing trailer: %d bytes left", len(rest))
	}
	crc := wire.BEUint16(rest[0:2])
	crcValid := wire.ValidateCRC(data[0:2+epcLen], crc)

	tag := InventoryTag{
		PC:       pc,
		EPC:      epc,
		CRCValid: crcValid,
	}

	if phaseMode {
		tag.PhaseAngle = wire.BEUint16(rest[2:4])
		tag.HasPhase = true
		tag.Antenna = proto.Antenna1
	} else {
		ant, freq := antennaFreqPack(rest[2])
		tag.Antenna = ant
		tag.Frequency = freq
		tag.RSSI_dBm = int(int8(rest[3]))
	}
	return tag, nil
}

// parse6BSighting decodes one ISO 18000-6B sighting: an antenna byte
// followed by an 8-byte UID, per §4.5.
func parse6BSighting(data []byte) (SixBTag, error) {
	if len(data) < 9 {
		return SixBTag{}, fmt.Errorf("6B sighting too short: %d bytes", len(data))
	}
	var tag SixBTag
	tag.Antenna = proto.AntennaID(data[0])
	copy(tag.UID[:], data[1:9])
	return tag, nil
}

// parseAntennaMissing decodes the unsolicited ANTENNA_MISSING
// notification emitted mid-inventory when a fast-switch port comes up
// empty: a single antenna-index byte alongside the already-classified
// error code.
func parseAntennaMissing(data []byte) (AntennaEvent, error) {
	if len(data) < 1 {
		return AntennaEvent{}, fmt.Errorf("antenna-missing event too short")
	}
	return AntennaEvent{
		Antenna: proto.AntennaID(data[0]),
		Code:    proto.ErrAntennaMissing,
	}, nil
}
