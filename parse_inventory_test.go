package r2000

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

func buildSighting(t *testing.T, pc uint16, epc []byte, phaseMode bool, trailer [2]byte) []byte {
	t.Helper()
	out := wire.PutBEUint16(nil, pc)
	out = append(out, epc...)
	crc := wire.CRC16(out)
	out = wire.PutBEUint16(out, crc)
	out = append(out, trailer[0], trailer[1])
	return out
}

func TestParseSightingNonPhaseMode(t *testing.T) {
	pc := uint16(2 << 11) // 2 words -> 4-byte EPC
	epc := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := buildSighting(t, pc, epc, false, [2]byte{0x05, 0xF4}) // antFreq=5 -> antenna 2, freq 1; RSSI -12

	tag, err := parseSighting(data, false)
	require.NoError(t, err)
	assert.Equal(t, pc, tag.PC)
	assert.Equal(t, epc, tag.EPC)
	assert.True(t, tag.CRCValid)
	assert.False(t, tag.HasPhase)
	assert.Equal(t, proto.AntennaID(2), tag.Antenna)
	assert.Equal(t, proto.Frequency(1), tag.Frequency)
	assert.Equal(t, -12, tag.RSSI_dBm)
}

func TestParseSightingPhaseMode(t *testing.T) {
	pc := uint16(0)
	data := buildSighting(t, pc, nil, true, [2]byte{0x01, 0x23})

	tag, err := parseSighting(data, true)
	require.NoError(t, err)
	assert.True(t, tag.HasPhase)
	assert.Equal(t, uint16(0x0123), tag.PhaseAngle)
}

func TestParseSightingDetectsCorruptCRC(t *testing.T) {
	data := buildSighting(t, 0, nil, false, [2]byte{0, 0})
	data[2] ^= 0xFF // corrupt the CRC high byte
	tag, err := parseSighting(data, false)
	require.NoError(t, err)
	assert.False(t, tag.CRCValid)
}

func TestParseSightingRejectsTooShort(t *testing.T) {
	_, err := parseSighting([]byte{0x00, 0x00, 0x00}, false)
	assert.Error(t, err)
}

func TestParse6BSighting(t *testing.T) {
	var uid [8]byte
	for i := range uid {
		uid[i] = byte(i + 1)
	}
	data := append([]byte{0x03}, uid[:]...)
	tag, err := parse6BSighting(data)
	require.NoError(t, err)
	assert.Equal(t, proto.AntennaID(3), tag.Antenna)
	assert.Equal(t, uid, tag.UID)
}

func TestParseAntennaMissing(t *testing.T) {
	ev, err := parseAntennaMissing([]byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, proto.AntennaID(2), ev.Antenna)
	assert.Equal(t, proto.ErrAntennaMissing, ev.Code)
}

func TestAntennaFreqPack(t *testing.T) {
	ant, freq := antennaFreqPack(0x00)
	assert.Equal(t, proto.AntennaID(1), ant)
	assert.Equal(t, proto.Frequency(0), freq)

	ant, freq = antennaFreqPack(0x0F) // low 2 bits = 3 -> antenna 4, remaining bits = 3
	assert.Equal(t, proto.AntennaID(4), ant)
	assert.Equal(t, proto.Frequency(3), freq)
}
