package r2000

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

func TestParseReadRecord(t *testing.T) {
	pc := uint16(0x0800) // 1 word -> 2-byte EPC
	epc := []byte{0xAB, 0xCD}
	bankData := []byte{0x01, 0x02, 0x03, 0x04}

	out := wire.PutBEUint16(nil, 1) // count
	out = append(out, byte(len(epc)/2))
	out = wire.PutBEUint16(out, pc)
	out = append(out, epc...)
	crc := wire.CRC16(append(wire.PutBEUint16(nil, pc), epc...))
	out = wire.PutBEUint16(out, crc)
	out = append(out, bankData...)
	out = append(out, 0xFF /* RSSI */, 0x00 /* antFreq */, 0x05 /* per-tag count */)

	count, rec, err := parseReadRecord(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), count)
	assert.Equal(t, pc, rec.PC)
	assert.Equal(t, epc, rec.EPC)
	assert.True(t, rec.CRCValid)
	assert.Equal(t, bankData, rec.Data)
}

func TestParseReadRecordRejectsTooShort(t *testing.T) {
	_, _, err := parseReadRecord(make([]byte, 5))
	assert.Error(t, err)
}

func TestParseTagOpRecordSuccess(t *testing.T) {
	pc := uint16(0x1000)
	epc := []byte{0x01, 0x02}
	out := wire.PutBEUint16(nil, 1)
	out = append(out, byte(len(epc)+2))
	out = wire.PutBEUint16(out, pc)
	out = append(out, epc...)
	crc := wire.CRC16(append(wire.PutBEUint16(nil, pc), epc...))
	out = wire.PutBEUint16(out, crc)
	out = append(out, byte(proto.ErrSuccess), 0x00, 0x01)

	count, rec, err := parseTagOpRecord(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), count)
	assert.True(t, rec.Success)
	assert.Equal(t, proto.ErrSuccess, rec.ErrorCode)
	assert.Equal(t, byte(0x01), rec.RetryCount)
}

func TestParseTagOpRecordFailure(t *testing.T) {
	out := wire.PutBEUint16(nil, 1)
	out = append(out, 0x04)
	out = wire.PutBEUint16(out, 0)
	out = wire.PutBEUint16(out, wire.CRC16(wire.PutBEUint16(nil, 0)))
	out = append(out, byte(proto.ErrFail), 0x00, 0x03)

	_, rec, err := parseTagOpRecord(out)
	require.NoError(t, err)
	assert.False(t, rec.Success)
	assert.Equal(t, proto.ErrFail, rec.ErrorCode)
}

func TestParseTagMaskRecord(t *testing.T) {
	mask := []byte{0xFF, 0x00, 0xFF}
	out := wire.PutBEUint16(nil, 1)
	out = append(out, 0x07 /* mask id */, byte(proto.BankEPC))
	out = wire.PutBEUint16(out, 0x0020)
	out = append(out, byte(len(mask)))
	out = append(out, mask...)

	count, rec, err := parseTagMaskRecord(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), count)
	assert.Equal(t, byte(0x07), rec.ID)
	assert.Equal(t, proto.BankEPC, rec.MemoryBank)
	assert.Equal(t, uint16(0x0020), rec.Address)
	assert.Equal(t, mask, rec.Mask)
}

func TestParseTagMaskRecordRejectsOverrun(t *testing.T) {
	out := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x00}
	_, _, err := parseTagMaskRecord(out)
	assert.Error(t, err)
}

func TestParseAccessEPCMatch(t *testing.T) {
	epc := []byte{0xAA, 0xBB, 0xCC}
	data := append([]byte{0x01}, epc...)
	m, err := parseAccessEPCMatch(data)
	require.NoError(t, err)
	assert.True(t, m.Enabled)
	assert.Equal(t, epc, m.EPC)
}

func TestParseAccessEPCMatchDisabled(t *testing.T) {
	m, err := parseAccessEPCMatch([]byte{0x00})
	require.NoError(t, err)
	assert.False(t, m.Enabled)
	assert.Empty(t, m.EPC)
}
