package r2000

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jaytaylor/r2000reader/wire"
)

// TestSightingCRCRoundTripsForAnyEPC checks the §8 invariant that a
// sighting record built over an arbitrary PC/EPC pair always decodes
// with CRCValid true, and that the decoded EPC is exactly what was
// encoded, regardless of EPC length.
func TestSightingCRCRoundTripsForAnyEPC(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.IntRange(0, 31).Draw(rt, "epcWords")
		epc := rapid.SliceOfN(rapid.Byte(), words*2, words*2).Draw(rt, "epc")
		pc := uint16(words) << 11

		data := wire.PutBEUint16(nil, pc)
		data = append(data, epc...)
		crc := wire.CRC16(data)
		data = wire.PutBEUint16(data, crc)
		data = append(data, 0x00, 0x00) // antenna+freq pack, RSSI

		tag, err := parseSighting(data, false)
		require.NoError(rt, err)
		require.True(rt, tag.CRCValid)
		require.Equal(rt, epc, tag.EPC)
	})
}

// TestBufferedRecordCRCRoundTrips mirrors the same invariant for the
// buffered-inventory record shape.
func TestBufferedRecordCRCRoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		epcLen := rapid.IntRange(0, 62).Draw(rt, "epcLen")
		epc := rapid.SliceOfN(rapid.Byte(), epcLen, epcLen).Draw(rt, "epc")
		total := uint16(rapid.IntRange(1, 65535).Draw(rt, "total"))
		pc := uint16(rapid.IntRange(0, 65535).Draw(rt, "pc"))

		out := wire.PutBEUint16(nil, total)
		out = append(out, byte(epcLen+2))
		out = wire.PutBEUint16(out, pc)
		out = append(out, epc...)
		crc := wire.CRC16(append(wire.PutBEUint16(nil, pc), epc...))
		out = wire.PutBEUint16(out, crc)
		out = append(out, 0x00, 0x00, 0x01)

		count, rec, err := parseBufferedRecord(out)
		require.NoError(rt, err)
		require.Equal(rt, total, count)
		require.True(rt, rec.CRCValid)
		require.Equal(rt, epc, rec.EPC)
	})
}

// TestAccessEPCMatchSetThenGetRoundTrips checks that a GET_EPC_MATCH
// payload shaped like the one SetAccessEPCMatch sends (enabled flag,
// then the mask) parses back to the same mask, and that the cleared
// form (a lone zero flag) parses to a disabled, empty match the same
// way every time.
func TestAccessEPCMatchSetThenGetRoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 62).Draw(rt, "epcLen")
		epc := rapid.SliceOfN(rapid.Byte(), n, n).Draw(rt, "epc")

		data := append([]byte{0x01}, epc...)
		m, err := parseAccessEPCMatch(data)
		require.NoError(rt, err)
		require.True(rt, m.Enabled)
		require.Equal(rt, epc, m.EPC)

		cleared, err := parseAccessEPCMatch([]byte{0x00})
		require.NoError(rt, err)
		require.False(rt, cleared.Enabled)
		require.Empty(rt, cleared.EPC)

		// Idempotence: parsing the same cleared form twice yields the
		// same result.
		clearedAgain, err := parseAccessEPCMatch([]byte{0x00})
		require.NoError(rt, err)
		require.Equal(rt, cleared, clearedAgain)
	})
}
