package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFrameReaderSingleFrame(t *testing.T) {
	var p = Packet{Address: 0x01, Command: 0x72, Payload: []byte{1, 2, 3}}
	var fr FrameReader
	fr.Feed(p.Encode())

	var res, ok = fr.Next()
	require.True(t, ok)
	require.NotNil(t, res.Frame)
	assert.Nil(t, res.Dropped)

	var decoded, err = Decode(res.Frame)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)

	_, ok = fr.Next()
	assert.False(t, ok, "no more bytes buffered")
}

func TestFrameReaderDropsNoise(t *testing.T) {
	var p = Packet{Address: 0x01, Command: 0x72, Payload: []byte{0x01}}
	var fr FrameReader
	fr.Feed(append([]byte{0x11, 0x22, 0x33}, p.Encode()...))

	var res, ok = fr.Next()
	require.True(t, ok)
	assert.Equal(t, []byte{0x11, 0x22, 0x33}, res.Dropped)
	assert.Nil(t, res.Frame)

	res, ok = fr.Next()
	require.True(t, ok)
	require.NotNil(t, res.Frame)
}

func TestFrameReaderDropsBadLRCOneByteAtATime(t *testing.T) {
	var p = Packet{Address: 0x01, Command: 0x72, Payload: []byte{0xAA}}
	var frame = p.Encode()
	frame[len(frame)-1] ^= 0xFF // corrupt the LRC

	var fr FrameReader
	fr.Feed(frame)

	var res, ok = fr.Next()
	require.True(t, ok)
	assert.Equal(t, []byte{HeaderByte}, res.Dropped)
}

func TestFrameReaderWaitsForMoreBytes(t *testing.T) {
	var p = Packet{Address: 0x01, Command: 0x72, Payload: []byte{1, 2, 3, 4, 5}}
	var frame = p.Encode()

	var fr FrameReader
	fr.Feed(frame[:len(frame)-1])
	var _, ok = fr.Next()
	assert.False(t, ok)
	assert.Equal(t, len(frame)-1, fr.Pending())

	fr.Feed(frame[len(frame)-1:])
	var res FrameResult
	res, ok = fr.Next()
	require.True(t, ok)
	require.NotNil(t, res.Frame)
}

func TestFrameReaderPropertyRoundTripsArbitraryPackets(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var addr = byte(rapid.IntRange(0, 255).Draw(rt, "address"))
		var cmd = byte(rapid.IntRange(0, 255).Draw(rt, "command"))
		var payload = rapid.SliceOfN(rapid.Byte(), 1, 32).Draw(rt, "payload")

		var p = Packet{Address: addr, Command: cmd, Payload: payload}

		var fr FrameReader
		fr.Feed(p.Encode())

		var res, ok = fr.Next()
		require.True(rt, ok)
		require.NotNil(rt, res.Frame)

		var decoded, err = Decode(res.Frame)
		require.NoError(rt, err)
		assert.Equal(rt, p, decoded)
	})
}

func TestFrameReaderPropertyResyncsAfterGarbage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var garbage = rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(rt, "garbage")
		// Keep garbage free of the header byte so it can't accidentally
		// decode as a (malformed) candidate frame.
		for i, b := range garbage {
			if b == HeaderByte {
				garbage[i] = 0x01
			}
		}
		var p = Packet{Address: 0x01, Command: 0x72, Payload: []byte{9, 9}}

		var fr FrameReader
		fr.Feed(append(append([]byte(nil), garbage...), p.Encode()...))

		for {
			res, ok := fr.Next()
			require.True(rt, ok)
			if res.Frame != nil {
				decoded, err := Decode(res.Frame)
				require.NoError(rt, err)
				assert.Equal(rt, p, decoded)
				break
			}
		}
	})
}
