package r2000

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// ptySink wraps one end of a pty pair as a Sink, exercising the
// Reader over an actual file descriptor rather than an in-memory fake.
type ptySink struct {
	f io.Writer
}

func (s ptySink) Write(p []byte) (int, error) { return s.f.Write(p) }

// fakeRFReader emulates the device end of the wire for the duration of
// one test: it reads whatever command frame arrives and writes back
// whatever the test tells it to.
func fakeRFReader(t *testing.T, conn io.ReadWriter, respond func(pkt wire.Packet) []byte) {
	t.Helper()
	var fr wire.FrameReader
	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		fr.Feed(buf[:n])
		for {
			res, ok := fr.Next()
			if !ok {
				break
			}
			if res.Frame == nil {
				continue
			}
			pkt, err := wire.Decode(res.Frame)
			if err != nil {
				continue
			}
			reply := respond(pkt)
			if reply == nil {
				return
			}
			if _, err := conn.Write(reply); err != nil {
				return
			}
		}
	}
}

func TestReaderOverPtyLoopback(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	defer master.Close()
	defer slave.Close()

	// Writes to master arrive for reading on slave, and vice versa:
	// the Reader drives the master side and the fake device drives
	// the slave side, mirroring how the real serial port and reader
	// firmware sit on opposite ends of the wire.
	r := NewReader(ptySink{f: master}, WithAddress(0x01))

	done := make(chan struct{})
	go func() {
		defer close(done)
		fakeRFReader(t, slave, func(pkt wire.Packet) []byte {
			assert.Equal(t, byte(proto.CmdGetFirmwareVersion), pkt.Command)
			reply := wire.Packet{Address: 0x01, Command: pkt.Command, Payload: []byte("r2000-test")}
			return reply.Encode()
		})
	}()

	readBuf := make([]byte, 256)
	go func() {
		for {
			n, err := master.Read(readBuf)
			if err != nil {
				return
			}
			r.Feed(readBuf[:n])
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	version, err := r.GetFirmwareVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r2000-test", version)
}
