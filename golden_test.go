package r2000

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

type sightingFixture struct {
	Name          string `yaml:"name"`
	PC            int    `yaml:"pc"`
	EPCHex        string `yaml:"epc_hex"`
	AntFreqByte   int    `yaml:"ant_freq_byte"`
	RSSIRaw       int    `yaml:"rssi_raw"`
	WantAntenna   int    `yaml:"want_antenna"`
	WantFrequency int    `yaml:"want_frequency"`
	WantRSSIDBm   int    `yaml:"want_rssi_dbm"`
}

// TestSightingGoldenFixtures drives parseSighting from the wire-level
// test vectors in testdata/sightings.yaml, the same way the teacher's
// tocalls.yaml is loaded with yaml.v3 for data-driven lookups.
func TestSightingGoldenFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/sightings.yaml")
	require.NoError(t, err)

	var fixtures []sightingFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			epc, err := hex.DecodeString(fx.EPCHex)
			require.NoError(t, err)

			data := wire.PutBEUint16(nil, uint16(fx.PC))
			data = append(data, epc...)
			crc := wire.CRC16(data)
			data = wire.PutBEUint16(data, crc)
			data = append(data, byte(fx.AntFreqByte), byte(fx.RSSIRaw))

			tag, err := parseSighting(data, false)
			require.NoError(t, err)
			require.True(t, tag.CRCValid)
			require.Equal(t, uint16(fx.PC), tag.PC)
			require.Equal(t, epc, tag.EPC)
			require.Equal(t, proto.AntennaID(fx.WantAntenna), tag.Antenna)
			require.Equal(t, proto.Frequency(fx.WantFrequency), tag.Frequency)
			require.Equal(t, fx.WantRSSIDBm, tag.RSSI_dBm)
		})
	}
}
