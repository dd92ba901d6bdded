package r2000

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

func TestParseFrequencyBandFixed(t *testing.T) {
	band, err := parseFrequencyBand([]byte{byte(proto.RegionFCC), 7, 59})
	require.NoError(t, err)
	assert.Equal(t, proto.RegionFCC, band.Region)
	assert.Equal(t, proto.Frequency(7), band.StartIndex)
	assert.Equal(t, proto.Frequency(59), band.EndIndex)
}

func TestParseFrequencyBandCustom(t *testing.T) {
	data := []byte{byte(proto.RegionCustom)}
	data = append(data, wire.PutBEUint16(nil, 50)...) // spacing: 50*10Hz = 500Hz
	data = append(data, 10)                           // quantity
	data = append(data, wire.PutBEUint24(nil, 915000)...)

	band, err := parseFrequencyBand(data)
	require.NoError(t, err)
	assert.Equal(t, proto.RegionCustom, band.Region)
	assert.Equal(t, 500, band.CustomSpacingHz)
	assert.Equal(t, 10, band.CustomQuantity)
	assert.Equal(t, 915000000, band.CustomStartFreqHz)
}

func TestParseFrequencyBandRejectsEmpty(t *testing.T) {
	_, err := parseFrequencyBand(nil)
	assert.Error(t, err)
}

func TestParseReaderTemperaturePositive(t *testing.T) {
	temp, err := parseReaderTemperature([]byte{0x00, 25})
	require.NoError(t, err)
	assert.Equal(t, 25, temp.Celsius)
}

func TestParseReaderTemperatureNegative(t *testing.T) {
	temp, err := parseReaderTemperature([]byte{0x01, 5})
	require.NoError(t, err)
	assert.Equal(t, -5, temp.Celsius)
}

func TestParseOutputPowerBroadcast(t *testing.T) {
	p, err := parseOutputPower([]byte{30})
	require.NoError(t, err)
	assert.True(t, p.Broadcast)
	assert.Equal(t, []int{30}, p.DBm)
}

func TestParseOutputPowerPerPort(t *testing.T) {
	p, err := parseOutputPower([]byte{30, 28, 26, 24})
	require.NoError(t, err)
	assert.False(t, p.Broadcast)
	assert.Equal(t, []int{30, 28, 26, 24}, p.DBm)
}

func TestParseOutputPowerRejectsEmpty(t *testing.T) {
	_, err := parseOutputPower(nil)
	assert.Error(t, err)
}
