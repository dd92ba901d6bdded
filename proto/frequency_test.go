package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyTableSize(t *testing.T) {
	assert.Equal(t, 60, NumFrequencies)
}

func TestFrequencyTableBoundaries(t *testing.T) {
	assert.InDelta(t, 865.0, Frequency(0).MHz(), 1e-9)
	assert.InDelta(t, 868.0, Frequency(6).MHz(), 1e-9)
	assert.InDelta(t, 902.0, Frequency(7).MHz(), 1e-9)
	assert.InDelta(t, 928.0, Frequency(59).MHz(), 1e-9)
}

func TestFrequencyValid(t *testing.T) {
	assert.True(t, Frequency(0).Valid())
	assert.True(t, Frequency(59).Valid())
	assert.False(t, Frequency(60).Valid())
	assert.False(t, Frequency(-1).Valid())
}

func TestNearestIndex(t *testing.T) {
	assert.Equal(t, Frequency(0), NearestIndex(865.0))
	assert.Equal(t, Frequency(7), NearestIndex(902.2))
	assert.Equal(t, Frequency(59), NearestIndex(1000.0))
}

func TestRegionDefaults(t *testing.T) {
	start, end, ok := RegionDefaults(RegionFCC)
	assert.True(t, ok)
	assert.Equal(t, 7, start)
	assert.Equal(t, 59, end)

	start, end, ok = RegionDefaults(RegionETSI)
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	start, end, ok = RegionDefaults(RegionCHN)
	assert.True(t, ok)
	assert.Equal(t, 43, start)
	assert.Equal(t, 53, end)

	_, _, ok = RegionDefaults(RegionCustom)
	assert.False(t, ok)
}
