package r2000

import (
	"fmt"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// parseFrequencyBand decodes GET_FREQUENCY_REGION's two shapes: a
// 3-byte fixed-region reply (region, start index, end index) or a
// 7-byte custom-region reply (region, spacing, quantity, start
// frequency), per §4.6.
func parseFrequencyBand(data []byte) (FrequencyBand, error) {
	if len(data) < 1 {
		return FrequencyBand{}, fmt.Errorf("frequency band reply empty")
	}
	region := proto.Region(data[0])
	if region == proto.RegionCustom {
		if len(data) < 7 {
			return FrequencyBand{}, fmt.Errorf("custom frequency band reply too short: %d bytes", len(data))
		}
		return FrequencyBand{
			Region:            region,
			CustomSpacingHz:   int(wire.BEUint16(data[1:3])) * 10,
			CustomQuantity:    int(data[3]),
			CustomStartFreqHz: int(wire.BEUint24(data[4:7])) * 1000,
		}, nil
	}
	if len(data) < 3 {
		return FrequencyBand{}, fmt.Errorf("fixed frequency band reply too short: %d bytes", len(data))
	}
	return FrequencyBand{
		Region:     region,
		StartIndex: proto.Frequency(data[1]),
		EndIndex:   proto.Frequency(data[2]),
	}, nil
}

// ReaderTemperature is the reply to GetReaderTemperature: a signed
// Celsius reading encoded as sign byte + magnitude byte, per §4.5.
type ReaderTemperature struct {
	Celsius int
}

func parseReaderTemperature(data []byte) (ReaderTemperature, error) {
	if len(data) < 2 {
		return ReaderTemperature{}, fmt.Errorf("temperature reply too short: %d bytes", len(data))
	}
	mag := int(data[1])
	if data[0] != 0 {
		mag = -mag
	}
	return ReaderTemperature{Celsius: mag}, nil
}

// OutputPower is the reply to GetOutputPower / GetOutputPower8P: one
// dBm value per antenna port, broadcast (single value for all ports)
// or per-port depending on payload length.
type OutputPower struct {
	Broadcast bool
	DBm       []int
}

func parseOutputPower(data []byte) (OutputPower, error) {
	if len(data) == 0 {
		return OutputPower{}, fmt.Errorf("output power reply empty")
	}
	if len(data) == 1 {
		return OutputPower{Broadcast: true, DBm: []int{int(data[0])}}, nil
	}
	dbm := make([]int, len(data))
	for i, b := range data {
		dbm[i] = int(b)
	}
	return OutputPower{DBm: dbm}, nil
}
