package r2000

import (
	"fmt"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// parseBufferedRecord decodes one record of a GET_INV_BUF /
// GET_RESET_INV_BUF dump, per §4.5: data[0:2] total unique tag count
// (BE), data[2] single-record length, data[3:5] PC, data[5:-5] EPC,
// data[-5:-3] CRC-16, data[-3] raw RSSI, data[-2] antenna+frequency
// pack, data[-1] per-tag inventory count.
func parseBufferedRecord(data []byte) (uint16, BufferedTagRecord, error) {
	if len(data) < 10 {
		return 0, BufferedTagRecord{}, fmt.Errorf("buffered record too short: %d bytes", len(data))
	}
	count := wire.BEUint16(data[0:2])
	n := len(data)
	pc := wire.BEUint16(data[3:5])
	epc := append([]byte(nil), data[5:n-5]...)
	crc := wire.BEUint16(data[n-5 : n-3])
	crcValid := wire.ValidateCRC(data[3:n-5], crc)
	ant, freq := antennaFreqPack(data[n-2])

	rec := BufferedTagRecord{
		UniqueTagCount: count,
		PC:             pc,
		EPC:            epc,
		CRCValid:       crcValid,
		Antenna:        ant,
		Frequency:      freq,
		AccessCount:    data[n-1],
	}
	return count, rec, nil
}

// parseBufferedSummary decodes the "INVENTORY" reply to
// StartBufferedInventory: antenna, tag count, read rate, total reads.
func parseBufferedSummary(data []byte) (BufferedSummary, error) {
	if len(data) < 9 {
		return BufferedSummary{}, fmt.Errorf("buffered summary too short: %d bytes", len(data))
	}
	return BufferedSummary{
		Antenna:   proto.AntennaID(data[0]),
		TagCount:  wire.BEUint16(data[1:3]),
		ReadRate:  wire.BEUint16(data[3:5]),
		TotalRead: wire.BEUint32(data[5:9]),
	}, nil
}
