package r2000

import (
	"fmt"

	"github.com/jaytaylor/r2000reader/proto"
	"github.com/jaytaylor/r2000reader/wire"
)

// parseReadRecord decodes one ReadTags reply record: count (BE16), the
// EPC length in words, PC, EPC, CRC-16, the bank data, and a fixed
// 3-byte tail whose last two bytes are the antenna+frequency pack and
// the per-tag count. The bank data is every byte between the CRC and
// that tail; the byte three from the record's end is not read, and in
// particular is not used as the bank data's length.
//
// This mirrors the buffered-record layout of §4.5 with the bank data
// spliced in; the splice point is this driver's resolution of an
// underspecified corner of the wire format (see DESIGN.md).
func parseReadRecord(data []byte) (uint16, ReadRecord, error) {
	if len(data) < 13 {
		return 0, ReadRecord{}, fmt.Errorf("read record too short: %d bytes", len(data))
	}
	count := wire.BEUint16(data[0:2])
	recLenWords := int(data[2])
	epcLen := recLenWords * 2
	if 5+epcLen+2 > len(data) {
		return 0, ReadRecord{}, fmt.Errorf("read record EPC length %d overruns payload of %d bytes", epcLen, len(data))
	}
	pc := wire.BEUint16(data[3:5])
	epc := append([]byte(nil), data[5:5+epcLen]...)
	crc := wire.BEUint16(data[5+epcLen : 5+epcLen+2])
	crcValid := wire.ValidateCRC(data[3:5+epcLen], crc)

	rest := data[5+epcLen+2:]
	if len(rest) < 3 {
		return 0, ReadRecord{}, fmt.Errorf("read record missing trailer: %d bytes left", len(rest))
	}
	bankData := append([]byte(nil), rest[:len(rest)-3]...)
	ant, freq := antennaFreqPack(rest[len(rest)-2])

	rec := ReadRecord{
		PC:        pc,
		EPC:       epc,
		CRCValid:  crcValid,
		Antenna:   ant,
		Frequency: freq,
		Data:      bankData,
	}
	return count, rec, nil
}

// parseTagOpRecord decodes one WriteTags / WriteTagsBlock / LockTags /
// KillTags reply record: buffered-record shaped, with the final three
// trailing bytes reinterpreted as a per-record error code, the
// antenna+frequency pack, and a retry count (§4.5).
func parseTagOpRecord(data []byte) (uint16, TagOpRecord, error) {
	if len(data) < 10 {
		return 0, TagOpRecord{}, fmt.Errorf("tag-op record too short: %d bytes", len(data))
	}
	count := wire.BEUint16(data[0:2])
	n := len(data)
	pc := wire.BEUint16(data[3:5])
	epc := append([]byte(nil), data[5:n-5]...)
	crc := wire.BEUint16(data[n-5 : n-3])
	crcValid := wire.ValidateCRC(data[3:n-5], crc)
	ant, freq := antennaFreqPack(data[n-2])
	code := proto.ErrorCode(data[n-3])

	rec := TagOpRecord{
		PC:         pc,
		EPC:        epc,
		CRCValid:   crcValid,
		ErrorCode:  code,
		Success:    code == proto.ErrSuccess,
		Antenna:    ant,
		Frequency:  freq,
		RetryCount: data[n-1],
	}
	return count, rec, nil
}

// parseTagMaskRecord decodes one GET_TAG_MASKS list record: count
// (BE16), mask ID, memory bank, start address (BE16), mask length,
// mask bytes. See DESIGN.md for why this layout was chosen for an
// underspecified record.
func parseTagMaskRecord(data []byte) (uint16, TagMask, error) {
	if len(data) < 8 {
		return 0, TagMask{}, fmt.Errorf("tag mask record too short: %d bytes", len(data))
	}
	count := wire.BEUint16(data[0:2])
	maskLen := int(data[6])
	if 7+maskLen > len(data) {
		return 0, TagMask{}, fmt.Errorf("tag mask length %d overruns payload of %d bytes", maskLen, len(data))
	}
	rec := TagMask{
		ID:         data[2],
		MemoryBank: proto.MemoryBank(data[3]),
		Address:    wire.BEUint16(data[4:6]),
		Mask:       append([]byte(nil), data[7:7+maskLen]...),
	}
	return count, rec, nil
}

// parseAccessEPCMatch decodes the GET_EPC_MATCH reply: a one-byte
// enabled flag followed by the stored match mask.
func parseAccessEPCMatch(data []byte) (AccessEPCMatch, error) {
	if len(data) < 1 {
		return AccessEPCMatch{}, fmt.Errorf("access EPC match reply empty")
	}
	return AccessEPCMatch{
		Enabled: data[0] != 0,
		EPC:     append([]byte(nil), data[1:]...),
	}, nil
}
