package r2000

import "github.com/jaytaylor/r2000reader/proto"

// InventoryTag is one EPC Class-1 Gen-2 tag sighting, decoded from a
// real-time, fast-switch, or session inventory record.
type InventoryTag struct {
	Antenna     proto.AntennaID
	Frequency   proto.Frequency
	PC          uint16
	EPC         []byte
	RSSI_dBm    int
	PhaseAngle  uint16
	HasPhase    bool
	Count       int
	HasCount    bool
	CRCValid    bool
}

// SixBTag is one ISO 18000-6B tag sighting.
type SixBTag struct {
	Antenna proto.AntennaID
	UID     [8]byte
}

// BufferedSummary is the reply to a buffered-inventory start (the
// "INVENTORY" summary record), delivered once the reader's tag buffer
// accumulation completes.
type BufferedSummary struct {
	Antenna   proto.AntennaID
	TagCount  uint16
	ReadRate  uint16
	TotalRead uint32
}

// BufferedTagRecord is one record dumped by GetInventoryBuffer /
// GetAndResetInventoryBuffer.
type BufferedTagRecord struct {
	UniqueTagCount uint16
	PC             uint16
	EPC            []byte
	CRCValid       bool
	Antenna        proto.AntennaID
	Frequency      proto.Frequency
	AccessCount    byte
}

// ReadRecord is the reply to ReadTags: the tag identification fields
// plus the bank data that was read.
type ReadRecord struct {
	PC        uint16
	EPC       []byte
	CRCValid  bool
	Antenna   proto.AntennaID
	Frequency proto.Frequency
	Data      []byte
}

// TagOpRecord is the reply to WriteTags / LockTags / KillTags: the tag
// identification fields plus the per-record outcome.
type TagOpRecord struct {
	PC          uint16
	EPC         []byte
	CRCValid    bool
	ErrorCode   proto.ErrorCode
	Success     bool
	Antenna     proto.AntennaID
	Frequency   proto.Frequency
	RetryCount  byte
}

// FrequencyBand is the reply to GetFrequencyRegion.
type FrequencyBand struct {
	Region Region
	// Fixed-region fields (Region != Custom).
	StartIndex, EndIndex proto.Frequency
	// Custom-region fields (Region == Custom).
	CustomSpacingHz   int
	CustomQuantity    int
	CustomStartFreqHz int
}

// Region re-exports proto.Region so callers don't need to import proto
// for the common case.
type Region = proto.Region

// AccessEPCMatch is the reply to GetAccessEPCMatch.
type AccessEPCMatch struct {
	Enabled bool
	EPC     []byte
}

// TagMask describes one stored tag mask, as returned by GetTagMasks.
type TagMask struct {
	ID        byte
	MemoryBank proto.MemoryBank
	Address   uint16
	Mask      []byte
}

// AntennaEvent is an unsolicited antenna-missing notification from a
// fast-switch-antenna inventory in progress.
type AntennaEvent struct {
	Antenna proto.AntennaID
	Code    proto.ErrorCode
}

// EventSink receives unsolicited packets that never consume a pending
// command (§4.4 step 5): tag sightings interleaved with a running
// inventory, and antenna-missing notifications. Passing a nil sink to
// WithEventSink is valid; events are then simply dropped (C1G2 and 6B
// sightings are still counted in Stats).
type EventSink interface {
	OnTag(InventoryTag)
	On6BTag(SixBTag)
	OnAntennaMissing(AntennaEvent)
}

// DiscardEvents is an EventSink that drops everything; useful as a
// default when a caller only wants command results, not a live tag
// feed.
type DiscardEvents struct{}

func (DiscardEvents) OnTag(InventoryTag)              {}
func (DiscardEvents) On6BTag(SixBTag)                 {}
func (DiscardEvents) OnAntennaMissing(AntennaEvent)   {}
